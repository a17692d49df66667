package employees

import (
	"context"
	"errors"
	"testing"

	"github.com/civicworks/civicreport-backend/pkg/db/models"
	"github.com/civicworks/civicreport-backend/pkg/enums"
	pkgerrors "github.com/civicworks/civicreport-backend/pkg/errors"
	"github.com/google/uuid"
)

type stubEmployeeRepo struct {
	created *models.Employee
	rows    []models.Employee
	err     error
}

func (s *stubEmployeeRepo) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = employee
	return employee, nil
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]models.Employee, error) {
	return s.rows, s.err
}

func TestCreateEmployeeForcesAvailable(t *testing.T) {
	repo := &stubEmployeeRepo{}
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	resp, err := svc.CreateEmployee(context.Background(), CreateEmployeeRequest{
		Name:           "  Ravi Kumar ",
		Specialization: "Electrical",
		ContactNumber:  "555-0110",
		AssignedArea:   "Ward 12",
	})
	if err != nil {
		t.Fatalf("create employee: %v", err)
	}

	if repo.created.Availability != enums.EmployeeAvailable {
		t.Fatalf("new employees must start Available, got %s", repo.created.Availability)
	}
	if repo.created.Name != "Ravi Kumar" {
		t.Fatalf("expected trimmed name, got %q", repo.created.Name)
	}
	if resp.EmpID != repo.created.ID {
		t.Fatalf("response must echo the persisted id")
	}
}

func TestListEmployees(t *testing.T) {
	repo := &stubEmployeeRepo{rows: []models.Employee{
		{ID: uuid.New(), Name: "Ravi Kumar", Availability: enums.EmployeeBusy},
		{ID: uuid.New(), Name: "Meena Iyer", Availability: enums.EmployeeAvailable},
	}}
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got, err := svc.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 employees but got %d", len(got))
	}
	if got[0].Availability != enums.EmployeeBusy {
		t.Fatalf("unexpected availability %s", got[0].Availability)
	}
}

func TestCreateEmployeeWrapsRepoError(t *testing.T) {
	svc, err := NewService(ServiceParams{Repo: &stubEmployeeRepo{err: errors.New("db down")}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.CreateEmployee(context.Background(), CreateEmployeeRequest{
		Name:           "Ravi",
		Specialization: "Roads",
		ContactNumber:  "555-0110",
		AssignedArea:   "Ward 1",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error but got %v", err)
	}
}
