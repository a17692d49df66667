package employees

import (
	"context"
	"fmt"
	"strings"

	"github.com/civicworks/civicreport-backend/pkg/db/models"
	"github.com/civicworks/civicreport-backend/pkg/enums"
	pkgerrors "github.com/civicworks/civicreport-backend/pkg/errors"
	"github.com/google/uuid"
)

// Service exposes admin-facing employee roster operations.
type Service interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*CreateEmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeDTO, error)
}

type employeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
}

type service struct {
	repo employeeRepository
}

// ServiceParams bundles the dependencies required to build an employees service.
type ServiceParams struct {
	Repo employeeRepository
}

// NewService constructs an employees service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("employees repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*CreateEmployeeResponse, error) {
	employee := &models.Employee{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Specialization: strings.TrimSpace(req.Specialization),
		ContactNumber:  strings.TrimSpace(req.ContactNumber),
		AssignedArea:   strings.TrimSpace(req.AssignedArea),
		Availability:   enums.EmployeeAvailable,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create employee")
	}

	return &CreateEmployeeResponse{EmpID: created.ID}, nil
}

func (s *service) ListEmployees(ctx context.Context) ([]EmployeeDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list employees")
	}

	out := make([]EmployeeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}
