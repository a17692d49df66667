package employees

import (
	"time"

	"github.com/google/uuid"

	"github.com/civicworks/civicreport-backend/pkg/db/models"
	"github.com/civicworks/civicreport-backend/pkg/enums"
)

// EmployeeDTO is the transport shape for field workers.
type EmployeeDTO struct {
	ID             uuid.UUID                  `json:"id"`
	Name           string                     `json:"name"`
	Specialization string                     `json:"specialization"`
	ContactNumber  string                     `json:"contact_number"`
	AssignedArea   string                     `json:"assigned_area"`
	Availability   enums.EmployeeAvailability `json:"availability"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// CreateEmployeeRequest is the admin payload for onboarding a field worker.
// Availability is not accepted from the client; new employees start Available.
type CreateEmployeeRequest struct {
	Name           string `json:"name" validate:"required,max=120"`
	Specialization string `json:"specialization" validate:"required,max=120"`
	ContactNumber  string `json:"contact_number" validate:"required,max=20"`
	AssignedArea   string `json:"assigned_area" validate:"required,max=120"`
}

// CreateEmployeeResponse carries the new employee's identifier.
type CreateEmployeeResponse struct {
	EmpID uuid.UUID `json:"emp_id"`
}

func FromModel(e *models.Employee) *EmployeeDTO {
	if e == nil {
		return nil
	}
	return &EmployeeDTO{
		ID:             e.ID,
		Name:           e.Name,
		Specialization: e.Specialization,
		ContactNumber:  e.ContactNumber,
		AssignedArea:   e.AssignedArea,
		Availability:   e.Availability,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
