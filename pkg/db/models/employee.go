package models

import (
	"time"

	"github.com/civicworks/civicreport-backend/pkg/enums"
	"github.com/google/uuid"
)

// Employee is a field worker that admins assign to reports. Availability is
// derived bookkeeping: Busy while holding an open assignment, Available
// otherwise.
type Employee struct {
	ID             uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Name           string                     `gorm:"column:name;not null"`
	Specialization string                     `gorm:"column:specialization;not null"`
	ContactNumber  string                     `gorm:"column:contact_number;not null"`
	AssignedArea   string                     `gorm:"column:assigned_area;not null"`
	Availability   enums.EmployeeAvailability `gorm:"column:availability;not null;default:Available"`
	CreatedAt      time.Time                  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time                  `gorm:"column:updated_at;autoUpdateTime"`
}
