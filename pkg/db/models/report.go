package models

import (
	"time"

	"github.com/civicworks/civicreport-backend/pkg/enums"
	"github.com/google/uuid"
)

// Report is a citizen-submitted grievance. Status and AssignedEmpID are two
// independent axes: status moves freely between the three lifecycle values,
// while the assignment pointer and the employee's availability flip together
// inside one transaction.
type Report struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Title         string             `gorm:"column:title;not null"`
	Description   string             `gorm:"column:description;not null"`
	UserID        uuid.UUID          `gorm:"type:uuid;column:user_id;not null;index"`
	CategoryID    uuid.UUID          `gorm:"type:uuid;column:category_id;not null"`
	Location      string             `gorm:"column:location;not null"`
	Status        enums.ReportStatus `gorm:"column:status;not null;default:Pending"`
	AssignedEmpID *uuid.UUID         `gorm:"type:uuid;column:assigned_emp_id"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
