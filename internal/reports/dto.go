package reports

import (
	"time"

	"github.com/google/uuid"

	"github.com/civicworks/civicreport-backend/pkg/enums"
)

// ReportDTO is the listing shape. The human-readable names come from joins so
// clients never need follow-up lookups.
type ReportDTO struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Location        string             `json:"location"`
	Status          enums.ReportStatus `json:"status"`
	UserID          uuid.UUID          `json:"user_id"`
	UserName        string             `json:"user_name"`
	CategoryID      uuid.UUID          `json:"category_id"`
	CategoryName    string             `json:"category_name"`
	AssignedEmpID   *uuid.UUID         `json:"assigned_emp_id"`
	AssignedEmpName *string            `json:"assigned_emp_name"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// CreateReportRequest is the citizen payload for filing a grievance.
type CreateReportRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required,max=2000"`
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Location    string    `json:"location" validate:"required,max=200"`
}

// CreateReportResponse carries the new report's identifier.
type CreateReportResponse struct {
	ReportID uuid.UUID `json:"report_id"`
}

// UpdateStatusRequest moves a report between lifecycle states.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignRequest binds an employee to a report.
type AssignRequest struct {
	EmpID uuid.UUID `json:"assigned_emp_id" validate:"required"`
}

// ListReportsResult is one page of reports plus the cursor for the next page.
type ListReportsResult struct {
	Reports    []ReportDTO `json:"reports"`
	NextCursor *string     `json:"next_cursor"`
}
