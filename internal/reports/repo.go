package reports

import (
	"context"
	"time"

	"github.com/civicworks/civicreport-backend/pkg/db/models"
	"github.com/civicworks/civicreport-backend/pkg/enums"
	"github.com/civicworks/civicreport-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter narrows the report listing. A nil UserID means no visibility
// restriction (admin); citizens always get their own UserID here.
type ListFilter struct {
	UserID     *uuid.UUID
	Status     *enums.ReportStatus
	CategoryID *uuid.UUID
}

// reportRow is the scan target for the joined listing query.
type reportRow struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Location        string
	Status          enums.ReportStatus
	UserID          uuid.UUID
	UserName        string
	CategoryID      uuid.UUID
	CategoryName    string
	AssignedEmpID   *uuid.UUID
	AssignedEmpName *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Repository exposes report persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reports repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new report and returns the persisted model.
func (r *Repository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// FindByID loads a report by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns one page of joined report rows, newest first. The caller passes
// limit+1 to detect whether a next page exists.
func (r *Repository) List(ctx context.Context, filter ListFilter, cursor *pagination.Cursor, limit int) ([]reportRow, error) {
	query := r.db.WithContext(ctx).
		Table("reports").
		Select(`reports.id,
reports.title,
reports.description,
reports.location,
reports.status,
reports.user_id,
users.name AS user_name,
reports.category_id,
categories.name AS category_name,
reports.assigned_emp_id,
employees.name AS assigned_emp_name,
reports.created_at,
reports.updated_at`).
		Joins("JOIN users ON users.id = reports.user_id").
		Joins("JOIN categories ON categories.id = reports.category_id").
		Joins("LEFT JOIN employees ON employees.id = reports.assigned_emp_id")

	if filter.UserID != nil {
		query = query.Where("reports.user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("reports.status = ?", *filter.Status)
	}
	if filter.CategoryID != nil {
		query = query.Where("reports.category_id = ?", *filter.CategoryID)
	}
	if cursor != nil {
		query = query.Where(
			"reports.created_at < ? OR (reports.created_at = ? AND reports.id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var rows []reportRow
	if err := query.
		Order("reports.created_at DESC, reports.id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus moves the report to the provided lifecycle state.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ReportStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

// SetAssignment points the report at an employee, or clears the pointer when
// empID is nil.
func (r *Repository) SetAssignment(ctx context.Context, id uuid.UUID, empID *uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", id).
		UpdateColumn("assigned_emp_id", empID).Error
}
