package reports

import (
	"context"
	"errors"
	"strings"

	"github.com/civicworks/civicreport-backend/internal/categories"
	"github.com/civicworks/civicreport-backend/internal/employees"
	"github.com/civicworks/civicreport-backend/pkg/db"
	"github.com/civicworks/civicreport-backend/pkg/db/models"
	"github.com/civicworks/civicreport-backend/pkg/enums"
	pkgerrors "github.com/civicworks/civicreport-backend/pkg/errors"
	"github.com/civicworks/civicreport-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies the authenticated caller for visibility decisions.
type Actor struct {
	UserID uuid.UUID
	Role   enums.UserRole
}

// ListParams carries the optional filters and cursor inputs for a listing.
type ListParams struct {
	Status     string
	CategoryID *uuid.UUID
	Pagination pagination.Params
}

// Service exposes the report lifecycle operations.
type Service interface {
	CreateReport(ctx context.Context, actor Actor, req CreateReportRequest) (*CreateReportResponse, error)
	ListReports(ctx context.Context, actor Actor, params ListParams) (*ListReportsResult, error)
	UpdateStatus(ctx context.Context, reportID uuid.UUID, req UpdateStatusRequest) error
	Assign(ctx context.Context, reportID uuid.UUID, req AssignRequest) error
	Unassign(ctx context.Context, reportID uuid.UUID) error
}

type service struct {
	db *db.Client
}

// ServiceParams bundles the dependencies required to build a reports service.
type ServiceParams struct {
	DB *db.Client
}

// NewService constructs a reports service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &service{db: params.DB}, nil
}

func (s *service) CreateReport(ctx context.Context, actor Actor, req CreateReportRequest) (*CreateReportResponse, error) {
	categoryRepo := categories.NewRepository(s.db.DB())
	if _, err := categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup category")
	}

	report := &models.Report{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		UserID:      actor.UserID,
		CategoryID:  req.CategoryID,
		Location:    strings.TrimSpace(req.Location),
		Status:      enums.ReportStatusPending,
	}

	created, err := NewRepository(s.db.DB()).Create(ctx, report)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create report")
	}

	return &CreateReportResponse{ReportID: created.ID}, nil
}

func (s *service) ListReports(ctx context.Context, actor Actor, params ListParams) (*ListReportsResult, error) {
	filter := ListFilter{CategoryID: params.CategoryID}

	// citizens only ever see their own reports
	if actor.Role != enums.UserRoleAdmin {
		userID := actor.UserID
		filter.UserID = &userID
	}

	if raw := strings.TrimSpace(params.Status); raw != "" {
		status, err := enums.ParseReportStatus(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter").
				WithDetails(map[string]any{"status": raw})
		}
		filter.Status = &status
	}

	cursor, err := pagination.ParseCursor(params.Pagination.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Pagination.Limit)
	rows, err := NewRepository(s.db.DB()).List(ctx, filter, cursor, limit+1)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reports")
	}

	var nextCursor *string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		encoded := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		nextCursor = &encoded
	}

	out := make([]ReportDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, ReportDTO{
			ID:              row.ID,
			Title:           row.Title,
			Description:     row.Description,
			Location:        row.Location,
			Status:          row.Status,
			UserID:          row.UserID,
			UserName:        row.UserName,
			CategoryID:      row.CategoryID,
			CategoryName:    row.CategoryName,
			AssignedEmpID:   row.AssignedEmpID,
			AssignedEmpName: row.AssignedEmpName,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		})
	}

	return &ListReportsResult{Reports: out, NextCursor: nextCursor}, nil
}

func (s *service) UpdateStatus(ctx context.Context, reportID uuid.UUID, req UpdateStatusRequest) error {
	status, err := enums.ParseReportStatus(strings.TrimSpace(req.Status))
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid status").
			WithDetails(map[string]any{"status": req.Status})
	}

	repo := NewRepository(s.db.DB())
	if _, err := repo.FindByID(ctx, reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "report not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup report")
	}

	if err := repo.UpdateStatus(ctx, reportID, status); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update status")
	}
	return nil
}

// Assign binds an employee to the report. The assignment pointer and both
// employees' availability flip inside one transaction so a crash can never
// leave a Busy employee without a report or vice versa.
func (s *service) Assign(ctx context.Context, reportID uuid.UUID, req AssignRequest) error {
	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		reportRepo := NewRepository(tx)
		employeeRepo := employees.NewRepository(tx)

		report, err := reportRepo.FindByID(ctx, reportID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "report not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup report")
		}

		if report.AssignedEmpID != nil && *report.AssignedEmpID == req.EmpID {
			return nil
		}

		employee, err := employeeRepo.FindByID(ctx, req.EmpID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeValidation, "unknown employee")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup employee")
		}
		if employee.Availability != enums.EmployeeAvailable {
			return pkgerrors.New(pkgerrors.CodeConflict, "employee is busy")
		}

		if report.AssignedEmpID != nil {
			if err := employeeRepo.UpdateAvailability(ctx, *report.AssignedEmpID, enums.EmployeeAvailable); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "release previous employee")
			}
		}

		if err := reportRepo.SetAssignment(ctx, reportID, &employee.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "set assignment")
		}
		if err := employeeRepo.UpdateAvailability(ctx, employee.ID, enums.EmployeeBusy); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark employee busy")
		}
		return nil
	})
}

func (s *service) Unassign(ctx context.Context, reportID uuid.UUID) error {
	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		reportRepo := NewRepository(tx)
		employeeRepo := employees.NewRepository(tx)

		report, err := reportRepo.FindByID(ctx, reportID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "report not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup report")
		}

		if report.AssignedEmpID == nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "report has no assigned employee")
		}

		if err := reportRepo.SetAssignment(ctx, reportID, nil); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear assignment")
		}
		if err := employeeRepo.UpdateAvailability(ctx, *report.AssignedEmpID, enums.EmployeeAvailable); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "release employee")
		}
		return nil
	})
}
