package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/civicworks/civicreport-backend/api/middleware"
	"github.com/civicworks/civicreport-backend/api/responses"
	"github.com/civicworks/civicreport-backend/api/validators"
	"github.com/civicworks/civicreport-backend/internal/reports"
	"github.com/civicworks/civicreport-backend/pkg/enums"
	pkgerrors "github.com/civicworks/civicreport-backend/pkg/errors"
	"github.com/civicworks/civicreport-backend/pkg/logger"
	"github.com/civicworks/civicreport-backend/pkg/pagination"
)

func actorFromRequest(r *http.Request) (reports.Actor, error) {
	userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
	if err != nil {
		return reports.Actor{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	role, err := enums.ParseUserRole(middleware.RoleFromContext(r.Context()))
	if err != nil {
		return reports.Actor{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	return reports.Actor{UserID: userID, Role: role}, nil
}

// CreateReport files a new grievance for the authenticated citizen.
func CreateReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor, err := actorFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body reports.CreateReportRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateReport(r.Context(), actor, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// ListReports returns the reports visible to the caller: admins see all,
// citizens see their own.
func ListReports(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor, err := actorFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := reports.ListParams{
			Status: r.URL.Query().Get("status"),
			Pagination: pagination.Params{
				Limit:  limit,
				Cursor: r.URL.Query().Get("cursor"),
			},
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("category_id")); raw != "" {
			categoryID, err := validators.ParsePathUUID("category_id", raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			params.CategoryID = &categoryID
		}

		result, err := svc.ListReports(r.Context(), actor, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// UpdateReportStatus moves a report between lifecycle states.
func UpdateReportStatus(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reportID, err := validators.ParsePathUUID("reportId", chi.URLParam(r, "reportId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body reports.UpdateStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateStatus(r.Context(), reportID, body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "status updated")
	}
}

// AssignReport binds an employee to a report.
func AssignReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reportID, err := validators.ParsePathUUID("reportId", chi.URLParam(r, "reportId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body reports.AssignRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Assign(r.Context(), reportID, body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "employee assigned")
	}
}

// UnassignReport clears a report's assignment and releases the employee.
func UnassignReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reportID, err := validators.ParsePathUUID("reportId", chi.URLParam(r, "reportId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Unassign(r.Context(), reportID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "employee unassigned")
	}
}
