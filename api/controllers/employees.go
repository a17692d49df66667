package controllers

import (
	"net/http"

	"github.com/civicworks/civicreport-backend/api/responses"
	"github.com/civicworks/civicreport-backend/api/validators"
	"github.com/civicworks/civicreport-backend/internal/employees"
	pkgerrors "github.com/civicworks/civicreport-backend/pkg/errors"
	"github.com/civicworks/civicreport-backend/pkg/logger"
)

// CreateEmployee onboards a new field worker.
func CreateEmployee(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body employees.CreateEmployeeRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateEmployee(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// ListEmployees returns the full roster.
func ListEmployees(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListEmployees(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
