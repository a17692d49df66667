package controllers

import (
	"net/http"

	"github.com/civicworks/civicreport-backend/api/responses"
	"github.com/civicworks/civicreport-backend/internal/categories"
	pkgerrors "github.com/civicworks/civicreport-backend/pkg/errors"
	"github.com/civicworks/civicreport-backend/pkg/logger"
)

// ListCategories returns the category reference data.
func ListCategories(svc categories.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "categories service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
