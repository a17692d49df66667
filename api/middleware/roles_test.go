package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/civicworks/civicreport-backend/pkg/enums"
)

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	handler := RequireRole(string(enums.UserRoleAdmin), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest(http.MethodGet, "/users", nil)
	r = r.WithContext(WithRole(r.Context(), string(enums.UserRoleAdmin)))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 but got %d", w.Code)
	}
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	handler := RequireRole(string(enums.UserRoleAdmin), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	r := httptest.NewRequest(http.MethodGet, "/users", nil)
	r = r.WithContext(WithRole(r.Context(), string(enums.UserRoleUser)))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 but got %d", w.Code)
	}
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	handler := RequireRole(string(enums.UserRoleAdmin), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	r := httptest.NewRequest(http.MethodGet, "/users", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 but got %d", w.Code)
	}
}
