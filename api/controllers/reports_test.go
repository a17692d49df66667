package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/civicworks/civicreport-backend/api/middleware"
	"github.com/civicworks/civicreport-backend/internal/reports"
	"github.com/civicworks/civicreport-backend/pkg/enums"
	pkgerrors "github.com/civicworks/civicreport-backend/pkg/errors"
)

type stubReportsService struct {
	createResp *reports.CreateReportResponse
	listResp   *reports.ListReportsResult
	err        error

	lastActor    reports.Actor
	lastReportID uuid.UUID
	lastCreate   *reports.CreateReportRequest
	lastAssign   *reports.AssignRequest
	lastStatus   *reports.UpdateStatusRequest
	unassigned   bool
}

func (s *stubReportsService) CreateReport(ctx context.Context, actor reports.Actor, req reports.CreateReportRequest) (*reports.CreateReportResponse, error) {
	s.lastActor = actor
	s.lastCreate = &req
	return s.createResp, s.err
}

func (s *stubReportsService) ListReports(ctx context.Context, actor reports.Actor, params reports.ListParams) (*reports.ListReportsResult, error) {
	s.lastActor = actor
	return s.listResp, s.err
}

func (s *stubReportsService) UpdateStatus(ctx context.Context, reportID uuid.UUID, req reports.UpdateStatusRequest) error {
	s.lastReportID = reportID
	s.lastStatus = &req
	return s.err
}

func (s *stubReportsService) Assign(ctx context.Context, reportID uuid.UUID, req reports.AssignRequest) error {
	s.lastReportID = reportID
	s.lastAssign = &req
	return s.err
}

func (s *stubReportsService) Unassign(ctx context.Context, reportID uuid.UUID) error {
	s.lastReportID = reportID
	s.unassigned = true
	return s.err
}

func authedRequest(method, target string, body []byte, role enums.UserRole) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := middleware.WithUserID(req.Context(), uuid.NewString())
	ctx = middleware.WithRole(ctx, string(role))
	return req.WithContext(ctx)
}

func withReportID(req *http.Request, reportID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("reportId", reportID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateReportSuccess(t *testing.T) {
	reportID := uuid.New()
	svc := &stubReportsService{createResp: &reports.CreateReportResponse{ReportID: reportID}}
	handler := CreateReport(svc, nil)

	payload := []byte(`{"title":"Pothole","description":"Deep pothole","category_id":"` + uuid.NewString() + `","location":"Main St"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/reports", payload, enums.UserRoleUser))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var body struct {
		ReportID uuid.UUID `json:"report_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ReportID != reportID {
		t.Fatalf("expected report_id %s got %s", reportID, body.ReportID)
	}
	if svc.lastActor.Role != enums.UserRoleUser {
		t.Fatalf("expected actor role user got %s", svc.lastActor.Role)
	}
	if svc.lastCreate == nil || svc.lastCreate.Title != "Pothole" || svc.lastCreate.Location != "Main St" {
		t.Fatalf("service received %+v", svc.lastCreate)
	}
}

func TestCreateReportRequiresAuthContext(t *testing.T) {
	svc := &stubReportsService{createResp: &reports.CreateReportResponse{ReportID: uuid.New()}}
	handler := CreateReport(svc, nil)

	payload := []byte(`{"title":"Pothole","description":"x","category_id":"` + uuid.NewString() + `","location":"Main St"}`)
	req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestListReportsPassesActor(t *testing.T) {
	svc := &stubReportsService{listResp: &reports.ListReportsResult{Reports: []reports.ReportDTO{}}}
	handler := ListReports(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/reports?status=Pending&limit=10", nil, enums.UserRoleAdmin))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastActor.Role != enums.UserRoleAdmin {
		t.Fatalf("expected admin actor got %s", svc.lastActor.Role)
	}
}

func TestListReportsRejectsBadLimit(t *testing.T) {
	svc := &stubReportsService{listResp: &reports.ListReportsResult{}}
	handler := ListReports(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/reports?limit=boom", nil, enums.UserRoleUser))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUpdateReportStatus(t *testing.T) {
	svc := &stubReportsService{}
	handler := UpdateReportStatus(svc, nil)

	reportID := uuid.New()
	req := authedRequest(http.MethodPut, "/reports/"+reportID.String()+"/status", []byte(`{"status":"Resolved"}`), enums.UserRoleAdmin)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, withReportID(req, reportID.String()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastReportID != reportID || svc.lastStatus == nil || svc.lastStatus.Status != "Resolved" {
		t.Fatalf("service received %v %+v", svc.lastReportID, svc.lastStatus)
	}
}

func TestUpdateReportStatusRejectsBadID(t *testing.T) {
	svc := &stubReportsService{}
	handler := UpdateReportStatus(svc, nil)

	req := authedRequest(http.MethodPut, "/reports/not-a-uuid/status", []byte(`{"status":"Resolved"}`), enums.UserRoleAdmin)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, withReportID(req, "not-a-uuid"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAssignReportForwardsEmployee(t *testing.T) {
	svc := &stubReportsService{}
	handler := AssignReport(svc, nil)

	reportID := uuid.New()
	empID := uuid.New()
	payload := []byte(`{"assigned_emp_id":"` + empID.String() + `"}`)
	req := authedRequest(http.MethodPut, "/reports/"+reportID.String()+"/assign", payload, enums.UserRoleAdmin)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, withReportID(req, reportID.String()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastReportID != reportID || svc.lastAssign == nil || svc.lastAssign.EmpID != empID {
		t.Fatalf("service received %v %+v", svc.lastReportID, svc.lastAssign)
	}
}

func TestAssignReportConflictSurfaces409(t *testing.T) {
	svc := &stubReportsService{err: pkgerrors.New(pkgerrors.CodeConflict, "employee is busy")}
	handler := AssignReport(svc, nil)

	reportID := uuid.New()
	payload := []byte(`{"assigned_emp_id":"` + uuid.NewString() + `"}`)
	req := authedRequest(http.MethodPut, "/reports/"+reportID.String()+"/assign", payload, enums.UserRoleAdmin)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, withReportID(req, reportID.String()))

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}

func TestUnassignReport(t *testing.T) {
	svc := &stubReportsService{}
	handler := UnassignReport(svc, nil)

	reportID := uuid.New()
	req := authedRequest(http.MethodPut, "/reports/"+reportID.String()+"/unassign", nil, enums.UserRoleAdmin)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, withReportID(req, reportID.String()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !svc.unassigned || svc.lastReportID != reportID {
		t.Fatalf("unassign not forwarded, got %v", svc.lastReportID)
	}
}
