package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/middleware"
	"github.com/legend1349/USYDSTRATA2025/internal/models"
	"github.com/legend1349/USYDSTRATA2025/internal/services"
)

// stubMaintenanceService counts calls so tests can prove that rejected
// payloads never reach the service layer.
type stubMaintenanceService struct {
	calls   int
	created *models.MaintenanceRequest
	getErr  error
}

func (s *stubMaintenanceService) ListRequests(context.Context, string) ([]*models.MaintenanceRequest, error) {
	s.calls++
	return nil, nil
}

func (s *stubMaintenanceService) GetRequest(context.Context, int64) (*models.MaintenanceRequest, error) {
	s.calls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &models.MaintenanceRequest{ID: 1, Title: "t", Date: time.Now()}, nil
}

func (s *stubMaintenanceService) CreateRequest(_ context.Context, submittedBy string, req dtos.CreateMaintenanceRequestRequest) (*models.MaintenanceRequest, error) {
	s.calls++
	s.created = req.ToModel(submittedBy, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	s.created.ID = 42
	return s.created, nil
}

func (s *stubMaintenanceService) UpdateRequest(context.Context, int64, dtos.UpdateMaintenanceRequestRequest) (*models.MaintenanceRequest, error) {
	s.calls++
	return &models.MaintenanceRequest{ID: 1, Date: time.Now()}, nil
}

func (s *stubMaintenanceService) UpdateStatus(_ context.Context, id int64, status string) (*models.MaintenanceRequest, error) {
	s.calls++
	return &models.MaintenanceRequest{ID: id, Status: status, Date: time.Now()}, nil
}

func (s *stubMaintenanceService) DeleteRequest(context.Context, int64) error {
	s.calls++
	return nil
}

func testSession() middleware.Session {
	return middleware.Session{
		UserID:      "8d5e6f10-8a4e-4f5f-9d2f-0123456789ab",
		Email:       "alice@example.com",
		DisplayName: "Alice Wu",
	}
}

func postJSON(path, body string, sess *middleware.Session) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sess != nil {
		req = req.WithContext(middleware.ContextWithSession(req.Context(), *sess))
	}
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestCreateRequestHandler_MissingTitleNeverReachesService(t *testing.T) {
	svc := &stubMaintenanceService{}
	ctrl := NewMaintenanceController(svc)
	sess := testSession()

	rec := httptest.NewRecorder()
	req := postJSON("/api/v1/maintenance-requests",
		`{"title":"","description":"tap drips","unit":"12","priority":"low"}`, &sess)
	ctrl.CreateRequestHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec))
	assert.Zero(t, svc.calls)
}

func TestCreateRequestHandler_BadPriorityRejected(t *testing.T) {
	svc := &stubMaintenanceService{}
	ctrl := NewMaintenanceController(svc)
	sess := testSession()

	rec := httptest.NewRecorder()
	req := postJSON("/api/v1/maintenance-requests",
		`{"title":"t","description":"d","unit":"12","priority":"urgent"}`, &sess)
	ctrl.CreateRequestHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestCreateRequestHandler_MalformedJSON(t *testing.T) {
	svc := &stubMaintenanceService{}
	ctrl := NewMaintenanceController(svc)
	sess := testSession()

	rec := httptest.NewRecorder()
	req := postJSON("/api/v1/maintenance-requests", `{"title":`, &sess)
	ctrl.CreateRequestHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_payload", decodeError(t, rec))
	assert.Zero(t, svc.calls)
}

func TestCreateRequestHandler_SubmitterTakenFromSession(t *testing.T) {
	svc := &stubMaintenanceService{}
	ctrl := NewMaintenanceController(svc)
	sess := testSession()

	rec := httptest.NewRecorder()
	req := postJSON("/api/v1/maintenance-requests",
		`{"title":"Leaking tap","description":"tap drips","unit":"12","priority":"medium"}`, &sess)
	ctrl.CreateRequestHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "Alice Wu", svc.created.SubmittedBy)

	var body dtos.MaintenanceRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "pending", body.Status)
}

func TestCreateRequestHandler_NoSessionIs401(t *testing.T) {
	svc := &stubMaintenanceService{}
	ctrl := NewMaintenanceController(svc)

	rec := httptest.NewRecorder()
	req := postJSON("/api/v1/maintenance-requests",
		`{"title":"t","description":"d","unit":"1","priority":"low"}`, nil)
	ctrl.CreateRequestHandler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestGetRequestHandler_InvalidID(t *testing.T) {
	svc := &stubMaintenanceService{}
	ctrl := NewMaintenanceController(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/maintenance-requests/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	ctrl.GetRequestHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestGetRequestHandler_NotFoundMapsTo404(t *testing.T) {
	svc := &stubMaintenanceService{getErr: services.ErrNotFound}
	ctrl := NewMaintenanceController(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/maintenance-requests/9", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "9"})
	ctrl.GetRequestHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec))
}

func TestUpdateStatusHandler_RejectsUnknownStatus(t *testing.T) {
	svc := &stubMaintenanceService{}
	ctrl := NewMaintenanceController(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/maintenance-requests/3/status",
		strings.NewReader(`{"status":"done"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "3"})
	ctrl.UpdateStatusHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestUpdateStatusHandler_HappyPath(t *testing.T) {
	svc := &stubMaintenanceService{}
	ctrl := NewMaintenanceController(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/maintenance-requests/3/status",
		strings.NewReader(`{"status":"completed"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "3"})
	ctrl.UpdateStatusHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body dtos.MaintenanceRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "completed", body.Status)
}
