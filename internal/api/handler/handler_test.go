package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/service"
	"naminara/backend/internal/voyage"
	"naminara/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	profilesResult []dto.ProfileResponse
	profilesErr    error
	loginResult    *dto.LoginResponse
	loginErr       error
	meResult       *dto.UserResponse
	meErr          error
}

func (m *mockAuthService) Profiles() ([]dto.ProfileResponse, error) {
	return m.profilesResult, m.profilesErr
}
func (m *mockAuthService) Login(_ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Me(_ string) (*dto.UserResponse, error) {
	return m.meResult, m.meErr
}

// ── Mock VoyageLogService ──

type mockVoyageLogService struct {
	listResult   *dto.LogListResponse
	listErr      error
	getResult    *dto.VoyageLogResponse
	getErr       error
	createResult *dto.VoyageLogResponse
	createErr    error
	updateResult *dto.VoyageLogResponse
	updateErr    error
	deleteErr    error
	liveResult   []dto.VoyageLogResponse
	liveErr      error
	bufferErr    error
	bufferData   []byte
}

func (m *mockVoyageLogService) List(_, _ string, _ *dto.LogFilterRequest) (*dto.LogListResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockVoyageLogService) GetByID(_ string) (*dto.VoyageLogResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockVoyageLogService) Create(_ context.Context, _ string, _ *dto.SaveVoyageLogRequest) (*dto.VoyageLogResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockVoyageLogService) Update(_ context.Context, _, _, _ string, _ *dto.SaveVoyageLogRequest) (*dto.VoyageLogResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockVoyageLogService) Delete(_ string) error { return m.deleteErr }
func (m *mockVoyageLogService) Live(_ time.Time) ([]dto.VoyageLogResponse, error) {
	return m.liveResult, m.liveErr
}
func (m *mockVoyageLogService) SaveDraftBuffer(_ context.Context, _ string, _ []byte) error {
	return m.bufferErr
}
func (m *mockVoyageLogService) GetDraftBuffer(_ context.Context, _ string) ([]byte, error) {
	return m.bufferData, m.bufferErr
}
func (m *mockVoyageLogService) ClearDraftBuffer(_ context.Context, _ string) error {
	return m.bufferErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportLogs(_ []string, _ time.Time) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ── Mock ReportService ──

type mockReportService struct {
	report *voyage.DailyReport
	err    error
}

func (m *mockReportService) Daily(_, _ string, _ time.Time) (*voyage.DailyReport, error) {
	return m.report, m.err
}

// ═══════════════════════════════════════════════════════════
// 테스트 헬퍼
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("응답 파싱 실패: %v", err)
	}
	return resp
}

// injectAuth JWT 미들웨어 주입값을 흉내낸다
func injectAuth(userID, name, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("name", name)
		c.Set("role", role)
		c.Next()
	}
}

// ═══════════════════════════════════════════════════════════
// AuthHandler 테스트
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.LoginResponse{
			AccessToken: "test-access-token",
			User:        dto.UserResponse{ID: "u-1", Name: "홍길동", Role: "captain"},
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{UserID: "u-1"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("200 기대, 실제: %d", w.Code)
	}
	resp := parseResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("code 0 기대, 실제: %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("400 기대, 실제: %d", w.Code)
	}
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrUserNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{UserID: "nope"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("404 기대, 실제: %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// VoyageLogHandler 테스트
// ═══════════════════════════════════════════════════════════

func TestVoyageLogHandler_ListLogs_RequiresAuthContext(t *testing.T) {
	h := NewVoyageLogHandler(&mockVoyageLogService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/logs", nil)

	// 미들웨어 주입 없이 호출 — 401이어야 한다
	r := gin.New()
	r.GET("/logs", h.ListLogs)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("401 기대, 실제: %d", w.Code)
	}
}

func TestVoyageLogHandler_ListLogs_Success(t *testing.T) {
	mock := &mockVoyageLogService{
		listResult: &dto.LogListResponse{
			Logs:          []dto.VoyageLogResponse{},
			DurationLabel: "0시간 0분",
		},
	}
	h := NewVoyageLogHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/logs?status=all", nil)

	r := gin.New()
	r.GET("/logs", injectAuth("u-1", "홍길동", "captain"), h.ListLogs)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("200 기대, 실제: %d", w.Code)
	}
}

func TestVoyageLogHandler_UpdateLog_NotOwner(t *testing.T) {
	h := NewVoyageLogHandler(&mockVoyageLogService{updateErr: service.ErrNotLogOwner})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/logs/log-1", jsonBody(dto.SaveVoyageLogRequest{ShipName: "탐나라호"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/logs/:id", injectAuth("u-2", "최지우", "captain"), h.UpdateLog)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("403 기대, 실제: %d", w.Code)
	}
}

func TestVoyageLogHandler_DraftBuffer_Unavailable(t *testing.T) {
	h := NewVoyageLogHandler(&mockVoyageLogService{bufferErr: service.ErrDraftBufferDisabled})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/logs/draft-buffer", bytes.NewReader([]byte("{}")))

	r := gin.New()
	r.PUT("/logs/draft-buffer", injectAuth("u-1", "홍길동", "captain"), h.SaveDraftBuffer)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("503 기대, 실제: %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler 테스트
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("xlsx-bytes"),
		filename: "운항일지_추출_20260206.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/logs/export", jsonBody(dto.ExportLogsRequest{IDs: []string{"log-1"}}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/logs/export", injectAuth("u-1", "이영희", "admin"), h.ExportLogs)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("200 기대, 실제: %d", w.Code)
	}
	cd := w.Header().Get("Content-Disposition")
	if cd == "" || cd == "attachment" {
		t.Errorf("첨부 파일명이 설정되어야 합니다: %q", cd)
	}
	if got := w.Header().Get("Content-Type"); got != xlsxContentType {
		t.Errorf("Content-Type 불일치: %q", got)
	}
}

// ═══════════════════════════════════════════════════════════
// ReportHandler 테스트
// ═══════════════════════════════════════════════════════════

func TestReportHandler_DailyReport(t *testing.T) {
	mock := &mockReportService{report: &voyage.DailyReport{Date: "2026-02-06"}}
	h := NewReportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/daily?ship=탐나라호&date=2026-02-06", nil)

	r := gin.New()
	r.GET("/reports/daily", h.DailyReport)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("200 기대, 실제: %d", w.Code)
	}
	resp := parseResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("code 0 기대, 실제: %d", resp.Code)
	}
}
