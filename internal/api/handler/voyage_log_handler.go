package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/service"
	"naminara/backend/pkg/response"
)

// 임시 폼 버퍼 페이로드 상한 (프런트 폼 JSON 기준 넉넉한 값)
const maxDraftBufferBytes = 64 << 10

// VoyageLogHandler 운항일지 모듈 HTTP 처리기
type VoyageLogHandler struct {
	logSvc service.VoyageLogService
}

// NewVoyageLogHandler VoyageLogHandler 생성
func NewVoyageLogHandler(logSvc service.VoyageLogService) *VoyageLogHandler {
	return &VoyageLogHandler{logSvc: logSvc}
}

// ListLogs 일지 목록 + 집계
// GET /api/v1/logs?search=&ship=&date=&status=
func (h *VoyageLogHandler) ListLogs(c *gin.Context) {
	name, ok := MustGetName(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.LogFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.logSvc.List(name, role, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetLog 일지 단건 조회
// GET /api/v1/logs/:id
func (h *VoyageLogHandler) GetLog(c *gin.Context) {
	log, err := h.logSvc.GetByID(c.Param("id"))
	if err != nil {
		h.handleLogError(c, err)
		return
	}
	response.OK(c, log)
}

// CreateLog 일지 작성 — 작성자의 이름이 선장명으로 고정된다
// POST /api/v1/logs
func (h *VoyageLogHandler) CreateLog(c *gin.Context) {
	name, ok := MustGetName(c)
	if !ok {
		return
	}

	var req dto.SaveVoyageLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	log, err := h.logSvc.Create(c.Request.Context(), name, &req)
	if err != nil {
		h.handleLogError(c, err)
		return
	}
	response.Created(c, log)
}

// UpdateLog 일지 수정
// PUT /api/v1/logs/:id
func (h *VoyageLogHandler) UpdateLog(c *gin.Context) {
	name, ok := MustGetName(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.SaveVoyageLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	log, err := h.logSvc.Update(c.Request.Context(), c.Param("id"), name, role, &req)
	if err != nil {
		h.handleLogError(c, err)
		return
	}
	response.OK(c, log)
}

// DeleteLog 일지 삭제
// DELETE /api/v1/logs/:id
func (h *VoyageLogHandler) DeleteLog(c *gin.Context) {
	if err := h.logSvc.Delete(c.Param("id")); err != nil {
		h.handleLogError(c, err)
		return
	}
	response.OK(c, nil)
}

// LiveLogs 실시간 운항 현황
// GET /api/v1/logs/live
func (h *VoyageLogHandler) LiveLogs(c *gin.Context) {
	live, err := h.logSvc.Live(time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, live)
}

// SaveDraftBuffer 작성 중 폼 버퍼 저장 — 본문을 그대로 보관한다
// PUT /api/v1/logs/draft-buffer
func (h *VoyageLogHandler) SaveDraftBuffer(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDraftBufferBytes))
	if err != nil {
		response.BadRequest(c, 10001, "요청 본문을 읽을 수 없습니다")
		return
	}

	if err := h.logSvc.SaveDraftBuffer(c.Request.Context(), userID, payload); err != nil {
		h.handleLogError(c, err)
		return
	}
	response.OK(c, nil)
}

// GetDraftBuffer 작성 중 폼 버퍼 복원
// GET /api/v1/logs/draft-buffer
func (h *VoyageLogHandler) GetDraftBuffer(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	payload, err := h.logSvc.GetDraftBuffer(c.Request.Context(), userID)
	if err != nil {
		h.handleLogError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}

// ClearDraftBuffer 작성 중 폼 버퍼 삭제
// DELETE /api/v1/logs/draft-buffer
func (h *VoyageLogHandler) ClearDraftBuffer(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.logSvc.ClearDraftBuffer(c.Request.Context(), userID); err != nil {
		h.handleLogError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *VoyageLogHandler) handleLogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLogNotFound):
		response.NotFound(c, 13001, "존재하지 않는 운항일지입니다")
	case errors.Is(err, service.ErrNotLogOwner):
		response.Forbidden(c, 13002, "본인이 작성한 일지만 수정할 수 있습니다")
	case errors.Is(err, service.ErrDraftBufferDisabled):
		response.ServiceUnavailable(c, 13003, "임시 폼 버퍼 저장소가 비활성 상태입니다")
	case errors.Is(err, service.ErrDraftBufferNotFound):
		response.NotFound(c, 13004, "저장된 임시 폼이 없습니다")
	default:
		response.InternalError(c)
	}
}
