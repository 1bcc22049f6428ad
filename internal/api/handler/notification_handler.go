package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/service"
	"naminara/backend/pkg/response"
)

// NotificationHandler 텔레그램 알림 모듈 HTTP 처리기
type NotificationHandler struct {
	notifySvc service.NotificationService
}

// NewNotificationHandler NotificationHandler 생성
func NewNotificationHandler(notifySvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifySvc: notifySvc}
}

// GetConfig 알림 설정 조회
// GET /api/v1/notifications/config
func (h *NotificationHandler) GetConfig(c *gin.Context) {
	cfg, err := h.notifySvc.GetConfig()
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, cfg)
}

// UpdateConfig 알림 설정 저장
// PUT /api/v1/notifications/config
func (h *NotificationHandler) UpdateConfig(c *gin.Context) {
	var req dto.SaveNotificationConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	cfg, err := h.notifySvc.UpdateConfig(&req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, cfg)
}

// VerifyBot 봇 토큰 검증
// POST /api/v1/notifications/verify
func (h *NotificationHandler) VerifyBot(c *gin.Context) {
	result, err := h.notifySvc.VerifyBot(c.Request.Context())
	if err != nil {
		h.handleNotifyError(c, err)
		return
	}
	response.OK(c, result)
}

// SendTest 테스트 알림 발송
// POST /api/v1/notifications/test
func (h *NotificationHandler) SendTest(c *gin.Context) {
	var req dto.SendTestRequest
	// 본문은 선택 — 비어 있으면 기본 문구 발송
	_ = c.ShouldBindJSON(&req)

	result, err := h.notifySvc.SendTest(c.Request.Context(), req.Message)
	if err != nil {
		h.handleNotifyError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *NotificationHandler) handleNotifyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBotNotConfigured):
		response.BadRequest(c, 14001, "텔레그램 봇 토큰이 설정되지 않았습니다")
	case errors.Is(err, service.ErrBotVerifyFailed):
		response.BadRequest(c, 14002, "봇 토큰 검증에 실패했습니다")
	case errors.Is(err, service.ErrNoRecipients):
		response.BadRequest(c, 14003, "알림을 받을 수신자가 없습니다")
	default:
		response.InternalError(c)
	}
}
