package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"naminara/backend/internal/service"
	"naminara/backend/pkg/response"
)

// AdviceHandler AI 인력 배치 조언 HTTP 처리기
type AdviceHandler struct {
	adviceSvc service.AdviceService
}

// NewAdviceHandler AdviceHandler 생성
func NewAdviceHandler(adviceSvc service.AdviceService) *AdviceHandler {
	return &AdviceHandler{adviceSvc: adviceSvc}
}

// CrewAdvice 현재 선박/인력 현황 기반 배치 제안 생성
// POST /api/v1/ai/crew-advice
func (h *AdviceHandler) CrewAdvice(c *gin.Context) {
	result, err := h.adviceSvc.CrewAdvice(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdviceDisabled):
			response.ServiceUnavailable(c, 15001, "AI 조언 기능이 비활성 상태입니다")
		case errors.Is(err, service.ErrAdviceFailed):
			response.ServiceUnavailable(c, 15002, "AI 조언 생성에 실패했습니다")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
