package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"naminara/backend/internal/service"
	"naminara/backend/pkg/response"
)

// DashboardHandler 관제 대시보드 HTTP 처리기
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler DashboardHandler 생성
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Overview 현황 카드 + 실시간 운항 목록
// GET /api/v1/dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	result, err := h.dashboardSvc.Overview(time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
