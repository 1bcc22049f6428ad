package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"naminara/backend/internal/service"
	"naminara/backend/pkg/response"
)

// ReportHandler 일계표 모듈 HTTP 처리기
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler ReportHandler 생성
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// DailyReport 한 선박·하루치 일계표
// GET /api/v1/reports/daily?ship=&date=
func (h *ReportHandler) DailyReport(c *gin.Context) {
	report, err := h.reportSvc.Daily(c.Query("ship"), c.Query("date"), time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, report)
}
