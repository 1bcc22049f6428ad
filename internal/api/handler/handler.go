package handler

import "naminara/backend/internal/service"

// Handler 모든 Handler의 집약 진입점
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Ship         *ShipHandler
	VoyageLog    *VoyageLogHandler
	Report       *ReportHandler
	Export       *ExportHandler
	Notification *NotificationHandler
	Advice       *AdviceHandler
	Dashboard    *DashboardHandler
}

// NewHandler Handler 집약 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Ship:         NewShipHandler(svc.Ship),
		VoyageLog:    NewVoyageLogHandler(svc.VoyageLog),
		Report:       NewReportHandler(svc.Report),
		Export:       NewExportHandler(svc.Export),
		Notification: NewNotificationHandler(svc.Notification),
		Advice:       NewAdviceHandler(svc.Advice),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
	}
}
