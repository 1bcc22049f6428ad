package service

import (
	"time"

	"go.uber.org/zap"

	"naminara/backend/config"
	"naminara/backend/internal/repository"
	"naminara/backend/pkg/jwt"
	"naminara/backend/pkg/ollama"
	"naminara/backend/pkg/redis"
	"naminara/backend/pkg/telegram"
)

// Service 모든 Service의 집약 진입점
type Service struct {
	Auth         AuthService
	User         UserService
	Ship         ShipService
	VoyageLog    VoyageLogService
	Report       ReportService
	Export       ExportService
	Notification NotificationService
	Advice       AdviceService
	Dashboard    DashboardService
}

// NewService Service 집약 생성.
// rdb와 ai는 선택 의존성이며 nil이면 해당 기능이 비활성으로 동작한다.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	sender telegram.Sender,
	ai *ollama.Client,
	loc *time.Location,
	logger *zap.Logger,
) *Service {
	notification := NewNotificationService(repo, sender, logger)
	return &Service{
		Auth:         NewAuthService(repo, jwtMgr, logger),
		User:         NewUserService(repo, logger),
		Ship:         NewShipService(repo, logger),
		VoyageLog:    NewVoyageLogService(repo, rdb, notification, loc, logger),
		Report:       NewReportService(repo, loc, logger),
		Export:       NewExportService(repo, loc, logger),
		Notification: notification,
		Advice:       NewAdviceService(cfg, repo, ai, logger),
		Dashboard:    NewDashboardService(repo, loc, logger),
	}
}
