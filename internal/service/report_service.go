package service

import (
	"time"

	"go.uber.org/zap"

	"naminara/backend/internal/repository"
	"naminara/backend/internal/voyage"
)

// ReportService 일계표 업무 인터페이스
type ReportService interface {
	// Daily 한 선박·하루치 50항차 일계표. date가 비면 오늘, ship이 비면 전체 선박.
	Daily(ship, date string, now time.Time) (*voyage.DailyReport, error)
}

type reportService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewReportService ReportService 인스턴스 생성
func NewReportService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, loc: loc, logger: logger}
}

func (s *reportService) Daily(ship, date string, now time.Time) (*voyage.DailyReport, error) {
	if date == "" {
		date = voyage.LocalDateKey(now, s.loc)
	}

	logs, err := s.repo.VoyageLog.List()
	if err != nil {
		s.logger.Error("일계표용 일지 조회 실패", zap.Error(err))
		return nil, err
	}

	report := voyage.BuildDailyReport(logs, ship, date, s.loc)
	return &report, nil
}
