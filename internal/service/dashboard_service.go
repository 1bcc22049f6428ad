package service

import (
	"time"

	"go.uber.org/zap"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/repository"
	"naminara/backend/internal/voyage"
)

// 주의 선박 판정 임계치: 정원 대비 배속 인원 비율(%)
const warningRatioThreshold = 90

// DashboardService 관제 대시보드 업무 인터페이스
type DashboardService interface {
	// Overview 현황 카드(전체 선박/운항 중/가동인원/주의 선박)와 실시간 목록
	Overview(now time.Time) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewDashboardService DashboardService 인스턴스 생성
func NewDashboardService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, loc: loc, logger: logger}
}

func (s *dashboardService) Overview(now time.Time) (*dto.DashboardResponse, error) {
	totalShips, err := s.repo.Ship.Count()
	if err != nil {
		return nil, err
	}

	logs, err := s.repo.VoyageLog.List()
	if err != nil {
		return nil, err
	}
	live := voyage.Live(logs, now, s.loc)

	ships, err := s.repo.Ship.List()
	if err != nil {
		return nil, err
	}
	users, err := s.repo.User.List()
	if err != nil {
		return nil, err
	}

	// 선박별 배속 인원 집계 (배속은 선박명 문자열 기준)
	assigned := make(map[string]int)
	activeWorkers := 0
	for _, u := range users {
		if u.AssignedShip != nil && *u.AssignedShip != "" {
			assigned[*u.AssignedShip]++
			activeWorkers++
		}
	}

	staffing := make([]dto.ShipStaffing, 0, len(ships))
	warnings := make([]dto.ShipStaffing, 0)
	for _, ship := range ships {
		if ship.Capacity <= 0 {
			continue
		}
		n := assigned[ship.Name]
		entry := dto.ShipStaffing{
			Name:     ship.Name,
			Capacity: ship.Capacity,
			Assigned: n,
			Ratio:    n * 100 / ship.Capacity,
		}
		staffing = append(staffing, entry)
		if entry.Ratio >= warningRatioThreshold {
			warnings = append(warnings, entry)
		}
	}

	return &dto.DashboardResponse{
		TotalShips:    totalShips,
		LiveVoyages:   len(live),
		ActiveWorkers: activeWorkers,
		Staffing:      staffing,
		WarningShips:  warnings,
		Live:          dto.ToVoyageLogResponses(live),
	}, nil
}
