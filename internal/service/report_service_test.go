package service

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"naminara/backend/internal/model"
	"naminara/backend/internal/repository"
	"naminara/backend/internal/voyage"
)

func setupReportTest() (ReportService, *mockVoyageLogRepo) {
	logRepo := newMockVoyageLogRepo()
	repo := &repository.Repository{
		VoyageLog:          logRepo,
		Ship:               newMockShipRepo(),
		User:               newMockUserRepo(),
		NotificationConfig: newMockNotificationConfigRepo(),
	}
	return NewReportService(repo, testLoc, zap.NewNop()), logRepo
}

func TestReportService_Daily_DefaultsToToday(t *testing.T) {
	svc, logRepo := setupReportTest()

	now := time.Date(2026, 2, 6, 14, 0, 0, 0, testLoc)
	_ = logRepo.Create(&model.VoyageLog{
		ShipName:       "탐나라호",
		CaptainName:    "홍길동",
		DepartureTime:  "08:00",
		ArrivalTime:    "09:30",
		PassengerCount: 100,
		CreatedAt:      now,
	})

	report, err := svc.Daily("", "", now)
	if err != nil {
		t.Fatalf("일계표 생성 실패: %v", err)
	}
	if report.Date != "2026-02-06" {
		t.Errorf("날짜 미지정 시 오늘 기준이어야 합니다: %q", report.Date)
	}
	if report.DateParts.Weekday != "금요일" {
		t.Errorf("요일 표기 불일치: %q", report.DateParts.Weekday)
	}
	if report.Summary.TripCount != 1 || report.Summary.TotalPassengers != 100 {
		t.Errorf("집계 불일치: %+v", report.Summary)
	}
}

func TestReportService_Daily_FixedGrid(t *testing.T) {
	svc, _ := setupReportTest()

	now := time.Date(2026, 2, 6, 14, 0, 0, 0, testLoc)
	report, err := svc.Daily("탐나라호", "2026-02-06", now)
	if err != nil {
		t.Fatalf("일계표 생성 실패: %v", err)
	}

	// 데이터가 없어도 50개 항차 번호는 항상 채운다
	no := 0
	for col := 0; col < voyage.ReportColumns; col++ {
		for row := 0; row < voyage.ReportRowsPerColumn; row++ {
			no++
			got := report.Columns[col][row]
			if got.No != no {
				t.Fatalf("항차 번호 불일치: columns[%d][%d].No = %d, 기대 %d", col, row, got.No, no)
			}
			if got.Departure != "" || got.Remark != "" {
				t.Fatalf("빈 슬롯은 공백 행이어야 합니다: %+v", got)
			}
		}
	}
}
