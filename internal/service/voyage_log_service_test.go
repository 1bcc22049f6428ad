package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/model"
	"naminara/backend/internal/repository"
)

var testLoc = time.FixedZone("KST", 9*60*60)

func setupVoyageLogTest() (VoyageLogService, *mockVoyageLogRepo) {
	logRepo := newMockVoyageLogRepo()
	repo := &repository.Repository{
		VoyageLog:          logRepo,
		Ship:               newMockShipRepo(),
		User:               newMockUserRepo(),
		NotificationConfig: newMockNotificationConfigRepo(),
	}
	// 알림은 봇 미설정 상태의 실물 서비스로 둔다 — 저장 흐름이 알림 실패에
	// 영향받지 않음을 함께 검증하게 된다.
	notifier := NewNotificationService(repo, newFakeSender(), zap.NewNop())
	svc := NewVoyageLogService(repo, nil, notifier, testLoc, zap.NewNop())
	return svc, logRepo
}

func TestVoyageLogService_Create_Defaults(t *testing.T) {
	svc, _ := setupVoyageLogTest()

	got, err := svc.Create(context.Background(), "홍길동", &dto.SaveVoyageLogRequest{
		ShipName:      "탐나라호",
		DepartureTime: "08:00",
		IsDraft:       true,
	})
	if err != nil {
		t.Fatalf("등록 실패: %v", err)
	}
	if got.CaptainName != "홍길동" {
		t.Errorf("선장명은 작성자로 고정되어야 합니다: %q", got.CaptainName)
	}
	if got.WeatherMorning != "좋음" || got.WeatherAfternoon != "좋음" {
		t.Errorf("기상 기본값은 좋음이어야 합니다: %q / %q", got.WeatherMorning, got.WeatherAfternoon)
	}
	if got.StatusLabel != "임시저장" {
		t.Errorf("임시저장 상태 라벨 불일치: %q", got.StatusLabel)
	}
	if got.ElapsedLabel != "" {
		t.Errorf("도착 미입력 시 소요 라벨은 빈 값이어야 합니다: %q", got.ElapsedLabel)
	}
}

func TestVoyageLogService_Update_PreservesVoyageDate(t *testing.T) {
	svc, logRepo := setupVoyageLogTest()

	created, err := svc.Create(context.Background(), "홍길동", &dto.SaveVoyageLogRequest{
		ShipName:      "탐나라호",
		DepartureTime: "08:00",
		IsDraft:       true,
	})
	if err != nil {
		t.Fatalf("등록 실패: %v", err)
	}
	before, _ := logRepo.GetByID(created.ID)

	_, err = svc.Update(context.Background(), created.ID, "홍길동", model.RoleCaptain, &dto.SaveVoyageLogRequest{
		ShipName:       "탐나라호",
		ArrivalTime:    "10:30",
		DepartureTime:  "08:00",
		PassengerCount: 80,
		IsDraft:        false,
	})
	if err != nil {
		t.Fatalf("수정 실패: %v", err)
	}

	after, _ := logRepo.GetByID(created.ID)
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("운항 날짜(created_at)는 수정으로 바뀌면 안 됩니다: %v → %v", before.CreatedAt, after.CreatedAt)
	}
	if after.IsDraft {
		t.Error("최종 저장 후 임시저장 상태가 해제되어야 합니다")
	}
}

func TestVoyageLogService_Update_OwnershipBoundary(t *testing.T) {
	svc, _ := setupVoyageLogTest()

	created, _ := svc.Create(context.Background(), "홍길동", &dto.SaveVoyageLogRequest{
		ShipName: "탐나라호",
		IsDraft:  true,
	})

	// 다른 선장은 수정 불가
	_, err := svc.Update(context.Background(), created.ID, "최지우", model.RoleCaptain, &dto.SaveVoyageLogRequest{
		ShipName: "탐나라호",
	})
	if !errors.Is(err, ErrNotLogOwner) {
		t.Errorf("ErrNotLogOwner 기대, 실제: %v", err)
	}

	// 관리자는 전체 수정 가능
	_, err = svc.Update(context.Background(), created.ID, "이영희", model.RoleAdmin, &dto.SaveVoyageLogRequest{
		ShipName: "탐나라호",
	})
	if err != nil {
		t.Errorf("관리자 수정은 허용되어야 합니다: %v", err)
	}
}

func TestVoyageLogService_List_CaptainVisibility(t *testing.T) {
	svc, _ := setupVoyageLogTest()

	_, _ = svc.Create(context.Background(), "홍길동", &dto.SaveVoyageLogRequest{ShipName: "탐나라호"})
	_, _ = svc.Create(context.Background(), "최지우", &dto.SaveVoyageLogRequest{ShipName: "아일래나호"})

	got, err := svc.List("홍길동", model.RoleCaptain, &dto.LogFilterRequest{Status: "all"})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(got.Logs) != 1 || got.Logs[0].CaptainName != "홍길동" {
		t.Errorf("선장은 본인 일지만 조회해야 합니다: %+v", got.Logs)
	}

	// 관리자는 전체 조회 + 집계 포함
	all, err := svc.List("이영희", model.RoleAdmin, &dto.LogFilterRequest{})
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(all.Logs) != 2 || all.TripCount != 2 {
		t.Errorf("관리자 전체 조회 불일치: logs=%d trips=%d", len(all.Logs), all.TripCount)
	}
	if all.DurationLabel != "0시간 0분" {
		t.Errorf("요약 라벨은 두 성분을 항상 포함해야 합니다: %q", all.DurationLabel)
	}
}

func TestVoyageLogService_Live(t *testing.T) {
	svc, _ := setupVoyageLogTest()

	// 출발 00:00 — 시험이 몇 시에 돌아도 "출발 시각 경과" 조건을 만족한다
	_, _ = svc.Create(context.Background(), "홍길동", &dto.SaveVoyageLogRequest{
		ShipName:      "탐나라호",
		DepartureTime: "00:00",
		IsDraft:       true,
	})
	_, _ = svc.Create(context.Background(), "최지우", &dto.SaveVoyageLogRequest{
		ShipName:      "아일래나호",
		DepartureTime: "00:00",
		ArrivalTime:   "10:00",
		IsDraft:       false,
	})

	live, err := svc.Live(time.Now().In(testLoc))
	if err != nil {
		t.Fatalf("실시간 조회 실패: %v", err)
	}
	if len(live) != 1 || live[0].ShipName != "탐나라호" {
		t.Errorf("출발 후 미도착 임시저장만 실시간이어야 합니다: %+v", live)
	}
}

func TestVoyageLogService_DraftBuffer_Disabled(t *testing.T) {
	svc, _ := setupVoyageLogTest()

	if err := svc.SaveDraftBuffer(context.Background(), "u-1", []byte("{}")); !errors.Is(err, ErrDraftBufferDisabled) {
		t.Errorf("Redis 미연결 시 ErrDraftBufferDisabled 기대, 실제: %v", err)
	}
	if _, err := svc.GetDraftBuffer(context.Background(), "u-1"); !errors.Is(err, ErrDraftBufferDisabled) {
		t.Errorf("Redis 미연결 시 ErrDraftBufferDisabled 기대, 실제: %v", err)
	}
}

func TestVoyageLogService_Delete_NotFound(t *testing.T) {
	svc, _ := setupVoyageLogTest()

	if err := svc.Delete("no-such-log"); !errors.Is(err, ErrLogNotFound) {
		t.Errorf("ErrLogNotFound 기대, 실제: %v", err)
	}
}
