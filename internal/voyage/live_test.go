package voyage

import (
	"testing"
	"time"

	"naminara/backend/internal/model"
)

var testLoc = time.FixedZone("KST", 9*3600)

// 2026-02-06 (금) 기준의 테스트 시각
func testNow(hhmm string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02 15:04", "2026-02-06 "+hhmm, testLoc)
	return t
}

func draftLog(id, dep, arr string, createdAt time.Time) model.VoyageLog {
	return model.VoyageLog{
		ID:            id,
		ShipName:      "탐나라호",
		CaptainName:   "홍길동",
		DepartureTime: dep,
		ArrivalTime:   arr,
		IsDraft:       true,
		CreatedAt:     createdAt,
	}
}

func TestLive_DepartedDraftWithoutArrival(t *testing.T) {
	now := testNow("08:01")
	logs := []model.VoyageLog{draftLog("v1", "08:00", "", now)}

	live := Live(logs, now, testLoc)
	if len(live) != 1 || live[0].ID != "v1" {
		t.Fatalf("출발 시각이 지난 오늘의 임시저장은 운항 중이어야 함, 결과: %v", live)
	}
}

func TestLive_NotYetDeparted(t *testing.T) {
	now := testNow("07:59")
	logs := []model.VoyageLog{draftLog("v1", "08:00", "", now)}

	if live := Live(logs, now, testLoc); len(live) != 0 {
		t.Fatalf("출발 전(07:59 < 08:00) 기록이 운항 중으로 분류됨: %v", live)
	}
}

// 어제 만든 임시저장은 다른 조건이 다 맞아 보여도 오늘의 운항 중 목록에 나오면 안 된다.
func TestLive_StaleDraftFromYesterdayExcluded(t *testing.T) {
	now := testNow("09:00")
	yesterday := now.Add(-24 * time.Hour)
	logs := []model.VoyageLog{draftLog("old", "08:00", "", yesterday)}

	if live := Live(logs, now, testLoc); len(live) != 0 {
		t.Fatalf("전날의 임시저장이 운항 중으로 노출됨: %v", live)
	}
}

func TestLive_FinalizedExcluded(t *testing.T) {
	now := testNow("09:00")
	log := draftLog("v1", "08:00", "", now)
	log.IsDraft = false

	if live := Live([]model.VoyageLog{log}, now, testLoc); len(live) != 0 {
		t.Fatalf("최종 제출된 일지가 운항 중으로 분류됨: %v", live)
	}
}

func TestLive_ArrivalRecordedExcluded(t *testing.T) {
	now := testNow("10:00")
	logs := []model.VoyageLog{
		draftLog("done", "08:00", "09:30", now),
		draftLog("spaces", "08:00", "  ", now), // 공백만 있는 도착 시각은 미입력으로 취급
	}

	live := Live(logs, now, testLoc)
	if len(live) != 1 || live[0].ID != "spaces" {
		t.Fatalf("도착 시각 입력 여부 판정 오류, 결과: %v", live)
	}
}

func TestLive_EmptyDepartureExcluded(t *testing.T) {
	now := testNow("10:00")
	logs := []model.VoyageLog{draftLog("v1", "", "", now)}

	if live := Live(logs, now, testLoc); len(live) != 0 {
		t.Fatalf("출발 시각 미입력 기록이 운항 중으로 분류됨: %v", live)
	}
}

func TestLive_PreservesInputOrder(t *testing.T) {
	now := testNow("12:00")
	logs := []model.VoyageLog{
		draftLog("b", "09:00", "", now),
		draftLog("a", "08:00", "", now),
		draftLog("c", "10:00", "", now),
	}

	live := Live(logs, now, testLoc)
	if len(live) != 3 {
		t.Fatalf("운항 중 3건 기대, 실제 %d건", len(live))
	}
	for i, want := range []string{"b", "a", "c"} {
		if live[i].ID != want {
			t.Errorf("입력 순서가 보존되어야 함: live[%d]=%s, 기대 %s", i, live[i].ID, want)
		}
	}
}
