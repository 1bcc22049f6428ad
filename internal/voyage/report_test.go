package voyage

import (
	"fmt"
	"testing"
	"time"

	"naminara/backend/internal/model"
)

func completedLog(dep, arr string, passengers int, createdAt time.Time) model.VoyageLog {
	return model.VoyageLog{
		ShipName:         "탐나라호",
		CaptainName:      "홍길동",
		ChiefEngineer:    "정우성",
		CrewMembers:      model.StringArray{"박민수", "이광수"},
		DepartureTime:    dep,
		ArrivalTime:      arr,
		PassengerCount:   passengers,
		WeatherMorning:   "좋음",
		WeatherAfternoon: "흐림",
		IsDraft:          false,
		CreatedAt:        createdAt,
	}
}

func TestBuildDailyReport_EmptySelection(t *testing.T) {
	report := BuildDailyReport(nil, "탐나라호", "2026-02-06", testLoc)

	if report.Summary.TripCount != 0 || report.TotalDuration != "0시간 0분" {
		t.Errorf("빈 일계표 집계 오류: %+v, %s", report.Summary, report.TotalDuration)
	}

	// 데이터가 없어도 항차 번호 1..50은 전부 채워진다
	no := 0
	for col := 0; col < ReportColumns; col++ {
		for row := 0; row < ReportRowsPerColumn; row++ {
			no++
			r := report.Columns[col][row]
			if r.No != no {
				t.Fatalf("항차 번호 기대 %d, 실제 %d", no, r.No)
			}
			if r.Departure != "" || r.Arrival != "" || r.Duration != "" || r.Remark != "" {
				t.Fatalf("항차 %d는 공백 행이어야 함: %+v", no, r)
			}
		}
	}

	if report.Header.WeatherMorning != "좋음" || report.Header.WeatherAfternoon != "좋음" {
		t.Errorf("빈 일계표 기상 기본값 오류: %+v", report.Header)
	}
}

func TestBuildDailyReport_HeaderFromFirstVoyage(t *testing.T) {
	base := time.Date(2026, 2, 6, 10, 0, 0, 0, testLoc)
	logs := []model.VoyageLog{
		completedLog("09:00", "09:40", 50, base),
		completedLog("08:00", "08:45", 100, base), // 출발 시각이 가장 이른 기록이 머리글의 출처
	}
	logs[1].WeatherMorning = "안개"

	report := BuildDailyReport(logs, "탐나라호", "2026-02-06", testLoc)

	if report.Header.WeatherMorning != "안개" {
		t.Errorf("머리글은 출발 순 첫 운항에서 와야 함: %+v", report.Header)
	}
	if report.Header.Crew != "박민수, 이광수" {
		t.Errorf("승무원 연결 문자열 오류: %q", report.Header.Crew)
	}
	if report.Columns[0][0].Departure != "08:00" {
		t.Errorf("출발 시각 오름차순 정렬 실패: %+v", report.Columns[0][0])
	}
	if report.DateParts.Weekday != "금요일" {
		t.Errorf("2026-02-06은 금요일, 실제 %q", report.DateParts.Weekday)
	}
}

// 51번째 이후 운항은 격자에서 조용히 잘리지만 집계에는 포함된다 — 양식의 용량 한계.
func TestBuildDailyReport_CapacityOverflow(t *testing.T) {
	base := time.Date(2026, 2, 6, 6, 0, 0, 0, testLoc)
	logs := make([]model.VoyageLog, 0, 51)
	for i := 0; i < 51; i++ {
		dep := fmt.Sprintf("%02d:%02d", 6+i/4, (i%4)*15)
		arr := fmt.Sprintf("%02d:%02d", 6+i/4, (i%4)*15+10)
		logs = append(logs, completedLog(dep, arr, 10, base))
	}

	report := BuildDailyReport(logs, "탐나라호", "2026-02-06", testLoc)

	filled := 0
	for col := 0; col < ReportColumns; col++ {
		for row := 0; row < ReportRowsPerColumn; row++ {
			if report.Columns[col][row].Departure != "" {
				filled++
			}
		}
	}
	if filled != ReportCapacity {
		t.Errorf("채워진 행 기대 %d, 실제 %d", ReportCapacity, filled)
	}
	if report.Summary.TripCount != 51 {
		t.Errorf("집계는 잘리기 전 전체 기준이어야 함: TripCount=%d", report.Summary.TripCount)
	}
	// 마지막 슬롯(항차 50)은 출발 순 50번째 운항
	last := report.Columns[1][ReportRowsPerColumn-1]
	if last.No != 50 || last.Departure == "" {
		t.Errorf("50번째 슬롯 배치 오류: %+v", last)
	}
}

func TestBuildDailyReport_Selection(t *testing.T) {
	day := time.Date(2026, 2, 6, 9, 0, 0, 0, testLoc)
	otherDay := time.Date(2026, 2, 7, 9, 0, 0, 0, testLoc)

	draft := completedLog("10:00", "10:30", 5, day)
	draft.IsDraft = true
	otherShip := completedLog("11:00", "11:30", 5, day)
	otherShip.ShipName = "가우디호"

	logs := []model.VoyageLog{
		completedLog("08:00", "08:45", 100, day),
		draft,                                   // 임시저장 제외
		otherShip,                               // 선박 필터 제외
		completedLog("09:00", "09:40", 50, otherDay), // 날짜 제외
	}

	report := BuildDailyReport(logs, "탐나라호", "2026-02-06", testLoc)
	if report.Summary.TripCount != 1 {
		t.Errorf("선택 조건(완료·당일·선박) 위반: TripCount=%d", report.Summary.TripCount)
	}

	// 선박 미지정이면 해당 날짜의 완료 운항 전체
	all := BuildDailyReport(logs, "", "2026-02-06", testLoc)
	if all.Summary.TripCount != 2 {
		t.Errorf("선박 무관 선택 오류: TripCount=%d", all.Summary.TripCount)
	}
}

func TestBuildDailyReport_RemarkFormat(t *testing.T) {
	day := time.Date(2026, 2, 6, 9, 0, 0, 0, testLoc)
	log := completedLog("08:00", "08:45", 156, day)
	log.OperationCourse = "남이섬 본선"

	report := BuildDailyReport([]model.VoyageLog{log}, "", "2026-02-06", testLoc)
	if got := report.Columns[0][0].Remark; got != "남이섬 본선 (156명)" {
		t.Errorf("비고 포맷 = %q, 기대값 \"남이섬 본선 (156명)\"", got)
	}
	if got := report.Columns[0][0].Duration; got != "45분" {
		t.Errorf("소요 라벨 = %q, 기대값 \"45분\"", got)
	}
}
