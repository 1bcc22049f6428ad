package voyage

import (
	"fmt"
	"strings"
	"time"

	"naminara/backend/internal/model"
)

// ExportRow 엑셀 추출용 한 행. 필드 순서가 곧 열 순서다.
type ExportRow struct {
	No            int    // 번호 — 추출 위치 기준 1부터, 레코드 ID와 무관
	Date          string // 운항날짜
	ShipName      string // 선박명
	Course        string // 운항코스, 없으면 "-"
	Captain       string // 선장
	ChiefEngineer string // 기관장
	Crew          string // 승무원 ", " 연결, 없으면 빈 문자열(대시 아님)
	Departure     string // 출발시간
	Arrival       string // 도착시간
	Duration      string // 총 운행시간 라벨
	Passengers    int    // 승객수(명)
	FuelStatus    int    // 연료잔량(UNIT)
	Weather       string // 기상 "오전 / 오후"
	Notes         string // 특이사항, 없으면 "-"
	Status        string // 임시저장 | 완료
}

// ExportHeader 엑셀 1행 헤더. 열 이름과 순서는 기존 추출 파일과의 계약이다.
func ExportHeader() []string {
	return []string{
		"번호", "운항날짜", "선박명", "운항코스", "선장", "기관장", "승무원",
		"출발시간", "도착시간", "총 운행시간", "승객수(명)", "연료잔량(UNIT)",
		"기상(오전/오후)", "특이사항", "상태",
	}
}

// ExportColumnWidths 열 너비(문자 수 기준), ExportHeader와 같은 순서.
func ExportColumnWidths() []float64 {
	return []float64{5, 12, 15, 20, 10, 10, 20, 10, 10, 12, 10, 12, 15, 30, 10}
}

// ExportRows 선택된 일지를 표 형태로 투영한다.
// 정렬·필터는 호출자(필터 파이프라인) 책임이며 여기서는 입력 순서를 그대로 쓴다.
func ExportRows(logs []model.VoyageLog, loc *time.Location) []ExportRow {
	rows := make([]ExportRow, 0, len(logs))
	for i, log := range logs {
		status := model.StatusLabelCompleted
		if log.IsDraft {
			status = model.StatusLabelDraft
		}
		rows = append(rows, ExportRow{
			No:            i + 1,
			Date:          LocalDateKey(log.CreatedAt, loc),
			ShipName:      log.ShipName,
			Course:        dashIfEmpty(log.OperationCourse),
			Captain:       log.CaptainName,
			ChiefEngineer: log.ChiefEngineer,
			Crew:          strings.Join(log.CrewMembers, ", "),
			Departure:     log.DepartureTime,
			Arrival:       log.ArrivalTime,
			Duration:      ElapsedLabel(log.DepartureTime, log.ArrivalTime),
			Passengers:    log.PassengerCount,
			FuelStatus:    log.FuelStatus,
			Weather:       fmt.Sprintf("%s / %s", weatherOrDefault(log.WeatherMorning), weatherOrDefault(log.WeatherAfternoon)),
			Notes:         dashIfEmpty(log.Notes),
			Status:        status,
		})
	}
	return rows
}

// Values excelize SetSheetRow에 넘길 값 슬라이스.
func (r ExportRow) Values() []interface{} {
	return []interface{}{
		r.No, r.Date, r.ShipName, r.Course, r.Captain, r.ChiefEngineer, r.Crew,
		r.Departure, r.Arrival, r.Duration, r.Passengers, r.FuelStatus,
		r.Weather, r.Notes, r.Status,
	}
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
