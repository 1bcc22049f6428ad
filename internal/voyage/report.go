package voyage

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"naminara/backend/internal/model"
)

// 일계표 고정 레이아웃: 25행 2단, 총 50항차.
const (
	ReportColumns       = 2
	ReportRowsPerColumn = 25
	ReportCapacity      = ReportColumns * ReportRowsPerColumn
)

// ReportRow 일계표 한 행. 항차 번호는 데이터 유무와 무관하게 항상 채운다.
type ReportRow struct {
	No        int    `json:"no"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  string `json:"duration"`
	Remark    string `json:"remark"`
}

// ReportHeader 일계표 머리글. 선택 집합의 "첫 운항"에서 그대로 가져온다 —
// 한 선박·하루의 일지에서 선장/기관장/기상은 균일하다고 기대하는 의도적 설계다.
type ReportHeader struct {
	ShipName         string `json:"ship_name"`
	CaptainName      string `json:"captain_name"`
	ChiefEngineer    string `json:"chief_engineer"`
	Crew             string `json:"crew"`
	WeatherMorning   string `json:"weather_morning"`
	WeatherAfternoon string `json:"weather_afternoon"`
}

// ReportDate 일계표 상단 날짜 표기 (2026년 2월 6일 금요일)
type ReportDate struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	Weekday string `json:"weekday"`
}

// DailyReport 한 선박·하루치 인쇄용 일계표 데이터.
// 렌더링(인쇄 스타일, 페이지 나눔)은 소비자 몫이며 여기서는 값만 채운다.
type DailyReport struct {
	Date          string                                    `json:"date"`
	DateParts     ReportDate                                `json:"date_parts"`
	Header        ReportHeader                              `json:"header"`
	Columns       [ReportColumns][ReportRowsPerColumn]ReportRow `json:"columns"`
	Summary       Summary                                   `json:"summary"`
	TotalDuration string                                    `json:"total_duration"`
}

var koreanWeekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// BuildDailyReport 전체 일지에서 해당 날짜·선박의 완료 운항만 골라
// 출발 시각 오름차순으로 50개 슬롯 격자에 배치한다.
//
//   - 빈 슬롯은 항차 번호만 채운 공백 행으로 남는다.
//   - 50항차를 넘는 운항은 격자에서 조용히 잘린다(양식의 용량 한계, 버그 아님).
//     단, 하단 집계는 잘리기 전의 전체 선택 집합을 기준으로 한다.
//   - ship이 빈 문자열이면 선박 무관 전체를 대상으로 한다.
func BuildDailyReport(logs []model.VoyageLog, ship, date string, loc *time.Location) DailyReport {
	selected := make([]model.VoyageLog, 0, len(logs))
	for _, log := range logs {
		if log.IsDraft {
			continue
		}
		if LocalDateKey(log.CreatedAt, loc) != date {
			continue
		}
		if ship != "" && log.ShipName != ship {
			continue
		}
		selected = append(selected, log)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].DepartureTime < selected[j].DepartureTime
	})

	report := DailyReport{Date: date}

	if t, err := time.ParseInLocation(DateKeyLayout, date, loc); err == nil {
		report.DateParts = ReportDate{
			Year:    t.Year(),
			Month:   int(t.Month()),
			Day:     t.Day(),
			Weekday: koreanWeekdays[int(t.Weekday())],
		}
	}

	if len(selected) > 0 {
		first := selected[0]
		report.Header = ReportHeader{
			ShipName:         first.ShipName,
			CaptainName:      first.CaptainName,
			ChiefEngineer:    first.ChiefEngineer,
			Crew:             strings.Join(first.CrewMembers, ", "),
			WeatherMorning:   weatherOrDefault(first.WeatherMorning),
			WeatherAfternoon: weatherOrDefault(first.WeatherAfternoon),
		}
	} else {
		report.Header.WeatherMorning = model.DefaultWeather
		report.Header.WeatherAfternoon = model.DefaultWeather
	}

	for i := 0; i < ReportCapacity; i++ {
		row := ReportRow{No: i + 1}
		if i < len(selected) {
			log := selected[i]
			row.Departure = log.DepartureTime
			row.Arrival = log.ArrivalTime
			row.Duration = ElapsedLabel(log.DepartureTime, log.ArrivalTime)
			row.Remark = fmt.Sprintf("%s (%d명)", log.OperationCourse, log.PassengerCount)
		}
		report.Columns[i/ReportRowsPerColumn][i%ReportRowsPerColumn] = row
	}

	report.Summary = Summarize(selected)
	report.TotalDuration = report.Summary.DurationLabel()
	return report
}

func weatherOrDefault(w string) string {
	if w == "" {
		return model.DefaultWeather
	}
	return w
}
