package voyage

import (
	"fmt"

	"naminara/backend/internal/model"
)

// Summary 이미 필터링된 일지 집합에 대한 집계 결과.
type Summary struct {
	TripCount       int `json:"trip_count"`
	TotalPassengers int `json:"total_passengers"`
	TotalMinutes    int `json:"total_minutes"`
}

// Summarize 일지 집합을 접어 운항 횟수/총 승객/총 소요 분을 계산한다.
// 입력은 변경하지 않는다. 승객 수 미입력은 0으로 취급한다.
func Summarize(logs []model.VoyageLog) Summary {
	var s Summary
	s.TripCount = len(logs)
	for _, log := range logs {
		s.TotalPassengers += log.PassengerCount
		s.TotalMinutes += ElapsedMinutes(log.DepartureTime, log.ArrivalTime)
	}
	return s
}

// DurationLabel 총 누적 운항시간 라벨.
// 건별 라벨(ElapsedLabel)과 달리 0이어도 시/분 두 성분을 항상 모두 표기한다
// ("2시간 45분", "0시간 30분") — 일계표 양식과의 호환을 위한 비대칭이므로 유지할 것.
func (s Summary) DurationLabel() string {
	return fmt.Sprintf("%d시간 %d분", s.TotalMinutes/60, s.TotalMinutes%60)
}
