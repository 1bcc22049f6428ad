package dto

import (
	"naminara/backend/internal/model"
	"naminara/backend/internal/voyage"
)

// SaveVoyageLogRequest 운항일지 작성/수정 요청.
// is_draft=true면 임시저장(실시간 운항 시작), false면 최종 저장(운항 종료)이다.
type SaveVoyageLogRequest struct {
	ShipName         string   `json:"ship_name" binding:"required,max=100"`
	ChiefEngineer    string   `json:"chief_engineer" binding:"max=100"`
	CrewMembers      []string `json:"crew_members"`
	OperationCourse  string   `json:"operation_course" binding:"max=200"`
	DepartureTime    string   `json:"departure_time" binding:"max=5"`
	ArrivalTime      string   `json:"arrival_time" binding:"max=5"`
	PassengerCount   int      `json:"passenger_count" binding:"gte=0"`
	FuelStatus       int      `json:"fuel_status" binding:"gte=0,lte=100"`
	Notes            string   `json:"notes"`
	WeatherMorning   string   `json:"weather_morning" binding:"max=20"`
	WeatherAfternoon string   `json:"weather_afternoon" binding:"max=20"`
	IsDraft          bool     `json:"is_draft"`
}

// LogFilterRequest 일지 목록 조회 필터 — 쿼리 파라미터 바인딩
type LogFilterRequest struct {
	Search string `form:"search"`
	Ship   string `form:"ship"`
	Date   string `form:"date"`   // YYYY-MM-DD
	Status string `form:"status"` // all | completed | draft
}

// ExportLogsRequest 엑셀 추출 대상 일지 ID 목록.
// 추출 순서는 주어진 ID 순서를 그대로 따른다.
type ExportLogsRequest struct {
	IDs []string `json:"ids"`
}

// VoyageLogResponse 운항일지 응답
type VoyageLogResponse struct {
	ID               string   `json:"id"`
	ShipName         string   `json:"ship_name"`
	CaptainName      string   `json:"captain_name"`
	ChiefEngineer    string   `json:"chief_engineer"`
	CrewMembers      []string `json:"crew_members"`
	OperationCourse  string   `json:"operation_course"`
	DepartureTime    string   `json:"departure_time"`
	ArrivalTime      string   `json:"arrival_time"`
	PassengerCount   int      `json:"passenger_count"`
	FuelStatus       int      `json:"fuel_status"`
	Notes            string   `json:"notes"`
	WeatherMorning   string   `json:"weather_morning"`
	WeatherAfternoon string   `json:"weather_afternoon"`
	IsDraft          bool     `json:"is_draft"`
	StatusLabel      string   `json:"status_label"`
	ElapsedLabel     string   `json:"elapsed_label"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// LogListResponse 일지 목록 + 집계 응답
type LogListResponse struct {
	Logs            []VoyageLogResponse `json:"logs"`
	TripCount       int                 `json:"trip_count"`
	TotalPassengers int                 `json:"total_passengers"`
	TotalMinutes    int                 `json:"total_minutes"`
	DurationLabel   string              `json:"duration_label"`
}

// ToVoyageLogResponse model → 응답 변환
func ToVoyageLogResponse(l *model.VoyageLog) VoyageLogResponse {
	status := model.StatusLabelCompleted
	if l.IsDraft {
		status = model.StatusLabelDraft
	}
	crew := l.CrewMembers
	if crew == nil {
		crew = []string{}
	}
	return VoyageLogResponse{
		ID:               l.ID,
		ShipName:         l.ShipName,
		CaptainName:      l.CaptainName,
		ChiefEngineer:    l.ChiefEngineer,
		CrewMembers:      crew,
		OperationCourse:  l.OperationCourse,
		DepartureTime:    l.DepartureTime,
		ArrivalTime:      l.ArrivalTime,
		PassengerCount:   l.PassengerCount,
		FuelStatus:       l.FuelStatus,
		Notes:            l.Notes,
		WeatherMorning:   l.WeatherMorning,
		WeatherAfternoon: l.WeatherAfternoon,
		IsDraft:          l.IsDraft,
		StatusLabel:      status,
		ElapsedLabel:     voyage.ElapsedLabel(l.DepartureTime, l.ArrivalTime),
		CreatedAt:        l.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        l.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ToVoyageLogResponses 목록 변환
func ToVoyageLogResponses(logs []model.VoyageLog) []VoyageLogResponse {
	out := make([]VoyageLogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, ToVoyageLogResponse(&logs[i]))
	}
	return out
}
