package dto

// ShipStaffing 선박별 정원 대비 배속 인원 현황 — 대시보드 차트용
type ShipStaffing struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Assigned int    `json:"assigned"`
	Ratio    int    `json:"ratio"` // 백분율, 내림
}

// DashboardResponse 관제 대시보드 현황 응답
type DashboardResponse struct {
	TotalShips    int64               `json:"total_ships"`    // 전체 선박
	LiveVoyages   int                 `json:"live_voyages"`   // 현재 운항 중
	ActiveWorkers int                 `json:"active_workers"` // 현재 가동인원(배속 직원 수)
	Staffing      []ShipStaffing      `json:"staffing"`       // 전 선박 가동률
	WarningShips  []ShipStaffing      `json:"warning_ships"`  // 주의 선박(가동률 90% 이상)
	Live          []VoyageLogResponse `json:"live"`           // 실시간 운항 목록
}
