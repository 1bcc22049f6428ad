package model

import "time"

// VoyageLog 운항 일지 레코드 — voyage_logs 테이블에 대응
//
// 설계 메모:
//   - ShipName은 선박 ID가 아닌 표시 이름으로 조인한다(원 도메인의 의도적 단순화).
//     선박명이 변경되어도 과거 일지는 소급 수정하지 않는다.
//   - CreatedAt은 생성 시 1회 기록되며 "이 기록이 속한 운항 날짜"의 유일한 기준이다.
//     수정 시에도 절대 변경하지 않는다(Repository.Update에서 Omit 처리).
//   - 출발/도착 시각은 24시간 "HH:MM" 문자열이며, 도착이 출발보다 앞서면
//     자정을 한 번 넘긴 것으로 해석한다.
type VoyageLog struct {
	ID               string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ShipName         string      `gorm:"type:varchar(100);not null"                     json:"ship_name"`
	CaptainName      string      `gorm:"type:varchar(100);not null"                     json:"captain_name"`
	ChiefEngineer    string      `gorm:"type:varchar(100);not null;default:''"          json:"chief_engineer"`
	CrewMembers      StringArray `gorm:"type:text[]"                                    json:"crew_members"`
	OperationCourse  string      `gorm:"type:varchar(200);not null;default:''"          json:"operation_course"`
	DepartureTime    string      `gorm:"type:varchar(5);not null;default:''"            json:"departure_time"`
	ArrivalTime      string      `gorm:"type:varchar(5);not null;default:''"            json:"arrival_time"`
	PassengerCount   int         `gorm:"not null;default:0"                             json:"passenger_count"`
	FuelStatus       int         `gorm:"not null;default:0"                             json:"fuel_status"`
	Notes            string      `gorm:"type:text;not null;default:''"                  json:"notes"`
	WeatherMorning   string      `gorm:"type:varchar(20);not null;default:'좋음'"       json:"weather_morning"`
	WeatherAfternoon string      `gorm:"type:varchar(20);not null;default:'좋음'"       json:"weather_afternoon"`
	IsDraft          bool        `gorm:"not null;default:true"                          json:"is_draft"`
	CreatedAt        time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"` // 운항 날짜 기준, 불변
	UpdatedAt        time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName 테이블명 지정
func (VoyageLog) TableName() string { return "voyage_logs" }

// 상태 라벨 — 엑셀/일계표 출력 포맷과 호환되어야 하므로 문자열을 변경하지 않는다.
const (
	StatusLabelDraft     = "임시저장"
	StatusLabelCompleted = "완료"
)

// 기상 필드 기본값
const DefaultWeather = "좋음"
