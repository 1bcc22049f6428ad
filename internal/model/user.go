package model

// 역할 상수 — 라우팅 권한과 일지 가시성 판정에 사용
const (
	RoleAdmin         = "admin"
	RoleCaptain       = "captain"
	RoleChiefEngineer = "chief_engineer"
	RoleWorker        = "worker"
	RoleCrew          = "crew"
)

// RoleLabels 역할별 한글 표시명
var RoleLabels = map[string]string{
	RoleAdmin:         "관리자",
	RoleCaptain:       "선장",
	RoleChiefEngineer: "기관장",
	RoleWorker:        "작업자",
	RoleCrew:          "승무원",
}

// ValidRole 허용된 역할인지 검사한다.
func ValidRole(role string) bool {
	_, ok := RoleLabels[role]
	return ok
}

// User 인력 — users 테이블에 대응
//
// AssignedShip은 Ship.Name과 문자열로 조인되는 배속 선박명이다(미배속 시 NULL).
// TelegramChatID가 있는 사용자만 운항 알림 수신 대상이 될 수 있다.
type User struct {
	ID             string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Contact        string  `gorm:"type:varchar(50);not null;default:''"           json:"contact"`
	Role           string  `gorm:"type:varchar(20);not null;default:'crew'"       json:"role"`
	AssignedShip   *string `gorm:"type:varchar(100)"                              json:"assigned_ship,omitempty"`
	JoinDate       string  `gorm:"type:varchar(10);not null"                      json:"join_date"` // YYYY-MM-DD
	TelegramChatID *string `gorm:"type:varchar(32)"                               json:"telegram_chat_id,omitempty"`
	BaseModel
}

// TableName 테이블명 지정
func (User) TableName() string { return "users" }
