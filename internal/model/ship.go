package model

// Ship 선박 — ships 테이블에 대응
//
// Name은 VoyageLog.ShipName / User.AssignedShip과 문자열 동등 비교로 조인되는 표시 키다.
// 선박 삭제는 일지나 인력 배정으로 연쇄되지 않는다(끊긴 참조 허용).
type Ship struct {
	ID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Capacity int    `gorm:"not null"                                       json:"capacity"`
	Type     string `gorm:"type:varchar(50);not null"                      json:"type"`
	BaseModel
}

// TableName 테이블명 지정
func (Ship) TableName() string { return "ships" }
