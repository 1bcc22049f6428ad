package model

// NotificationConfigID 설정 행의 고정 기본 키
const NotificationConfigID = 1

// NotificationConfig 텔레그램 알림 설정 — notification_configs 테이블에 대응
//
// 단일 행(ID=1)만 유지하는 순수 설정 레코드다.
// SubscribedUserIDs가 실존 사용자를 가리키는지는 강제하지 않는다.
type NotificationConfig struct {
	ID                int         `gorm:"primaryKey"                json:"id"`
	BotToken          string      `gorm:"type:varchar(100);not null;default:''" json:"bot_token"`
	SubscribedUserIDs StringArray `gorm:"type:text[]"               json:"subscribed_user_ids"`
	BaseModel
}

// TableName 테이블명 지정
func (NotificationConfig) TableName() string { return "notification_configs" }
