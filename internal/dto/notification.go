package dto

// SaveNotificationConfigRequest 알림 설정 저장 요청
type SaveNotificationConfigRequest struct {
	BotToken          string   `json:"bot_token" binding:"max=100"`
	SubscribedUserIDs []string `json:"subscribed_user_ids"`
}

// NotificationConfigResponse 알림 설정 응답
type NotificationConfigResponse struct {
	BotToken          string   `json:"bot_token"`
	SubscribedUserIDs []string `json:"subscribed_user_ids"`
}

// SendTestRequest 테스트 알림 발송 요청 — message가 비면 기본 문구를 쓴다
type SendTestRequest struct {
	Message string `json:"message"`
}

// BotVerifyResponse 봇 토큰 검증 응답
type BotVerifyResponse struct {
	BotName string `json:"bot_name"`
}

// NotifyResult 다중 수신자 발송 결과 집계
type NotifyResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
