package dto

// CrewAdviceResponse AI 인력 배치 제안 응답
type CrewAdviceResponse struct {
	Advice string `json:"advice"`
	Model  string `json:"model"`
}
