package dto

import "naminara/backend/internal/model"

// SaveShipRequest 선박 등록/수정 요청
type SaveShipRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Type     string `json:"type" binding:"required,max=50"`
}

// ShipResponse 선박 응답
type ShipResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}

// ToShipResponse model → 응답 변환
func ToShipResponse(s *model.Ship) ShipResponse {
	return ShipResponse{
		ID:       s.ID,
		Name:     s.Name,
		Capacity: s.Capacity,
		Type:     s.Type,
	}
}
