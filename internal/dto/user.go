package dto

import "naminara/backend/internal/model"

// SaveUserRequest 직원 등록/수정 요청
type SaveUserRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Contact        string  `json:"contact" binding:"max=50"`
	Role           string  `json:"role" binding:"required"`
	AssignedShip   *string `json:"assigned_ship"`
	JoinDate       string  `json:"join_date" binding:"required,len=10"` // YYYY-MM-DD
	TelegramChatID *string `json:"telegram_chat_id"`
}

// UserResponse 직원 응답
type UserResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Contact        string  `json:"contact"`
	Role           string  `json:"role"`
	RoleLabel      string  `json:"role_label"`
	AssignedShip   *string `json:"assigned_ship"`
	JoinDate       string  `json:"join_date"`
	TelegramChatID *string `json:"telegram_chat_id"`
}

// ToUserResponse model → 응답 변환
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Contact:        u.Contact,
		Role:           u.Role,
		RoleLabel:      model.RoleLabels[u.Role],
		AssignedShip:   u.AssignedShip,
		JoinDate:       u.JoinDate,
		TelegramChatID: u.TelegramChatID,
	}
}
