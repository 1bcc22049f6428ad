package dto

// ProfileResponse 로그인 화면의 프로필 선택 목록 항목
type ProfileResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	RoleLabel string `json:"role_label"`
}

// LoginRequest 프로필 선택 로그인 요청
type LoginRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// LoginResponse 로그인 응답 — 액세스 토큰과 선택된 사용자 정보
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
