package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/service"
	"naminara/backend/pkg/response"
)

// AuthHandler 인증 모듈 HTTP 처리기
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler AuthHandler 생성
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Profiles 로그인 화면용 프로필 목록
// GET /api/v1/auth/profiles
func (h *AuthHandler) Profiles(c *gin.Context) {
	profiles, err := h.authSvc.Profiles()
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, profiles)
}

// Login 프로필 선택 로그인
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	result, err := h.authSvc.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11001, "존재하지 않는 사용자입니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Me 현재 사용자 정보
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.Me(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11001, "존재하지 않는 사용자입니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}
