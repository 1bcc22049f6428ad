package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/service"
	"naminara/backend/pkg/response"
)

// UserHandler 인력 관리 모듈 HTTP 처리기
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler UserHandler 생성
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers 직원 목록
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List()
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, users)
}

// CreateUser 직원 등록
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	user, err := h.userSvc.Create(&req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.Created(c, user)
}

// UpdateUser 직원 수정
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	user, err := h.userSvc.Update(c.Param("id"), &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, user)
}

// DeleteUser 직원 삭제
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userSvc.Delete(c.Param("id")); err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11001, "존재하지 않는 사용자입니다")
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, 11002, "허용되지 않는 역할입니다")
	default:
		response.InternalError(c)
	}
}
