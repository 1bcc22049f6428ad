package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"naminara/backend/internal/dto"
	"naminara/backend/internal/service"
	"naminara/backend/pkg/response"
)

// ShipHandler 선박 관리 모듈 HTTP 처리기
type ShipHandler struct {
	shipSvc service.ShipService
}

// NewShipHandler ShipHandler 생성
func NewShipHandler(shipSvc service.ShipService) *ShipHandler {
	return &ShipHandler{shipSvc: shipSvc}
}

// ListShips 선박 목록
// GET /api/v1/ships
func (h *ShipHandler) ListShips(c *gin.Context) {
	ships, err := h.shipSvc.List()
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, ships)
}

// CreateShip 선박 등록
// POST /api/v1/ships
func (h *ShipHandler) CreateShip(c *gin.Context) {
	var req dto.SaveShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	ship, err := h.shipSvc.Create(&req)
	if err != nil {
		h.handleShipError(c, err)
		return
	}
	response.Created(c, ship)
}

// UpdateShip 선박 수정
// PUT /api/v1/ships/:id
func (h *ShipHandler) UpdateShip(c *gin.Context) {
	var req dto.SaveShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	ship, err := h.shipSvc.Update(c.Param("id"), &req)
	if err != nil {
		h.handleShipError(c, err)
		return
	}
	response.OK(c, ship)
}

// DeleteShip 선박 삭제
// DELETE /api/v1/ships/:id
func (h *ShipHandler) DeleteShip(c *gin.Context) {
	if err := h.shipSvc.Delete(c.Param("id")); err != nil {
		h.handleShipError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ShipHandler) handleShipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShipNotFound):
		response.NotFound(c, 12001, "존재하지 않는 선박입니다")
	case errors.Is(err, service.ErrShipNameTaken):
		response.BadRequest(c, 12002, "이미 등록된 선박명입니다")
	default:
		response.InternalError(c)
	}
}
