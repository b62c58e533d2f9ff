package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type roomRequest struct {
	RoomNumber    string         `json:"room_number" binding:"required,max=5"`
	RoomType      string         `json:"room_type" binding:"required,max=50"`
	Description   string         `json:"description"`
	PricePerNight *utils.Decimal `json:"price_per_night" binding:"required"`
	Available     *bool          `json:"available"`
	PromotionID   *uint          `json:"promotion_id"`
}

// ----------------------------------------------------
// POST /api/rooms (add_room)
// ----------------------------------------------------
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBindError(c, err)
		return
	}

	room, err := ctrl.RoomSvc.Create(c.Request.Context(), middleware.CurrentIdentity(c), services.RoomInput{
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		Description:   req.Description,
		PricePerNight: req.PricePerNight.Decimal,
		Available:     req.Available,
		PromotionID:   req.PromotionID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// GET /api/rooms (view_room)
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.List(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/rooms/available
func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListAvailable(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
