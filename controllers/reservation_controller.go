package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

type reservationRequest struct {
	RoomID       uint   `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	PromotionID  *uint  `json:"promotion_id"`
}

// ----------------------------------------------------
// POST /api/reservations
// ----------------------------------------------------
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBindError(c, err)
		return
	}

	res, err := ctrl.ReservationSvc.Create(c.Request.Context(), middleware.CurrentIdentity(c), services.ReservationInput{
		RoomID:       req.RoomID,
		CheckInDate:  parseDate(req.CheckInDate),
		CheckOutDate: parseDate(req.CheckOutDate),
		PromotionID:  req.PromotionID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

// GET /api/reservations (view_reservation)
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	list, err := ctrl.ReservationSvc.List(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/me/reservations
func (ctrl *ReservationController) GetMyReservations(c *gin.Context) {
	list, err := ctrl.ReservationSvc.ListMine(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/reservations/options
func (ctrl *ReservationController) GetReservationOptions(c *gin.Context) {
	opts, err := ctrl.ReservationSvc.Options(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, opts)
}
