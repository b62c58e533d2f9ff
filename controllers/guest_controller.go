package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

type guestRequest struct {
	AccountID   *uint  `json:"account_id"`
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email,max=254"`
	PhoneNumber string `json:"phone_number" binding:"required,max=15"`
	Address     string `json:"address"`
}

func (r guestRequest) input() services.GuestInput {
	return services.GuestInput{
		AccountID:   r.AccountID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
	}
}

// ----------------------------------------------------
// POST /api/guests (staff, add_guest)
// ----------------------------------------------------
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBindError(c, err)
		return
	}
	guest, err := ctrl.GuestSvc.Create(c.Request.Context(), middleware.CurrentIdentity(c), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

// ----------------------------------------------------
// POST /api/me/guest (own profile)
// ----------------------------------------------------
func (ctrl *GuestController) CreateMyProfile(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBindError(c, err)
		return
	}
	req.AccountID = nil
	guest, err := ctrl.GuestSvc.CreateOwnProfile(c.Request.Context(), middleware.CurrentIdentity(c), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

// GET /api/me/guest
func (ctrl *GuestController) GetMyProfile(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	guest, err := ctrl.GuestSvc.ForAccount(c.Request.Context(), id.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// GET /api/guests (view_guest)
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	guests, err := ctrl.GuestSvc.List(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// GET /api/guests/:id (view_guest)
func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	guestID, ok := paramID(c, "id")
	if !ok {
		return
	}
	guest, err := ctrl.GuestSvc.GetByID(c.Request.Context(), middleware.CurrentIdentity(c), guestID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}
