package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type PromotionController struct {
	PromotionSvc *services.PromotionService
}

func NewPromotionController(svc *services.PromotionService) *PromotionController {
	return &PromotionController{PromotionSvc: svc}
}

type promotionRequest struct {
	Code               string         `json:"code" binding:"required,max=50"`
	Description        string         `json:"description"`
	DiscountPercentage *utils.Decimal `json:"discount_percentage" binding:"required"`
	StartDate          string         `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate            string         `json:"end_date" binding:"required,datetime=2006-01-02"`
}

// POST /api/promotions (add_promotion)
func (ctrl *PromotionController) CreatePromotion(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBindError(c, err)
		return
	}

	promo, err := ctrl.PromotionSvc.Create(c.Request.Context(), middleware.CurrentIdentity(c), services.PromotionInput{
		Code:               req.Code,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage.Decimal,
		StartDate:          parseDate(req.StartDate),
		EndDate:            parseDate(req.EndDate),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, promo)
}

// GET /api/promotions (view_promotion)
func (ctrl *PromotionController) GetPromotions(c *gin.Context) {
	promos, err := ctrl.PromotionSvc.List(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, promos)
}

// GET /api/promotions/active
func (ctrl *PromotionController) GetActivePromotions(c *gin.Context) {
	promos, err := ctrl.PromotionSvc.ListActive(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, promos)
}
