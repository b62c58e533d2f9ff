package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type DashboardController struct {
	DashboardSvc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{DashboardSvc: svc}
}

// GET /api/dashboard
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	d, err := ctrl.DashboardSvc.Build(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, d)
}
