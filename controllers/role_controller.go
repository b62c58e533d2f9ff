package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type RoleController struct {
	RoleSvc *services.RoleService
}

func NewRoleController(svc *services.RoleService) *RoleController {
	return &RoleController{RoleSvc: svc}
}

type rolePermissionsPayload struct {
	Permissions []string `json:"permissions"`
}

type roleMemberPayload struct {
	AccountID uint `json:"account_id" binding:"required"`
}

// GET /api/roles
func (ctrl *RoleController) GetRoles(c *gin.Context) {
	roles, err := ctrl.RoleSvc.List(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roles)
}

// PUT /api/roles/:id/permissions
func (ctrl *RoleController) UpdateRolePermissions(c *gin.Context) {
	roleID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload rolePermissionsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBindError(c, err)
		return
	}
	if err := ctrl.RoleSvc.SetPermissions(c.Request.Context(), middleware.CurrentIdentity(c), roleID, payload.Permissions); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "permissions updated"})
}

// POST /api/roles/:id/members
func (ctrl *RoleController) AddRoleMember(c *gin.Context) {
	roleID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload roleMemberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBindError(c, err)
		return
	}
	if err := ctrl.RoleSvc.AddMember(c.Request.Context(), middleware.CurrentIdentity(c), roleID, payload.AccountID); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "member added"})
}
