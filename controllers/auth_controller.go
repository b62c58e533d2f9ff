package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservations/middleware"
	"hotel-reservations/models"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type AuthController struct {
	Accounts *services.AccountService
}

func NewAuthController(svc *services.AccountService) *AuthController {
	return &AuthController{Accounts: svc}
}

type signupRequest struct {
	Username    string `json:"username" binding:"required,max=150"`
	Email       string `json:"email" binding:"required,email,max=254"`
	Password1   string `json:"password1" binding:"required,min=8,max=128"`
	Password2   string `json:"password2" binding:"required,eqfield=Password1"`
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	PhoneNumber string `json:"phone_number" binding:"required,max=15"`
	Address     string `json:"address"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/signup
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBindError(c, err)
		return
	}

	session, err := ctrl.Accounts.Signup(c.Request.Context(), services.SignupInput{
		Username:    req.Username,
		Password:    req.Password1,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, session)
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONBindError(c, err)
		return
	}

	session, err := ctrl.Accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// GET /api/me
func (ctrl *AuthController) Me(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	perms := make([]string, 0, len(id.Permissions))
	for _, p := range models.AllPermissions {
		if id.Has(p) {
			perms = append(perms, p)
		}
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"account_id":   id.AccountID,
		"username":     id.Username,
		"is_staff":     id.IsStaff,
		"is_superuser": id.IsSuperuser,
		"permissions":  perms,
		"next":         id.LandingPath(),
	})
}
