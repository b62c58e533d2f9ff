package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservations/controllers"
	"hotel-reservations/middleware"
	"hotel-reservations/utils"
)

// Handlers bundles everything the router wires together.
type Handlers struct {
	Auth         *controllers.AuthController
	Guests       *controllers.GuestController
	Rooms        *controllers.RoomController
	Promotions   *controllers.PromotionController
	Reservations *controllers.ReservationController
	Dashboard    *controllers.DashboardController
	Roles        *controllers.RoleController

	// Authenticate guards every route except signup, login and /health.
	Authenticate gin.HandlerFunc
	// RateLimit wraps the /api/auth group. Nil means no limit.
	RateLimit gin.HandlerFunc
}

// SetupRouter builds the engine with CORS, logging and the /api routes.
func SetupRouter(h Handlers, corsOrigins []string) *gin.Engine {
	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		if h.RateLimit != nil {
			auth.Use(h.RateLimit)
		}
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
		}

		private := api.Group("")
		private.Use(h.Authenticate)

		me := private.Group("/me")
		{
			me.GET("", h.Auth.Me)
			me.GET("/guest", h.Guests.GetMyProfile)
			me.POST("/guest", h.Guests.CreateMyProfile)
			me.GET("/reservations", h.Reservations.GetMyReservations)
		}

		private.GET("/dashboard", h.Dashboard.GetDashboard)

		guests := private.Group("/guests")
		{
			guests.GET("", h.Guests.GetGuests)
			guests.POST("", h.Guests.CreateGuest)
			guests.GET("/:id", h.Guests.GetGuestByID)
		}

		rooms := private.Group("/rooms")
		{
			rooms.GET("", h.Rooms.GetRooms)
			rooms.POST("", h.Rooms.CreateRoom)
			// must stay a static segment; there is no /rooms/:id route
			rooms.GET("/available", h.Rooms.GetAvailableRooms)
		}

		promotions := private.Group("/promotions")
		{
			promotions.GET("", h.Promotions.GetPromotions)
			promotions.POST("", h.Promotions.CreatePromotion)
			promotions.GET("/active", h.Promotions.GetActivePromotions)
		}

		reservations := private.Group("/reservations")
		{
			reservations.GET("", h.Reservations.GetReservations)
			reservations.POST("", h.Reservations.CreateReservation)
			reservations.GET("/options", h.Reservations.GetReservationOptions)
		}

		roles := private.Group("/roles")
		{
			roles.GET("", h.Roles.GetRoles)
			roles.PUT("/:id/permissions", h.Roles.UpdateRolePermissions)
			roles.POST("/:id/members", h.Roles.AddRoleMember)
		}
	}

	return r
}
