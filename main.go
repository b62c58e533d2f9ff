package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-reservations/config"
	"hotel-reservations/controllers"
	"hotel-reservations/middleware"
	"hotel-reservations/routes"
	"hotel-reservations/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	log.Printf("✅ Database (%s) connected, migrated and seeded.", cfg.DBDriver)

	rdb := config.NewRedisClient(cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	// Initialize services
	accountService := services.NewAccountService(db, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.BcryptCost)
	guestService := services.NewGuestService(db)
	roomService := services.NewRoomService(db)
	promotionService := services.NewPromotionService(db)
	reservationService := services.NewReservationService(db, roomService, promotionService)
	dashboardService := services.NewDashboardService(roomService, promotionService, guestService)
	roleService := services.NewRoleService(db)

	// Build router
	router := routes.SetupRouter(routes.Handlers{
		Auth:         controllers.NewAuthController(accountService),
		Guests:       controllers.NewGuestController(guestService),
		Rooms:        controllers.NewRoomController(roomService),
		Promotions:   controllers.NewPromotionController(promotionService),
		Reservations: controllers.NewReservationController(reservationService),
		Dashboard:    controllers.NewDashboardController(dashboardService),
		Roles:        controllers.NewRoleController(roleService),
		Authenticate: middleware.Authenticate(accountService),
		RateLimit: middleware.RateLimit(middleware.RateLimitConfig{
			Enabled:        cfg.RateLimitEnabled,
			Capacity:       cfg.RateLimitCapacity,
			RefillInterval: cfg.RateLimitRefillEvery,
			Prefix:         "hotel:rl",
		}, rdb),
	}, cfg.AllowedOrigins())

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
