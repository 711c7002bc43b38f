package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-booking-backend/config"
	"hotel-booking-backend/controllers"
	"hotel-booking-backend/routes"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB and migrates)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Policy knobs; the source-of-truth constraints live in the schema.
	refGen := services.NewReferenceGenerator(
		utils.EnvOrDefault("BOOKING_REF_PREFIX", "GLA"),
		utils.EnvIntOrDefault("BOOKING_REF_ATTEMPTS", 5),
	)
	maxNights := utils.EnvIntOrDefault("BOOKING_MAX_NIGHTS", 30)

	// Initialize services
	bookingService := services.NewBookingService(db, refGen, maxNights)
	hotelService := services.NewHotelService(db)
	adminService := services.NewAdminService(db, refGen)

	// Startup convenience for local dev: load sample data when empty.
	if utils.EnvBool("AUTO_SEED") {
		if result, err := adminService.Seed(context.Background()); err != nil {
			log.Printf("⚠️  auto-seed failed: %v", err)
		} else if result.Seeded {
			log.Println("✅ Sample data seeded.")
		}
	}

	// Initialize controllers
	hotelController := controllers.NewHotelController(hotelService, bookingService)
	bookingController := controllers.NewBookingController(bookingService)
	adminController := controllers.NewAdminController(adminService)

	// Build router
	router := routes.SetupRouter(hotelController, bookingController, adminController)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
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
