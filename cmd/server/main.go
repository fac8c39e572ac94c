package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ceylontrails/tourism-api/internal/auth"
	"github.com/ceylontrails/tourism-api/internal/config"
	"github.com/ceylontrails/tourism-api/internal/database"
	"github.com/ceylontrails/tourism-api/internal/handlers"
	"github.com/ceylontrails/tourism-api/internal/mailer"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Services
	m := mailer.New(cfg)
	authHandler := auth.NewAuthHandler(cfg, db, m)

	// Initialize Handlers
	userHandler := handlers.NewUserHandler(db)
	hotelHandler := handlers.NewHotelHandler(db)
	vehicleHandler := handlers.NewVehicleHandler(db)
	packageHandler := handlers.NewPackageHandler(db)
	bookingHandler := handlers.NewBookingHandler(db, m)
	tourRequestHandler := handlers.NewTourRequestHandler(db, m)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, authHandler, userHandler, hotelHandler,
		vehicleHandler, packageHandler, bookingHandler, tourRequestHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
