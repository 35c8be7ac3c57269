package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/raiseready/match-engine/internal/api"
	"github.com/raiseready/match-engine/internal/database"
	"github.com/raiseready/match-engine/internal/logger"
	"github.com/raiseready/match-engine/internal/middleware"
	"github.com/raiseready/match-engine/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()

	appLogger, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		appLogger.Fatal("Failed to run migrations", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogging(appLogger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RequestSizeLimit(cfg.MaxRequestSize))
	r.Use(gin.Recovery())

	if len(cfg.GetTrustedProxies()) > 0 {
		if err := r.SetTrustedProxies(cfg.GetTrustedProxies()); err != nil {
			appLogger.Fatal("Failed to set trusted proxies", err)
		}
	}

	if err := api.SetupRoutes(r, db, cfg, appLogger); err != nil {
		appLogger.Fatal("Failed to setup API routes", err)
	}

	appLogger.Info("Server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLogger.Fatal("Failed to start server", err)
	}
}
