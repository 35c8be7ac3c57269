package api

import (
	"github.com/gin-gonic/gin"

	"github.com/raiseready/match-engine/internal/auth"
	"github.com/raiseready/match-engine/internal/database"
	"github.com/raiseready/match-engine/internal/logger"
	"github.com/raiseready/match-engine/internal/services"
	"github.com/raiseready/match-engine/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, cfg *config.Config, log logger.Logger) error {
	svcs := services.NewServices(db.DB, cfg, log)

	matchHandler := NewMatchHandler(svcs.Match)
	healthHandler := NewHealthHandler(db)

	// Public routes
	public := r.Group("/api/v1")
	{
		public.GET("/health", healthHandler.GetHealth)
	}

	// Protected routes; tokens are issued by the surrounding application
	protected := r.Group("/api/v1")
	protected.Use(auth.JWTMiddleware(cfg.JWTSecret))
	{
		protected.POST("/match", matchHandler.RunMatching)
		protected.GET("/match", matchHandler.GetFounderMatches)
		protected.GET("/match/investor/:id", matchHandler.GetInvestorMatches)
	}

	return nil
}
