package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raiseready/match-engine/internal/database"
)

// HealthHandler exposes service and database health
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth reports database connectivity
func (h *HealthHandler) GetHealth(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK

	if err := h.db.HealthCheck(); err != nil {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now(),
	})
}
