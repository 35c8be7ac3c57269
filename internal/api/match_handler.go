package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/raiseready/match-engine/internal/errors"
	"github.com/raiseready/match-engine/internal/services"
)

// MatchHandler handles matching pipeline operations
type MatchHandler struct {
	matchService services.MatchService
}

// NewMatchHandler creates a new match handler with service injection
func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

type matchRequest struct {
	ArtifactID string `json:"artifact_id" binding:"required"`
	FounderID  string `json:"founder_id" binding:"required"`
}

// RunMatching runs the full matching pipeline for a founder/artifact pair
// and returns the admitted matches.
func (h *MatchHandler) RunMatching(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing artifact_id or founder_id"})
		return
	}

	artifactID, err := uuid.Parse(req.ArtifactID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artifact_id"})
		return
	}
	founderID, err := uuid.Parse(req.FounderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid founder_id"})
		return
	}

	result, err := h.matchService.Run(ctx, founderID, artifactID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"matches":          result.Matches,
		"truncated_to_top": result.TruncatedToTop,
		"failed_writes":    result.FailedWrites,
	})
}

// GetFounderMatches returns persisted matches for a founder without
// re-running the pipeline.
func (h *MatchHandler) GetFounderMatches(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	founderID, err := uuid.Parse(c.Query("founder_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid founder_id"})
		return
	}

	matches, err := h.matchService.MatchesForFounder(ctx, founderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
	})
}

// GetInvestorMatches returns persisted matches for an investor dashboard
func (h *MatchHandler) GetInvestorMatches(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	investorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid investor id"})
		return
	}

	matches, err := h.matchService.MatchesForInvestor(ctx, investorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
	})
}

// respondError maps application error codes to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.ErrCodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
