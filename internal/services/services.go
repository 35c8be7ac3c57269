package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/raiseready/match-engine/internal/logger"
	"github.com/raiseready/match-engine/internal/matching"
	"github.com/raiseready/match-engine/internal/models"
	"github.com/raiseready/match-engine/internal/repository"
	"github.com/raiseready/match-engine/pkg/config"
)

// Services contains all application services
type Services struct {
	Match MatchService
}

// MatchRunResult summarizes one matching run
type MatchRunResult struct {
	Matches        []matching.ScoredMatch `json:"matches"`
	TruncatedToTop int                    `json:"truncated_to_top"`
	FailedWrites   int                    `json:"failed_writes"`
}

// MatchService defines the interface for matching business logic
type MatchService interface {
	// Run executes the full matching pipeline for one founder/artifact
	// pair against the investor pool and persists the admitted matches.
	Run(ctx context.Context, founderID, artifactID uuid.UUID) (*MatchRunResult, error)

	// MatchesForFounder returns persisted matches without re-running
	// the pipeline.
	MatchesForFounder(ctx context.Context, founderID uuid.UUID) ([]models.PersistedMatch, error)

	// MatchesForInvestor is the investor-facing read path.
	MatchesForInvestor(ctx context.Context, investorID uuid.UUID) ([]models.PersistedMatch, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, cfg *config.Config, log logger.Logger) *Services {
	repos := repository.NewRepositories(db)

	return &Services{
		Match: newMatchService(repos, cfg, log),
	}
}

// NewMatchService creates a standalone match service
func NewMatchService(repos *repository.Repositories, cfg *config.Config, log logger.Logger) MatchService {
	return newMatchService(repos, cfg, log)
}
