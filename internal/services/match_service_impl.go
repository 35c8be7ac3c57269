package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/raiseready/match-engine/internal/errors"
	"github.com/raiseready/match-engine/internal/logger"
	"github.com/raiseready/match-engine/internal/matching"
	"github.com/raiseready/match-engine/internal/models"
	"github.com/raiseready/match-engine/internal/repository"
	"github.com/raiseready/match-engine/pkg/config"
)

// matchServiceImpl implements MatchService
type matchServiceImpl struct {
	repos   *repository.Repositories
	logger  logger.Logger
	weights matching.ScoreWeights

	minScore            int
	resultLimit         int
	writeConcurrency    int
	defaultMinReadiness int
}

// newMatchService creates a new match service implementation
func newMatchService(repos *repository.Repositories, cfg *config.Config, log logger.Logger) MatchService {
	svc := &matchServiceImpl{
		repos:               repos,
		logger:              log,
		weights:             matching.DefaultScoreWeights(),
		minScore:            matching.DefaultMinScore,
		resultLimit:         matching.DefaultResultLimit,
		writeConcurrency:    10,
		defaultMinReadiness: matching.DefaultMinReadiness,
	}

	if cfg != nil {
		if cfg.MatchMinScore > 0 {
			svc.minScore = cfg.MatchMinScore
		}
		if cfg.MatchResultLimit > 0 {
			svc.resultLimit = cfg.MatchResultLimit
		}
		if cfg.MatchWriteConcurrency > 0 {
			svc.writeConcurrency = cfg.MatchWriteConcurrency
		}
		if cfg.DefaultMinReadiness > 0 {
			svc.defaultMinReadiness = cfg.DefaultMinReadiness
		}
	}

	return svc
}

// Run executes the matching pipeline: normalize criteria per investor, gate
// eligibility, score survivors, rank, then persist the admitted subset.
// Eligibility and scoring are pure computation; only the pool fetch and the
// writes touch the store.
func (s *matchServiceImpl) Run(ctx context.Context, founderID, artifactID uuid.UUID) (*MatchRunResult, error) {
	if founderID == uuid.Nil || artifactID == uuid.Nil {
		return nil, apperrors.InvalidInput("founder and artifact identifiers are required", nil).WithOperation("Run")
	}

	artifact, err := s.repos.Artifact.GetByID(ctx, artifactID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("artifact not found", err).WithOperation("Run")
		}
		return nil, apperrors.DatabaseError("failed to load artifact", err).WithOperation("Run")
	}

	profile, err := s.repos.Founder.GetProfile(ctx, founderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("founder profile not found", err).WithOperation("Run")
		}
		return nil, apperrors.DatabaseError("failed to load founder profile", err).WithOperation("Run")
	}

	pool, err := s.repos.Investor.GetPool(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to load investor pool", err).WithOperation("Run")
	}

	// An empty pool is a valid zero-result outcome, not an error.
	if len(pool) == 0 {
		s.logger.Info("No investors in pool", "founder_id", founderID)
		return &MatchRunResult{Matches: []matching.ScoredMatch{}, TruncatedToTop: s.resultLimit}, nil
	}

	scored := make([]matching.ScoredMatch, 0, len(pool))
	for _, investor := range pool {
		criteria := matching.NormalizeCriteria(investor.Record, investor.Extraction, s.defaultMinReadiness)

		eligible, reason := matching.CheckEligibility(*artifact, *profile, criteria)
		if !eligible {
			s.logger.Debug("Investor excluded",
				"investor_id", criteria.InvestorID,
				"founder_id", founderID,
				"reason", string(reason),
			)
			continue
		}

		score, reasons := matching.ScoreCandidate(matching.Candidate{
			Artifact: *artifact,
			Profile:  *profile,
			Criteria: criteria,
		}, s.weights)

		scored = append(scored, matching.ScoredMatch{
			InvestorID:   criteria.InvestorID,
			InvestorName: criteria.InvestorName,
			Score:        score,
			Reasons:      reasons,
		})
	}

	admitted := matching.Rank(scored, s.minScore, s.resultLimit)

	failed := s.persistMatches(ctx, founderID, artifactID, admitted)

	s.logger.Info("Matching run completed",
		"founder_id", founderID,
		"artifact_id", artifactID,
		"pool_size", len(pool),
		"eligible", len(scored),
		"admitted", len(admitted),
		"failed_writes", failed,
	)

	return &MatchRunResult{
		Matches:        admitted,
		TruncatedToTop: s.resultLimit,
		FailedWrites:   failed,
	}, nil
}

// persistMatches upserts the admitted matches with bounded parallelism. A
// failed write is logged and counted, never fatal: each upsert is
// independently idempotent, so partial success leaves the store consistent.
// Cancellation stops issuing new writes without touching committed rows.
func (s *matchServiceImpl) persistMatches(ctx context.Context, founderID, artifactID uuid.UUID, admitted []matching.ScoredMatch) int {
	if len(admitted) == 0 {
		return 0
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.writeConcurrency)

	var mu sync.Mutex
	failed := 0

	for _, match := range admitted {
		if gctx.Err() != nil {
			mu.Lock()
			failed++
			mu.Unlock()
			continue
		}

		match := match
		g.Go(func() error {
			err := s.repos.Match.Upsert(gctx, &models.PersistedMatch{
				FounderID:  founderID,
				InvestorID: match.InvestorID,
				ArtifactID: artifactID,
				Score:      match.Score,
				Reasons:    models.StringList(match.Reasons),
				Status:     models.MatchSuggested,
			})
			if err != nil {
				s.logger.Error("Failed to persist match", err,
					"founder_id", founderID,
					"investor_id", match.InvestorID,
					"artifact_id", artifactID,
				)
				mu.Lock()
				failed++
				mu.Unlock()
			}
			return nil
		})
	}

	g.Wait()
	return failed
}

// MatchesForFounder returns a founder's persisted matches, score descending
func (s *matchServiceImpl) MatchesForFounder(ctx context.Context, founderID uuid.UUID) ([]models.PersistedMatch, error) {
	if founderID == uuid.Nil {
		return nil, apperrors.InvalidInput("founder identifier is required", nil).WithOperation("MatchesForFounder")
	}

	matches, err := s.repos.Match.ListByFounder(ctx, founderID, s.resultLimit)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list founder matches", err).WithOperation("MatchesForFounder")
	}
	if matches == nil {
		matches = []models.PersistedMatch{}
	}

	return matches, nil
}

// MatchesForInvestor returns an investor's persisted matches, score descending
func (s *matchServiceImpl) MatchesForInvestor(ctx context.Context, investorID uuid.UUID) ([]models.PersistedMatch, error) {
	if investorID == uuid.Nil {
		return nil, apperrors.InvalidInput("investor identifier is required", nil).WithOperation("MatchesForInvestor")
	}

	matches, err := s.repos.Match.ListByInvestor(ctx, investorID, s.resultLimit)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list investor matches", err).WithOperation("MatchesForInvestor")
	}
	if matches == nil {
		matches = []models.PersistedMatch{}
	}

	return matches, nil
}
