package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raiseready/match-engine/internal/models"
)

// matchRepository implements MatchRepository
type matchRepository struct {
	db dbExecutor
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db dbExecutor) MatchRepository {
	return &matchRepository{db: db}
}

// Upsert writes-or-replaces a match keyed on the (founder, investor,
// artifact) triple. The unique constraint serializes concurrent writes to
// the same key, so repeated runs can never duplicate a row.
func (r *matchRepository) Upsert(ctx context.Context, match *models.PersistedMatch) error {
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	if match.Status == "" {
		match.Status = models.MatchSuggested
	}

	now := time.Now()
	query := `
		INSERT INTO founder_investor_matches
			(id, founder_id, investor_id, artifact_id, match_score, match_reasons, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (founder_id, investor_id, artifact_id)
		DO UPDATE SET
			match_score = $5,
			match_reasons = $6,
			status = $7,
			updated_at = $8
	`

	_, err := r.db.ExecContext(ctx, query,
		match.ID, match.FounderID, match.InvestorID, match.ArtifactID,
		match.Score, match.Reasons, match.Status, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}

	return nil
}

// ListByFounder returns a founder's persisted matches sorted by score
// descending, tie-broken by investor ID for deterministic output.
func (r *matchRepository) ListByFounder(ctx context.Context, founderID uuid.UUID, limit int) ([]models.PersistedMatch, error) {
	query := `
		SELECT m.id, m.founder_id, m.investor_id, m.artifact_id, m.match_score,
		       m.match_reasons, m.status, m.created_at, m.updated_at, i.name
		FROM founder_investor_matches m
		JOIN investors i ON m.investor_id = i.id
		WHERE m.founder_id = $1
		ORDER BY m.match_score DESC, m.investor_id ASC
		LIMIT $2
	`

	return r.queryMatches(ctx, query, founderID, limit)
}

// ListByInvestor is the investor-facing read path, same ordering contract.
func (r *matchRepository) ListByInvestor(ctx context.Context, investorID uuid.UUID, limit int) ([]models.PersistedMatch, error) {
	query := `
		SELECT m.id, m.founder_id, m.investor_id, m.artifact_id, m.match_score,
		       m.match_reasons, m.status, m.created_at, m.updated_at, i.name
		FROM founder_investor_matches m
		JOIN investors i ON m.investor_id = i.id
		WHERE m.investor_id = $1
		ORDER BY m.match_score DESC, m.founder_id ASC
		LIMIT $2
	`

	return r.queryMatches(ctx, query, investorID, limit)
}

func (r *matchRepository) queryMatches(ctx context.Context, query string, id uuid.UUID, limit int) ([]models.PersistedMatch, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, query, id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	// Non-nil even with zero rows so callers serialize an empty list, not null.
	matches := []models.PersistedMatch{}
	for rows.Next() {
		var m models.PersistedMatch
		err := rows.Scan(
			&m.ID, &m.FounderID, &m.InvestorID, &m.ArtifactID, &m.Score,
			&m.Reasons, &m.Status, &m.CreatedAt, &m.UpdatedAt, &m.InvestorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	return matches, nil
}
