package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/raiseready/match-engine/internal/models"
)

// artifactRepository implements ArtifactRepository
type artifactRepository struct {
	db dbExecutor
}

// NewArtifactRepository creates a new artifact repository
func NewArtifactRepository(db dbExecutor) ArtifactRepository {
	return &artifactRepository{db: db}
}

// GetByID retrieves an artifact by ID
func (r *artifactRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Artifact, error) {
	query := `
		SELECT id, founder_id, readiness_score, sectors, stages, geography, version, created_at
		FROM artifacts WHERE id = $1
	`

	artifact := &models.Artifact{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&artifact.ID, &artifact.FounderID, &artifact.ReadinessScore,
		&artifact.Sectors, &artifact.Stages, &artifact.Geography,
		&artifact.Version, &artifact.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}

	return artifact, nil
}

// founderRepository implements FounderRepository
type founderRepository struct {
	db dbExecutor
}

// NewFounderRepository creates a new founder repository
func NewFounderRepository(db dbExecutor) FounderRepository {
	return &founderRepository{db: db}
}

// GetProfile retrieves a founder profile by founder ID
func (r *founderRepository) GetProfile(ctx context.Context, founderID uuid.UUID) (*models.FounderProfile, error) {
	query := `
		SELECT founder_id, funding_stage, target_market, founder_type, has_revenue, updated_at
		FROM founder_profiles WHERE founder_id = $1
	`

	profile := &models.FounderProfile{}
	err := r.db.QueryRowContext(ctx, query, founderID).Scan(
		&profile.FounderID, &profile.FundingStage, &profile.TargetMarket,
		&profile.FounderType, &profile.HasRevenue, &profile.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get founder profile: %w", err)
	}

	return profile, nil
}

// investorRepository implements InvestorRepository
type investorRepository struct {
	db dbExecutor
}

// NewInvestorRepository creates a new investor repository
func NewInvestorRepository(db dbExecutor) InvestorRepository {
	return &investorRepository{db: db}
}

// GetPool retrieves all investors, each joined with its most recent discovery
// session extraction when one exists.
func (r *investorRepository) GetPool(ctx context.Context) ([]models.PooledInvestor, error) {
	query := `
		SELECT i.id, i.name, i.geography, i.sectors, i.stages, i.min_readiness_score, i.sdgs,
		       i.created_at, i.updated_at,
		       s.id, s.required_sectors, s.preferred_stages, s.geography_focus, s.deal_breakers, s.created_at
		FROM investors i
		LEFT JOIN LATERAL (
			SELECT id, required_sectors, preferred_stages, geography_focus, deal_breakers, created_at
			FROM investor_discovery_sessions
			WHERE investor_id = i.id
			ORDER BY created_at DESC
			LIMIT 1
		) s ON TRUE
		ORDER BY i.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investor pool: %w", err)
	}
	defer rows.Close()

	var pool []models.PooledInvestor
	for rows.Next() {
		var rec models.InvestorRecord
		var sessionID uuid.NullUUID
		var requiredSectors, preferredStages, geographyFocus, dealBreakers models.StringList
		var sessionCreatedAt sql.NullTime

		err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Geography, &rec.Sectors, &rec.Stages,
			&rec.MinReadinessScore, &rec.SDGs, &rec.CreatedAt, &rec.UpdatedAt,
			&sessionID, &requiredSectors, &preferredStages, &geographyFocus,
			&dealBreakers, &sessionCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investor row: %w", err)
		}

		pooled := models.PooledInvestor{Record: rec}
		if sessionID.Valid {
			pooled.Extraction = &models.DiscoveryExtraction{
				InvestorID:      rec.ID,
				RequiredSectors: requiredSectors,
				PreferredStages: preferredStages,
				GeographyFocus:  geographyFocus,
				DealBreakers:    dealBreakers,
				CreatedAt:       sessionCreatedAt.Time,
			}
		}

		pool = append(pool, pooled)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read investor pool: %w", err)
	}

	return pool, nil
}
