package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/raiseready/match-engine/internal/models"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// ArtifactRepository defines the read port for pitch artifacts
type ArtifactRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Artifact, error)
}

// FounderRepository defines the read port for founder profiles
type FounderRepository interface {
	GetProfile(ctx context.Context, founderID uuid.UUID) (*models.FounderProfile, error)
}

// InvestorRepository defines the read port for the investor pool. GetPool
// returns every investor together with its most recent discovery extraction,
// if one exists.
type InvestorRepository interface {
	GetPool(ctx context.Context) ([]models.PooledInvestor, error)
}

// MatchRepository defines the persistence contract for matches.
type MatchRepository interface {
	// Upsert writes-or-replaces a match keyed on the
	// (founder, investor, artifact) triple. Safe to call repeatedly.
	Upsert(ctx context.Context, match *models.PersistedMatch) error

	// ListByFounder returns a founder's matches sorted by score
	// descending, bounded by limit.
	ListByFounder(ctx context.Context, founderID uuid.UUID, limit int) ([]models.PersistedMatch, error)

	// ListByInvestor is the symmetric read path for investor dashboards.
	ListByInvestor(ctx context.Context, investorID uuid.UUID, limit int) ([]models.PersistedMatch, error)
}

// Repositories groups all repository interfaces
type Repositories struct {
	Artifact ArtifactRepository
	Founder  FounderRepository
	Investor InvestorRepository
	Match    MatchRepository
}
