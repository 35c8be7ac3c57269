package repository

import (
	"context"
	"database/sql"
)

// dbExecutor is the subset of *sql.DB and *sql.Tx used by the adapters
type dbExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// NewRepositories creates the Postgres-backed repository collection
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Artifact: NewArtifactRepository(db),
		Founder:  NewFounderRepository(db),
		Investor: NewInvestorRepository(db),
		Match:    NewMatchRepository(db),
	}
}
