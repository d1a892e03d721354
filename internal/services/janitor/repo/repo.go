// Package repo persists the janitor run audit trail
package repo

import (
	"context"

	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/services/janitor/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the janitor runs repository
type Storage interface {
	InsertRun(ctx context.Context, runID string, maxDurationMinutes int, reset bool) error
	FinishRun(ctx context.Context, r domain.RunReport) error
}

type pg struct{ q repokit.Queryer }

// InsertRun implements Storage
func (s *pg) InsertRun(ctx context.Context, runID string, maxDurationMinutes int, reset bool) error {
	const q = `
		INSERT INTO janitor_runs (id, max_duration_minutes, reset)
		VALUES ($1, $2, $3)`
	_, err := s.q.Exec(ctx, q, runID, maxDurationMinutes, reset)
	return err
}

// FinishRun implements Storage
func (s *pg) FinishRun(ctx context.Context, r domain.RunReport) error {
	const q = `
		UPDATE janitor_runs
		SET finished_at = now(),
			users_total = $2,
			users_failed = $3,
			episodes_written = $4,
			anomalies_written = $5
		WHERE id = $1`
	_, err := s.q.Exec(ctx, q, r.RunID, r.UsersTotal, r.UsersFailed, r.EpisodesWritten, r.AnomaliesWritten)
	return err
}
