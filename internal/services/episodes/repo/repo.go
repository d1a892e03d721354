// Package repo provides the episodes repository implementation
package repo

import (
	"context"
	"fmt"
	"strings"

	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/services/episodes/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the episodes repository
type Storage interface {
	WriteBatch(ctx context.Context, xs []domain.EpisodeWrite) (int, error)
	Truncate(ctx context.Context) error
	ListDurations(ctx context.Context, openType string) ([]float64, error)
	CountByType(ctx context.Context) ([]domain.TypeCount, error)
}

type pg struct{ q repokit.Queryer }

// WriteBatch implements Storage; re-reconciled pairs are skipped
func (s *pg) WriteBatch(ctx context.Context, xs []domain.EpisodeWrite) (int, error) {
	if len(xs) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO episodes
		(user_id, open_type, started_at, ended_at, open_event_id, close_event_id) VALUES `)

	args := make([]any, 0, len(xs)*6)
	for i, e := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*6 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5)
		args = append(args, e.UserID, e.OpenType, e.StartedAt, e.EndedAt, e.OpenEventID, e.CloseEventID)
	}
	sb.WriteString(` ON CONFLICT (open_event_id, close_event_id) DO NOTHING`)

	tag, err := s.q.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Truncate implements Storage
func (s *pg) Truncate(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `TRUNCATE episodes`)
	return err
}

// ListDurations implements Storage; durations come back in minutes
func (s *pg) ListDurations(ctx context.Context, openType string) ([]float64, error) {
	const q = `
		SELECT (ended_at - started_at) / 60000.0
		FROM episodes
		WHERE open_type = $1
		ORDER BY started_at`
	rows, err := s.q.Query(ctx, q, openType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var d float64
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CountByType implements Storage
func (s *pg) CountByType(ctx context.Context) ([]domain.TypeCount, error) {
	const q = `
		SELECT open_type, COUNT(*)
		FROM episodes
		GROUP BY open_type
		ORDER BY open_type`
	rows, err := s.q.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TypeCount
	for rows.Next() {
		var tc domain.TypeCount
		if err := rows.Scan(&tc.OpenType, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}
