// Package repo provides repository implementations for the event store
package repo

import (
	"context"
	"fmt"
	"strings"

	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/services/events/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the events repository
type Storage interface {
	ListUsers(ctx context.Context, afterUser int64, limit int) ([]int64, error)
	ListByUser(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Event, domain.AfterKey, error)
	WriteBatch(ctx context.Context, xs []domain.EventWrite) (int, error)
}

type pg struct{ q repokit.Queryer }

// ListUsers implements Storage
func (s *pg) ListUsers(ctx context.Context, afterUser int64, limit int) ([]int64, error) {
	const q = `
		SELECT DISTINCT user_id
		FROM events
		WHERE user_id > $1
		ORDER BY user_id
		LIMIT $2`
	rows, err := s.q.Query(ctx, q, afterUser, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// ListByUser implements Storage. Ordered by (occurred_at, id); the zero
// AfterKey starts from the beginning since ids are positive
func (s *pg) ListByUser(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Event, domain.AfterKey, error) {
	const q = `
		SELECT id, user_id, occurred_at, kind, open_type
		FROM events
		WHERE user_id = $1
			AND (occurred_at, id) > ($2, $3)
		ORDER BY occurred_at, id
		LIMIT $4`
	rows, err := s.q.Query(ctx, q, in.UserID, in.After.OccurredAt, in.After.ID, hardLimit)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	defer rows.Close()

	out := make([]domain.Event, 0, hardLimit)
	var last domain.AfterKey
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.OccurredAt, &e.Kind, &e.OpenType); err != nil {
			return nil, domain.AfterKey{}, err
		}
		out = append(out, e)
		last = domain.AfterKey{OccurredAt: e.OccurredAt, ID: e.ID}
	}
	return out, last, rows.Err()
}

// WriteBatch implements Storage; ignores rows the dedupe key already holds
func (s *pg) WriteBatch(ctx context.Context, xs []domain.EventWrite) (int, error) {
	if len(xs) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO events (user_id, occurred_at, kind, open_type) VALUES `)

	args := make([]any, 0, len(xs)*4)
	for i, e := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*4 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d)", base, base+1, base+2, base+3)
		args = append(args, e.UserID, e.OccurredAt, e.Kind, e.OpenType)
	}
	// Idempotent replay of the same observation
	sb.WriteString(` ON CONFLICT (user_id, occurred_at, kind, COALESCE(open_type, '')) DO NOTHING`)

	tag, err := s.q.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
