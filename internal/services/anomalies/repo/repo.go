// Package repo provides the anomalies repository implementation
package repo

import (
	"context"
	"fmt"
	"strings"

	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/services/anomalies/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the anomalies repository
type Storage interface {
	WriteBatch(ctx context.Context, xs []domain.AnomalyWrite) (int, error)
	Truncate(ctx context.Context) error
	List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Row, domain.AfterKey, error)
	CountByDetail(ctx context.Context) ([]domain.DetailCount, error)
}

type pg struct{ q repokit.Queryer }

// WriteBatch implements Storage; the NULLS NOT DISTINCT key makes replays no-ops
func (s *pg) WriteBatch(ctx context.Context, xs []domain.AnomalyWrite) (int, error) {
	if len(xs) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO anomalies
		(user_id, open_type, occurred_at, event_id, counterparty_event_id, detail) VALUES `)

	args := make([]any, 0, len(xs)*6)
	for i, a := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*6 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5)
		args = append(args, a.UserID, a.OpenType, a.OccurredAt, a.EventID, a.CounterpartyEventID, a.Detail)
	}
	sb.WriteString(` ON CONFLICT (event_id, counterparty_event_id, detail) DO NOTHING`)

	tag, err := s.q.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Truncate implements Storage
func (s *pg) Truncate(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `TRUNCATE anomalies`)
	return err
}

// List implements Storage. Ordered by (occurred_at, id)
func (s *pg) List(ctx context.Context, in domain.ListInput, hardLimit int) ([]domain.Row, domain.AfterKey, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT id, user_id, open_type, occurred_at, event_id, counterparty_event_id, detail
		FROM anomalies
		WHERE (occurred_at, id) > (` + arg(in.After.OccurredAt) + `, ` + arg(in.After.ID) + `)
	`)
	if in.Detail != "" {
		sb.WriteString("  AND detail = " + arg(in.Detail) + "\n")
	}
	sb.WriteString("ORDER BY occurred_at, id\nLIMIT " + arg(hardLimit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	defer rows.Close()

	out := make([]domain.Row, 0, hardLimit)
	var last domain.AfterKey
	for rows.Next() {
		var r domain.Row
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.OpenType, &r.OccurredAt,
			&r.EventID, &r.CounterpartyEventID, &r.Detail,
		); err != nil {
			return nil, domain.AfterKey{}, err
		}
		out = append(out, r)
		last = domain.AfterKey{OccurredAt: r.OccurredAt, ID: r.ID}
	}
	return out, last, rows.Err()
}

// CountByDetail implements Storage
func (s *pg) CountByDetail(ctx context.Context) ([]domain.DetailCount, error) {
	const q = `
		SELECT detail, COUNT(*)
		FROM anomalies
		GROUP BY detail
		ORDER BY detail`
	rows, err := s.q.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DetailCount
	for rows.Next() {
		var dc domain.DetailCount
		if err := rows.Scan(&dc.Detail, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}
