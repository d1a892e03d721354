// Package repo provides storage access for stats
package repo

import (
	"context"

	"toolwatch/internal/platform/store"
	epdom "toolwatch/internal/services/episodes/domain"
)

// StorageRepo is the minimal persistence surface for stats
type StorageRepo interface {
	// Durations returns every episode duration in minutes for one open
	// type, ordered by episode start
	Durations(ctx context.Context, openType string) ([]float64, error)

	// CountByType returns the per-type episode census
	CountByType(ctx context.Context) ([]RowTypeCount, error)
}

// RowTypeCount is one census row
type RowTypeCount struct {
	OpenType string
	Episodes int64
}

// NewHybrid constructs a hybrid storage repo; episodes carries the PG
// source of truth, ch is the optional columnar mirror
func NewHybrid(ch store.Clickhouse, episodes epdom.QueryPort) StorageRepo {
	return &hybridStore{ch: ch, episodes: episodes}
}

type hybridStore struct {
	ch       store.Clickhouse
	episodes epdom.QueryPort
}

// Durations prefers the columnar mirror for the full-table scan and falls
// back to the episodes port, which stays the source of truth
func (s *hybridStore) Durations(ctx context.Context, openType string) ([]float64, error) {
	if s.ch != nil {
		if out, err := s.durationsCH(ctx, openType); err == nil && len(out) > 0 {
			return out, nil
		}
	}
	return s.episodes.ListDurations(ctx, openType)
}

func (s *hybridStore) durationsCH(ctx context.Context, openType string) ([]float64, error) {
	const sql = `
SELECT (ended_at - started_at) / 60000.0 AS minutes
FROM episodes
WHERE open_type = ?
ORDER BY started_at, open_event_id
`
	rows, err := s.ch.Query(ctx, sql, openType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []float64
	for rows.Next() {
		var m float64
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *hybridStore) CountByType(ctx context.Context) ([]RowTypeCount, error) {
	rows, err := s.episodes.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RowTypeCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, RowTypeCount{OpenType: r.OpenType, Episodes: r.Count})
	}
	return out, nil
}
