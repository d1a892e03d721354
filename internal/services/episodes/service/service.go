// Package service provides the episodes service implementation
package service

import (
	"context"

	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/platform/logger"
	"toolwatch/internal/platform/store"
	"toolwatch/internal/services/episodes/domain"
	"toolwatch/internal/services/episodes/repo"
)

// Service implements domain.WriterPort and domain.QueryPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	CH     store.Clickhouse // optional analytics mirror, nil when disabled
	Log    logger.Logger
}

// New constructs a new episodes service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], ch store.Clickhouse, log logger.Logger) *Service {
	return &Service{DB: db, Binder: b, CH: ch, Log: log}
}

// WriteBatch implements domain.WriterPort. Postgres is the source of truth;
// the CH mirror is best effort and never fails the write
func (s *Service) WriteBatch(ctx context.Context, xs []domain.EpisodeWrite) (int, error) {
	n, err := s.Binder.Bind(s.DB).WriteBatch(ctx, xs)
	if err != nil {
		return 0, err
	}

	if s.CH != nil && len(xs) > 0 {
		rows := make([][]any, 0, len(xs))
		for _, e := range xs {
			rows = append(rows, []any{
				e.UserID, e.OpenType, e.StartedAt, e.EndedAt, e.OpenEventID, e.CloseEventID,
			})
		}
		if cherr := s.CH.Insert(ctx, "episodes", rows); cherr != nil {
			s.Log.Warn().Err(cherr).Int("rows", len(rows)).Msg("ch episode mirror failed")
		}
	}
	return n, nil
}

// Truncate implements domain.WriterPort
func (s *Service) Truncate(ctx context.Context) error {
	return s.Binder.Bind(s.DB).Truncate(ctx)
}

// ListDurations implements domain.QueryPort
func (s *Service) ListDurations(ctx context.Context, openType string) ([]float64, error) {
	return s.Binder.Bind(s.DB).ListDurations(ctx, openType)
}

// CountByType implements domain.QueryPort
func (s *Service) CountByType(ctx context.Context) ([]domain.TypeCount, error) {
	return s.Binder.Bind(s.DB).CountByType(ctx)
}
