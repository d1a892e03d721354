// Package service provides the anomalies service implementation
package service

import (
	"context"

	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/services/anomalies/domain"
	"toolwatch/internal/services/anomalies/repo"
)

// Config for the anomalies service
type Config struct {
	// HardLimit is the maximum allowed page size; defaults to 1000 if <=0
	HardLimit int
}

// Service implements domain.WriterPort and domain.QueryPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
}

// New constructs a new anomalies service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 1000
	}
	return &Service{DB: db, Binder: b, Cfg: cfg}
}

// WriteBatch implements domain.WriterPort
func (s *Service) WriteBatch(ctx context.Context, xs []domain.AnomalyWrite) (int, error) {
	return s.Binder.Bind(s.DB).WriteBatch(ctx, xs)
}

// Truncate implements domain.WriterPort
func (s *Service) Truncate(ctx context.Context) error {
	return s.Binder.Bind(s.DB).Truncate(ctx)
}

// List implements domain.QueryPort
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]domain.Row, domain.AfterKey, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	return s.Binder.Bind(s.DB).List(ctx, in, limit)
}

// CountByDetail implements domain.QueryPort
func (s *Service) CountByDetail(ctx context.Context) ([]domain.DetailCount, error) {
	return s.Binder.Bind(s.DB).CountByDetail(ctx)
}
