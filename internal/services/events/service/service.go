// Package service provides the events service implementation
package service

import (
	"context"

	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/services/events/domain"
	"toolwatch/internal/services/events/repo"
)

// Config for the events service
type Config struct {
	// HardLimit is the maximum allowed page size; defaults to 5000 if <=0
	HardLimit int
}

// Service implements domain.ReaderPort and domain.WriterPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
}

// New constructs a new events service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 5000
	}
	return &Service{DB: db, Binder: b, Cfg: cfg}
}

// ListUsers implements domain.ReaderPort
func (s *Service) ListUsers(ctx context.Context, afterUser int64, limit int) ([]int64, error) {
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	return s.Binder.Bind(s.DB).ListUsers(ctx, afterUser, limit)
}

// ListByUser implements domain.ReaderPort
func (s *Service) ListByUser(ctx context.Context, in domain.ListInput) ([]domain.Event, domain.AfterKey, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	return s.Binder.Bind(s.DB).ListByUser(ctx, in, limit)
}

// WriteBatch implements domain.WriterPort
func (s *Service) WriteBatch(ctx context.Context, xs []domain.EventWrite) (int, error) {
	return s.Binder.Bind(s.DB).WriteBatch(ctx, xs)
}
