// Package service contains stats workflows
package service

import (
	"context"
	"errors"

	"toolwatch/internal/core/stats"
	perr "toolwatch/internal/platform/errors"
	"toolwatch/internal/services/api/stats/domain"
	"toolwatch/internal/services/api/stats/repo"
	evdom "toolwatch/internal/services/events/domain"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo repo.StorageRepo
}

// New constructs a stats service
func New(r repo.StorageRepo) *Svc {
	if r == nil {
		panic("stats.Service requires a non nil StorageRepo")
	}
	return &Svc{Repo: r}
}

// Summary returns the descriptive duration profile for one open type
func (s *Svc) Summary(ctx context.Context, in domain.SummaryInput) (domain.SummaryResp, error) {
	mins, err := s.Repo.Durations(ctx, in.OpenType)
	if err != nil {
		return domain.SummaryResp{}, err
	}
	return domain.SummaryResp{OpenType: in.OpenType, Minutes: stats.Describe(mins)}, nil
}

// Compare runs the manual vs auto duration comparison. Manual is the first
// sample throughout, so positive delta and "higher" read as manual longer
func (s *Svc) Compare(ctx context.Context) (domain.CompareResp, error) {
	manual, err := s.Repo.Durations(ctx, evdom.OpenManual)
	if err != nil {
		return domain.CompareResp{}, err
	}
	auto, err := s.Repo.Durations(ctx, evdom.OpenAuto)
	if err != nil {
		return domain.CompareResp{}, err
	}

	test, err := stats.MannWhitneyU(manual, auto)
	if errors.Is(err, stats.ErrInsufficientData) {
		return domain.CompareResp{}, perr.InvalidArgf(
			"need at least 2 episodes per open type, have manual=%d auto=%d", len(manual), len(auto))
	}
	if err != nil {
		return domain.CompareResp{}, err
	}

	delta := stats.CliffsDelta(manual, auto)
	return domain.CompareResp{
		Manual:      domain.SummaryResp{OpenType: evdom.OpenManual, Minutes: stats.Describe(manual)},
		Auto:        domain.SummaryResp{OpenType: evdom.OpenAuto, Minutes: stats.Describe(auto)},
		UStatistic:  test.UStatistic,
		PValue:      test.PValue,
		CliffsDelta: delta,
		Effect:      stats.InterpretDelta(delta),
	}, nil
}

// Counts returns the per-type episode census
func (s *Svc) Counts(ctx context.Context) (domain.CountsResp, error) {
	rows, err := s.Repo.CountByType(ctx)
	if err != nil {
		return domain.CountsResp{}, err
	}
	out := make([]domain.TypeCountRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.TypeCountRow{OpenType: r.OpenType, Episodes: r.Episodes})
	}
	return domain.CountsResp{Types: out}, nil
}
