package module

import (
	"context"

	"toolwatch/internal/services/api/stats/domain"
	statssvc "toolwatch/internal/services/api/stats/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptStatsPort struct{ svc statssvc.Service }

// Summary returns the duration profile for one open type
func (a adaptStatsPort) Summary(ctx context.Context, in domain.SummaryInput) (domain.SummaryResp, error) {
	return a.svc.Summary(ctx, in)
}

// Compare runs the manual vs auto duration comparison
func (a adaptStatsPort) Compare(ctx context.Context) (domain.CompareResp, error) {
	return a.svc.Compare(ctx)
}

// Counts returns the per-type episode census
func (a adaptStatsPort) Counts(ctx context.Context) (domain.CountsResp, error) {
	return a.svc.Counts(ctx)
}
