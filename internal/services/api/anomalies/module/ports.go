package module

import (
	"context"

	"toolwatch/internal/services/api/anomalies/domain"
	asvc "toolwatch/internal/services/api/anomalies/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAnomalyPort struct{ svc asvc.Service }

// List returns one page of anomalies
func (a adaptAnomalyPort) List(ctx context.Context, in domain.ListInput) (domain.ListResp, error) {
	return a.svc.List(ctx, in)
}

// Counts returns the per-detail anomaly census
func (a adaptAnomalyPort) Counts(ctx context.Context) (domain.CountsResp, error) {
	return a.svc.Counts(ctx)
}
