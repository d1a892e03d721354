// Package service adapts the worker anomaly store to the API contract
package service

import (
	"context"

	"toolwatch/internal/services/api/anomalies/domain"
	anomdom "toolwatch/internal/services/anomalies/domain"
)

// Service defines the anomalies API service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the anomalies API service over the worker query port
type Svc struct {
	Query anomdom.QueryPort
}

// New constructs an anomalies API service
func New(query anomdom.QueryPort) *Svc {
	if query == nil {
		panic("anomalies.Service requires a non nil QueryPort")
	}
	return &Svc{Query: query}
}

// List returns one page of anomalies in (occurred_at, id) order
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.ListResp, error) {
	rows, next, err := s.Query.List(ctx, anomdom.ListInput{
		Detail: in.Detail,
		After:  anomdom.AfterKey{OccurredAt: in.After.OccurredAt, ID: in.After.ID},
		Limit:  in.Limit,
	})
	if err != nil {
		return domain.ListResp{}, err
	}

	out := domain.ListResp{
		Rows: make([]domain.AnomalyRow, 0, len(rows)),
		Next: domain.Cursor{OccurredAt: next.OccurredAt, ID: next.ID},
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, domain.AnomalyRow{
			ID:                  r.ID,
			UserID:              r.UserID,
			OpenType:            r.OpenType,
			OccurredAt:          r.OccurredAt,
			EventID:             r.EventID,
			CounterpartyEventID: r.CounterpartyEventID,
			Detail:              r.Detail,
		})
	}
	return out, nil
}

// Counts returns the per-detail anomaly census
func (s *Svc) Counts(ctx context.Context) (domain.CountsResp, error) {
	rows, err := s.Query.CountByDetail(ctx)
	if err != nil {
		return domain.CountsResp{}, err
	}
	out := domain.CountsResp{Details: make([]domain.DetailCountRow, 0, len(rows))}
	for _, r := range rows {
		out.Details = append(out.Details, domain.DetailCountRow{Detail: r.Detail, Count: r.Count})
	}
	return out, nil
}
