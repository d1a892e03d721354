package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summary(ctx context.Context, in SummaryInput) (SummaryResp, error)
	Compare(ctx context.Context) (CompareResp, error)
	Counts(ctx context.Context) (CountsResp, error)
}
