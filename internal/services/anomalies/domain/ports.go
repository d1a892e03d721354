package domain

import "context"

// WriterPort writes anomalies
type WriterPort interface {
	// WriteBatch inserts anomalies, skipping ones already recorded for the
	// same event, counterparty, and detail. Returns the number inserted
	WriteBatch(ctx context.Context, xs []AnomalyWrite) (int, error)

	// Truncate discards all anomalies; used before a full reprocess
	Truncate(ctx context.Context) error
}

// QueryPort reads anomalies
type QueryPort interface {
	List(ctx context.Context, in ListInput) (rows []Row, next AfterKey, err error)
	CountByDetail(ctx context.Context) ([]DetailCount, error)
}
