package domain

import "context"

// ReaderPort defines the read interface for stored events
type ReaderPort interface {
	// ListUsers returns up to limit distinct user ids greater than afterUser,
	// ascending. Drives the per-user fan-out
	ListUsers(ctx context.Context, afterUser int64, limit int) ([]int64, error)

	// ListByUser returns up to Limit rows for one user ordered by
	// (occurred_at, id). That order is the reconciliation contract
	ListByUser(ctx context.Context, in ListInput) (rows []Event, next AfterKey, err error)
}

// WriterPort ingests observations
type WriterPort interface {
	// WriteBatch inserts events, silently skipping rows the dedupe key has
	// already seen. Returns the number actually inserted
	WriteBatch(ctx context.Context, xs []EventWrite) (int, error)
}
