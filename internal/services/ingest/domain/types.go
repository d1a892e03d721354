// Package domain defines the types and interfaces for CSV ingestion
package domain

import "context"

// Report summarizes one load
type Report struct {
	BatchID      string // uuid
	RowsRead     int64
	RowsInserted int64
	RowsSkipped  int64 // deduped by the store
	DroppedEmpty int64
	DroppedTime  int64 // unparseable timestamp
	DroppedKind  int64 // event outside opened/closed
	DroppedUser  int64 // unparseable user id
}

// RunnerPort loads a CSV export into the event store
type RunnerPort interface {
	RunFile(ctx context.Context, path string) (Report, error)
}
