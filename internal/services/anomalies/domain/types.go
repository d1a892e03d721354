// Package domain defines the types and interfaces for the anomalies service
package domain

// Detail values are the closed classification taxonomy; they mirror the
// anomalies.detail CHECK constraint
const (
	DetailMissingClose             = "missing_close"
	DetailMissingOpen              = "missing_open"
	DetailNullType                 = "null_type"
	DetailClosedNotNullType        = "closed_not_null_type"
	DetailNegativeDuration         = "negative_duration"
	DetailDurationExceedsThreshold = "duration_exceeds_threshold"
)

// AnomalyWrite represents a classified event to be persisted
type AnomalyWrite struct {
	UserID              int64
	OpenType            *string // auto | manual, nil when unknown
	OccurredAt          int64   // epoch ms of the flagged event
	EventID             int64
	CounterpartyEventID *int64 // set for pair-scoped details only
	Detail              string
}

// Row is one stored anomaly
type Row struct {
	ID                  int64
	UserID              int64
	OpenType            *string
	OccurredAt          int64
	EventID             int64
	CounterpartyEventID *int64
	Detail              string
}

// DetailCount is one row of the per-detail census
type DetailCount struct {
	Detail string
	Count  int64
}

// AfterKey supports keyset pagination over (occurred_at, id)
type AfterKey struct {
	OccurredAt int64
	ID         int64
}

// ListInput filters and pages the anomaly listing
type ListInput struct {
	Detail string // optional, empty = all
	After  AfterKey
	Limit  int
}
