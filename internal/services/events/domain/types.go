// Package domain defines core types and interfaces for the event store
package domain

// Kind values accepted by the store
const (
	KindOpened = "opened"
	KindClosed = "closed"
)

// OpenType values accepted by the store; NULL is represented by a nil pointer
const (
	OpenAuto   = "auto"
	OpenManual = "manual"
)

// Event is one stored observation
type Event struct {
	ID         int64
	UserID     int64
	OccurredAt int64   // epoch ms
	Kind       string  // opened | closed
	OpenType   *string // auto | manual, nil = NULL
}

// EventWrite is the insert payload; the store assigns the id
type EventWrite struct {
	UserID     int64
	OccurredAt int64
	Kind       string
	OpenType   *string
}

// AfterKey supports stable keyset pagination over (occurred_at, id).
// The zero value starts from the beginning because ids are positive
type AfterKey struct {
	OccurredAt int64
	ID         int64
}

// ListInput defines one page of a user's ordered event stream
type ListInput struct {
	UserID int64
	After  AfterKey // zero value = from start
	Limit  int      // hard-capped in service
}
