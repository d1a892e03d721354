// Package reconcile implements per-user episode reconciliation over ordered
// tool window events
package reconcile

import "fmt"

// Kind is the event kind enum
type Kind string

const (
	// KindOpened marks a tool window open event
	KindOpened Kind = "opened"
	// KindClosed marks a tool window close event
	KindClosed Kind = "closed"
)

// OpenType is the opening subtype enum; empty means NULL in storage
type OpenType string

const (
	// OpenAuto marks a window opened by the IDE
	OpenAuto OpenType = "auto"
	// OpenManual marks a window opened by the user
	OpenManual OpenType = "manual"
	// OpenNone is the absent subtype (NULL on the wire)
	OpenNone OpenType = ""
)

// Event is one immutable observation from the event store.
// OpenType is meaningful only when Kind is KindOpened; a close event
// carrying a subtype is itself a condition the classifier flags
type Event struct {
	ID       int64
	UserID   int64
	At       int64 // epoch ms
	Kind     Kind
	OpenType OpenType
}

// Valid reports whether the event is structurally sound.
// Anything else is an ingestion contract breach, not a data anomaly
func (e Event) Valid() bool {
	switch e.Kind {
	case KindOpened, KindClosed:
	default:
		return false
	}
	switch e.OpenType {
	case OpenAuto, OpenManual, OpenNone:
	default:
		return false
	}
	return true
}

// ErrInvalidEvent is returned when a structurally invalid event reaches the
// machine; the anomaly taxonomy has no category for these, so the run aborts
type ErrInvalidEvent struct {
	Event Event
}

func (e *ErrInvalidEvent) Error() string {
	return fmt.Sprintf("reconcile: invalid event id=%d kind=%q open_type=%q", e.Event.ID, e.Event.Kind, e.Event.OpenType)
}
