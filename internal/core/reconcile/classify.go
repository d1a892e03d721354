package reconcile

import "time"

// Detail is the closed anomaly taxonomy
type Detail string

const (
	// DetailMissingClose marks an open that was never closed, either because
	// a later open superseded it or the sequence ended while it was pending
	DetailMissingClose Detail = "missing_close"
	// DetailMissingOpen marks a close with no pending open
	DetailMissingOpen Detail = "missing_open"
	// DetailNullType marks an open without a subtype; it can never be paired
	// because its category is unknown
	DetailNullType Detail = "null_type"
	// DetailClosedNotNullType marks a close carrying a subtype; informational,
	// it does not block pairing
	DetailClosedNotNullType Detail = "closed_not_null_type"
	// DetailNegativeDuration marks a pair whose close precedes its open
	DetailNegativeDuration Detail = "negative_duration"
	// DetailDurationExceedsThreshold marks a pair longer than the configured
	// maximum episode duration
	DetailDurationExceedsThreshold Detail = "duration_exceeds_threshold"
)

// TwoSided reports whether d references both events of a pair, which decides
// whether CounterpartyEventID is set on the emitted anomaly
func (d Detail) TwoSided() bool {
	return d == DetailNegativeDuration || d == DetailDurationExceedsThreshold
}

// DefaultMaxDuration is the episode duration ceiling (12 hours)
const DefaultMaxDuration = 720 * time.Minute

// Classifier is the stateless pairing policy. The guard order matters:
// negative duration is checked before the threshold, the threshold before
// close subtype validity, and only one exclusive Detail is emitted per pair
type Classifier struct {
	// MaxDuration is the episode duration ceiling; <=0 falls back to
	// DefaultMaxDuration
	MaxDuration time.Duration
}

// PairVerdict is the classifier outcome for one open/close candidate pair
type PairVerdict struct {
	// OK means the pair forms an episode
	OK bool
	// Reject is the exclusive anomaly blocking the pair when !OK
	Reject Detail
	// CloseTyped flags the additive closed_not_null_type anomaly; it can be
	// set alongside OK because a typed close is noise, not a pairing threat
	CloseTyped bool
}

// ClassifyPair applies the ordered guards to a pending open and its
// candidate close. Both events are assumed structurally valid
func (c Classifier) ClassifyPair(open, close Event) PairVerdict {
	max := c.MaxDuration
	if max <= 0 {
		max = DefaultMaxDuration
	}

	durMS := close.At - open.At
	switch {
	case durMS < 0:
		return PairVerdict{Reject: DetailNegativeDuration}
	case durMS > max.Milliseconds():
		return PairVerdict{Reject: DetailDurationExceedsThreshold}
	}
	// zero duration is a valid instantaneous episode
	return PairVerdict{OK: true, CloseTyped: close.OpenType != OpenNone}
}
