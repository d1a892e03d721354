package reconcile

// Episode is one successfully paired open->close span
type Episode struct {
	OpenType     OpenType
	StartAt      int64 // epoch ms, open event timestamp
	EndAt        int64 // epoch ms, close event timestamp
	OpenEventID  int64
	CloseEventID int64
}

// Anomaly is one event (or event pair) that could not safely become an
// episode. CounterpartyEventID is non-nil only for two-sided details
type Anomaly struct {
	OpenType            OpenType // subtype context, OpenNone when unknown
	At                  int64    // epoch ms of the flagged event
	EventID             int64
	CounterpartyEventID *int64
	Detail              Detail
}

// Outcome is everything one user's reconciliation pass produced, in
// chronological emission order
type Outcome struct {
	Episodes  []Episode
	Anomalies []Anomaly
}

// Machine walks one user's chronologically ordered events, holding at most
// one pending open. Zero value is ready to use with the default threshold
type Machine struct {
	Classifier Classifier
}

// New builds a Machine with the given classifier policy
func New(c Classifier) *Machine { return &Machine{Classifier: c} }

// Run consumes events (already ordered by (timestamp, id)) and returns the
// episodes and anomalies they reduce to. Every event yields exactly one
// attributable outcome; a typed close on a valid pair yields both an episode
// and the additive closed_not_null_type anomaly. A structurally invalid
// event aborts with *ErrInvalidEvent
func (m *Machine) Run(events []Event) (Outcome, error) {
	var out Outcome
	var pending *Event

	for i := range events {
		ev := events[i]
		if !ev.Valid() {
			return Outcome{}, &ErrInvalidEvent{Event: ev}
		}

		switch ev.Kind {
		case KindOpened:
			if pending != nil {
				// the earlier open was abandoned, not concurrent
				out.Anomalies = append(out.Anomalies, oneSided(*pending, pending.OpenType, DetailMissingClose))
				pending = nil
			}
			if ev.OpenType == OpenNone {
				out.Anomalies = append(out.Anomalies, oneSided(ev, OpenNone, DetailNullType))
				continue
			}
			p := ev
			pending = &p

		case KindClosed:
			if pending == nil {
				out.Anomalies = append(out.Anomalies, oneSided(ev, OpenNone, DetailMissingOpen))
				continue
			}
			open := *pending
			pending = nil

			v := m.Classifier.ClassifyPair(open, ev)
			if !v.OK {
				cid := ev.ID
				out.Anomalies = append(out.Anomalies, Anomaly{
					OpenType:            open.OpenType,
					At:                  open.At,
					EventID:             open.ID,
					CounterpartyEventID: &cid,
					Detail:              v.Reject,
				})
				continue
			}
			if v.CloseTyped {
				out.Anomalies = append(out.Anomalies, oneSided(ev, ev.OpenType, DetailClosedNotNullType))
			}
			out.Episodes = append(out.Episodes, Episode{
				OpenType:     open.OpenType,
				StartAt:      open.At,
				EndAt:        ev.At,
				OpenEventID:  open.ID,
				CloseEventID: ev.ID,
			})
		}
	}

	if pending != nil {
		out.Anomalies = append(out.Anomalies, oneSided(*pending, pending.OpenType, DetailMissingClose))
	}
	return out, nil
}

func oneSided(ev Event, typ OpenType, d Detail) Anomaly {
	return Anomaly{OpenType: typ, At: ev.At, EventID: ev.ID, Detail: d}
}
