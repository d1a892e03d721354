// Package domain holds DTOs for the anomalies http and service contracts
package domain

// ListInput filters and pages the anomaly listing. Paging is keyset over
// (occurred_at, id); pass the Next cursor from the previous page verbatim
type ListInput struct {
	Detail string `json:"detail,omitempty" validate:"omitempty,oneof=missing_close missing_open null_type closed_not_null_type negative_duration duration_exceeds_threshold" example:"missing_close"` //nolint:lll
	After  Cursor `json:"after,omitempty"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=1000" example:"100"`
}

// Cursor is an opaque keyset position
type Cursor struct {
	OccurredAt int64 `json:"occurred_at" example:"1721433600000"`
	ID         int64 `json:"id" example:"42"`
}

// AnomalyRow is one stored anomaly
type AnomalyRow struct {
	ID                  int64   `json:"id" example:"42"`
	UserID              int64   `json:"user_id" example:"7"`
	OpenType            *string `json:"open_type,omitempty" example:"manual"`
	OccurredAt          int64   `json:"occurred_at" example:"1721433600000"`
	EventID             int64   `json:"event_id" example:"1001"`
	CounterpartyEventID *int64  `json:"counterparty_event_id,omitempty" example:"1002"`
	Detail              string  `json:"detail" example:"missing_close"`
}

// ListResp is one page of anomalies
type ListResp struct {
	Rows []AnomalyRow `json:"rows"`
	Next Cursor       `json:"next"`
}

// DetailCountRow is one row of the per-detail census
type DetailCountRow struct {
	Detail string `json:"detail" example:"missing_close"`
	Count  int64  `json:"count" example:"12"`
}

// CountsResp is the anomaly census
type CountsResp struct {
	Details []DetailCountRow `json:"details"`
}
