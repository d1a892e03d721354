// Package domain defines the types and interfaces for the janitor service
package domain

import "time"

// RunReport summarizes one reconciliation run
type RunReport struct {
	RunID              string // uuid
	StartedAt          time.Time
	FinishedAt         time.Time
	MaxDurationMinutes int
	Reset              bool
	UsersTotal         int64
	UsersFailed        int64
	EpisodesWritten    int64
	AnomaliesWritten   int64
}
