// Package domain defines the types and interfaces for the episodes service
package domain

// EpisodeWrite represents a reconciled episode to be persisted
type EpisodeWrite struct {
	UserID       int64
	OpenType     string // auto | manual
	StartedAt    int64  // epoch ms
	EndedAt      int64  // epoch ms
	OpenEventID  int64
	CloseEventID int64
}

// TypeCount is one row of the per-type episode census
type TypeCount struct {
	OpenType string
	Count    int64
}
