package domain

import "context"

// WriterPort writes episodes
type WriterPort interface {
	// WriteBatch inserts episodes, skipping pairs already persisted.
	// Returns the number actually inserted
	WriteBatch(ctx context.Context, xs []EpisodeWrite) (int, error)

	// Truncate discards all episodes; used before a full reprocess
	Truncate(ctx context.Context) error
}

// QueryPort reads episodes for analysis
type QueryPort interface {
	// ListDurations returns every episode duration in minutes for one open
	// type, ordered by episode start
	ListDurations(ctx context.Context, openType string) ([]float64, error)

	// CountByType returns the per-type episode census
	CountByType(ctx context.Context) ([]TypeCount, error)
}
