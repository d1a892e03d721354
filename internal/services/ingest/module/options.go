package module

import "toolwatch/internal/platform/config"

// Options holds configuration settings for the ingest module
type Options struct {
	BatchSize int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	inf := cfg.Prefix("CORE_INGEST_")
	return Options{
		BatchSize: inf.MayInt("BATCH_SIZE", 100),
	}
}
