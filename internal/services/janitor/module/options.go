package module

import "toolwatch/internal/platform/config"

// Options holds configuration settings for the janitor module
type Options struct {
	MaxDurationMinutes int
	Workers            int
	UserPageSize       int
	EventPageSize      int
	BatchSize          int
	Retries            int
	Reset              bool
	DryRun             bool
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	jf := cfg.Prefix("CORE_JANITOR_")
	return Options{
		MaxDurationMinutes: jf.MayInt("MAX_DURATION_MIN", 720),
		Workers:            jf.MayInt("WORKERS", 4),
		UserPageSize:       jf.MayInt("USER_PAGE_SIZE", 500),
		EventPageSize:      jf.MayInt("EVENT_PAGE_SIZE", 5000),
		BatchSize:          jf.MayInt("BATCH_SIZE", 100),
		Retries:            jf.MayInt("RETRIES", 2),
		Reset:              jf.MayBool("RESET", false),
		DryRun:             jf.MayBool("DRY_RUN", false),
	}
}
