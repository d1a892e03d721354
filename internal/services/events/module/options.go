package module

import "toolwatch/internal/platform/config"

// Options configures the events module
type Options struct {
	HardLimit int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	ef := cfg.Prefix("CORE_EVENTS_")
	return Options{
		HardLimit: ef.MayInt("HARD_LIMIT", 5000),
	}
}
