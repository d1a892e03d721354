package module

import "toolwatch/internal/platform/config"

// Options configures the anomalies module
type Options struct {
	HardLimit int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_ANOMALIES_")
	return Options{
		HardLimit: af.MayInt("HARD_LIMIT", 1000),
	}
}
