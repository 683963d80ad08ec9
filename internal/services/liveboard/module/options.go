package module

import (
	"time"

	"liveboard/internal/adapters/irail"
	"liveboard/internal/platform/config"
)

// Options holds configuration settings for the liveboard module
type Options struct {
	Station  string
	Interval time.Duration
	BaseURL  string
	Timeout  time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	lb := cfg.Prefix("CORE_LIVEBOARD_")
	return Options{
		Station:  lb.MayString("STATION", irail.DefaultStation),
		Interval: lb.MayDuration("INTERVAL", 30*time.Minute),
		BaseURL:  lb.MayString("IRAIL_BASE_URL", ""),
		Timeout:  lb.MayDuration("IRAIL_TIMEOUT", 10*time.Second),
	}
}
