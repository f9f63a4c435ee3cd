package reconcile

import "time"

// Config holds engine defaults applied by the HTTP API and the CLI.
type Config struct {
	// CacheTTLSeconds keeps reports for identical inputs. Zero disables the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// ReportUnkeyed is the default for Options.ReportUnkeyed.
	ReportUnkeyed bool `mapstructure:"report_unkeyed" default:"false"`
	// HistoryLimit caps how many runs a listing returns.
	HistoryLimit int `mapstructure:"history_limit" default:"50"`
}

// CacheTTL returns CacheTTLSeconds as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
