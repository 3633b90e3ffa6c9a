// Package lifecycle holds process-wide timing constants shared by fx hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds start/stop hooks such as database pings and server shutdown.
	DefaultTimeout = 10 * time.Second

	// DefaultRequestTimeout bounds a single outbound HTTP call of the API test harness.
	DefaultRequestTimeout = 30 * time.Second
)
