// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each lifecycle hook (DB ping, server shutdown, bucket close).
const DefaultTimeout = 10 * time.Second
