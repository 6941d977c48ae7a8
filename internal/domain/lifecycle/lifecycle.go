// Package lifecycle holds shared constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
