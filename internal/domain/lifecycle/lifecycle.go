// Package lifecycle holds shared limits for starting and stopping long running components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, relays and subscribers.
const DefaultTimeout = 10 * time.Second
