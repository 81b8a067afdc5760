// Package lifecycle holds timing constants shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of deliveries and storage clients.
const DefaultTimeout = 10 * time.Second
