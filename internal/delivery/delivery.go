// Package delivery contains the entry points that drive the use cases.
package delivery

import "context"

// Delivery is a long-running entry point started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
