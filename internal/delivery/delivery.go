// Package delivery defines the contract shared by every serving surface.
package delivery

import "context"

// Delivery is implemented by each long-running server (HTTP, workers).
// Serve blocks until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
