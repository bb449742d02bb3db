// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a server-like component (HTTP, worker, ...) started by main and
// stopped through its fx lifecycle hooks.
type Delivery interface {
	// Serve blocks, accepting work until the process shuts down.
	Serve(ctx context.Context) error
}
