// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a runnable transport (HTTP today). Serve blocks until the
// server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
