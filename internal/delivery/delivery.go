// Package delivery defines the contract every transport-facing server implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application's
// lifecycle and stopped through its own shutdown hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
