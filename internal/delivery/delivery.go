// Package delivery defines the contract shared by inbound transports.
package delivery

import "context"

// Delivery is a long-running inbound transport such as the HTTP API.
type Delivery interface {
	// Serve blocks until the transport stops; a clean shutdown returns nil.
	Serve(ctx context.Context) error
}
