// Package delivery holds the inbound surfaces of the service.
package delivery

import "context"

// Delivery is a long-running inbound surface started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
