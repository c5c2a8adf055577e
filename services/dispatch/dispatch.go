package dispatch

import (
	"context"

	"github.com/google/uuid"
)

// DispatchUC defines the interface for the asynchronous matching engine
type DispatchUC interface {
	DispatchRide(ctx context.Context, rideID uuid.UUID) error
}
