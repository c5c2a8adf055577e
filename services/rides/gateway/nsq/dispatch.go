package nsq

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/constants"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/internal/pkg/nsq"
)

// DispatchGateway implements the rides.DispatchGW interface on NSQ
type DispatchGateway struct {
	producer *nsq.Producer
}

// NewDispatchGateway creates a new dispatch gateway
func NewDispatchGateway(producer *nsq.Producer) *DispatchGateway {
	return &DispatchGateway{producer: producer}
}

// PublishDispatchRequest enqueues a dispatch job for the ride
func (g *DispatchGateway) PublishDispatchRequest(_ context.Context, rideID uuid.UUID) error {
	err := g.producer.Publish(constants.TopicRideDispatch, models.DispatchRequest{RideID: rideID})
	if err != nil {
		return fmt.Errorf("failed to publish dispatch request: %w", err)
	}
	return nil
}
