package events

import (
	"context"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/models"
)

// Recorder appends audit events as a side effect of state transitions.
// Recording is best-effort: failures are logged with enough context to
// diagnose data loss and never fail the enclosing operation.
//
//go:generate mockgen -destination=mocks/mock_recorder.go -package=mocks github.com/openride/openride/services/events Recorder
type Recorder interface {
	RecordRideEvent(ctx context.Context, tenantID, rideID uuid.UUID, actorUserID *uuid.UUID, kind string, payload interface{})
	RecordDriverEvent(ctx context.Context, tenantID, driverID uuid.UUID, actorUserID *uuid.UUID, kind string, payload interface{})
}

// EventUC defines the interface for event log business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/openride/openride/services/events EventUC
type EventUC interface {
	Recorder
	ListRideEvents(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID, page, limit, skip int64) (*models.RideEventPage, error)
	ListDriverEvents(ctx context.Context, actor *models.UserClaims, driverID uuid.UUID, page, limit, skip int64) (*models.DriverEventPage, error)
}

// EventRepo defines the interface for append-only event storage.
// There is no update or delete; ride events list ascending and driver
// events descending by creation time.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/openride/openride/services/events EventRepo
type EventRepo interface {
	InsertRideEvent(ctx context.Context, ev *models.RideEvent) (*models.RideEvent, error)
	InsertDriverEvent(ctx context.Context, ev *models.DriverEvent) (*models.DriverEvent, error)
	ListRideEvents(ctx context.Context, rideID uuid.UUID, limit, skip int64) ([]models.RideEvent, error)
	CountRideEvents(ctx context.Context, rideID uuid.UUID) (int64, error)
	ListDriverEvents(ctx context.Context, driverID uuid.UUID, limit, skip int64) ([]models.DriverEvent, error)
	CountDriverEvents(ctx context.Context, driverID uuid.UUID) (int64, error)
}
