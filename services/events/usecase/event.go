package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/apperrors"
	"github.com/openride/openride/internal/pkg/logger"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/services/drivers"
	"github.com/openride/openride/services/events"
	"github.com/openride/openride/services/rides"
)

// EventUC implements the events.EventUC interface
type EventUC struct {
	eventRepo  events.EventRepo
	rideRepo   rides.RideRepo
	driverRepo drivers.DriverRepo
}

// NewEventUC creates a new event usecase
func NewEventUC(eventRepo events.EventRepo, rideRepo rides.RideRepo, driverRepo drivers.DriverRepo) *EventUC {
	return &EventUC{
		eventRepo:  eventRepo,
		rideRepo:   rideRepo,
		driverRepo: driverRepo,
	}
}

// RecordRideEvent appends a ride event. Failures are logged and swallowed
// so audit writes never fail the operation that produced them.
func (uc *EventUC) RecordRideEvent(ctx context.Context, tenantID, rideID uuid.UUID, actorUserID *uuid.UUID, kind string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal ride event payload",
			logger.String("ride_id", rideID.String()),
			logger.String("kind", kind),
			logger.Err(err))
		return
	}

	ev := &models.RideEvent{
		ID:          uuid.New(),
		TenantID:    tenantID,
		RideID:      rideID,
		ActorUserID: actorUserID,
		Kind:        kind,
		Payload:     raw,
	}
	if _, err := uc.eventRepo.InsertRideEvent(ctx, ev); err != nil {
		logger.Error("Failed to record ride event",
			logger.String("ride_id", rideID.String()),
			logger.String("kind", kind),
			logger.Err(err))
	}
}

// RecordDriverEvent appends a driver event. Failures are logged and
// swallowed.
func (uc *EventUC) RecordDriverEvent(ctx context.Context, tenantID, driverID uuid.UUID, actorUserID *uuid.UUID, kind string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal driver event payload",
			logger.String("driver_id", driverID.String()),
			logger.String("kind", kind),
			logger.Err(err))
		return
	}

	ev := &models.DriverEvent{
		ID:          uuid.New(),
		TenantID:    tenantID,
		DriverID:    driverID,
		ActorUserID: actorUserID,
		Kind:        kind,
		Payload:     raw,
	}
	if _, err := uc.eventRepo.InsertDriverEvent(ctx, ev); err != nil {
		logger.Error("Failed to record driver event",
			logger.String("driver_id", driverID.String()),
			logger.String("kind", kind),
			logger.Err(err))
	}
}

// ListRideEvents returns a page of a ride's events. Only the ride's rider
// and its assigned driver may read the log.
func (uc *EventUC) ListRideEvents(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID, page, limit, skip int64) (*models.RideEventPage, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, apperrors.Internal("failed to load ride", err)
	}
	if ride == nil {
		return nil, apperrors.NotFound("ride not found")
	}
	// The assigned driver may come from another tenant; dispatch matches
	// across the whole pool.
	allowed := (ride.RiderID == actor.UserID && ride.TenantID == actor.TenantID) ||
		(ride.DriverID != nil && *ride.DriverID == actor.UserID)
	if !allowed {
		return nil, apperrors.Forbidden("you do not have access to this ride")
	}

	total, err := uc.eventRepo.CountRideEvents(ctx, rideID)
	if err != nil {
		return nil, apperrors.Internal("failed to count ride events", err)
	}
	evts, err := uc.eventRepo.ListRideEvents(ctx, rideID, limit, skip)
	if err != nil {
		return nil, apperrors.Internal("failed to list ride events", err)
	}

	return &models.RideEventPage{
		Events:     evts,
		Total:      total,
		TotalPages: totalPages(total, limit),
		Page:       page,
		Limit:      limit,
	}, nil
}

// ListDriverEvents returns a page of a driver's events. Only the driver's
// own user may read the log.
func (uc *EventUC) ListDriverEvents(ctx context.Context, actor *models.UserClaims, driverID uuid.UUID, page, limit, skip int64) (*models.DriverEventPage, error) {
	driver, err := uc.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, apperrors.Internal("failed to load driver", err)
	}
	if driver == nil || driver.TenantID != actor.TenantID {
		return nil, apperrors.NotFound("driver not found")
	}
	if driver.UserID != actor.UserID {
		return nil, apperrors.Forbidden("you do not have access to this driver")
	}

	total, err := uc.eventRepo.CountDriverEvents(ctx, driverID)
	if err != nil {
		return nil, apperrors.Internal("failed to count driver events", err)
	}
	evts, err := uc.eventRepo.ListDriverEvents(ctx, driverID, limit, skip)
	if err != nil {
		return nil, apperrors.Internal("failed to list driver events", err)
	}

	return &models.DriverEventPage{
		Events:     evts,
		Total:      total,
		TotalPages: totalPages(total, limit),
		Page:       page,
		Limit:      limit,
	}, nil
}

func totalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
