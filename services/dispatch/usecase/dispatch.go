package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/logger"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/services/drivers"
	"github.com/openride/openride/services/events"
	"github.com/openride/openride/services/rides"
)

type assignedPayload struct {
	Ride *models.Ride `json:"ride"`
}

// DispatchUC implements the dispatch.DispatchUC interface. Matching picks
// the online driver whose record has been stale longest, across the whole
// pool regardless of tenant.
type DispatchUC struct {
	rideRepo   rides.RideRepo
	driverRepo drivers.DriverRepo
	notifier   rides.Notifier
	recorder   events.Recorder
}

// NewDispatchUC creates a new dispatch usecase
func NewDispatchUC(rideRepo rides.RideRepo, driverRepo drivers.DriverRepo, notifier rides.Notifier, recorder events.Recorder) *DispatchUC {
	return &DispatchUC{
		rideRepo:   rideRepo,
		driverRepo: driverRepo,
		notifier:   notifier,
		recorder:   recorder,
	}
}

// DispatchRide matches one requested ride to a driver. The operation is
// idempotent: rides that already left requested status and races lost to a
// concurrent dispatcher are benign no-ops. A returned error means the job
// should be retried.
func (uc *DispatchUC) DispatchRide(ctx context.Context, rideID uuid.UUID) error {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	if ride == nil {
		logger.Warn("Dispatch requested for unknown ride",
			logger.String("ride_id", rideID.String()))
		return nil
	}
	if ride.Status != models.RideStatusRequested {
		logger.Info("Ride already dispatched, skipping",
			logger.String("ride_id", ride.ID.String()),
			logger.String("status", string(ride.Status)))
		return nil
	}

	candidate, err := uc.driverRepo.FirstOnlineByStaleness(ctx)
	if err != nil {
		return err
	}
	if candidate == nil {
		logger.Info("No online drivers available",
			logger.String("ride_id", ride.ID.String()))
		return nil
	}

	assigned, err := uc.rideRepo.AssignDriver(ctx, ride.ID, candidate.UserID)
	if errors.Is(err, rides.ErrStatusConflict) {
		logger.Info("Lost dispatch race, skipping",
			logger.String("ride_id", ride.ID.String()))
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("Ride assigned",
		logger.String("ride_id", assigned.ID.String()),
		logger.String("driver_user_id", candidate.UserID.String()))

	uc.recorder.RecordRideEvent(ctx, assigned.TenantID, assigned.ID, nil,
		models.EventRideAssigned, assignedPayload{Ride: assigned})
	uc.notifier.Publish(assigned.RiderID, models.EventRideAssigned, assignedPayload{Ride: assigned})
	uc.notifier.Publish(candidate.UserID, models.EventRideAssignedDriver, assignedPayload{Ride: assigned})

	return nil
}
