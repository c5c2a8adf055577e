package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/apperrors"
	"github.com/openride/openride/internal/pkg/logger"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/internal/utils"
	"github.com/openride/openride/services/events"
	"github.com/openride/openride/services/pricing"
	"github.com/openride/openride/services/rides"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type requestedPayload struct {
	Ride            *models.Ride `json:"ride"`
	SurgeMultiplier float64      `json:"surge_multiplier"`
}

type ridePayload struct {
	Ride *models.Ride `json:"ride"`
}

type completedPayload struct {
	Ride *models.Ride `json:"ride"`
	Fare float64      `json:"fare"`
}

// RideUC implements the rides.RideUC interface
type RideUC struct {
	rideRepo   rides.RideRepo
	dispatchGW rides.DispatchGW
	notifier   rides.Notifier
	recorder   events.Recorder
	pricingUC  pricing.PricingUC
}

// NewRideUC creates a new ride usecase
func NewRideUC(rideRepo rides.RideRepo, dispatchGW rides.DispatchGW, notifier rides.Notifier, recorder events.Recorder, pricingUC pricing.PricingUC) *RideUC {
	return &RideUC{
		rideRepo:   rideRepo,
		dispatchGW: dispatchGW,
		notifier:   notifier,
		recorder:   recorder,
		pricingUC:  pricingUC,
	}
}

// RequestRide creates a ride in requested status, records pickup demand for
// surge, and enqueues an async dispatch job. Returns the ride together with
// the surge multiplier in effect at the pickup cell.
func (uc *RideUC) RequestRide(ctx context.Context, actor *models.UserClaims, req *models.RideRequest) (*models.Ride, float64, error) {
	if actor.Role != models.RoleRider {
		return nil, 0, apperrors.Forbidden("only riders can request rides")
	}
	if err := validateRideRequest(req); err != nil {
		return nil, 0, err
	}

	ride, err := uc.rideRepo.CreateRide(ctx, &models.Ride{
		ID:              uuid.New(),
		TenantID:        actor.TenantID,
		RiderID:         actor.UserID,
		PickupLat:       req.Pickup.Lat,
		PickupLon:       req.Pickup.Lon,
		PickupAddress:   req.Pickup.Address,
		DestLat:         req.Destination.Lat,
		DestLon:         req.Destination.Lon,
		DestAddress:     req.Destination.Address,
		Tier:            req.Tier,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		return nil, 0, apperrors.Internal("failed to create ride", err)
	}

	uc.pricingUC.RecordDemand(ctx, ride.TenantID, ride.PickupLat, ride.PickupLon)
	multiplier := uc.pricingUC.CurrentMultiplier(ctx, ride.TenantID, ride.PickupLat, ride.PickupLon)

	uc.recorder.RecordRideEvent(ctx, ride.TenantID, ride.ID, &actor.UserID,
		models.EventRideRequested, requestedPayload{Ride: ride, SurgeMultiplier: multiplier})
	uc.notifier.Publish(ride.RiderID, models.EventRideRequested,
		requestedPayload{Ride: ride, SurgeMultiplier: multiplier})
	uc.enqueueDispatch(ctx, ride.ID)

	return ride, multiplier, nil
}

// GetRide returns a ride to its rider or its assigned driver
func (uc *RideUC) GetRide(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	allowed := (ride.RiderID == actor.UserID && ride.TenantID == actor.TenantID) ||
		(ride.DriverID != nil && *ride.DriverID == actor.UserID)
	if !allowed {
		return nil, apperrors.Forbidden("you do not have access to this ride")
	}
	return ride, nil
}

// ListRides returns the caller's own rides, newest first
func (uc *RideUC) ListRides(ctx context.Context, actor *models.UserClaims, limit, offset int64) ([]models.Ride, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	ridesList, err := uc.rideRepo.ListRidesByRider(ctx, actor.UserID, limit, offset)
	if err != nil {
		return nil, apperrors.Internal("failed to list rides", err)
	}
	return ridesList, nil
}

// AcceptRide confirms an assignment. Only the assigned driver may accept,
// and only while the ride is still assigned.
func (uc *RideUC) AcceptRide(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.guardAssignedDriver(ctx, actor, rideID, models.RideStatusAssigned)
	if err != nil {
		return nil, err
	}

	updated, err := uc.rideRepo.TransitionStatus(ctx, ride.ID, models.RideStatusAssigned, models.RideStatusAccepted)
	if err != nil {
		return nil, mapTransitionErr(err, "ride is no longer awaiting acceptance")
	}

	uc.recorder.RecordRideEvent(ctx, updated.TenantID, updated.ID, &actor.UserID,
		models.EventRideAccepted, ridePayload{Ride: updated})
	uc.notifyBoth(updated, models.EventRideAccepted, models.EventRideAcceptedDriver, ridePayload{Ride: updated})

	return updated, nil
}

// RejectRide returns an assigned ride to the requested pool and re-enqueues
// it for dispatch.
func (uc *RideUC) RejectRide(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.guardAssignedDriver(ctx, actor, rideID, models.RideStatusAssigned)
	if err != nil {
		return nil, err
	}
	riderID := ride.RiderID
	driverUserID := *ride.DriverID

	updated, err := uc.rideRepo.ClearDriver(ctx, ride.ID)
	if err != nil {
		return nil, mapTransitionErr(err, "ride is no longer awaiting acceptance")
	}

	uc.recorder.RecordRideEvent(ctx, updated.TenantID, updated.ID, &actor.UserID,
		models.EventRideRejected, ridePayload{Ride: updated})
	uc.notifier.Publish(riderID, models.EventRideRejected, ridePayload{Ride: updated})
	uc.notifier.Publish(driverUserID, models.EventRideRejectedDriver, ridePayload{Ride: updated})
	uc.enqueueDispatch(ctx, updated.ID)

	return updated, nil
}

// StartRide begins an accepted ride. Only the assigned driver may start it.
func (uc *RideUC) StartRide(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.guardAssignedDriver(ctx, actor, rideID, models.RideStatusAccepted)
	if err != nil {
		return nil, err
	}

	updated, err := uc.rideRepo.TransitionStatus(ctx, ride.ID, models.RideStatusAccepted, models.RideStatusInProgress)
	if err != nil {
		return nil, mapTransitionErr(err, "ride cannot be started in its current status")
	}

	uc.recorder.RecordRideEvent(ctx, updated.TenantID, updated.ID, &actor.UserID,
		models.EventRideStarted, ridePayload{Ride: updated})
	uc.notifyBoth(updated, models.EventRideStarted, models.EventRideStartedDriver, ridePayload{Ride: updated})

	return updated, nil
}

// CompleteRide finishes an in-progress ride and prices it by great-circle
// distance between pickup and destination.
func (uc *RideUC) CompleteRide(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.guardAssignedDriver(ctx, actor, rideID, models.RideStatusInProgress)
	if err != nil {
		return nil, err
	}

	updated, err := uc.rideRepo.TransitionStatus(ctx, ride.ID, models.RideStatusInProgress, models.RideStatusCompleted)
	if err != nil {
		return nil, mapTransitionErr(err, "ride cannot be completed in its current status")
	}

	distanceKM := utils.HaversineKM(updated.PickupLat, updated.PickupLon, updated.DestLat, updated.DestLon)
	fare := uc.pricingUC.FareForDistance(distanceKM)

	uc.recorder.RecordRideEvent(ctx, updated.TenantID, updated.ID, &actor.UserID,
		models.EventRideCompleted, completedPayload{Ride: updated, Fare: fare})
	uc.notifyBoth(updated, models.EventRideCompleted, models.EventRideCompletedDriver,
		completedPayload{Ride: updated, Fare: fare})

	return updated, nil
}

// guardAssignedDriver loads the ride and checks the caller is its assigned
// driver and the ride is in the expected status.
func (uc *RideUC) guardAssignedDriver(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID, expected models.RideStatus) (*models.Ride, error) {
	if !actor.IsDriver() {
		return nil, apperrors.Forbidden("only drivers can perform this action")
	}
	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == nil || *ride.DriverID != actor.UserID {
		return nil, apperrors.Forbidden("you are not assigned to this ride")
	}
	if ride.Status != expected {
		return nil, apperrors.Conflict("ride is not in a state that allows this action")
	}
	return ride, nil
}

func (uc *RideUC) loadRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, apperrors.Internal("failed to load ride", err)
	}
	if ride == nil {
		return nil, apperrors.NotFound("ride not found")
	}
	return ride, nil
}

// notifyBoth fans a transition out to the rider and the assigned driver
// under their respective notification kinds.
func (uc *RideUC) notifyBoth(ride *models.Ride, riderKind, driverKind string, payload interface{}) {
	uc.notifier.Publish(ride.RiderID, riderKind, payload)
	if ride.DriverID != nil {
		uc.notifier.Publish(*ride.DriverID, driverKind, payload)
	}
}

// enqueueDispatch publishes a dispatch job. A failed enqueue leaves the
// ride requested; it is logged rather than failing the caller's request.
func (uc *RideUC) enqueueDispatch(ctx context.Context, rideID uuid.UUID) {
	if err := uc.dispatchGW.PublishDispatchRequest(ctx, rideID); err != nil {
		logger.Error("Failed to enqueue dispatch request",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}
}

func mapTransitionErr(err error, message string) error {
	if errors.Is(err, rides.ErrStatusConflict) {
		return apperrors.Conflict(message)
	}
	return apperrors.Internal("failed to update ride status", err)
}

func validateRideRequest(req *models.RideRequest) error {
	if !utils.ValidCoordinate(req.Pickup.Lat, req.Pickup.Lon) {
		return apperrors.Validation("pickup", "pickup coordinate out of range")
	}
	if !utils.ValidCoordinate(req.Destination.Lat, req.Destination.Lon) {
		return apperrors.Validation("destination", "destination coordinate out of range")
	}
	if req.Tier == "" {
		return apperrors.Validation("tier", "tier is required")
	}
	if req.PaymentMethodID == "" {
		return apperrors.Validation("payment_method_id", "payment method is required")
	}
	return nil
}
