package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/database"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/services/rides"
)

// RideRepo implements the rides.RideRepo interface on PostgreSQL. Status
// updates are compare-and-swap: the WHERE clause pins the expected prior
// status so concurrent writers cannot double-apply a transition.
type RideRepo struct {
	db *database.PostgresClient
}

// NewRideRepo creates a new ride repository
func NewRideRepo(db *database.PostgresClient) *RideRepo {
	return &RideRepo{db: db}
}

// CreateRide inserts a new ride in requested status
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	query := `
		INSERT INTO rides (id, tenant_id, rider_id, pickup_lat, pickup_lon, pickup_address,
			dest_lat, dest_lon, dest_address, tier, payment_method_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING *`

	var created models.Ride
	err := r.db.GetDB().GetContext(ctx, &created, query,
		ride.ID, ride.TenantID, ride.RiderID,
		ride.PickupLat, ride.PickupLon, ride.PickupAddress,
		ride.DestLat, ride.DestLon, ride.DestAddress,
		ride.Tier, ride.PaymentMethodID, models.RideStatusRequested)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}
	return &created, nil
}

// GetRide loads a ride by id. Returns (nil, nil) when absent.
func (r *RideRepo) GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	err := r.db.GetDB().GetContext(ctx, &ride, `SELECT * FROM rides WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// ListRidesByRider returns a rider's rides, newest first
func (r *RideRepo) ListRidesByRider(ctx context.Context, riderID uuid.UUID, limit, offset int64) ([]models.Ride, error) {
	query := `
		SELECT * FROM rides
		WHERE rider_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	ridesList := []models.Ride{}
	err := r.db.GetDB().SelectContext(ctx, &ridesList, query, riderID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	return ridesList, nil
}

// AssignDriver moves a requested ride to assigned with the given driver
// user id. Returns ErrStatusConflict when the ride already left requested.
func (r *RideRepo) AssignDriver(ctx context.Context, rideID, driverUserID uuid.UUID) (*models.Ride, error) {
	query := `
		UPDATE rides
		SET driver_id = $2, status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4
		RETURNING *`

	var updated models.Ride
	err := r.db.GetDB().GetContext(ctx, &updated, query,
		rideID, driverUserID, models.RideStatusAssigned, models.RideStatusRequested)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrStatusConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to assign driver: %w", err)
	}
	return &updated, nil
}

// ClearDriver returns an assigned ride to the requested pool, dropping the
// driver. Returns ErrStatusConflict when the ride already left assigned.
func (r *RideRepo) ClearDriver(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		UPDATE rides
		SET driver_id = NULL, status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING *`

	var updated models.Ride
	err := r.db.GetDB().GetContext(ctx, &updated, query,
		rideID, models.RideStatusRequested, models.RideStatusAssigned)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrStatusConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to clear driver: %w", err)
	}
	return &updated, nil
}

// TransitionStatus moves a ride from one status to the next. Returns
// ErrStatusConflict when the ride is no longer in the expected status.
func (r *RideRepo) TransitionStatus(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) (*models.Ride, error) {
	query := `
		UPDATE rides
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING *`

	var updated models.Ride
	err := r.db.GetDB().GetContext(ctx, &updated, query, rideID, to, from)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rides.ErrStatusConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to transition ride status: %w", err)
	}
	return &updated, nil
}
