package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/database"
	"github.com/openride/openride/internal/pkg/models"
)

// EventRepo implements the events.EventRepo interface on PostgreSQL
type EventRepo struct {
	db *database.PostgresClient
}

// NewEventRepo creates a new event repository
func NewEventRepo(db *database.PostgresClient) *EventRepo {
	return &EventRepo{db: db}
}

// InsertRideEvent appends one ride event
func (r *EventRepo) InsertRideEvent(ctx context.Context, ev *models.RideEvent) (*models.RideEvent, error) {
	query := `
		INSERT INTO ride_events (id, tenant_id, ride_id, actor_user_id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING *`

	var inserted models.RideEvent
	err := r.db.GetDB().GetContext(ctx, &inserted, query,
		ev.ID, ev.TenantID, ev.RideID, ev.ActorUserID, ev.Kind, ev.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ride event: %w", err)
	}
	return &inserted, nil
}

// InsertDriverEvent appends one driver event
func (r *EventRepo) InsertDriverEvent(ctx context.Context, ev *models.DriverEvent) (*models.DriverEvent, error) {
	query := `
		INSERT INTO driver_events (id, tenant_id, driver_id, actor_user_id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING *`

	var inserted models.DriverEvent
	err := r.db.GetDB().GetContext(ctx, &inserted, query,
		ev.ID, ev.TenantID, ev.DriverID, ev.ActorUserID, ev.Kind, ev.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to insert driver event: %w", err)
	}
	return &inserted, nil
}

// ListRideEvents returns one page of a ride's events, oldest first, so a
// page-by-page reader replays the ride chronologically.
func (r *EventRepo) ListRideEvents(ctx context.Context, rideID uuid.UUID, limit, skip int64) ([]models.RideEvent, error) {
	query := `
		SELECT * FROM ride_events
		WHERE ride_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3`

	events := []models.RideEvent{}
	err := r.db.GetDB().SelectContext(ctx, &events, query, rideID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list ride events: %w", err)
	}
	return events, nil
}

// CountRideEvents returns the total number of events for a ride
func (r *EventRepo) CountRideEvents(ctx context.Context, rideID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.GetDB().GetContext(ctx, &count,
		`SELECT COUNT(*) FROM ride_events WHERE ride_id = $1`, rideID)
	if err != nil {
		return 0, fmt.Errorf("failed to count ride events: %w", err)
	}
	return count, nil
}

// ListDriverEvents returns one page of a driver's events, newest first,
// so the first page shows current activity.
func (r *EventRepo) ListDriverEvents(ctx context.Context, driverID uuid.UUID, limit, skip int64) ([]models.DriverEvent, error) {
	query := `
		SELECT * FROM driver_events
		WHERE driver_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	events := []models.DriverEvent{}
	err := r.db.GetDB().SelectContext(ctx, &events, query, driverID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver events: %w", err)
	}
	return events, nil
}

// CountDriverEvents returns the total number of events for a driver
func (r *EventRepo) CountDriverEvents(ctx context.Context, driverID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.GetDB().GetContext(ctx, &count,
		`SELECT COUNT(*) FROM driver_events WHERE driver_id = $1`, driverID)
	if err != nil {
		return 0, fmt.Errorf("failed to count driver events: %w", err)
	}
	return count, nil
}
