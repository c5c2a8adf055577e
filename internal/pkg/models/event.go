package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event kind vocabulary. The set is extensible but consumers replay these
// tags, so renaming an existing kind is a breaking change.
const (
	EventRideRequested       = "ride_requested"
	EventRideAssigned        = "ride_assigned"
	EventRideAssignedDriver  = "ride_assigned_to_driver"
	EventRideAccepted        = "ride_accepted"
	EventRideAcceptedDriver  = "ride_accepted_for_driver"
	EventRideRejected        = "ride_rejected_by_driver"
	EventRideRejectedDriver  = "ride_rejected_for_driver"
	EventRideStarted         = "ride_started"
	EventRideStartedDriver   = "ride_started_for_driver"
	EventRideCompleted       = "ride_completed"
	EventRideCompletedDriver = "ride_completed_for_driver"
	EventDriverWentOnline    = "driver_went_online"
	EventDriverWentOffline   = "driver_went_offline"
)

// RideEvent is one immutable audit record for a ride. ActorUserID is nil
// for system-caused events such as dispatch assignment.
type RideEvent struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	TenantID    uuid.UUID       `json:"tenant_id" db:"tenant_id"`
	RideID      uuid.UUID       `json:"ride_id" db:"ride_id"`
	ActorUserID *uuid.UUID      `json:"actor_user_id" db:"actor_user_id"`
	Kind        string          `json:"kind" db:"kind"`
	Payload     json.RawMessage `json:"payload" db:"payload"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// DriverEvent is one immutable audit record for a driver
type DriverEvent struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	TenantID    uuid.UUID       `json:"tenant_id" db:"tenant_id"`
	DriverID    uuid.UUID       `json:"driver_id" db:"driver_id"`
	ActorUserID *uuid.UUID      `json:"actor_user_id" db:"actor_user_id"`
	Kind        string          `json:"kind" db:"kind"`
	Payload     json.RawMessage `json:"payload" db:"payload"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// RideEventPage is a paginated slice of ride events
type RideEventPage struct {
	Events     []RideEvent `json:"events"`
	Total      int64       `json:"total"`
	TotalPages int64       `json:"total_pages"`
	Page       int64       `json:"page"`
	Limit      int64       `json:"limit"`
}

// DriverEventPage is a paginated slice of driver events
type DriverEventPage struct {
	Events     []DriverEvent `json:"events"`
	Total      int64         `json:"total"`
	TotalPages int64         `json:"total_pages"`
	Page       int64         `json:"page"`
	Limit      int64         `json:"limit"`
}
