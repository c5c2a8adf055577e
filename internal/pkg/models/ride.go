package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RideStatus is the closed set of ride lifecycle states
type RideStatus string

const (
	RideStatusRequested  RideStatus = "requested"
	RideStatusAssigned   RideStatus = "assigned"
	RideStatusAccepted   RideStatus = "accepted"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
)

// ParseRideStatus converts a stored status string into a RideStatus,
// rejecting anything outside the known vocabulary.
func ParseRideStatus(s string) (RideStatus, error) {
	switch RideStatus(s) {
	case RideStatusRequested, RideStatusAssigned, RideStatusAccepted,
		RideStatusInProgress, RideStatusCompleted:
		return RideStatus(s), nil
	}
	return "", fmt.Errorf("unknown ride status %q", s)
}

// Valid reports whether the status belongs to the known vocabulary
func (s RideStatus) Valid() bool {
	_, err := ParseRideStatus(string(s))
	return err == nil
}

// Ride represents one transportation request tracked through its lifecycle.
// DriverID stores the assigned driver's *user* identity, not the driver row id.
type Ride struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	TenantID        uuid.UUID  `json:"tenant_id" db:"tenant_id"`
	RiderID         uuid.UUID  `json:"rider_id" db:"rider_id"`
	DriverID        *uuid.UUID `json:"driver_user_id" db:"driver_id"`
	PickupLat       float64    `json:"pickup_lat" db:"pickup_lat"`
	PickupLon       float64    `json:"pickup_lon" db:"pickup_lon"`
	PickupAddress   *string    `json:"pickup_address" db:"pickup_address"`
	DestLat         float64    `json:"dest_lat" db:"dest_lat"`
	DestLon         float64    `json:"dest_lon" db:"dest_lon"`
	DestAddress     *string    `json:"dest_address" db:"dest_address"`
	Tier            string     `json:"tier" db:"tier"`
	PaymentMethodID string     `json:"payment_method_id" db:"payment_method_id"`
	Status          RideStatus `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// RidePoint is one endpoint of a ride request
type RidePoint struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address *string `json:"address,omitempty"`
}

// RideRequest is the payload for requesting a ride
type RideRequest struct {
	Pickup          RidePoint `json:"pickup"`
	Destination     RidePoint `json:"destination"`
	Tier            string    `json:"tier"`
	PaymentMethodID string    `json:"payment_method_id"`
}

// DispatchRequest is the job message carried on the dispatch queue
type DispatchRequest struct {
	RideID uuid.UUID `json:"ride_id"`
}
