package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents a driver's presence record. The row is created on the
// first go-online call and reused across online/offline cycles.
type Driver struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TenantID  uuid.UUID `json:"tenant_id" db:"tenant_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	IsOnline  bool      `json:"is_online" db:"is_online"`
	Lat       *float64  `json:"lat" db:"lat"`
	Lon       *float64  `json:"lon" db:"lon"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DriverLocationRequest is the payload for go-online and location updates
type DriverLocationRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
