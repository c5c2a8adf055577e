package models

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// User roles known to the service
const (
	RoleRider  = "rider"
	RoleDriver = "driver"
)

// UserClaims are the JWT claims carried by authenticated requests.
// Credential issuance is handled by an external collaborator; this service
// only validates and reads the claims.
type UserClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

// IsDriver reports whether the authenticated user is a driver account
func (c *UserClaims) IsDriver() bool {
	return c.Role == RoleDriver
}
