package drivers

import (
	"context"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/models"
)

// DriverUC defines the interface for driver presence business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/openride/openride/services/drivers DriverUC
type DriverUC interface {
	GoOnline(ctx context.Context, actor *models.UserClaims, req *models.DriverLocationRequest) (*models.Driver, error)
	GoOffline(ctx context.Context, actor *models.UserClaims) (*models.Driver, error)
	UpdateLocation(ctx context.Context, actor *models.UserClaims, req *models.DriverLocationRequest) (*models.Driver, error)
	NearbyDrivers(ctx context.Context, actor *models.UserClaims, lat, lon, radiusKM float64, max int) ([]uuid.UUID, error)
}

// DriverRepo defines the interface for driver row data access.
// Lookups return (nil, nil) when no row exists.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/openride/openride/services/drivers DriverRepo
type DriverRepo interface {
	GetByTenantAndUser(ctx context.Context, tenantID, userID uuid.UUID) (*models.Driver, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	Create(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	SetPresence(ctx context.Context, id uuid.UUID, online bool, lat, lon *float64) (*models.Driver, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) (*models.Driver, error)
	FirstOnlineByStaleness(ctx context.Context) (*models.Driver, error)
}

// GeoRepo defines the interface for the geospatial driver index
//
//go:generate mockgen -destination=mocks/mock_geo.go -package=mocks github.com/openride/openride/services/drivers GeoRepo
type GeoRepo interface {
	UpsertLocation(ctx context.Context, tenantID, userID uuid.UUID, lat, lon float64) error
	RemoveLocation(ctx context.Context, tenantID, userID uuid.UUID) error
	Nearby(ctx context.Context, tenantID uuid.UUID, lat, lon, radiusKM float64, max int) ([]uuid.UUID, error)
}
