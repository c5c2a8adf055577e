package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/apperrors"
	"github.com/openride/openride/internal/pkg/logger"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/internal/utils"
	"github.com/openride/openride/services/drivers"
	"github.com/openride/openride/services/events"
	"github.com/openride/openride/services/pricing"
)

type locationPayload struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Geohash string  `json:"geohash"`
}

// DriverUC implements the drivers.DriverUC interface
type DriverUC struct {
	driverRepo drivers.DriverRepo
	geoRepo    drivers.GeoRepo
	recorder   events.Recorder
	pricingUC  pricing.PricingUC
}

// NewDriverUC creates a new driver usecase
func NewDriverUC(driverRepo drivers.DriverRepo, geoRepo drivers.GeoRepo, recorder events.Recorder, pricingUC pricing.PricingUC) *DriverUC {
	return &DriverUC{
		driverRepo: driverRepo,
		geoRepo:    geoRepo,
		recorder:   recorder,
		pricingUC:  pricingUC,
	}
}

// GoOnline marks the driver available for dispatch, creating the presence
// row on first use. Calling it while already online just refreshes the
// position.
func (uc *DriverUC) GoOnline(ctx context.Context, actor *models.UserClaims, req *models.DriverLocationRequest) (*models.Driver, error) {
	if !actor.IsDriver() {
		return nil, apperrors.Forbidden("only drivers can go online")
	}
	if !utils.ValidCoordinate(req.Lat, req.Lon) {
		return nil, apperrors.Validation("lat", "coordinate out of range")
	}

	driver, err := uc.driverRepo.GetByTenantAndUser(ctx, actor.TenantID, actor.UserID)
	if err != nil {
		return nil, apperrors.Internal("failed to load driver", err)
	}

	if driver == nil {
		driver, err = uc.driverRepo.Create(ctx, &models.Driver{
			ID:       uuid.New(),
			TenantID: actor.TenantID,
			UserID:   actor.UserID,
			IsOnline: true,
			Lat:      &req.Lat,
			Lon:      &req.Lon,
		})
		if err != nil {
			return nil, apperrors.Internal("failed to create driver", err)
		}
	} else {
		driver, err = uc.driverRepo.SetPresence(ctx, driver.ID, true, &req.Lat, &req.Lon)
		if err != nil {
			return nil, apperrors.Internal("failed to update driver presence", err)
		}
		if driver == nil {
			return nil, apperrors.NotFound("driver not found")
		}
	}

	uc.recorder.RecordDriverEvent(ctx, driver.TenantID, driver.ID, &actor.UserID,
		models.EventDriverWentOnline, locationPayload{
			Lat:     req.Lat,
			Lon:     req.Lon,
			Geohash: utils.EncodeLocation(req.Lat, req.Lon),
		})
	uc.indexLocation(ctx, driver, req.Lat, req.Lon)
	uc.pricingUC.RecordSupply(ctx, driver.TenantID, req.Lat, req.Lon)

	return driver, nil
}

// GoOffline withdraws the driver from dispatch. Calling it while already
// offline is a no-op that still returns the current row.
func (uc *DriverUC) GoOffline(ctx context.Context, actor *models.UserClaims) (*models.Driver, error) {
	if !actor.IsDriver() {
		return nil, apperrors.Forbidden("only drivers can go offline")
	}

	driver, err := uc.driverRepo.GetByTenantAndUser(ctx, actor.TenantID, actor.UserID)
	if err != nil {
		return nil, apperrors.Internal("failed to load driver", err)
	}
	if driver == nil {
		return nil, apperrors.NotFound("driver not found")
	}

	driver, err = uc.driverRepo.SetPresence(ctx, driver.ID, false, driver.Lat, driver.Lon)
	if err != nil {
		return nil, apperrors.Internal("failed to update driver presence", err)
	}
	if driver == nil {
		return nil, apperrors.NotFound("driver not found")
	}

	uc.recorder.RecordDriverEvent(ctx, driver.TenantID, driver.ID, &actor.UserID,
		models.EventDriverWentOffline, struct{}{})
	if err := uc.geoRepo.RemoveLocation(ctx, driver.TenantID, driver.UserID); err != nil {
		logger.Warn("Failed to remove driver from geo index",
			logger.String("driver_id", driver.ID.String()),
			logger.Err(err))
	}

	return driver, nil
}

// UpdateLocation stores the driver's latest position. Only online drivers
// may report locations.
func (uc *DriverUC) UpdateLocation(ctx context.Context, actor *models.UserClaims, req *models.DriverLocationRequest) (*models.Driver, error) {
	if !actor.IsDriver() {
		return nil, apperrors.Forbidden("only drivers can report locations")
	}
	if !utils.ValidCoordinate(req.Lat, req.Lon) {
		return nil, apperrors.Validation("lat", "coordinate out of range")
	}

	driver, err := uc.driverRepo.GetByTenantAndUser(ctx, actor.TenantID, actor.UserID)
	if err != nil {
		return nil, apperrors.Internal("failed to load driver", err)
	}
	if driver == nil {
		return nil, apperrors.NotFound("driver not found")
	}
	if !driver.IsOnline {
		return nil, apperrors.Forbidden("driver is not online")
	}

	driver, err = uc.driverRepo.UpdateLocation(ctx, driver.ID, req.Lat, req.Lon)
	if err != nil {
		return nil, apperrors.Internal("failed to update driver location", err)
	}
	if driver == nil {
		return nil, apperrors.NotFound("driver not found")
	}

	uc.indexLocation(ctx, driver, req.Lat, req.Lon)
	uc.pricingUC.RecordSupply(ctx, driver.TenantID, req.Lat, req.Lon)

	return driver, nil
}

// NearbyDrivers returns the user ids of online drivers close to a point
// in the caller's tenant, nearest first.
func (uc *DriverUC) NearbyDrivers(ctx context.Context, actor *models.UserClaims, lat, lon, radiusKM float64, max int) ([]uuid.UUID, error) {
	if !utils.ValidCoordinate(lat, lon) {
		return nil, apperrors.Validation("lat", "coordinate out of range")
	}
	if radiusKM <= 0 {
		return nil, apperrors.Validation("radius_km", "radius must be positive")
	}
	if max <= 0 {
		max = 10
	}

	userIDs, err := uc.geoRepo.Nearby(ctx, actor.TenantID, lat, lon, radiusKM, max)
	if err != nil {
		return nil, apperrors.Internal("failed to query nearby drivers", err)
	}
	return userIDs, nil
}

// indexLocation keeps the geo index in step with the driver row. Index
// failures are logged and swallowed.
func (uc *DriverUC) indexLocation(ctx context.Context, driver *models.Driver, lat, lon float64) {
	if err := uc.geoRepo.UpsertLocation(ctx, driver.TenantID, driver.UserID, lat, lon); err != nil {
		logger.Warn("Failed to index driver location",
			logger.String("driver_id", driver.ID.String()),
			logger.Err(err))
	}
}
