package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/database"
)

// GeoRepo implements the drivers.GeoRepo interface on redis GEO sets,
// one set per tenant keyed by driver user id.
type GeoRepo struct {
	client *redis.Client
}

// NewGeoRepo creates a new geo repository
func NewGeoRepo(client *database.RedisClient) *GeoRepo {
	return &GeoRepo{client: client.GetClient()}
}

func geoKey(tenantID uuid.UUID) string {
	return fmt.Sprintf("drivers:geo:%s", tenantID)
}

// UpsertLocation adds or moves a driver in the tenant's geo set
func (r *GeoRepo) UpsertLocation(ctx context.Context, tenantID, userID uuid.UUID, lat, lon float64) error {
	err := r.client.GeoAdd(ctx, geoKey(tenantID), &redis.GeoLocation{
		Name:      userID.String(),
		Latitude:  lat,
		Longitude: lon,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to upsert driver location: %w", err)
	}
	return nil
}

// RemoveLocation drops a driver from the tenant's geo set
func (r *GeoRepo) RemoveLocation(ctx context.Context, tenantID, userID uuid.UUID) error {
	err := r.client.ZRem(ctx, geoKey(tenantID), userID.String()).Err()
	if err != nil {
		return fmt.Errorf("failed to remove driver location: %w", err)
	}
	return nil
}

// Nearby returns the user ids of drivers within radiusKM of the point,
// closest first, capped at max.
func (r *GeoRepo) Nearby(ctx context.Context, tenantID uuid.UUID, lat, lon, radiusKM float64, max int) ([]uuid.UUID, error) {
	locations, err := r.client.GeoRadius(ctx, geoKey(tenantID), lon, lat, &redis.GeoRadiusQuery{
		Radius: radiusKM,
		Unit:   "km",
		Count:  max,
		Sort:   "ASC",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby drivers: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		userID, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		userIDs = append(userIDs, userID)
	}
	return userIDs, nil
}
