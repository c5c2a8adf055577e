package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/database"
)

// SurgeRepo implements surge counter storage on redis. Each tenant/cell
// pair keeps a demand counter and a supply counter; counters expire after
// the configured window so the signal reflects recent activity only.
type SurgeRepo struct {
	client *redis.Client
	window time.Duration
}

// NewSurgeRepo creates a new surge repository
func NewSurgeRepo(client *database.RedisClient, window time.Duration) *SurgeRepo {
	return &SurgeRepo{
		client: client.GetClient(),
		window: window,
	}
}

func demandKey(tenantID uuid.UUID, cell string) string {
	return fmt.Sprintf("surge:%s:%s:demand", tenantID, cell)
}

func supplyKey(tenantID uuid.UUID, cell string) string {
	return fmt.Sprintf("surge:%s:%s:supply", tenantID, cell)
}

// IncrDemand bumps the demand counter for the cell
func (r *SurgeRepo) IncrDemand(ctx context.Context, tenantID uuid.UUID, cell string) error {
	return r.incr(ctx, demandKey(tenantID, cell))
}

// IncrSupply bumps the supply counter for the cell
func (r *SurgeRepo) IncrSupply(ctx context.Context, tenantID uuid.UUID, cell string) error {
	return r.incr(ctx, supplyKey(tenantID, cell))
}

func (r *SurgeRepo) incr(ctx context.Context, key string) error {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to increment surge counter: %w", err)
	}
	// First increment starts the window; later ones ride it out.
	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			return fmt.Errorf("failed to set surge counter expiry: %w", err)
		}
	}
	return nil
}

// GetCounters reads both counters for the cell. Missing keys read as zero.
func (r *SurgeRepo) GetCounters(ctx context.Context, tenantID uuid.UUID, cell string) (int64, int64, error) {
	demand, err := r.getCount(ctx, demandKey(tenantID, cell))
	if err != nil {
		return 0, 0, err
	}
	supply, err := r.getCount(ctx, supplyKey(tenantID, cell))
	if err != nil {
		return 0, 0, err
	}
	return demand, supply, nil
}

func (r *SurgeRepo) getCount(ctx context.Context, key string) (int64, error) {
	count, err := r.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read surge counter: %w", err)
	}
	return count, nil
}
