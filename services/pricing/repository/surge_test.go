package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*SurgeRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &SurgeRepo{client: client, window: 10 * time.Minute}, mr
}

func TestSurgeCountersIncrementIndependently(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	require.NoError(t, repo.IncrDemand(ctx, tenantID, "123:456"))
	require.NoError(t, repo.IncrDemand(ctx, tenantID, "123:456"))
	require.NoError(t, repo.IncrSupply(ctx, tenantID, "123:456"))

	demand, supply, err := repo.GetCounters(ctx, tenantID, "123:456")
	require.NoError(t, err)
	assert.Equal(t, int64(2), demand)
	assert.Equal(t, int64(1), supply)
}

func TestSurgeCountersScopedByTenantAndCell(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	tenantA := uuid.New()
	tenantB := uuid.New()

	require.NoError(t, repo.IncrDemand(ctx, tenantA, "123:456"))

	demand, _, err := repo.GetCounters(ctx, tenantB, "123:456")
	require.NoError(t, err)
	assert.Equal(t, int64(0), demand)

	demand, _, err = repo.GetCounters(ctx, tenantA, "124:456")
	require.NoError(t, err)
	assert.Equal(t, int64(0), demand)
}

func TestSurgeCountersMissingKeysReadAsZero(t *testing.T) {
	repo, _ := newTestRepo(t)

	demand, supply, err := repo.GetCounters(context.Background(), uuid.New(), "0:0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), demand)
	assert.Equal(t, int64(0), supply)
}

func TestSurgeCountersExpireAfterWindow(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	require.NoError(t, repo.IncrDemand(ctx, tenantID, "123:456"))

	mr.FastForward(11 * time.Minute)

	demand, _, err := repo.GetCounters(ctx, tenantID, "123:456")
	require.NoError(t, err)
	assert.Equal(t, int64(0), demand)
}

func TestSurgeCounterWindowNotExtendedByLaterIncrements(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	tenantID := uuid.New()

	require.NoError(t, repo.IncrDemand(ctx, tenantID, "123:456"))
	mr.FastForward(9 * time.Minute)
	require.NoError(t, repo.IncrDemand(ctx, tenantID, "123:456"))
	mr.FastForward(2 * time.Minute)

	demand, _, err := repo.GetCounters(ctx, tenantID, "123:456")
	require.NoError(t, err)
	assert.Equal(t, int64(0), demand)
}
