package pricing

import (
	"context"

	"github.com/google/uuid"
)

// PricingUC defines the interface for surge pricing and fare calculation.
// Record and multiplier operations are best-effort: they log failures and
// never propagate them to the caller's flow.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/openride/openride/services/pricing PricingUC
type PricingUC interface {
	RecordDemand(ctx context.Context, tenantID uuid.UUID, lat, lon float64)
	RecordSupply(ctx context.Context, tenantID uuid.UUID, lat, lon float64)
	CurrentMultiplier(ctx context.Context, tenantID uuid.UUID, lat, lon float64) float64
	FareForDistance(distanceKM float64) float64
}

// SurgeRepo defines the interface for demand/supply counters per grid cell
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/openride/openride/services/pricing SurgeRepo
type SurgeRepo interface {
	IncrDemand(ctx context.Context, tenantID uuid.UUID, cell string) error
	IncrSupply(ctx context.Context, tenantID uuid.UUID, cell string) error
	GetCounters(ctx context.Context, tenantID uuid.UUID, cell string) (demand, supply int64, err error)
}
