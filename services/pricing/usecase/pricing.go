package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/logger"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/internal/utils"
	"github.com/openride/openride/services/pricing"
)

const (
	minMultiplier = 1.0
	maxMultiplier = 3.0
)

// PricingUC implements the pricing.PricingUC interface
type PricingUC struct {
	cfg       models.PricingConfig
	surgeRepo pricing.SurgeRepo
}

// NewPricingUC creates a new pricing usecase
func NewPricingUC(cfg models.PricingConfig, surgeRepo pricing.SurgeRepo) *PricingUC {
	return &PricingUC{
		cfg:       cfg,
		surgeRepo: surgeRepo,
	}
}

// RecordDemand bumps the demand counter for the cell containing the point.
// Counter failures are logged and swallowed.
func (uc *PricingUC) RecordDemand(ctx context.Context, tenantID uuid.UUID, lat, lon float64) {
	cell := utils.SurgeCell(lat, lon)
	if err := uc.surgeRepo.IncrDemand(ctx, tenantID, cell); err != nil {
		logger.Warn("Failed to record surge demand",
			logger.String("tenant_id", tenantID.String()),
			logger.String("cell", cell),
			logger.Err(err))
	}
}

// RecordSupply bumps the supply counter for the cell containing the point.
// Counter failures are logged and swallowed.
func (uc *PricingUC) RecordSupply(ctx context.Context, tenantID uuid.UUID, lat, lon float64) {
	cell := utils.SurgeCell(lat, lon)
	if err := uc.surgeRepo.IncrSupply(ctx, tenantID, cell); err != nil {
		logger.Warn("Failed to record surge supply",
			logger.String("tenant_id", tenantID.String()),
			logger.String("cell", cell),
			logger.Err(err))
	}
}

// CurrentMultiplier computes the surge multiplier for the cell containing
// the point. Any storage failure degrades to the neutral multiplier.
func (uc *PricingUC) CurrentMultiplier(ctx context.Context, tenantID uuid.UUID, lat, lon float64) float64 {
	cell := utils.SurgeCell(lat, lon)
	demand, supply, err := uc.surgeRepo.GetCounters(ctx, tenantID, cell)
	if err != nil {
		logger.Warn("Failed to read surge counters, using neutral multiplier",
			logger.String("tenant_id", tenantID.String()),
			logger.String("cell", cell),
			logger.Err(err))
		return minMultiplier
	}
	return Multiplier(demand, supply)
}

// Multiplier maps demand/supply counts to a surge multiplier. Zero supply
// pins the ratio at the ceiling regardless of demand; the half-dampened
// ratio keeps the multiplier within [1.0, 3.0].
func Multiplier(demand, supply int64) float64 {
	ratio := maxMultiplier
	if supply > 0 {
		ratio = float64(demand) / float64(supply)
	}
	multiplier := 1.0 + (ratio-1.0)*0.5
	return math.Min(math.Max(multiplier, minMultiplier), maxMultiplier)
}

// FareForDistance prices a ride at the per-kilometer rate, rounded to the
// nearest whole unit.
func (uc *PricingUC) FareForDistance(distanceKM float64) float64 {
	return math.Round(distanceKM * uc.cfg.RatePerKM)
}
