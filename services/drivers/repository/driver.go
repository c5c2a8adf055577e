package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/database"
	"github.com/openride/openride/internal/pkg/models"
)

// DriverRepo implements the drivers.DriverRepo interface on PostgreSQL
type DriverRepo struct {
	db *database.PostgresClient
}

// NewDriverRepo creates a new driver repository
func NewDriverRepo(db *database.PostgresClient) *DriverRepo {
	return &DriverRepo{db: db}
}

// GetByTenantAndUser loads the driver row for a user within a tenant.
// Returns (nil, nil) when the user has never gone online.
func (r *DriverRepo) GetByTenantAndUser(ctx context.Context, tenantID, userID uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.GetDB().GetContext(ctx, &driver,
		`SELECT * FROM drivers WHERE tenant_id = $1 AND user_id = $2`, tenantID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// GetByID loads a driver row by its id. Returns (nil, nil) when absent.
func (r *DriverRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.GetDB().GetContext(ctx, &driver, `SELECT * FROM drivers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// Create inserts the driver row created on the first go-online call
func (r *DriverRepo) Create(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	query := `
		INSERT INTO drivers (id, tenant_id, user_id, is_online, lat, lon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING *`

	var created models.Driver
	err := r.db.GetDB().GetContext(ctx, &created, query,
		driver.ID, driver.TenantID, driver.UserID, driver.IsOnline, driver.Lat, driver.Lon)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	return &created, nil
}

// SetPresence flips the online flag and refreshes the last known position
func (r *DriverRepo) SetPresence(ctx context.Context, id uuid.UUID, online bool, lat, lon *float64) (*models.Driver, error) {
	query := `
		UPDATE drivers
		SET is_online = $2, lat = $3, lon = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING *`

	var updated models.Driver
	err := r.db.GetDB().GetContext(ctx, &updated, query, id, online, lat, lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update driver presence: %w", err)
	}
	return &updated, nil
}

// UpdateLocation stores the driver's latest position and bumps updated_at,
// which pushes the driver to the back of the dispatch staleness order.
func (r *DriverRepo) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) (*models.Driver, error) {
	query := `
		UPDATE drivers
		SET lat = $2, lon = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING *`

	var updated models.Driver
	err := r.db.GetDB().GetContext(ctx, &updated, query, id, lat, lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update driver location: %w", err)
	}
	return &updated, nil
}

// FirstOnlineByStaleness returns the online driver whose record has gone
// longest without an update, across all tenants. Returns (nil, nil) when
// nobody is online.
func (r *DriverRepo) FirstOnlineByStaleness(ctx context.Context) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.GetDB().GetContext(ctx, &driver,
		`SELECT * FROM drivers WHERE is_online = TRUE ORDER BY updated_at ASC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find online driver: %w", err)
	}
	return &driver, nil
}
