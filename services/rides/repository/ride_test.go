package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/openride/openride/internal/pkg/database"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/services/rides"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*RideRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRideRepo(database.NewPostgresClientFromDB(sqlxDB)), mock
}

func rideColumns() []string {
	return []string{
		"id", "tenant_id", "rider_id", "driver_id",
		"pickup_lat", "pickup_lon", "pickup_address",
		"dest_lat", "dest_lon", "dest_address",
		"tier", "payment_method_id", "status", "created_at", "updated_at",
	}
}

func rideRow(id, tenantID, riderID uuid.UUID, driverID interface{}, status models.RideStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(rideColumns()).AddRow(
		id, tenantID, riderID, driverID,
		-6.2088, 106.8456, nil,
		-6.1751, 106.8650, nil,
		"standard", "pm-1", string(status), now, now,
	)
}

func TestGetRide(t *testing.T) {
	t.Run("returns the ride", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		rideID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM rides WHERE id = $1`)).
			WithArgs(rideID).
			WillReturnRows(rideRow(rideID, uuid.New(), uuid.New(), nil, models.RideStatusRequested))

		ride, err := repo.GetRide(context.Background(), rideID)
		require.NoError(t, err)
		assert.Equal(t, rideID, ride.ID)
		assert.Equal(t, models.RideStatusRequested, ride.Status)
		assert.Nil(t, ride.DriverID)
	})

	t.Run("missing ride is nil without error", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		rideID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM rides WHERE id = $1`)).
			WithArgs(rideID).
			WillReturnRows(sqlmock.NewRows(rideColumns()))

		ride, err := repo.GetRide(context.Background(), rideID)
		require.NoError(t, err)
		assert.Nil(t, ride)
	})
}

func TestAssignDriver(t *testing.T) {
	t.Run("moves a requested ride to assigned", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		rideID := uuid.New()
		driverUserID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rides`)).
			WithArgs(rideID, driverUserID, "assigned", "requested").
			WillReturnRows(rideRow(rideID, uuid.New(), uuid.New(), driverUserID, models.RideStatusAssigned))

		ride, err := repo.AssignDriver(context.Background(), rideID, driverUserID)
		require.NoError(t, err)
		assert.Equal(t, models.RideStatusAssigned, ride.Status)
		require.NotNil(t, ride.DriverID)
		assert.Equal(t, driverUserID, *ride.DriverID)
	})

	t.Run("ride that left requested is a status conflict", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		rideID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rides`)).
			WillReturnRows(sqlmock.NewRows(rideColumns()))

		_, err := repo.AssignDriver(context.Background(), rideID, uuid.New())
		assert.ErrorIs(t, err, rides.ErrStatusConflict)
	})
}

func TestTransitionStatus(t *testing.T) {
	t.Run("applies the conditional update", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		rideID := uuid.New()
		driverUserID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rides`)).
			WithArgs(rideID, "accepted", "assigned").
			WillReturnRows(rideRow(rideID, uuid.New(), uuid.New(), driverUserID, models.RideStatusAccepted))

		ride, err := repo.TransitionStatus(context.Background(), rideID,
			models.RideStatusAssigned, models.RideStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.RideStatusAccepted, ride.Status)
	})

	t.Run("stale expected status is a status conflict", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rides`)).
			WillReturnRows(sqlmock.NewRows(rideColumns()))

		_, err := repo.TransitionStatus(context.Background(), uuid.New(),
			models.RideStatusInProgress, models.RideStatusCompleted)
		assert.ErrorIs(t, err, rides.ErrStatusConflict)
	})
}

func TestClearDriver(t *testing.T) {
	repo, mock := newTestRepo(t)
	rideID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rides`)).
		WithArgs(rideID, "requested", "assigned").
		WillReturnRows(rideRow(rideID, uuid.New(), uuid.New(), nil, models.RideStatusRequested))

	ride, err := repo.ClearDriver(context.Background(), rideID)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusRequested, ride.Status)
	assert.Nil(t, ride.DriverID)
}
