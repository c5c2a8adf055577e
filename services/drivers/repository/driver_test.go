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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriverRepo(t *testing.T) (*DriverRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewDriverRepo(database.NewPostgresClientFromDB(sqlxDB)), mock
}

func driverColumns() []string {
	return []string{"id", "tenant_id", "user_id", "is_online", "lat", "lon", "created_at", "updated_at"}
}

func driverRow(id uuid.UUID, online bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(driverColumns()).
		AddRow(id, uuid.New(), uuid.New(), online, -6.2, 106.8, now, now)
}

func TestGetByTenantAndUser(t *testing.T) {
	t.Run("returns the row", func(t *testing.T) {
		repo, mock := newTestDriverRepo(t)
		tenantID, userID := uuid.New(), uuid.New()
		driverID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM drivers WHERE tenant_id = $1 AND user_id = $2`)).
			WithArgs(tenantID, userID).
			WillReturnRows(driverRow(driverID, true))

		driver, err := repo.GetByTenantAndUser(context.Background(), tenantID, userID)
		require.NoError(t, err)
		assert.Equal(t, driverID, driver.ID)
	})

	t.Run("absent row is nil without error", func(t *testing.T) {
		repo, mock := newTestDriverRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM drivers WHERE tenant_id = $1 AND user_id = $2`)).
			WillReturnRows(sqlmock.NewRows(driverColumns()))

		driver, err := repo.GetByTenantAndUser(context.Background(), uuid.New(), uuid.New())
		require.NoError(t, err)
		assert.Nil(t, driver)
	})
}

func TestFirstOnlineByStaleness(t *testing.T) {
	t.Run("picks the longest-idle online driver", func(t *testing.T) {
		repo, mock := newTestDriverRepo(t)
		driverID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT * FROM drivers WHERE is_online = TRUE ORDER BY updated_at ASC LIMIT 1`)).
			WillReturnRows(driverRow(driverID, true))

		driver, err := repo.FirstOnlineByStaleness(context.Background())
		require.NoError(t, err)
		assert.Equal(t, driverID, driver.ID)
	})

	t.Run("nobody online is nil without error", func(t *testing.T) {
		repo, mock := newTestDriverRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM drivers`)).
			WillReturnRows(sqlmock.NewRows(driverColumns()))

		driver, err := repo.FirstOnlineByStaleness(context.Background())
		require.NoError(t, err)
		assert.Nil(t, driver)
	})
}

func TestSetPresence(t *testing.T) {
	repo, mock := newTestDriverRepo(t)
	driverID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE drivers`)).
		WithArgs(driverID, false, nil, nil).
		WillReturnRows(sqlmock.NewRows(driverColumns()).
			AddRow(driverID, uuid.New(), uuid.New(), false, nil, nil, now, now))

	driver, err := repo.SetPresence(context.Background(), driverID, false, nil, nil)
	require.NoError(t, err)
	assert.False(t, driver.IsOnline)
}
