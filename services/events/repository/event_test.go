package repository

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/openride/openride/internal/pkg/database"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*EventRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewEventRepo(database.NewPostgresClientFromDB(sqlxDB)), mock
}

func rideEventColumns() []string {
	return []string{"id", "tenant_id", "ride_id", "actor_user_id", "kind", "payload", "created_at"}
}

func driverEventColumns() []string {
	return []string{"id", "tenant_id", "driver_id", "actor_user_id", "kind", "payload", "created_at"}
}

func TestInsertRideEvent(t *testing.T) {
	repo, mock := newTestRepo(t)
	ev := &models.RideEvent{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		RideID:   uuid.New(),
		Kind:     models.EventRideRequested,
		Payload:  json.RawMessage(`{"ride":{}}`),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ride_events`)).
		WithArgs(ev.ID, ev.TenantID, ev.RideID, ev.ActorUserID, ev.Kind, ev.Payload).
		WillReturnRows(sqlmock.NewRows(rideEventColumns()).
			AddRow(ev.ID, ev.TenantID, ev.RideID, nil, ev.Kind, ev.Payload, time.Now()))

	inserted, err := repo.InsertRideEvent(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, inserted.ID)
	assert.Equal(t, models.EventRideRequested, inserted.Kind)
}

func TestListRideEventsOldestFirst(t *testing.T) {
	repo, mock := newTestRepo(t)
	rideID := uuid.New()
	tenantID := uuid.New()
	base := time.Now().Add(-time.Hour)

	rows := sqlmock.NewRows(rideEventColumns()).
		AddRow(uuid.New(), tenantID, rideID, nil, models.EventRideRequested, json.RawMessage(`{}`), base).
		AddRow(uuid.New(), tenantID, rideID, nil, models.EventRideAssigned, json.RawMessage(`{}`), base.Add(time.Minute)).
		AddRow(uuid.New(), tenantID, rideID, nil, models.EventRideAccepted, json.RawMessage(`{}`), base.Add(2*time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at ASC`)).
		WithArgs(rideID, int64(10), int64(0)).
		WillReturnRows(rows)

	events, err := repo.ListRideEvents(context.Background(), rideID, 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, models.EventRideRequested, events[0].Kind)
	assert.Equal(t, models.EventRideAssigned, events[1].Kind)
	assert.Equal(t, models.EventRideAccepted, events[2].Kind)
	assert.True(t, events[0].CreatedAt.Before(events[2].CreatedAt))
}

func TestListDriverEventsNewestFirst(t *testing.T) {
	repo, mock := newTestRepo(t)
	driverID := uuid.New()
	tenantID := uuid.New()
	base := time.Now().Add(-time.Hour)

	rows := sqlmock.NewRows(driverEventColumns()).
		AddRow(uuid.New(), tenantID, driverID, nil, models.EventDriverWentOffline, json.RawMessage(`{}`), base.Add(time.Minute)).
		AddRow(uuid.New(), tenantID, driverID, nil, models.EventDriverWentOnline, json.RawMessage(`{}`), base)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
		WithArgs(driverID, int64(10), int64(0)).
		WillReturnRows(rows)

	events, err := repo.ListDriverEvents(context.Background(), driverID, 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.EventDriverWentOffline, events[0].Kind)
	assert.Equal(t, models.EventDriverWentOnline, events[1].Kind)
	assert.True(t, events[0].CreatedAt.After(events[1].CreatedAt))
}

func TestCountRideEvents(t *testing.T) {
	repo, mock := newTestRepo(t)
	rideID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM ride_events WHERE ride_id = $1`)).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(25)))

	count, err := repo.CountRideEvents(context.Background(), rideID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), count)
}

func TestCountDriverEvents(t *testing.T) {
	repo, mock := newTestRepo(t)
	driverID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM driver_events WHERE driver_id = $1`)).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountDriverEvents(context.Background(), driverID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
