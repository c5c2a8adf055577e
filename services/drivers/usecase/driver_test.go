package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/apperrors"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/services/drivers/mocks"
	eventmocks "github.com/openride/openride/services/events/mocks"
	pricingmocks "github.com/openride/openride/services/pricing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type driverFixture struct {
	driverRepo *mocks.MockDriverRepo
	geoRepo    *mocks.MockGeoRepo
	recorder   *eventmocks.MockRecorder
	pricingUC  *pricingmocks.MockPricingUC
	uc         *DriverUC
}

func newDriverFixture(t *testing.T) *driverFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &driverFixture{
		driverRepo: mocks.NewMockDriverRepo(ctrl),
		geoRepo:    mocks.NewMockGeoRepo(ctrl),
		recorder:   eventmocks.NewMockRecorder(ctrl),
		pricingUC:  pricingmocks.NewMockPricingUC(ctrl),
	}
	f.uc = NewDriverUC(f.driverRepo, f.geoRepo, f.recorder, f.pricingUC)
	return f
}

func driverClaims() *models.UserClaims {
	return &models.UserClaims{UserID: uuid.New(), TenantID: uuid.New(), Role: models.RoleDriver}
}

func assertAppError(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	appErr, ok := apperrors.As(err)
	require.True(t, ok, "expected app error, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestGoOnline(t *testing.T) {
	ctx := context.Background()
	req := &models.DriverLocationRequest{Lat: -6.2088, Lon: 106.8456}

	t.Run("first call creates the presence row", func(t *testing.T) {
		f := newDriverFixture(t)
		actor := driverClaims()

		f.driverRepo.EXPECT().GetByTenantAndUser(gomock.Any(), actor.TenantID, actor.UserID).
			Return(nil, nil)
		f.driverRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *models.Driver) (*models.Driver, error) {
				assert.Equal(t, actor.TenantID, d.TenantID)
				assert.Equal(t, actor.UserID, d.UserID)
				assert.True(t, d.IsOnline)
				return d, nil
			})
		f.recorder.EXPECT().RecordDriverEvent(gomock.Any(), actor.TenantID, gomock.Any(), &actor.UserID,
			models.EventDriverWentOnline, gomock.Any())
		f.geoRepo.EXPECT().UpsertLocation(gomock.Any(), actor.TenantID, actor.UserID, req.Lat, req.Lon).
			Return(nil)
		f.pricingUC.EXPECT().RecordSupply(gomock.Any(), actor.TenantID, req.Lat, req.Lon)

		driver, err := f.uc.GoOnline(ctx, actor, req)
		require.NoError(t, err)
		assert.True(t, driver.IsOnline)
	})

	t.Run("later calls reuse the row", func(t *testing.T) {
		f := newDriverFixture(t)
		actor := driverClaims()
		existing := &models.Driver{ID: uuid.New(), TenantID: actor.TenantID, UserID: actor.UserID}
		online := *existing
		online.IsOnline = true
		online.Lat, online.Lon = &req.Lat, &req.Lon

		f.driverRepo.EXPECT().GetByTenantAndUser(gomock.Any(), actor.TenantID, actor.UserID).
			Return(existing, nil)
		f.driverRepo.EXPECT().SetPresence(gomock.Any(), existing.ID, true, &req.Lat, &req.Lon).
			Return(&online, nil)
		f.recorder.EXPECT().RecordDriverEvent(gomock.Any(), actor.TenantID, existing.ID, &actor.UserID,
			models.EventDriverWentOnline, gomock.Any())
		f.geoRepo.EXPECT().UpsertLocation(gomock.Any(), actor.TenantID, actor.UserID, req.Lat, req.Lon).
			Return(nil)
		f.pricingUC.EXPECT().RecordSupply(gomock.Any(), actor.TenantID, req.Lat, req.Lon)

		driver, err := f.uc.GoOnline(ctx, actor, req)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, driver.ID)
	})

	t.Run("riders cannot go online", func(t *testing.T) {
		f := newDriverFixture(t)
		actor := driverClaims()
		actor.Role = models.RoleRider

		_, err := f.uc.GoOnline(ctx, actor, req)
		assertAppError(t, err, apperrors.CodeForbidden)
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		f := newDriverFixture(t)

		_, err := f.uc.GoOnline(ctx, driverClaims(), &models.DriverLocationRequest{Lat: 200, Lon: 0})
		assertAppError(t, err, apperrors.CodeValidation)
	})
}

func TestGoOffline(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the driver offline and drops the geo entry", func(t *testing.T) {
		f := newDriverFixture(t)
		actor := driverClaims()
		lat, lon := -6.2, 106.8
		existing := &models.Driver{
			ID: uuid.New(), TenantID: actor.TenantID, UserID: actor.UserID,
			IsOnline: true, Lat: &lat, Lon: &lon,
		}
		offline := *existing
		offline.IsOnline = false

		f.driverRepo.EXPECT().GetByTenantAndUser(gomock.Any(), actor.TenantID, actor.UserID).
			Return(existing, nil)
		f.driverRepo.EXPECT().SetPresence(gomock.Any(), existing.ID, false, &lat, &lon).
			Return(&offline, nil)
		f.recorder.EXPECT().RecordDriverEvent(gomock.Any(), actor.TenantID, existing.ID, &actor.UserID,
			models.EventDriverWentOffline, gomock.Any())
		f.geoRepo.EXPECT().RemoveLocation(gomock.Any(), actor.TenantID, actor.UserID).Return(nil)

		driver, err := f.uc.GoOffline(ctx, actor)
		require.NoError(t, err)
		assert.False(t, driver.IsOnline)
	})

	t.Run("unknown driver", func(t *testing.T) {
		f := newDriverFixture(t)
		actor := driverClaims()

		f.driverRepo.EXPECT().GetByTenantAndUser(gomock.Any(), actor.TenantID, actor.UserID).
			Return(nil, nil)

		_, err := f.uc.GoOffline(ctx, actor)
		assertAppError(t, err, apperrors.CodeNotFound)
	})
}

func TestUpdateLocation(t *testing.T) {
	ctx := context.Background()
	req := &models.DriverLocationRequest{Lat: -6.21, Lon: 106.85}

	t.Run("online driver reports location", func(t *testing.T) {
		f := newDriverFixture(t)
		actor := driverClaims()
		existing := &models.Driver{
			ID: uuid.New(), TenantID: actor.TenantID, UserID: actor.UserID, IsOnline: true,
		}
		moved := *existing
		moved.Lat, moved.Lon = &req.Lat, &req.Lon

		f.driverRepo.EXPECT().GetByTenantAndUser(gomock.Any(), actor.TenantID, actor.UserID).
			Return(existing, nil)
		f.driverRepo.EXPECT().UpdateLocation(gomock.Any(), existing.ID, req.Lat, req.Lon).
			Return(&moved, nil)
		f.geoRepo.EXPECT().UpsertLocation(gomock.Any(), actor.TenantID, actor.UserID, req.Lat, req.Lon).
			Return(nil)
		f.pricingUC.EXPECT().RecordSupply(gomock.Any(), actor.TenantID, req.Lat, req.Lon)

		driver, err := f.uc.UpdateLocation(ctx, actor, req)
		require.NoError(t, err)
		assert.Equal(t, &req.Lat, driver.Lat)
	})

	t.Run("offline driver may not report", func(t *testing.T) {
		f := newDriverFixture(t)
		actor := driverClaims()
		existing := &models.Driver{
			ID: uuid.New(), TenantID: actor.TenantID, UserID: actor.UserID, IsOnline: false,
		}

		f.driverRepo.EXPECT().GetByTenantAndUser(gomock.Any(), actor.TenantID, actor.UserID).
			Return(existing, nil)

		_, err := f.uc.UpdateLocation(ctx, actor, req)
		assertAppError(t, err, apperrors.CodeForbidden)
	})
}

func TestNearbyDrivers(t *testing.T) {
	ctx := context.Background()

	t.Run("queries the tenant geo index", func(t *testing.T) {
		f := newDriverFixture(t)
		actor := driverClaims()
		want := []uuid.UUID{uuid.New(), uuid.New()}

		f.geoRepo.EXPECT().Nearby(gomock.Any(), actor.TenantID, -6.2, 106.8, 5.0, 10).
			Return(want, nil)

		got, err := f.uc.NearbyDrivers(ctx, actor, -6.2, 106.8, 5.0, 10)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("rejects non-positive radius", func(t *testing.T) {
		f := newDriverFixture(t)

		_, err := f.uc.NearbyDrivers(ctx, driverClaims(), -6.2, 106.8, 0, 10)
		assertAppError(t, err, apperrors.CodeValidation)
	})
}
