package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/models"
	drivermocks "github.com/openride/openride/services/drivers/mocks"
	eventmocks "github.com/openride/openride/services/events/mocks"
	"github.com/openride/openride/services/rides"
	ridemocks "github.com/openride/openride/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dispatchFixture struct {
	rideRepo   *ridemocks.MockRideRepo
	driverRepo *drivermocks.MockDriverRepo
	notifier   *ridemocks.MockNotifier
	recorder   *eventmocks.MockRecorder
	uc         *DispatchUC
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &dispatchFixture{
		rideRepo:   ridemocks.NewMockRideRepo(ctrl),
		driverRepo: drivermocks.NewMockDriverRepo(ctrl),
		notifier:   ridemocks.NewMockNotifier(ctrl),
		recorder:   eventmocks.NewMockRecorder(ctrl),
	}
	f.uc = NewDispatchUC(f.rideRepo, f.driverRepo, f.notifier, f.recorder)
	return f
}

func requestedRide() *models.Ride {
	return &models.Ride{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		RiderID:  uuid.New(),
		Status:   models.RideStatusRequested,
	}
}

func onlineDriver() *models.Driver {
	return &models.Driver{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		IsOnline: true,
	}
}

func TestDispatchRide(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns the stalest online driver", func(t *testing.T) {
		f := newDispatchFixture(t)
		ride := requestedRide()
		driver := onlineDriver()
		assigned := *ride
		assigned.Status = models.RideStatusAssigned
		assigned.DriverID = &driver.UserID

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
		f.driverRepo.EXPECT().FirstOnlineByStaleness(gomock.Any()).Return(driver, nil)
		f.rideRepo.EXPECT().AssignDriver(gomock.Any(), ride.ID, driver.UserID).Return(&assigned, nil)
		// System-caused assignment has no actor.
		f.recorder.EXPECT().RecordRideEvent(gomock.Any(), ride.TenantID, ride.ID, gomock.Nil(),
			models.EventRideAssigned, gomock.Any())
		f.notifier.EXPECT().Publish(ride.RiderID, models.EventRideAssigned, gomock.Any())
		f.notifier.EXPECT().Publish(driver.UserID, models.EventRideAssignedDriver, gomock.Any())

		require.NoError(t, f.uc.DispatchRide(ctx, ride.ID))
	})

	t.Run("unknown ride is dropped", func(t *testing.T) {
		f := newDispatchFixture(t)
		f.rideRepo.EXPECT().GetRide(gomock.Any(), gomock.Any()).Return(nil, nil)

		require.NoError(t, f.uc.DispatchRide(ctx, uuid.New()))
	})

	t.Run("already dispatched ride is a no-op", func(t *testing.T) {
		f := newDispatchFixture(t)
		ride := requestedRide()
		ride.Status = models.RideStatusAccepted

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

		require.NoError(t, f.uc.DispatchRide(ctx, ride.ID))
	})

	t.Run("no online drivers leaves the ride requested", func(t *testing.T) {
		f := newDispatchFixture(t)
		ride := requestedRide()

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
		f.driverRepo.EXPECT().FirstOnlineByStaleness(gomock.Any()).Return(nil, nil)

		require.NoError(t, f.uc.DispatchRide(ctx, ride.ID))
	})

	t.Run("lost race against another dispatcher is benign", func(t *testing.T) {
		f := newDispatchFixture(t)
		ride := requestedRide()
		driver := onlineDriver()

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
		f.driverRepo.EXPECT().FirstOnlineByStaleness(gomock.Any()).Return(driver, nil)
		f.rideRepo.EXPECT().AssignDriver(gomock.Any(), ride.ID, driver.UserID).
			Return(nil, rides.ErrStatusConflict)

		require.NoError(t, f.uc.DispatchRide(ctx, ride.ID))
	})

	t.Run("storage failure is returned for requeue", func(t *testing.T) {
		f := newDispatchFixture(t)
		ride := requestedRide()

		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
		f.driverRepo.EXPECT().FirstOnlineByStaleness(gomock.Any()).
			Return(nil, errors.New("db down"))

		err := f.uc.DispatchRide(ctx, ride.ID)
		assert.Error(t, err)
	})
}
