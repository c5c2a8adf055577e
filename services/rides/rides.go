package rides

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openride/openride/internal/pkg/models"
)

// ErrStatusConflict is returned by conditional status updates when the ride
// is no longer in the expected prior status.
var ErrStatusConflict = errors.New("ride is not in the expected status")

// RideUC defines the interface for ride lifecycle business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/openride/openride/services/rides RideUC
type RideUC interface {
	RequestRide(ctx context.Context, actor *models.UserClaims, req *models.RideRequest) (*models.Ride, float64, error)
	GetRide(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error)
	ListRides(ctx context.Context, actor *models.UserClaims, limit, offset int64) ([]models.Ride, error)
	AcceptRide(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error)
	RejectRide(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error)
	StartRide(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error)
	CompleteRide(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error)
}

// RideRepo defines the interface for ride data access. All status updates
// are conditional on the expected prior status and return ErrStatusConflict
// when a concurrent writer won the race.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/openride/openride/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	ListRidesByRider(ctx context.Context, riderID uuid.UUID, limit, offset int64) ([]models.Ride, error)
	AssignDriver(ctx context.Context, rideID, driverUserID uuid.UUID) (*models.Ride, error)
	ClearDriver(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	TransitionStatus(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) (*models.Ride, error)
}

// DispatchGW enqueues dispatch jobs for newly requested rides
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/openride/openride/services/rides DispatchGW
type DispatchGW interface {
	PublishDispatchRequest(ctx context.Context, rideID uuid.UUID) error
}

// Notifier delivers realtime notifications to connected users.
// Implementations are fire-and-forget.
//
//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/openride/openride/services/rides Notifier
type Notifier interface {
	Publish(userID uuid.UUID, kind string, payload interface{})
}
