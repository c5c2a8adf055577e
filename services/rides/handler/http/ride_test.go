package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/openride/openride/internal/pkg/apperrors"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string, claims *models.UserClaims) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = apperrors.EchoErrorHandler

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("claims", &jwt.Token{Claims: claims})
	return c, rec
}

func TestRequestRideHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &models.UserClaims{UserID: uuid.New(), TenantID: uuid.New(), Role: models.RoleRider}
	ride := &models.Ride{ID: uuid.New(), RiderID: claims.UserID, Status: models.RideStatusRequested}

	rideUC := mocks.NewMockRideUC(ctrl)
	rideUC.EXPECT().RequestRide(gomock.Any(), claims, gomock.Any()).Return(ride, 1.5, nil)

	body := `{"pickup":{"lat":-6.2,"lon":106.8},"destination":{"lat":-6.1,"lon":106.9},"tier":"standard","payment_method_id":"pm-1"}`
	c, rec := newTestContext(t, http.MethodPost, "/rides", body, claims)

	handler := NewRideHandler(rideUC)
	require.NoError(t, handler.RequestRide(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			SurgeMultiplier float64 `json:"surge_multiplier"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1.5, resp.Data.SurgeMultiplier)
}

func TestGetRideHandler(t *testing.T) {
	t.Run("invalid ride id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		claims := &models.UserClaims{UserID: uuid.New(), Role: models.RoleRider}
		c, _ := newTestContext(t, http.MethodGet, "/rides/abc", "", claims)
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		handler := NewRideHandler(mocks.NewMockRideUC(ctrl))
		err := handler.GetRide(c)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	})

	t.Run("usecase errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		claims := &models.UserClaims{UserID: uuid.New(), Role: models.RoleRider}
		rideID := uuid.New()

		rideUC := mocks.NewMockRideUC(ctrl)
		rideUC.EXPECT().GetRide(gomock.Any(), claims, rideID).
			Return(nil, apperrors.NotFound("ride not found"))

		c, _ := newTestContext(t, http.MethodGet, "/rides/"+rideID.String(), "", claims)
		c.SetParamNames("id")
		c.SetParamValues(rideID.String())

		handler := NewRideHandler(rideUC)
		err := handler.GetRide(c)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	})
}

func TestAcceptRideHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &models.UserClaims{UserID: uuid.New(), Role: models.RoleDriver}
	rideID := uuid.New()
	accepted := &models.Ride{ID: rideID, Status: models.RideStatusAccepted}

	rideUC := mocks.NewMockRideUC(ctrl)
	rideUC.EXPECT().AcceptRide(gomock.Any(), claims, rideID).Return(accepted, nil)

	c, rec := newTestContext(t, http.MethodPost, "/rides/"+rideID.String()+"/accept", "", claims)
	c.SetParamNames("id")
	c.SetParamValues(rideID.String())

	handler := NewRideHandler(rideUC)
	require.NoError(t, handler.AcceptRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
