package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/openride/openride/internal/pkg/apperrors"
	"github.com/openride/openride/internal/pkg/middleware"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/internal/utils"
	"github.com/openride/openride/services/rides"
)

// RideHandler exposes the ride lifecycle over HTTP
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

// RegisterRoutes registers ride endpoints on the authenticated group
func (h *RideHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/rides", h.RequestRide)
	g.GET("/rides", h.ListRides)
	g.GET("/rides/:id", h.GetRide)
	g.POST("/rides/:id/accept", h.AcceptRide)
	g.POST("/rides/:id/reject", h.RejectRide)
	g.POST("/rides/:id/start", h.StartRide)
	g.POST("/rides/:id/complete", h.CompleteRide)
}

type rideResponse struct {
	Ride            *models.Ride `json:"ride"`
	SurgeMultiplier float64      `json:"surge_multiplier"`
}

// RequestRide handles POST /rides
func (h *RideHandler) RequestRide(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("body", "invalid request body")
	}

	ride, multiplier, err := h.rideUC.RequestRide(c.Request().Context(), actor, &req)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested",
		rideResponse{Ride: ride, SurgeMultiplier: multiplier})
}

// ListRides handles GET /rides
func (h *RideHandler) ListRides(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	limit := queryAsInt64(c, "limit", 0)
	offset := queryAsInt64(c, "offset", 0)

	ridesList, err := h.rideUC.ListRides(c.Request().Context(), actor, limit, offset)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved", ridesList)
}

// GetRide handles GET /rides/:id
func (h *RideHandler) GetRide(c echo.Context) error {
	return h.withRide(c, "Ride retrieved", h.rideUC.GetRide)
}

// AcceptRide handles POST /rides/:id/accept
func (h *RideHandler) AcceptRide(c echo.Context) error {
	return h.withRide(c, "Ride accepted", h.rideUC.AcceptRide)
}

// RejectRide handles POST /rides/:id/reject
func (h *RideHandler) RejectRide(c echo.Context) error {
	return h.withRide(c, "Ride rejected", h.rideUC.RejectRide)
}

// StartRide handles POST /rides/:id/start
func (h *RideHandler) StartRide(c echo.Context) error {
	return h.withRide(c, "Ride started", h.rideUC.StartRide)
}

// CompleteRide handles POST /rides/:id/complete
func (h *RideHandler) CompleteRide(c echo.Context) error {
	return h.withRide(c, "Ride completed", h.rideUC.CompleteRide)
}

func (h *RideHandler) withRide(c echo.Context, message string,
	op func(ctx context.Context, actor *models.UserClaims, rideID uuid.UUID) (*models.Ride, error)) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("id", "invalid ride id")
	}

	ride, err := op(c.Request().Context(), actor, rideID)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, http.StatusOK, message, ride)
}

func queryAsInt64(c echo.Context, name string, defaultValue int64) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
