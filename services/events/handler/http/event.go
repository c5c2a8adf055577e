package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/openride/openride/internal/pkg/apperrors"
	"github.com/openride/openride/internal/pkg/middleware"
	"github.com/openride/openride/internal/utils"
	"github.com/openride/openride/services/events"
)

// EventHandler exposes the event log over HTTP
type EventHandler struct {
	eventUC events.EventUC
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventUC events.EventUC) *EventHandler {
	return &EventHandler{eventUC: eventUC}
}

// RegisterRoutes registers event endpoints on the authenticated group
func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/rides/:id/events", h.ListRideEvents)
	g.GET("/drivers/:id/events", h.ListDriverEvents)
}

// ListRideEvents handles GET /rides/:id/events
func (h *EventHandler) ListRideEvents(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("id", "invalid ride id")
	}

	page, limit, skip := utils.GetPaginationParams(c)
	result, err := h.eventUC.ListRideEvents(c.Request().Context(), actor, rideID, page, limit, skip)
	if err != nil {
		return err
	}

	utils.SetPaginationHeaders(c, result.Total, result.TotalPages, result.Page, result.Limit)
	return utils.SuccessResponse(c, http.StatusOK, "Ride events retrieved", result.Events)
}

// ListDriverEvents handles GET /drivers/:id/events
func (h *EventHandler) ListDriverEvents(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.Validation("id", "invalid driver id")
	}

	page, limit, skip := utils.GetPaginationParams(c)
	result, err := h.eventUC.ListDriverEvents(c.Request().Context(), actor, driverID, page, limit, skip)
	if err != nil {
		return err
	}

	utils.SetPaginationHeaders(c, result.Total, result.TotalPages, result.Page, result.Limit)
	return utils.SuccessResponse(c, http.StatusOK, "Driver events retrieved", result.Events)
}
