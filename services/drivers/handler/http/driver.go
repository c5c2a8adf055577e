package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/openride/openride/internal/pkg/apperrors"
	"github.com/openride/openride/internal/pkg/middleware"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/internal/utils"
	"github.com/openride/openride/services/drivers"
)

// DriverHandler exposes driver presence over HTTP
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{driverUC: driverUC}
}

// RegisterRoutes registers driver endpoints on the authenticated group
func (h *DriverHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/drivers/online", h.GoOnline)
	g.POST("/drivers/offline", h.GoOffline)
	g.POST("/drivers/location", h.UpdateLocation)
	g.GET("/drivers/nearby", h.Nearby)
}

// GoOnline handles POST /drivers/online
func (h *DriverHandler) GoOnline(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req models.DriverLocationRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("body", "invalid request body")
	}

	driver, err := h.driverUC.GoOnline(c.Request().Context(), actor, &req)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver is online", driver)
}

// GoOffline handles POST /drivers/offline
func (h *DriverHandler) GoOffline(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	driver, err := h.driverUC.GoOffline(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver is offline", driver)
}

// UpdateLocation handles POST /drivers/location
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req models.DriverLocationRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("body", "invalid request body")
	}

	driver, err := h.driverUC.UpdateLocation(c.Request().Context(), actor, &req)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", driver)
}

// Nearby handles GET /drivers/nearby
func (h *DriverHandler) Nearby(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return apperrors.Validation("lat", "invalid latitude")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return apperrors.Validation("lon", "invalid longitude")
	}
	radiusKM := 5.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKM, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return apperrors.Validation("radius_km", "invalid radius")
		}
	}
	max := 10
	if raw := c.QueryParam("max"); raw != "" {
		max, err = strconv.Atoi(raw)
		if err != nil {
			return apperrors.Validation("max", "invalid max")
		}
	}

	userIDs, err := h.driverUC.NearbyDrivers(c.Request().Context(), actor, lat, lon, radiusKM, max)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", userIDs)
}
