package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Status is the health check response body
type Status struct {
	Status    string    `json:"status"`
	App       string    `json:"app"`
	Timestamp time.Time `json:"timestamp"`
}

// RegisterHealthEndpoints adds liveness endpoints to the router
func RegisterHealthEndpoints(e *echo.Echo, appName string) {
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, Status{
			Status:    "ok",
			App:       appName,
			Timestamp: time.Now().UTC(),
		})
	}
	e.GET("/health", handler)
	e.GET("/healthz", handler)
}
