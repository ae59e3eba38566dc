package handler

import (
	"net/http"

	"tether/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Metrics serves the Prometheus exposition of the default registry
func Metrics() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
