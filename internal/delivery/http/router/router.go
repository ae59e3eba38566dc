// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tether/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	SyncHandler    *handler.SyncHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	syncHandler    *handler.SyncHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		syncHandler:    params.SyncHandler,
	}
}

// RegisterRoutes sets up the control surface of the engine.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.Metrics())

	v1 := e.Group("/v1")

	v1.POST("/session", r.sessionHandler.StartSession)
	v1.DELETE("/session", r.sessionHandler.EndSession)
	v1.POST("/samples", r.sessionHandler.IngestSample)
	v1.POST("/connectivity", r.sessionHandler.SetConnectivity)
	v1.POST("/lifecycle", r.sessionHandler.SetLifecycle)
	v1.POST("/connections/:id/events", r.sessionHandler.ConnectionEvent)

	syncGroup := v1.Group("/sync")
	{
		syncGroup.POST("/refresh", r.syncHandler.Refresh)
		syncGroup.POST("/force", r.syncHandler.ForceSync)
		syncGroup.GET("/state", r.syncHandler.State)
	}

	heartbeatGroup := v1.Group("/heartbeat")
	{
		heartbeatGroup.GET("", r.syncHandler.HeartbeatStatus)
		heartbeatGroup.POST("/force", r.syncHandler.ForceHeartbeat)
	}

	v1.GET("/tracker", r.syncHandler.TrackerState)
	v1.GET("/location/latest", r.syncHandler.LatestLocation)
	v1.GET("/trips", r.syncHandler.RecentTrips)
}
