package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tether/internal/delivery/http/response"
	"tether/internal/domain/entity"
	"tether/internal/domain/repository"
	"tether/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	Engine usecase.EngineUsecase
	Logger *slog.Logger
}

// SyncHandler exposes sync, heartbeat and local history operations
type SyncHandler struct {
	engine usecase.EngineUsecase
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		engine: params.Engine,
		logger: params.Logger,
	}
}

// RefreshRequest represents the options of one refresh pass
type RefreshRequest struct {
	ForceRefresh      bool    `json:"forceRefresh"`
	RetryOnFailure    bool    `json:"retryOnFailure"`
	MaxRetries        int     `json:"maxRetries" validate:"gte=0,lte=10"`
	BackoffMultiplier float64 `json:"backoffMultiplier" validate:"omitempty,gte=1"`
}

// SyncStateResponse is the coordinator state plus its health verdict
type SyncStateResponse struct {
	entity.SyncState
	Healthy bool `json:"healthy"`
}

// Refresh recreates the subscriptions
func (h *SyncHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	opts := usecase.RefreshOptions{
		ForceRefresh:      req.ForceRefresh,
		RetryOnFailure:    req.RetryOnFailure,
		MaxRetries:        req.MaxRetries,
		BackoffMultiplier: req.BackoffMultiplier,
	}
	if err := h.engine.RefreshSubscriptions(c.Request().Context(), opts); err != nil {
		return err
	}

	return h.State(c)
}

// ForceSync refreshes with retry
func (h *SyncHandler) ForceSync(c echo.Context) error {
	if err := h.engine.ForceSync(c.Request().Context()); err != nil {
		return err
	}

	return h.State(c)
}

// State returns the sync state and whether it is healthy
func (h *SyncHandler) State(c echo.Context) error {
	return response.Success(c, http.StatusOK, SyncStateResponse{
		SyncState: h.engine.GetSyncState(),
		Healthy:   h.engine.IsSyncHealthy(),
	})
}

// ForceHeartbeat sends a beat immediately
func (h *SyncHandler) ForceHeartbeat(c echo.Context) error {
	if err := h.engine.ForceHeartbeat(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.engine.HeartbeatStatus())
}

// HeartbeatStatus returns the heartbeat scheduler state
func (h *SyncHandler) HeartbeatStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.engine.HeartbeatStatus())
}

// TrackerState returns the geofence state of the session user
func (h *SyncHandler) TrackerState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.engine.TrackerState())
}

// LatestLocation returns the newest stored record
func (h *SyncHandler) LatestLocation(c echo.Context) error {
	record, err := h.engine.LatestLocation(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return response.Error(c, http.StatusNotFound, response.ErrorInfo{
				Code:    "RECORD_NOT_FOUND",
				Message: "No location has been recorded yet",
			})
		}

		return err
	}

	return response.Success(c, http.StatusOK, record)
}

// RecentTrips returns the newest trips; limit defaults on the engine side
func (h *SyncHandler) RecentTrips(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	trips, err := h.engine.RecentTrips(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if trips == nil {
		trips = []*entity.Trip{}
	}

	return response.Success(c, http.StatusOK, trips)
}
