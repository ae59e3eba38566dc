package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "tether/internal/delivery/context"
	"tether/internal/delivery/http/response"
	"tether/internal/domain/entity"
	"tether/internal/domain/service"
	"tether/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	Engine usecase.EngineUsecase
	Clock  service.Clock
	Logger *slog.Logger
}

// SessionHandler feeds host signals into the engine: session, samples,
// connectivity, lifecycle and social graph changes
type SessionHandler struct {
	engine usecase.EngineUsecase
	clock  service.Clock
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		engine: params.Engine,
		clock:  params.Clock,
		logger: params.Logger,
	}
}

// StartSessionRequest represents the request body for starting a session
type StartSessionRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// SessionResponse reports the session after a change
type SessionResponse struct {
	Initialized bool   `json:"initialized"`
	UserID      string `json:"userId,omitempty"`
}

// SampleRequest represents one device state sample
type SampleRequest struct {
	UserID          string     `json:"userId"`
	Latitude        *float64   `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude       *float64   `json:"longitude" validate:"required,gte=-180,lte=180"`
	Address         *string    `json:"address"`
	Accuracy        *float64   `json:"accuracy" validate:"omitempty,gte=0"`
	Speed           *float64   `json:"speed" validate:"omitempty,gte=0"`
	BatteryLevel    int        `json:"batteryLevel" validate:"gte=0,lte=100"`
	IsCharging      bool       `json:"isCharging"`
	Motion          string     `json:"motion" validate:"required,oneof=stationary walking running driving unknown"`
	Timestamp       *time.Time `json:"timestamp"`
	LocationEnabled *bool      `json:"locationEnabled"`
}

// ConnectivityRequest represents a network change
type ConnectivityRequest struct {
	IsConnected *bool  `json:"isConnected" validate:"required"`
	Type        string `json:"type"`
}

// LifecycleRequest represents an app state change
type LifecycleRequest struct {
	State string `json:"state" validate:"required,oneof=active background inactive"`
}

// ConnectionEventRequest represents a social graph change for the connection in the path
type ConnectionEventRequest struct {
	ConnectionID string `param:"id" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=added removed updated"`
}

// StartSession binds the engine to a user
func (h *SessionHandler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid session input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.engine.Initialize(c.Request().Context(), req.UserID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, SessionResponse{Initialized: true, UserID: req.UserID})
}

// EndSession cancels every timer and forgets the user
func (h *SessionHandler) EndSession(c echo.Context) error {
	ctx := c.Request().Context()
	h.engine.Cleanup(ctx)

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[HTTP] Session ended")

	return response.Success(c, http.StatusOK, SessionResponse{Initialized: false})
}

// IngestSample hands one sample to the tracker. A missing timestamp means now.
func (h *SessionHandler) IngestSample(c echo.Context) error {
	var req SampleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sample input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	sample := &entity.DeviceStateSample{
		UserID:          req.UserID,
		Latitude:        *req.Latitude,
		Longitude:       *req.Longitude,
		Address:         req.Address,
		Accuracy:        req.Accuracy,
		Speed:           req.Speed,
		BatteryLevel:    req.BatteryLevel,
		IsCharging:      req.IsCharging,
		Motion:          entity.MotionState(req.Motion),
		LocationEnabled: req.LocationEnabled == nil || *req.LocationEnabled,
	}
	if req.Timestamp != nil {
		sample.Timestamp = req.Timestamp.UTC()
	} else {
		sample.Timestamp = h.clock.Now()
	}

	if err := h.engine.ProcessDeviceStateUpdate(c.Request().Context(), sample); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, h.engine.TrackerState())
}

// SetConnectivity publishes a network change
func (h *SessionHandler) SetConnectivity(c echo.Context) error {
	var req ConnectivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid connectivity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.engine.SetOnlineStatus(c.Request().Context(), *req.IsConnected, req.Type); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.engine.GetSyncState())
}

// SetLifecycle publishes an app state change
func (h *SessionHandler) SetLifecycle(c echo.Context) error {
	var req LifecycleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid lifecycle input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.engine.SetAppState(c.Request().Context(), entity.AppState(req.State)); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.engine.GetSyncState())
}

// ConnectionEvent publishes a social graph change
func (h *SessionHandler) ConnectionEvent(c echo.Context) error {
	var req ConnectionEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid connection event input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	kind := entity.ConnectionChangeKind(req.Type)
	if err := h.engine.NotifyConnectionChange(c.Request().Context(), req.ConnectionID, kind); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"connectionId": req.ConnectionID,
		"type":         req.Type,
	})
}
