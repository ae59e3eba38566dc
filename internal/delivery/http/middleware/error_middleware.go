package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "tether/internal/delivery/context"
	"tether/internal/delivery/http/response"
	domainerrors "tether/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps domain errors to HTTP responses
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// StatusFor returns the HTTP status for an error kind
func StatusFor(kind domainerrors.Kind) int {
	switch kind {
	case domainerrors.KindValidation:
		return http.StatusBadRequest
	case domainerrors.KindInvariant:
		return http.StatusConflict
	case domainerrors.KindTransient:
		return http.StatusServiceUnavailable
	case domainerrors.KindPermanent:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		status := StatusFor(appErr.Kind())
		if status >= 500 {
			logger.Error("[HTTP] Request failed",
				slog.String("kind", string(appErr.Kind())),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
		}

		_ = response.Error(c, status, response.ErrorInfo{
			Code:      appErr.ErrorCode(),
			Kind:      string(appErr.Kind()),
			Message:   appErr.Message(),
			Details:   appErr.Details(),
			Retryable: appErr.Retryable(),
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, response.ErrorInfo{Code: "HTTP_ERROR", Message: message})

		return
	}

	logger.Error("[HTTP] Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, response.ErrorInfo{
		Code:    "INTERNAL_ERROR",
		Kind:    string(domainerrors.KindInternal),
		Message: "Internal server error, please try again later",
	})
}
