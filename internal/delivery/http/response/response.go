package response

import (
	"net/http"

	deliverycontext "tether/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code      string `json:"code"`              // Machine-readable error code, e.g., "INVALID_SAMPLE"
	Kind      string `json:"kind,omitempty"`    // Error classification, e.g., "transient"
	Message   string `json:"message"`           // User-friendly error message
	Details   any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
	Retryable bool   `json:"retryable"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response. Details are dropped for 5xx errors.
func Error(c echo.Context, statusCode int, info ErrorInfo) error {
	if statusCode >= 500 {
		info.Details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &info,
		Meta:  meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, ErrorInfo{Code: errorCode, Message: message})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return BadRequest(c, "INVALID_INPUT", message)
}

// ValidationError returns a 400 carrying the failed rules
func ValidationError(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest, ErrorInfo{
		Code:    "VALIDATION_ERROR",
		Kind:    "validation",
		Message: "Request failed validation",
		Details: err.Error(),
	})
}
