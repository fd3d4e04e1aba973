package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/pkg/logger"
)

// DuplicateResourceError signals that a resource with the same natural key
// already exists. It maps to 409 Conflict.
type DuplicateResourceError struct {
	Resource string
	Key      string
}

func (e *DuplicateResourceError) Error() string {
	return fmt.Sprintf("%s with QR Code ID %s already exists.", e.Resource, e.Key)
}

// ValidationError signals malformed or incomplete input rejected at the API
// boundary, before the service is invoked. It maps to 400 Bad Request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// APIError is the structured error body returned to clients.
type APIError struct {
	Path      string    `json:"path"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HTTPStatus maps an error to its HTTP status code by failure kind. Unknown
// errors are server failures.
func HTTPStatus(err error) int {
	var dup *DuplicateResourceError
	var val *ValidationError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &dup):
		return http.StatusConflict
	case errors.As(err, &val):
		return http.StatusBadRequest
	case errors.As(err, &he):
		return he.Code
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is the echo HTTPErrorHandler. Handlers return raw errors; this
// is the single place where failure kinds become status codes and APIError
// bodies.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromEcho(c).Error("Unhandled error",
			zap.String("path", c.Request().URL.Path),
			zap.Error(err))
		message = "internal server error"
	}

	body := APIError{
		Path:      c.Request().URL.Path,
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		logger.FromEcho(c).Error("Failed to write error response", zap.Error(err))
	}
}
