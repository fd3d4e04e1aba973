package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/pkg/logger"
)

// RequestIDMiddleware tags every request with a unique ID and a request-scoped
// logger carrying it.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
			c.Request().Header.Set("X-Request-ID", requestID)
		}
		c.Response().Header().Set("X-Request-ID", requestID)
		c.Set("request_id", requestID)

		log := logger.GetLogger().With(zap.String("request_id", requestID))
		c.Set("logger", log)

		// Make the request-scoped logger visible below the handler layer too.
		ctx := logger.WithContext(c.Request().Context(), log)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
