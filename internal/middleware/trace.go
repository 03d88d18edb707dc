package middleware

import (
	"context"

	"phoneFinder/domain"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// TraceMiddleware stamps every request with a trace id, reusing a
// client-supplied X-Request-ID when it looks sane.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}

			ctx := context.WithValue(req.Context(), domain.TraceIDKey, id)
			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			return next(c)
		}
	}
}

func TraceID(c echo.Context) string {
	return domain.TraceIDFromContext(c.Request().Context())
}
