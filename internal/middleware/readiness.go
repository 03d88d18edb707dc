package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"
)

// Readiness flips once the catalog is loaded and the feature model fitted.
type Readiness struct {
	ready atomic.Bool
}

func NewReadiness() *Readiness {
	return &Readiness{}
}

func (r *Readiness) MarkReady() {
	r.ready.Store(true)
}

// MarkDraining drops readiness again so load balancers stop routing to an
// instance that is shutting down.
func (r *Readiness) MarkDraining() {
	r.ready.Store(false)
}

func (r *Readiness) Ready() bool {
	return r.ready.Load()
}

// Gate answers 503 until MarkReady is called.
func (r *Readiness) Gate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !r.Ready() {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{
					"message": "catalog is still loading",
				})
			}
			return next(c)
		}
	}
}

// Health is the /healthz handler.
func (r *Readiness) Health(c echo.Context) error {
	if !r.Ready() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "starting"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
