package rest

import (
	"context"
	"net/http"
	"time"

	"phoneFinder/domain"
	"phoneFinder/pkg/logger"
	"phoneFinder/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type (
	RecommendationHandler struct {
		validate *validator.Validate
		service  RecommendationService
		timeout  time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, q domain.UserQuery) ([]domain.ScoredResult, error)
		DebugRecommend(ctx context.Context, q domain.UserQuery) (domain.DebugRecommendation, error)
	}

	// RecommendRequest binds from JSON or an HTML form post.
	RecommendRequest struct {
		Budget   *float64 `json:"budget" form:"budget" query:"budget" validate:"required,gte=0"`
		RAM      *float64 `json:"ram" form:"ram" query:"ram" validate:"required,gte=0"`
		Usage    string   `json:"usage" form:"usage" query:"usage" validate:"required"`
		Strategy string   `json:"strategy" form:"strategy" query:"strategy" validate:"omitempty,oneof=similarity value"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate: validator.New(),
		service:  svc,
		timeout:  10 * time.Second,
	}
}

func (r RecommendRequest) toQuery() domain.UserQuery {
	return domain.UserQuery{
		Budget:   *r.Budget,
		RAM:      *r.RAM,
		Usage:    r.Usage,
		Strategy: r.Strategy,
	}
}

// POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.RecommendDuration)
	defer timer.ObserveDuration()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind recommend request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.Recommend(ctx, req.toQuery())
	if err != nil {
		status := errorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Failed to recommend", "error", err)
		}
		return c.JSON(status, ResponseError{Message: err.Error()})
	}

	metrics.RecommendResultSize.Observe(float64(len(recs)))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/recommendations/debug?budget=30000&ram=6&usage=gaming
func (h *RecommendationHandler) DebugRecommend(c echo.Context) error {
	var (
		budget, ram float64
		req         RecommendRequest
	)
	err := echo.QueryParamsBinder(c).
		MustFloat64("budget", &budget).
		MustFloat64("ram", &ram).
		MustString("usage", &req.Usage).
		String("strategy", &req.Strategy).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	req.Budget, req.RAM = &budget, &ram
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	dbg, err := h.service.DebugRecommend(ctx, req.toQuery())
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(dbg))
}
