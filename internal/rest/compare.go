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

type CompareService interface {
	Compare(ctx context.Context, models []string) (domain.Comparison, error)
}

type CompareHandler struct {
	validate *validator.Validate
	service  CompareService
	timeout  time.Duration
}

func NewCompareHandler(svc CompareService) *CompareHandler {
	return &CompareHandler{
		validate: validator.New(),
		service:  svc,
		timeout:  10 * time.Second,
	}
}

// CompareRequest takes the selected models; the HTML form posts them as
// repeated "compare" fields. Selection size is checked by the service.
type CompareRequest struct {
	Models []string `json:"models" form:"compare" validate:"max=16,dive,max=200"`
}

// POST /api/v1/compare
func (h *CompareHandler) Compare(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.CompareDuration)
	defer timer.ObserveDuration()

	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind compare request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.service.Compare(ctx, req.Models)
	if err != nil {
		status := errorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Failed to compare", "error", err)
		}
		return c.JSON(status, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(res))
}
