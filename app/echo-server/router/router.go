package router

import (
	"phoneFinder/internal/middleware"
	"phoneFinder/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")
	reco.POST("", handler.Recommend)
	reco.GET("/debug", handler.DebugRecommend)
}

func SetupCompareRoutes(api *echo.Group, handler *rest.CompareHandler) {
	api.POST("/compare", handler.Compare)
}

func SetupPhoneRoutes(api *echo.Group, handler *rest.PhoneHandler) {
	phones := api.Group("/phones")
	phones.GET("", handler.GetAllPhones)
	phones.GET("/:model", handler.GetPhoneByModel)

	api.GET("/usages", handler.GetUsages)
}

// SetupOpsRoutes registers the probes that must stay reachable while the
// API group is gated.
func SetupOpsRoutes(e *echo.Echo, readiness *middleware.Readiness) {
	e.GET("/healthz", readiness.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
