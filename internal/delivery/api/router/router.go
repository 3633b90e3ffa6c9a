// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"places/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlaceHandler     *handler.PlaceHandler
	MirrorHandler    *handler.MirrorHandler
	AnalyticsHandler *handler.AnalyticsHandler
	APITestHandler   *handler.APITestHandler
	Registry         *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	placeHandler     *handler.PlaceHandler
	mirrorHandler    *handler.MirrorHandler
	analyticsHandler *handler.AnalyticsHandler
	apiTestHandler   *handler.APITestHandler
	registry         *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		placeHandler:     params.PlaceHandler,
		mirrorHandler:    params.MirrorHandler,
		analyticsHandler: params.AnalyticsHandler,
		apiTestHandler:   params.APITestHandler,
		registry:         params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
	}

	apiV1 := e.Group("/api/v1")

	// Place routes. Static segments are registered before :id.
	placesGroup := apiV1.Group("/places")
	{
		placesGroup.GET("", r.placeHandler.ListPlaces)
		placesGroup.GET("/all", r.placeHandler.AllPlaces)
		placesGroup.GET("/types/:type", r.placeHandler.ListPlacesByType)
		placesGroup.GET("/:id", r.placeHandler.GetPlace)
		placesGroup.POST("", r.placeHandler.CreatePlace)
		placesGroup.POST("/validate", r.placeHandler.ValidatePlace)
		placesGroup.PUT("/:id", r.placeHandler.UpdatePlace)
		placesGroup.DELETE("/:id", r.placeHandler.DeletePlace)
	}

	// Excel mirror maintenance
	mirrorGroup := apiV1.Group("/mirror")
	{
		mirrorGroup.GET("/stats", r.mirrorHandler.Stats)
		mirrorGroup.POST("/sync", r.mirrorHandler.Sync)
		mirrorGroup.POST("/resync", r.mirrorHandler.Resync)
	}

	analyticsGroup := apiV1.Group("/analytics")
	{
		analyticsGroup.GET("/dashboard", r.analyticsHandler.Dashboard)
		analyticsGroup.GET("/charts/:name", r.analyticsHandler.Chart)
	}

	// API test harness
	apiTestGroup := apiV1.Group("/apitest")
	{
		apiTestGroup.GET("/collections", r.apiTestHandler.ListCollections)
		apiTestGroup.GET("/collections/:collection/endpoints", r.apiTestHandler.ListEndpoints)
		apiTestGroup.POST("/execute", r.apiTestHandler.Execute)
		apiTestGroup.POST("/run-category", r.apiTestHandler.RunCategory)
		apiTestGroup.POST("/ingest", r.apiTestHandler.Ingest)
	}
}
