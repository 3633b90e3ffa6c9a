package handler

import (
	"net/http"

	"places/internal/delivery/api/response"
	"places/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APITestHandlerParams holds dependencies for APITestHandler, injected by Fx.
type APITestHandlerParams struct {
	fx.In

	APITestingUC usecase.APITestingUsecase
}

// APITestHandler drives the collection-based API harness over HTTP.
type APITestHandler struct {
	apiTestingUC usecase.APITestingUsecase
}

func NewAPITestHandler(params APITestHandlerParams) *APITestHandler {
	return &APITestHandler{apiTestingUC: params.APITestingUC}
}

// ExecuteRequest represents the request body for executing one endpoint
type ExecuteRequest struct {
	Collection string            `json:"collection" validate:"required,notblank"`
	Endpoint   string            `json:"endpoint" validate:"required,notblank"`
	Params     map[string]string `json:"params"`
}

// RunCategoryRequest represents the request body for a category batch run
type RunCategoryRequest struct {
	Collection string            `json:"collection" validate:"required,notblank"`
	Category   string            `json:"category" validate:"required,notblank"`
	Params     map[string]string `json:"params"`
}

// IngestLocationRequest is one search centre of an ingestion run
type IngestLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Pincode   string  `json:"pincode" validate:"omitempty,numeric"`
}

// IngestRequest represents the request body for a nearby-search backfill
type IngestRequest struct {
	Collection string                  `json:"collection"`
	Locations  []IngestLocationRequest `json:"locations" validate:"required,min=1,dive"`
	Types      []string                `json:"types" validate:"dive,notblank"`
	Radius     int                     `json:"radius" validate:"gte=0"`
	RankBy     string                  `json:"rank_by" validate:"omitempty,oneof=popular distance"`
}

// ListCollections summarises every collection file.
func (h *APITestHandler) ListCollections(c echo.Context) error {
	summaries, err := h.apiTestingUC.ListCollections(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summaries)
}

// ListEndpoints returns the endpoints of one collection grouped by category.
// Collection variables are left out since they may carry credentials.
func (h *APITestHandler) ListEndpoints(c echo.Context) error {
	collection, err := h.apiTestingUC.GetCollection(c.Request().Context(), c.Param("collection"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"name":      collection.Name,
		"file":      collection.File,
		"endpoints": collection.Endpoints,
	})
}

// Execute runs one endpoint. Upstream failures are reported inside the result
// with a 200 status.
func (h *APITestHandler) Execute(c echo.Context) error {
	var req ExecuteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid execute input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.apiTestingUC.ExecuteEndpoint(c.Request().Context(), &usecase.ExecuteEndpointInput{
		Collection: req.Collection,
		Endpoint:   req.Endpoint,
		Params:     req.Params,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RunCategory runs every endpoint of a category.
func (h *APITestHandler) RunCategory(c echo.Context) error {
	var req RunCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid run input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	run, err := h.apiTestingUC.RunCategory(c.Request().Context(), &usecase.RunCategoryInput{
		Collection: req.Collection,
		Category:   req.Category,
		Params:     req.Params,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, run)
}

// Ingest backfills places from nearby searches.
func (h *APITestHandler) Ingest(c echo.Context) error {
	var req IngestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingest input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	locations := make([]usecase.IngestLocation, 0, len(req.Locations))
	for _, location := range req.Locations {
		locations = append(locations, usecase.IngestLocation(location))
	}

	report, err := h.apiTestingUC.IngestNearby(c.Request().Context(), &usecase.IngestNearbyInput{
		Collection: req.Collection,
		Locations:  locations,
		Types:      req.Types,
		Radius:     req.Radius,
		RankBy:     req.RankBy,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
