package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"places/config"
	"places/internal/delivery/api/response"
	domainerrors "places/internal/domain/errors"
	"places/internal/domain/repository"
	"places/internal/domain/validation"
	"places/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC usecase.PlaceUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// PlaceHandler serves place CRUD and listing routes.
type PlaceHandler struct {
	placeUC         usecase.PlaceUsecase
	defaultPageSize int
	preferExcel     bool
	logger          *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	handler := &PlaceHandler{
		placeUC:         params.PlaceUC,
		defaultPageSize: 10,
		logger:          params.Logger,
	}
	if params.Config.Pagination != nil && params.Config.Pagination.DefaultPageSize > 0 {
		handler.defaultPageSize = params.Config.Pagination.DefaultPageSize
	}
	if params.Config.Excel != nil {
		handler.preferExcel = params.Config.Excel.PreferExcel
	}

	return handler
}

// PlaceRequest is a full place submission. Coordinates accept numbers or
// numeric strings.
type PlaceRequest struct {
	ID        string   `json:"id"`
	Latitude  any      `json:"latitude"`
	Longitude any      `json:"longitude"`
	Types     string   `json:"types"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Pincode   string   `json:"pincode"`
	Rating    *float64 `json:"rating"`
	Followers *float64 `json:"followers"`
	Country   string   `json:"country"`
}

func (r *PlaceRequest) validationInput() validation.PlaceInput {
	return validation.PlaceInput{
		Name:      r.Name,
		Address:   r.Address,
		Types:     r.Types,
		Pincode:   r.Pincode,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// PageRequest binds the listing query string. Out-of-range values are not
// rejected here; the accessor clamps them with repository.NormalizePageQuery.
type PageRequest struct {
	Page      int    `query:"page"`
	PageSize  int    `query:"page_size"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
	Search    string `query:"search"`
}

// CreatedPlace is returned by CreatePlace with any validation warnings.
type CreatedPlace struct {
	Place    any      `json:"place"`
	Warnings []string `json:"warnings"`
}

func (h *PlaceHandler) bindPage(c echo.Context) (repository.PageQuery, error) {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return repository.PageQuery{}, domainerrors.ErrInvalidQuery.WithDetails("query parameters could not be parsed")
	}
	if req.PageSize == 0 {
		req.PageSize = h.defaultPageSize
	}

	return repository.PageQuery{
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Search:    req.Search,
	}, nil
}

// ListPlaces returns one page of places, optionally filtered by a search term.
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	query, err := h.bindPage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.placeUC.GetPlacesPaginated(c.Request().Context(), query))
}

// ListPlacesByType returns one page of places whose types column equals :type.
func (h *PlaceHandler) ListPlacesByType(c echo.Context) error {
	query, err := h.bindPage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page := h.placeUC.GetPlacesByTypePaginated(c.Request().Context(), c.Param("type"), query)

	return response.Success(c, http.StatusOK, page)
}

// AllPlaces returns the full snapshot. prefer_excel overrides the configured
// read preference.
func (h *PlaceHandler) AllPlaces(c echo.Context) error {
	preferExcel := h.preferExcel
	if err := echo.QueryParamsBinder(c).Bool("prefer_excel", &preferExcel).BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidQuery.WithDetails("prefer_excel must be a boolean"))
	}

	table := h.placeUC.GetAllPlaces(c.Request().Context(), preferExcel)

	return response.Success(c, http.StatusOK, map[string]any{
		"items": table.Rows,
		"total": table.Len(),
	})
}

// GetPlace returns one place by id.
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	place := h.placeUC.GetPlace(c.Request().Context(), c.Param("id"))
	if place == nil {
		return response.HandleAppError(c, domainerrors.ErrPlaceNotFound.WithDetails(c.Param("id")))
	}

	return response.Success(c, http.StatusOK, place)
}

// ValidatePlace runs the full place validator without storing anything.
func (h *PlaceHandler) ValidatePlace(c echo.Context) error {
	var req PlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place input")
	}

	return response.Success(c, http.StatusOK, validation.ValidatePlace(req.validationInput()))
}

// CreatePlace validates a submission and adds it.
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	ctx := c.Request().Context()

	var req PlaceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place input")
	}

	result := validation.ValidatePlace(req.validationInput())
	if !result.IsValid {
		return response.BadRequestWithDetails(c, domainerrors.ErrPlaceValidation.ErrorCode(), domainerrors.ErrPlaceValidation.Message(), result)
	}

	id := strings.TrimSpace(req.ID)
	if id != "" && h.placeUC.PlaceExists(ctx, id) {
		return response.HandleAppError(c, domainerrors.ErrPlaceAlreadyExists.WithDetails(id))
	}

	latitude, _ := validation.ToFloat(req.Latitude)
	longitude, _ := validation.ToFloat(req.Longitude)
	input := &usecase.AddPlaceInput{
		ID:        id,
		Latitude:  latitude,
		Longitude: longitude,
		Types:     req.Types,
		Name:      req.Name,
		Address:   req.Address,
		Pincode:   req.Pincode,
		Country:   req.Country,
	}
	if req.Rating != nil {
		input.Rating = *req.Rating
	}
	if req.Followers != nil {
		input.Followers = *req.Followers
	}

	place, ok := h.placeUC.AddPlace(ctx, input)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrPlaceCreateFailed)
	}

	return response.Success(c, http.StatusCreated, CreatedPlace{Place: place, Warnings: result.Warnings})
}

// UpdatePlace applies a partial update. Supplied text fields go through the
// same validators as a full submission.
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req usecase.UpdatePlaceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place input")
	}

	result := validation.ValidatePlaceUpdate(validation.PlaceUpdateInput{
		Name:      req.Name,
		Address:   req.Address,
		Types:     req.Types,
		Pincode:   req.Pincode,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Rating:    req.Rating,
		Followers: req.Followers,
	})
	if !result.IsValid {
		return response.BadRequestWithDetails(c, domainerrors.ErrPlaceValidation.ErrorCode(), domainerrors.ErrPlaceValidation.Message(), result)
	}

	if !h.placeUC.PlaceExists(ctx, id) {
		return response.HandleAppError(c, domainerrors.ErrPlaceNotFound.WithDetails(id))
	}

	place, ok := h.placeUC.UpdatePlace(ctx, id, &req)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrPlaceUpdateFailed)
	}

	return response.Success(c, http.StatusOK, place)
}

// DeletePlace removes a place.
func (h *PlaceHandler) DeletePlace(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if !h.placeUC.PlaceExists(ctx, id) {
		return response.HandleAppError(c, domainerrors.ErrPlaceNotFound.WithDetails(id))
	}
	if !h.placeUC.DeletePlace(ctx, id) {
		return response.HandleAppError(c, domainerrors.ErrPlaceDeleteFailed)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id, "deleted": true})
}
