package handler

import (
	"net/http"

	"places/config"
	"places/internal/delivery/api/response"
	domainerrors "places/internal/domain/errors"
	"places/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MirrorHandlerParams holds dependencies for MirrorHandler, injected by Fx.
type MirrorHandlerParams struct {
	fx.In

	PlaceUC usecase.PlaceUsecase
	Config  *config.Config
}

// MirrorHandler exposes the Excel mirror maintenance operations.
type MirrorHandler struct {
	placeUC     usecase.PlaceUsecase
	syncEnabled bool
}

func NewMirrorHandler(params MirrorHandlerParams) *MirrorHandler {
	return &MirrorHandler{
		placeUC:     params.PlaceUC,
		syncEnabled: params.Config.Excel != nil && params.Config.Excel.SyncEnabled,
	}
}

// Stats reports the mirror file, its cache and how it compares with the database.
func (h *MirrorHandler) Stats(c echo.Context) error {
	status := h.placeUC.MirrorStatistics(c.Request().Context())
	if status == nil {
		return response.HandleAppError(c, domainerrors.ErrMirrorUnavailable)
	}

	return response.Success(c, http.StatusOK, status)
}

// Sync writes a database snapshot to the mirror.
func (h *MirrorHandler) Sync(c echo.Context) error {
	if !h.syncEnabled {
		return response.HandleAppError(c, domainerrors.ErrMirrorUnavailable.WithDetails("mirror sync is disabled"))
	}
	if !h.placeUC.SyncMirror(c.Request().Context()) {
		return response.HandleAppError(c, domainerrors.ErrMirrorSyncFailed)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"synced": true})
}

// Resync rebuilds the mirror with a backup, regardless of the sync switch.
func (h *MirrorHandler) Resync(c echo.Context) error {
	if !h.placeUC.ForceMirrorResync(c.Request().Context()) {
		return response.HandleAppError(c, domainerrors.ErrMirrorSyncFailed)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"resynced": true})
}
