// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"places/config"
	deliverycontext "places/internal/delivery/context"
	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	"places/internal/domain/repository"
	"places/internal/domain/service"
	"places/internal/domain/validation"
	"places/internal/errors"
	"places/internal/infra/metrics"
	"places/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// placeService implements the PlaceUsecase interface.
type placeService struct {
	txManager            repository.TransactionManager
	placeRepo            repository.PlaceRepository
	mirror               service.PlaceMirror
	publisher            service.EventPublisher
	repopulateOnFallback bool
	logger               *slog.Logger
	metrics              *metrics.Metrics
	now                  func() time.Time
}

// PlaceServiceParams holds dependencies for PlaceService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PlaceRepo repository.PlaceRepository
	Mirror    service.PlaceMirror
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	repopulate := true
	if params.Config != nil && params.Config.Excel != nil {
		repopulate = params.Config.Excel.RepopulateOnFallback
	}

	return &placeService{
		txManager:            params.TxManager,
		placeRepo:            params.PlaceRepo,
		mirror:               params.Mirror,
		publisher:            params.Publisher,
		repopulateOnFallback: repopulate,
		logger:               params.Logger,
		metrics:              params.Metrics,
		now:                  time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// timestamp is the current UTC time at the precision both stores keep.
func (srv *placeService) timestamp() time.Time {
	return srv.now().UTC().Truncate(time.Microsecond)
}

// withLogging runs fn and converts any error or panic into fallback. Every
// outcome is logged with the operation name and elapsed time and recorded in
// the operation metrics.
func withLogging[T any](ctx context.Context, srv *placeService, operation string, fallback T, fn func(context.Context) (T, error)) (result T) {
	start := time.Now()
	logger := srv.log(ctx).With(slog.String("operation", operation))

	defer func() {
		if r := recover(); r != nil {
			elapsed := time.Since(start)
			logger.Error("Place operation panicked", slog.Any("panic", r), slog.Duration("elapsed", elapsed))
			srv.metrics.ObserveOperation(operation, metrics.OutcomePanic, elapsed)
			result = fallback
		}
	}()

	value, err := fn(ctx)
	elapsed := time.Since(start)
	if err != nil {
		level := slog.LevelError
		if isExpectedFailure(err) {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "Place operation failed", slog.Any("error", err), slog.Duration("elapsed", elapsed))
		srv.metrics.ObserveOperation(operation, metrics.OutcomeFailure, elapsed)

		return fallback
	}

	logger.Debug("Place operation completed", slog.Duration("elapsed", elapsed))
	srv.metrics.ObserveOperation(operation, metrics.OutcomeSuccess, elapsed)

	return value
}

// isExpectedFailure reports caller mistakes, which are logged below error level.
func isExpectedFailure(err error) bool {
	return errors.IsAny(err, repository.ErrPlaceNotFound, repository.ErrPlaceAlreadyExists, domainerrors.ErrPlaceValidation)
}

// mirrorBestEffort runs a mirror side effect; its failure never fails the caller.
func (srv *placeService) mirrorBestEffort(ctx context.Context, action, placeID string, fn func() error) {
	if srv.mirror == nil {
		return
	}
	if err := fn(); err != nil {
		srv.log(ctx).Warn("Mirror update failed",
			slog.String("action", action),
			slog.String("place_id", placeID),
			slog.Any("error", err),
		)
	}
}

// publish sends a place event; failures are logged only.
func (srv *placeService) publish(ctx context.Context, eventType service.PlaceEventType, place *entity.Place) {
	if srv.publisher == nil {
		return
	}

	event := &service.PlaceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		PlaceID:    place.ID,
		Name:       place.Name,
		Types:      place.Types,
		Latitude:   place.Latitude,
		Longitude:  place.Longitude,
		Pincode:    place.Pincode,
		OccurredAt: srv.timestamp(),
	}
	if err := srv.publisher.PublishPlaceEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish place event",
			slog.String("type", string(eventType)),
			slog.String("place_id", place.ID),
			slog.Any("error", err),
		)
	}
}

func validationError(result *validation.Result) error {
	return domainerrors.ErrPlaceValidation.WrapMessage(strings.Join(result.Errors, "; "))
}

// AddPlace validates the coordinates, applies insert defaults and stores the place.
func (srv *placeService) AddPlace(ctx context.Context, input *usecase.AddPlaceInput) (*entity.Place, bool) {
	place := withLogging(ctx, srv, "add_place", (*entity.Place)(nil), func(ctx context.Context) (*entity.Place, error) {
		return srv.addPlace(ctx, input)
	})

	return place, place != nil
}

func (srv *placeService) addPlace(ctx context.Context, input *usecase.AddPlaceInput) (*entity.Place, error) {
	if input == nil {
		return nil, domainerrors.ErrPlaceValidation.WrapMessage("input is required")
	}
	if result := validation.ValidateCoordinates(input.Latitude, input.Longitude); !result.IsValid {
		return nil, validationError(result)
	}

	now := srv.timestamp()
	place := &entity.Place{
		ID:        strings.TrimSpace(input.ID),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Types:     strings.TrimSpace(input.Types),
		Name:      strings.TrimSpace(input.Name),
		Address:   strings.TrimSpace(input.Address),
		Pincode:   strings.TrimSpace(input.Pincode),
		Rating:    input.Rating,
		Followers: input.Followers,
		Country:   strings.TrimSpace(input.Country),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if place.ID == "" {
		place.ID = uuid.NewString()
	}
	if adjusted := place.ApplyDefaults(); len(adjusted) > 0 {
		srv.log(ctx).Warn("Adjusted place fields to their defaults",
			slog.String("place_id", place.ID),
			slog.Any("fields", adjusted),
		)
	}

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		placeRepo := txRepoFactory.NewPlaceRepository()

		exists, err := placeRepo.PlaceExists(ctx, place.ID)
		if err != nil {
			return err
		}
		if exists {
			return errors.Wrapf(repository.ErrPlaceAlreadyExists, "place %s", place.ID)
		}

		return placeRepo.CreatePlace(ctx, place)
	})
	if err != nil {
		return nil, err
	}

	srv.mirrorBestEffort(ctx, "add_row", place.ID, func() error {
		return srv.mirror.AddRow(ctx, place)
	})
	srv.publish(ctx, service.PlaceCreated, place)

	return place, nil
}

// UpdatePlace applies the supplied fields and refreshes updated_at. An unknown
// id fails without creating anything.
func (srv *placeService) UpdatePlace(ctx context.Context, id string, input *usecase.UpdatePlaceInput) (*entity.Place, bool) {
	place := withLogging(ctx, srv, "update_place", (*entity.Place)(nil), func(ctx context.Context) (*entity.Place, error) {
		return srv.updatePlace(ctx, id, input)
	})

	return place, place != nil
}

func (srv *placeService) updatePlace(ctx context.Context, id string, input *usecase.UpdatePlaceInput) (*entity.Place, error) {
	if input == nil {
		input = &usecase.UpdatePlaceInput{}
	}

	result := validation.ValidatePlaceUpdate(validation.PlaceUpdateInput{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Rating:    input.Rating,
		Followers: input.Followers,
	})
	if !result.IsValid {
		return nil, validationError(result)
	}

	update := &repository.PlaceUpdate{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Types:     trimmed(input.Types),
		Name:      trimmed(input.Name),
		Address:   trimmed(input.Address),
		Pincode:   trimmed(input.Pincode),
		Rating:    input.Rating,
		Followers: input.Followers,
		Country:   trimmed(input.Country),
		UpdatedAt: srv.timestamp(),
	}

	var updated *entity.Place
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		placeRepo := txRepoFactory.NewPlaceRepository()

		place, err := placeRepo.FindPlaceByID(ctx, id)
		if err != nil {
			return err
		}
		if err := placeRepo.UpdatePlace(ctx, id, update); err != nil {
			return err
		}
		update.Apply(place)
		updated = place

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.mirrorBestEffort(ctx, "update_row", id, func() error {
		return srv.mirror.UpdateRow(ctx, updated)
	})
	srv.publish(ctx, service.PlaceUpdated, updated)

	return updated, nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)

	return &v
}

// DeletePlace removes the place from the store and then from the mirror.
func (srv *placeService) DeletePlace(ctx context.Context, id string) bool {
	return withLogging(ctx, srv, "delete_place", false, func(ctx context.Context) (bool, error) {
		var deleted *entity.Place
		err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
			placeRepo := txRepoFactory.NewPlaceRepository()

			place, err := placeRepo.FindPlaceByID(ctx, id)
			if err != nil {
				return err
			}
			deleted = place

			return placeRepo.DeletePlace(ctx, id)
		})
		if err != nil {
			return false, err
		}

		srv.mirrorBestEffort(ctx, "delete_row", id, func() error {
			return srv.mirror.DeleteRow(ctx, id)
		})
		srv.publish(ctx, service.PlaceDeleted, deleted)

		return true, nil
	})
}

func (srv *placeService) GetPlace(ctx context.Context, id string) *entity.Place {
	return withLogging(ctx, srv, "get_place", (*entity.Place)(nil), func(ctx context.Context) (*entity.Place, error) {
		return srv.placeRepo.FindPlaceByID(ctx, id)
	})
}

func (srv *placeService) PlaceExists(ctx context.Context, id string) bool {
	return withLogging(ctx, srv, "place_exists", false, func(ctx context.Context) (bool, error) {
		return srv.placeRepo.PlaceExists(ctx, id)
	})
}

// GetAllPlaces prefers a non-empty mirror read when asked to. Otherwise, or
// when the mirror is empty or unreadable, it scans the database and, if
// configured, repopulates the mirror from the scan.
func (srv *placeService) GetAllPlaces(ctx context.Context, preferExcel bool) *entity.PlaceTable {
	return withLogging(ctx, srv, "get_all_places", entity.EmptyPlaceTable(), func(ctx context.Context) (*entity.PlaceTable, error) {
		useMirror := preferExcel && srv.mirror != nil && srv.mirror.Enabled()
		if useMirror {
			table, err := srv.mirror.Read(ctx, true)
			switch {
			case err != nil:
				srv.log(ctx).Warn("Mirror read failed, falling back to database", slog.Any("error", err))
			case !table.IsEmpty():
				return table, nil
			}
		}

		places, err := srv.placeRepo.FindAllPlaces(ctx)
		if err != nil {
			return nil, err
		}
		table := entity.NewPlaceTable(places)

		if useMirror && srv.repopulateOnFallback {
			srv.mirrorBestEffort(ctx, "repopulate", "", func() error {
				return srv.mirror.SyncFromDatabase(ctx, table)
			})
		}

		return table, nil
	})
}

func emptyPage(query repository.PageQuery) *usecase.PlacePage {
	return &usecase.PlacePage{
		Items:      []*entity.Place{},
		Page:       1,
		PageSize:   query.PageSize,
		Total:      0,
		TotalPages: 1,
	}
}

func (srv *placeService) GetPlacesPaginated(ctx context.Context, query repository.PageQuery) *usecase.PlacePage {
	query.Type = ""

	return srv.paginate(ctx, "get_places_paginated", query)
}

// GetPlacesByTypePaginated lists places whose types column equals placeType exactly.
func (srv *placeService) GetPlacesByTypePaginated(ctx context.Context, placeType string, query repository.PageQuery) *usecase.PlacePage {
	query.Type = placeType
	query.Search = ""
	if strings.TrimSpace(placeType) == "" {
		normalized, _ := repository.NormalizePageQuery(query)

		return emptyPage(normalized)
	}

	return srv.paginate(ctx, "get_places_by_type_paginated", query)
}

func (srv *placeService) paginate(ctx context.Context, operation string, query repository.PageQuery) *usecase.PlacePage {
	normalized, rejected := repository.NormalizePageQuery(query)
	if rejected {
		srv.log(ctx).Warn("Rejected sort column, falling back to default",
			slog.String("sort_by", query.SortBy),
			slog.String("fallback", repository.DefaultSortColumn),
		)
	}

	return withLogging(ctx, srv, operation, emptyPage(normalized), func(ctx context.Context) (*usecase.PlacePage, error) {
		places, total, err := srv.placeRepo.FindPlacesPage(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if total == 0 {
			return emptyPage(normalized), nil
		}

		return &usecase.PlacePage{
			Items:      places,
			Page:       repository.ClampPage(normalized.Page, total, normalized.PageSize),
			PageSize:   normalized.PageSize,
			Total:      total,
			TotalPages: repository.LastPage(total, normalized.PageSize),
		}, nil
	})
}

// SyncMirror writes a full database snapshot to the mirror.
func (srv *placeService) SyncMirror(ctx context.Context) bool {
	return withLogging(ctx, srv, "sync_mirror", false, func(ctx context.Context) (bool, error) {
		if srv.mirror == nil || !srv.mirror.Enabled() {
			return false, domainerrors.ErrMirrorUnavailable
		}

		places, err := srv.placeRepo.FindAllPlaces(ctx)
		if err != nil {
			return false, err
		}
		if err := srv.mirror.SyncFromDatabase(ctx, entity.NewPlaceTable(places)); err != nil {
			return false, domainerrors.ErrMirrorSyncFailed.WrapMessage(err.Error())
		}

		return true, nil
	})
}

// ForceMirrorResync rebuilds the mirror from the database with a backup. It
// runs even when routine sync is disabled.
func (srv *placeService) ForceMirrorResync(ctx context.Context) bool {
	return withLogging(ctx, srv, "force_mirror_resync", false, func(ctx context.Context) (bool, error) {
		if srv.mirror == nil {
			return false, domainerrors.ErrMirrorUnavailable
		}

		places, err := srv.placeRepo.FindAllPlaces(ctx)
		if err != nil {
			return false, err
		}
		if err := srv.mirror.ForceFullResync(ctx, entity.NewPlaceTable(places)); err != nil {
			return false, domainerrors.ErrMirrorSyncFailed.WrapMessage(err.Error())
		}
		srv.log(ctx).Info("Mirror resynchronised from database", slog.Int("records", len(places)))

		return true, nil
	})
}

// MirrorStatistics compares the mirror with the database. A failed database
// count leaves the sync status unknown.
func (srv *placeService) MirrorStatistics(ctx context.Context) *usecase.MirrorStatus {
	return withLogging(ctx, srv, "mirror_statistics", (*usecase.MirrorStatus)(nil), func(ctx context.Context) (*usecase.MirrorStatus, error) {
		if srv.mirror == nil {
			return nil, domainerrors.ErrMirrorUnavailable
		}

		stats, err := srv.mirror.Statistics(ctx)
		if err != nil {
			return nil, err
		}

		status := &usecase.MirrorStatus{MirrorStatistics: stats, SyncStatus: usecase.SyncStatusUnknown}

		count, err := srv.placeRepo.CountPlaces(ctx)
		if err != nil {
			srv.log(ctx).Warn("Failed to count places for mirror status", slog.Any("error", err))

			return status, nil
		}

		status.DatabaseCount = count
		status.RecordDifference = count - int64(stats.RecordCount)
		status.SyncStatus = usecase.SyncStatusOutOfSync
		if status.RecordDifference == 0 {
			status.SyncStatus = usecase.SyncStatusSynced
		}

		return status, nil
	})
}
