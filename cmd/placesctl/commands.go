package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"places/config"
	"places/internal/domain/service"
	"places/internal/infra/apitester"
	"places/internal/infra/excel"
	logs "places/internal/infra/log"
	"places/internal/infra/metrics"
	"places/internal/infra/persistence/postgres"
	"places/internal/infra/pubsub"
	"places/internal/usecase"
	"places/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ingestOptions struct {
	collection string
	locations  []usecase.IngestLocation
	types      []string
	radius     int
	rankBy     string
}

// newLogger logs to stderr so stdout carries only command output.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logs.NewWithWriter(os.Stderr, cfg)
}

// withStore starts the store, mirror and publisher graph, runs fn and stops
// the graph again.
func withStore(ctx context.Context, fn func(usecase.PlaceUsecase, usecase.APITestingUsecase) error) error {
	var (
		places  usecase.PlaceUsecase
		harness usecase.APITestingUsecase
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			newLogger,
			func() context.Context { return ctx },
			metrics.NewRegistry,
			metrics.NewMetrics,
			postgres.New,
			postgres.NewPlaceRepository,
			postgres.NewTransactionManager,
			excel.NewPlaceMirror,
			fx.Annotate(apitester.NewLoader, fx.As(new(service.CollectionLoader))),
			apitester.NewTokenProvider,
			apitester.NewEndpointExecutor,
			impl.NewPlaceService,
			impl.NewAPITestingService,
		),
		pubsub.Module,
		fx.Invoke(postgres.RegisterMigration),
		fx.Populate(&places, &harness),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: shutdown: %v\n", err)
		}
	}()

	return fn(places, harness)
}

// newHarness builds the API harness without a database; only collection
// listing and single endpoint execution are served by it.
func newHarness() (usecase.APITestingUsecase, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	tokens := apitester.NewTokenProvider(cfg, logger, nil)

	return impl.NewAPITestingService(impl.APITestingServiceParams{
		Loader: apitester.NewLoader(cfg),
		Executor: apitester.NewEndpointExecutor(apitester.ExecutorParams{
			Config: cfg,
			Logger: logger,
			Tokens: tokens,
		}),
		Logger: logger,
	}), nil
}

func runStats(ctx context.Context) error {
	return withStore(ctx, func(places usecase.PlaceUsecase, _ usecase.APITestingUsecase) error {
		status := places.MirrorStatistics(ctx)
		if status == nil {
			return errors.New("mirror statistics are unavailable")
		}

		return printJSON(status)
	})
}

func runSync(ctx context.Context, force bool) error {
	return withStore(ctx, func(places usecase.PlaceUsecase, _ usecase.APITestingUsecase) error {
		var ok bool
		if force {
			ok = places.ForceMirrorResync(ctx)
		} else {
			ok = places.SyncMirror(ctx)
		}
		if !ok {
			return errors.New("mirror sync failed, see logs")
		}
		fmt.Println("Mirror is in sync with the database")

		return nil
	})
}

func runCollections(ctx context.Context) error {
	harness, err := newHarness()
	if err != nil {
		return err
	}

	summaries, err := harness.ListCollections(ctx)
	if err != nil {
		return err
	}

	return printJSON(summaries)
}

func runExecute(ctx context.Context, collection, endpoint string, params map[string]string) error {
	harness, err := newHarness()
	if err != nil {
		return err
	}

	result, err := harness.ExecuteEndpoint(ctx, &usecase.ExecuteEndpointInput{
		Collection: collection,
		Endpoint:   endpoint,
		Params:     params,
	})
	if err != nil {
		return err
	}
	if err := printJSON(result); err != nil {
		return err
	}
	if !result.Success {
		return errors.Errorf("endpoint failed: %s", result.Error)
	}

	return nil
}

func runIngest(ctx context.Context, opts ingestOptions) error {
	return withStore(ctx, func(_ usecase.PlaceUsecase, harness usecase.APITestingUsecase) error {
		report, err := harness.IngestNearby(ctx, &usecase.IngestNearbyInput{
			Collection: opts.collection,
			Locations:  opts.locations,
			Types:      opts.types,
			Radius:     opts.radius,
			RankBy:     opts.rankBy,
		})
		if err != nil {
			return err
		}

		return printJSON(report)
	})
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}
