package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	deliverycontext "places/internal/delivery/context"
	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	"places/internal/domain/service"
	"places/internal/domain/validation"
	"places/internal/infra/apitester"
	"places/internal/usecase"

	"go.uber.org/fx"
)

const (
	// DefaultIngestCollection holds the nearby-search and details endpoints.
	DefaultIngestCollection = "Places API" + apitester.CollectionSuffix

	NearbySearchEndpoint = "4) Nearby Search - GET"
	PlaceDetailsEndpoint = "2) Place Details - GET"

	defaultIngestRadius = 10000
	defaultIngestRankBy = "popular"
)

type apiTestingService struct {
	loader   service.CollectionLoader
	executor service.EndpointExecutor
	places   usecase.PlaceUsecase
	logger   *slog.Logger
}

// APITestingServiceParams holds dependencies for APITestingService, injected by Fx.
type APITestingServiceParams struct {
	fx.In

	Loader   service.CollectionLoader
	Executor service.EndpointExecutor
	Places   usecase.PlaceUsecase
	Logger   *slog.Logger
}

// NewAPITestingService creates the API harness use case.
func NewAPITestingService(params APITestingServiceParams) usecase.APITestingUsecase {
	return &apiTestingService{
		loader:   params.Loader,
		executor: params.Executor,
		places:   params.Places,
		logger:   params.Logger,
	}
}

func (srv *apiTestingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCollections summarises every collection. Unparseable files are listed
// without categories.
func (srv *apiTestingService) ListCollections(ctx context.Context) ([]*usecase.CollectionSummary, error) {
	names, err := srv.loader.ListCollections(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*usecase.CollectionSummary, 0, len(names))
	for _, name := range names {
		summary := &usecase.CollectionSummary{
			File:       name,
			Name:       strings.TrimSuffix(name, apitester.CollectionSuffix),
			Categories: []string{},
		}

		collection, err := srv.loader.LoadCollection(ctx, name)
		if err != nil {
			srv.log(ctx).Warn("Skipping unreadable collection", slog.String("collection", name), slog.Any("error", err))
		} else {
			summary.Name = collection.Name
			summary.Categories = collection.Categories()
			slices.Sort(summary.Categories)
			summary.EndpointCount = collection.EndpointCount()
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (srv *apiTestingService) GetCollection(ctx context.Context, name string) (*entity.Collection, error) {
	return srv.loader.LoadCollection(ctx, name)
}

// ExecuteEndpoint runs one endpoint. HTTP failures are part of the result;
// the error only reports an unknown collection or endpoint.
func (srv *apiTestingService) ExecuteEndpoint(ctx context.Context, input *usecase.ExecuteEndpointInput) (*entity.ExecutionResult, error) {
	collection, err := srv.loader.LoadCollection(ctx, input.Collection)
	if err != nil {
		return nil, err
	}

	endpoint := collection.FindEndpoint(input.Endpoint)
	if endpoint == nil {
		return nil, domainerrors.ErrEndpointNotFound.WrapMessage(input.Endpoint)
	}

	result := srv.executor.Execute(ctx, endpoint, collection.Variables, input.Params)
	srv.log(ctx).Info("Executed endpoint",
		slog.String("collection", collection.Name),
		slog.String("endpoint", endpoint.Name),
		slog.Bool("success", result.Success),
		slog.Int("status", result.StatusCode),
	)

	return result, nil
}

// RunCategory executes every endpoint of a category in order and keeps going
// after failures.
func (srv *apiTestingService) RunCategory(ctx context.Context, input *usecase.RunCategoryInput) (*usecase.CategoryRun, error) {
	collection, err := srv.loader.LoadCollection(ctx, input.Collection)
	if err != nil {
		return nil, err
	}

	endpoints, ok := collection.Endpoints[input.Category]
	if !ok {
		return nil, domainerrors.ErrCategoryNotFound.WrapMessage(input.Category)
	}

	run := &usecase.CategoryRun{
		Collection: collection.Name,
		Category:   input.Category,
		Total:      len(endpoints),
		Results:    make([]*entity.ExecutionResult, 0, len(endpoints)),
	}
	for _, endpoint := range endpoints {
		result := srv.executor.Execute(ctx, endpoint, collection.Variables, input.Params)
		if result.Success {
			run.Succeeded++
		} else {
			run.Failed++
		}
		run.Results = append(run.Results, result)
	}

	srv.log(ctx).Info("Ran endpoint category",
		slog.String("collection", collection.Name),
		slog.String("category", input.Category),
		slog.Int("succeeded", run.Succeeded),
		slog.Int("failed", run.Failed),
	)

	return run, nil
}

// IngestNearby searches around each location for each type, fetches details
// for every prediction and adds the places that are not stored yet.
func (srv *apiTestingService) IngestNearby(ctx context.Context, input *usecase.IngestNearbyInput) (*usecase.IngestReport, error) {
	name := input.Collection
	if name == "" {
		name = DefaultIngestCollection
	}

	collection, err := srv.loader.LoadCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	nearby := collection.FindEndpoint(NearbySearchEndpoint)
	if nearby == nil {
		return nil, domainerrors.ErrEndpointNotFound.WrapMessage(NearbySearchEndpoint)
	}
	details := collection.FindEndpoint(PlaceDetailsEndpoint)
	if details == nil {
		return nil, domainerrors.ErrEndpointNotFound.WrapMessage(PlaceDetailsEndpoint)
	}

	radius := input.Radius
	if radius <= 0 {
		radius = defaultIngestRadius
	}
	rankBy := input.RankBy
	if rankBy == "" {
		rankBy = defaultIngestRankBy
	}
	types := input.Types
	if len(types) == 0 {
		types = []string{""}
	}

	ingest := &nearbyIngestion{
		srv:     srv,
		vars:    collection.Variables,
		details: details,
		report:  &usecase.IngestReport{Errors: []string{}},
	}

	for _, location := range input.Locations {
		for _, placeType := range types {
			params := map[string]string{
				"location": formatCoordinate(location.Latitude) + "," + formatCoordinate(location.Longitude),
				"radius":   strconv.Itoa(radius),
				"rankBy":   rankBy,
			}
			if placeType != "" {
				params["types"] = placeType
			}

			result := srv.executor.Execute(ctx, nearby, collection.Variables, params)
			ingest.handleSearch(ctx, result, location, placeType)
		}
	}

	srv.log(ctx).Info("Nearby ingestion finished",
		slog.Int("requested", ingest.report.Requested),
		slog.Int("added", ingest.report.Added),
		slog.Int("skipped", ingest.report.Skipped),
		slog.Int("failed", ingest.report.Failed),
	)

	return ingest.report, nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nearbyIngestion carries the state of one IngestNearby run.
type nearbyIngestion struct {
	srv     *apiTestingService
	vars    map[string]string
	details *entity.Endpoint
	report  *usecase.IngestReport
}

func (n *nearbyIngestion) fail(format string, args ...any) {
	n.report.Failed++
	n.report.Errors = append(n.report.Errors, fmt.Sprintf(format, args...))
}

func (n *nearbyIngestion) handleSearch(ctx context.Context, result *entity.ExecutionResult, location usecase.IngestLocation, placeType string) {
	search := fmt.Sprintf("nearby %s,%s %q", formatCoordinate(location.Latitude), formatCoordinate(location.Longitude), placeType)

	body, err := responseBody(result)
	if err != nil {
		n.fail("%s: %v", search, err)

		return
	}

	predictions := objectList(body["predictions"])
	if len(predictions) == 0 {
		predictions = objectList(body["results"])
	}

	for _, prediction := range predictions {
		n.report.Requested++
		n.ingestPrediction(ctx, prediction, location, placeType)
	}
}

func (n *nearbyIngestion) ingestPrediction(ctx context.Context, prediction map[string]any, location usecase.IngestLocation, placeType string) {
	placeID := stringField(prediction, "place_id")
	if placeID == "" {
		n.fail("prediction without place_id: %s", stringField(prediction, "description"))

		return
	}

	if n.srv.places.PlaceExists(ctx, placeID) {
		n.report.Skipped++

		return
	}

	result := n.srv.executor.Execute(ctx, n.details, n.vars, map[string]string{"place_id": placeID})
	body, err := responseBody(result)
	if err != nil {
		n.fail("details %s: %v", placeID, err)

		return
	}

	details, _ := body["result"].(map[string]any)
	input, err := placeFromDetails(placeID, prediction, details, location, placeType)
	if err != nil {
		n.fail("details %s: %v", placeID, err)

		return
	}

	if _, ok := n.srv.places.AddPlace(ctx, input); !ok {
		n.fail("add %s: place was rejected", placeID)

		return
	}
	n.report.Added++
}

// responseBody returns the JSON object of a successful result. A body with
// error_message is an API-level failure.
func responseBody(result *entity.ExecutionResult) (map[string]any, error) {
	if !result.Success {
		return nil, fmt.Errorf("%s", result.Error)
	}

	body, ok := result.JSONBody()
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object")
	}
	if message := stringField(body, "error_message"); message != "" {
		return nil, fmt.Errorf("API error: %s", message)
	}

	return body, nil
}

// placeFromDetails maps a details response onto a new place.
func placeFromDetails(placeID string, prediction, details map[string]any, location usecase.IngestLocation, placeType string) (*usecase.AddPlaceInput, error) {
	if details == nil {
		return nil, fmt.Errorf("response has no result")
	}

	geometry, _ := details["geometry"].(map[string]any)
	point, _ := geometry["location"].(map[string]any)
	lat, latOK := validation.ToFloat(point["lat"])
	lng, lngOK := validation.ToFloat(point["lng"])
	if !latOK || !lngOK {
		return nil, fmt.Errorf("result has no geometry location")
	}

	input := &usecase.AddPlaceInput{
		ID:        placeID,
		Latitude:  lat,
		Longitude: lng,
		Name:      firstNonEmpty(stringField(details, "name"), stringField(prediction, "description")),
		Address:   firstNonEmpty(stringField(details, "formatted_address"), stringField(prediction, "description")),
		Types:     firstNonEmpty(joinTypes(prediction["types"]), joinTypes(details["types"]), placeType),
		Pincode:   location.Pincode,
	}
	if rating, ok := validation.ToFloat(details["rating"]); ok {
		input.Rating = rating
	}

	for _, component := range objectList(details["address_components"]) {
		if postal := stringField(component, "postal_code"); postal != "" {
			input.Pincode = postal
		}
		kinds := stringList(component["types"])
		switch {
		case slices.Contains(kinds, "postal_code"):
			input.Pincode = firstNonEmpty(stringField(component, "long_name"), input.Pincode)
		case slices.Contains(kinds, "country"):
			input.Country = firstNonEmpty(stringField(component, "long_name"), input.Country)
		}
		if country := stringField(component, "country"); country != "" {
			input.Country = country
		}
	}

	return input, nil
}

func objectList(value any) []map[string]any {
	items, _ := value.([]any)
	objects := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if object, ok := item.(map[string]any); ok {
			objects = append(objects, object)
		}
	}

	return objects
}

func stringList(value any) []string {
	items, _ := value.([]any)
	values := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			values = append(values, strings.TrimSpace(s))
		}
	}

	return values
}

func joinTypes(value any) string {
	return strings.Join(stringList(value), ", ")
}

func stringField(object map[string]any, key string) string {
	switch v := object[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return formatCoordinate(v)
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
