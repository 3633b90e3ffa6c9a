package impl

import (
	"context"
	"testing"

	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	mockService "places/internal/mocks/service"
	mockUsecase "places/internal/mocks/usecase"
	"places/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiTestingFixtures struct {
	service  usecase.APITestingUsecase
	loader   *mockService.MockCollectionLoader
	executor *mockService.MockEndpointExecutor
	places   *mockUsecase.MockPlaceUsecase
}

func createTestAPITestingService(t *testing.T) apiTestingFixtures {
	loader := mockService.NewMockCollectionLoader(t)
	executor := mockService.NewMockEndpointExecutor(t)
	places := mockUsecase.NewMockPlaceUsecase(t)

	return apiTestingFixtures{
		service: NewAPITestingService(APITestingServiceParams{
			Loader:   loader,
			Executor: executor,
			Places:   places,
			Logger:   newDiscardLogger(),
		}),
		loader:   loader,
		executor: executor,
		places:   places,
	}
}

func placesAPICollection() *entity.Collection {
	return &entity.Collection{
		Name: "Places API",
		File: DefaultIngestCollection,
		Endpoints: map[string][]*entity.Endpoint{
			"Places": {
				{Name: PlaceDetailsEndpoint, Method: "GET", URL: "{{baseUrl}}/details", RequiredParams: []string{}},
				{Name: NearbySearchEndpoint, Method: "GET", URL: "{{baseUrl}}/nearby", RequiredParams: []string{}},
			},
			"Geocoding": {
				{Name: "1) Geocode - GET", Method: "GET", URL: "{{baseUrl}}/geocode", RequiredParams: []string{}},
			},
		},
		Variables: map[string]string{"baseUrl": "https://api.example.com"},
	}
}

func endpointNamed(name string) any {
	return mock.MatchedBy(func(endpoint *entity.Endpoint) bool { return endpoint.Name == name })
}

func jsonResult(body map[string]any) *entity.ExecutionResult {
	return &entity.ExecutionResult{Success: true, StatusCode: 200, Response: body}
}

func TestAPITestingService_ListCollections(t *testing.T) {
	fx := createTestAPITestingService(t)
	ctx := context.Background()

	fx.loader.EXPECT().ListCollections(ctx).Return([]string{"Broken.postman_collection.json", DefaultIngestCollection}, nil)
	fx.loader.EXPECT().LoadCollection(ctx, "Broken.postman_collection.json").Return(nil, domainerrors.ErrInvalidCollection)
	fx.loader.EXPECT().LoadCollection(ctx, DefaultIngestCollection).Return(placesAPICollection(), nil)

	summaries, err := fx.service.ListCollections(ctx)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Broken", summaries[0].Name)
	assert.Empty(t, summaries[0].Categories)
	assert.Equal(t, "Places API", summaries[1].Name)
	assert.Equal(t, []string{"Geocoding", "Places"}, summaries[1].Categories)
	assert.Equal(t, 3, summaries[1].EndpointCount)
}

func TestAPITestingService_ExecuteEndpoint(t *testing.T) {
	fx := createTestAPITestingService(t)
	ctx := context.Background()
	collection := placesAPICollection()
	params := map[string]string{"address": "MG Road"}
	want := jsonResult(map[string]any{"status": "OK"})

	fx.loader.EXPECT().LoadCollection(ctx, "places").Return(collection, nil)
	fx.executor.EXPECT().Execute(ctx, endpointNamed("1) Geocode - GET"), collection.Variables, params).Return(want)

	result, err := fx.service.ExecuteEndpoint(ctx, &usecase.ExecuteEndpointInput{
		Collection: "places",
		Endpoint:   "1) Geocode - GET",
		Params:     params,
	})

	require.NoError(t, err)
	assert.Same(t, want, result)
}

func TestAPITestingService_ExecuteEndpoint_Unknown(t *testing.T) {
	fx := createTestAPITestingService(t)
	ctx := context.Background()

	fx.loader.EXPECT().LoadCollection(ctx, "places").Return(placesAPICollection(), nil)

	result, err := fx.service.ExecuteEndpoint(ctx, &usecase.ExecuteEndpointInput{Collection: "places", Endpoint: "nope"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrEndpointNotFound)
}

func TestAPITestingService_RunCategory_KeepsGoingAfterFailure(t *testing.T) {
	fx := createTestAPITestingService(t)
	ctx := context.Background()

	fx.loader.EXPECT().LoadCollection(ctx, "places").Return(placesAPICollection(), nil)
	fx.executor.EXPECT().
		Execute(ctx, endpointNamed(PlaceDetailsEndpoint), mock.Anything, mock.Anything).
		Return(&entity.ExecutionResult{Success: false, StatusCode: 500, Error: "HTTP 500: boom"})
	fx.executor.EXPECT().
		Execute(ctx, endpointNamed(NearbySearchEndpoint), mock.Anything, mock.Anything).
		Return(jsonResult(map[string]any{}))

	run, err := fx.service.RunCategory(ctx, &usecase.RunCategoryInput{Collection: "places", Category: "Places"})

	require.NoError(t, err)
	assert.Equal(t, 2, run.Total)
	assert.Equal(t, 1, run.Succeeded)
	assert.Equal(t, 1, run.Failed)
	assert.Len(t, run.Results, 2)
}

func TestAPITestingService_RunCategory_Unknown(t *testing.T) {
	fx := createTestAPITestingService(t)
	ctx := context.Background()

	fx.loader.EXPECT().LoadCollection(ctx, "places").Return(placesAPICollection(), nil)

	_, err := fx.service.RunCategory(ctx, &usecase.RunCategoryInput{Collection: "places", Category: "Billing"})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestAPITestingService_IngestNearby(t *testing.T) {
	fx := createTestAPITestingService(t)
	ctx := context.Background()

	fx.loader.EXPECT().LoadCollection(ctx, DefaultIngestCollection).Return(placesAPICollection(), nil)
	fx.executor.EXPECT().
		Execute(ctx, endpointNamed(NearbySearchEndpoint), mock.Anything, map[string]string{
			"location": "12.9716,77.5946",
			"radius":   "10000",
			"rankBy":   "popular",
			"types":    "cafe",
		}).
		Return(jsonResult(map[string]any{
			"predictions": []any{
				map[string]any{"place_id": "known", "description": "Old Cafe"},
				map[string]any{"place_id": "fresh", "description": "New Cafe, MG Road", "types": []any{"cafe", "food"}},
				map[string]any{"place_id": "broken", "description": "No geometry"},
				map[string]any{"description": "missing id"},
			},
		}))

	fx.places.EXPECT().PlaceExists(ctx, "known").Return(true)
	fx.places.EXPECT().PlaceExists(ctx, "fresh").Return(false)
	fx.places.EXPECT().PlaceExists(ctx, "broken").Return(false)

	fx.executor.EXPECT().
		Execute(ctx, endpointNamed(PlaceDetailsEndpoint), mock.Anything, map[string]string{"place_id": "fresh"}).
		Return(jsonResult(map[string]any{
			"result": map[string]any{
				"name":              "New Cafe",
				"formatted_address": "1 MG Road, Bengaluru",
				"rating":            4.4,
				"geometry":          map[string]any{"location": map[string]any{"lat": 12.97, "lng": 77.6}},
				"address_components": []any{
					map[string]any{"long_name": "560001", "types": []any{"postal_code"}},
					map[string]any{"long_name": "India", "types": []any{"country", "political"}},
				},
			},
		}))
	fx.executor.EXPECT().
		Execute(ctx, endpointNamed(PlaceDetailsEndpoint), mock.Anything, map[string]string{"place_id": "broken"}).
		Return(jsonResult(map[string]any{"result": map[string]any{"name": "Broken"}}))

	fx.places.EXPECT().
		AddPlace(ctx, &usecase.AddPlaceInput{
			ID:        "fresh",
			Latitude:  12.97,
			Longitude: 77.6,
			Types:     "cafe, food",
			Name:      "New Cafe",
			Address:   "1 MG Road, Bengaluru",
			Pincode:   "560001",
			Rating:    4.4,
			Country:   "India",
		}).
		Return(&entity.Place{ID: "fresh"}, true)

	report, err := fx.service.IngestNearby(ctx, &usecase.IngestNearbyInput{
		Locations: []usecase.IngestLocation{{Latitude: 12.9716, Longitude: 77.5946, Pincode: "560002"}},
		Types:     []string{"cafe"},
	})

	require.NoError(t, err)
	assert.Equal(t, 4, report.Requested)
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 2, report.Failed)
	assert.Len(t, report.Errors, 2)
}

func TestAPITestingService_IngestNearby_SearchErrorMessage(t *testing.T) {
	fx := createTestAPITestingService(t)
	ctx := context.Background()

	fx.loader.EXPECT().LoadCollection(ctx, "custom").Return(placesAPICollection(), nil)
	fx.executor.EXPECT().
		Execute(ctx, endpointNamed(NearbySearchEndpoint), mock.Anything, mock.Anything).
		Return(jsonResult(map[string]any{"error_message": "quota exceeded"}))

	report, err := fx.service.IngestNearby(ctx, &usecase.IngestNearbyInput{
		Collection: "custom",
		Locations:  []usecase.IngestLocation{{Latitude: 1, Longitude: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, report.Requested)
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, report.Errors[0], "quota exceeded")
}

func TestPlaceFromDetails_FallsBackToRequestPincode(t *testing.T) {
	input, err := placeFromDetails("p1",
		map[string]any{"description": "Lalbagh"},
		map[string]any{"geometry": map[string]any{"location": map[string]any{"lat": "12.95", "lng": 77.58}}},
		usecase.IngestLocation{Pincode: "560004"},
		"park",
	)

	require.NoError(t, err)
	assert.Equal(t, "Lalbagh", input.Name)
	assert.Equal(t, "Lalbagh", input.Address)
	assert.Equal(t, "park", input.Types)
	assert.Equal(t, "560004", input.Pincode)
	assert.Equal(t, 12.95, input.Latitude)
}
