package usecase

import (
	"context"

	"places/internal/domain/entity"
)

// CollectionSummary describes one collection without its endpoints.
type CollectionSummary struct {
	File          string   `json:"file"`
	Name          string   `json:"name"`
	Categories    []string `json:"categories"`
	EndpointCount int      `json:"endpoint_count"`
}

// ExecuteEndpointInput selects one endpoint of a collection and its parameters.
type ExecuteEndpointInput struct {
	Collection string            `json:"collection"`
	Endpoint   string            `json:"endpoint"`
	Params     map[string]string `json:"params"`
}

// RunCategoryInput selects every endpoint of one category.
type RunCategoryInput struct {
	Collection string            `json:"collection"`
	Category   string            `json:"category"`
	Params     map[string]string `json:"params"`
}

// CategoryRun is the outcome of a batch run. Failures never stop the batch.
type CategoryRun struct {
	Collection string                    `json:"collection"`
	Category   string                    `json:"category"`
	Total      int                       `json:"total"`
	Succeeded  int                       `json:"succeeded"`
	Failed     int                       `json:"failed"`
	Results    []*entity.ExecutionResult `json:"results"`
}

// IngestLocation is one search centre.
type IngestLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// Pincode is stored when the details response carries no postal code.
	Pincode string `json:"pincode"`
}

// IngestNearbyInput drives a nearby-search backfill.
type IngestNearbyInput struct {
	Collection string           `json:"collection"`
	Locations  []IngestLocation `json:"locations"`
	Types      []string         `json:"types"`
	Radius     int              `json:"radius"`
	RankBy     string           `json:"rank_by"`
}

// IngestReport summarises a backfill.
type IngestReport struct {
	Requested int      `json:"requested"`
	Added     int      `json:"added"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

// APITestingUsecase drives the collection-based API harness.
type APITestingUsecase interface {
	ListCollections(ctx context.Context) ([]*CollectionSummary, error)
	GetCollection(ctx context.Context, name string) (*entity.Collection, error)
	ExecuteEndpoint(ctx context.Context, input *ExecuteEndpointInput) (*entity.ExecutionResult, error)
	RunCategory(ctx context.Context, input *RunCategoryInput) (*CategoryRun, error)
	IngestNearby(ctx context.Context, input *IngestNearbyInput) (*IngestReport, error)
}
