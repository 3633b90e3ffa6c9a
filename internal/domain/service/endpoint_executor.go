package service

import (
	"context"

	"places/internal/domain/entity"
)

// CollectionLoader discovers and parses endpoint collections.
type CollectionLoader interface {
	// ListCollections returns the collection file names, sorted.
	ListCollections(ctx context.Context) ([]string, error)

	// LoadCollection parses one collection file.
	LoadCollection(ctx context.Context, name string) (*entity.Collection, error)
}

// EndpointExecutor issues one request described by an endpoint. Transport and
// HTTP failures are reported inside the result, never as an error.
type EndpointExecutor interface {
	Execute(ctx context.Context, endpoint *entity.Endpoint, vars map[string]string, params map[string]string) *entity.ExecutionResult
}

// TokenProvider hands out the bearer token used by outbound calls.
type TokenProvider interface {
	// Token returns the current token, refreshing it first if it is known to be expired.
	Token(ctx context.Context) (string, error)

	// Refresh obtains a new token unconditionally.
	Refresh(ctx context.Context) (string, error)
}
