package apitester

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"places/config"
	"places/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokens struct {
	mu        sync.Mutex
	current   string
	next      string
	refreshes int
	err       error
}

func (s *stubTokens) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current, nil
}

func (s *stubTokens) Refresh(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshes++
	if s.err != nil {
		return "", s.err
	}
	s.current = s.next

	return s.current, nil
}

func testAPIConfig() *config.APITesterConfig {
	return &config.APITesterConfig{
		BaseURL:              "https://base.example.com",
		APIKey:               "secret-key",
		RequestTimeout:       2 * time.Second,
		AuthFailureMarkers:   []string{"Invalid Token"},
		ResponsePreviewLimit: 5,
	}
}

func newTestExecutor(cfg *config.APITesterConfig, tokens *stubTokens) *Executor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if tokens == nil {
		return NewExecutor(cfg, NewHTTPClient(cfg), nil, logger, nil)
	}

	return NewExecutor(cfg, NewHTTPClient(cfg), tokens, logger, nil)
}

func TestExecutor_MissingParamsSkipsRequest(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ }))
	defer server.Close()

	endpoint := &entity.Endpoint{
		Name:           "details",
		Method:         http.MethodGet,
		URL:            server.URL + "/places/{place_id}/{kind}",
		RequiredParams: []string{"place_id", "kind"},
	}

	result := newTestExecutor(testAPIConfig(), nil).Execute(context.Background(), endpoint, map[string]string{"kind": "cafe"}, nil)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"place_id"}, result.MissingParams)
	assert.Contains(t, result.Error, "place_id")
	assert.Zero(t, calls)
}

func TestExecutor_GetWithPathAndQueryParams(t *testing.T) {
	var seen *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"status": "ok", "count": 2}`))
	}))
	defer server.Close()

	endpoint := &entity.Endpoint{
		Name:           "details",
		Method:         http.MethodGet,
		URL:            server.URL + "/places/{place_id}?layer=venue",
		Headers:        map[string]string{"X-Trace": "{{trace}}"},
		QueryParams:    map[string]string{"radius": "10000"},
		RequiredParams: []string{"place_id"},
	}

	result := newTestExecutor(testAPIConfig(), nil).Execute(context.Background(), endpoint,
		map[string]string{"trace": "abc"},
		map[string]string{"place_id": "ola-1", "rankBy": "popular"})

	require.NotNil(t, seen)
	assert.True(t, result.Success, result.Error)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "/places/ola-1", seen.URL.Path)
	assert.Equal(t, "venue", seen.URL.Query().Get("layer"))
	assert.Equal(t, "10000", seen.URL.Query().Get("radius"))
	assert.Equal(t, "popular", seen.URL.Query().Get("rankBy"))
	assert.Equal(t, "secret-key", seen.URL.Query().Get("api_key"))
	assert.Empty(t, seen.URL.Query().Get("place_id"))
	assert.Equal(t, "abc", seen.Header.Get("X-Trace"))

	body, ok := result.JSONBody()
	require.True(t, ok)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, result.URL, "/places/ola-1?")
	assert.Equal(t, "application/json; charset=utf-8", result.Headers["Content-Type"])
	assert.GreaterOrEqual(t, result.ResponseTimeMs, 0.0)
	assert.False(t, result.ExecutedAt.IsZero())
}

func TestExecutor_PostMergesParamsIntoBody(t *testing.T) {
	var payload map[string]any
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	endpoint := &entity.Endpoint{
		Name:       "create",
		Method:     http.MethodPost,
		URL:        server.URL + "/places",
		BodyParams: map[string]any{"name": "Cafe"},
	}

	result := newTestExecutor(testAPIConfig(), nil).Execute(context.Background(), endpoint, nil, map[string]string{"types": "cafe"})

	assert.True(t, result.Success)
	assert.Equal(t, http.StatusCreated, result.StatusCode)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, map[string]any{"name": "Cafe", "types": "cafe"}, payload)
	assert.Equal(t, map[string]any{"name": "Cafe"}, endpoint.BodyParams, "endpoint untouched")
}

func TestExecutor_ErrorStatusAndTextPreview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such place here"))
	}))
	defer server.Close()

	endpoint := &entity.Endpoint{Name: "missing", Method: http.MethodGet, URL: server.URL + "/nothing"}

	result := newTestExecutor(testAPIConfig(), nil).Execute(context.Background(), endpoint, nil, nil)

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Equal(t, "HTTP 404: Not Found", result.Error)
	assert.Equal(t, "no su...", result.Response)
}

func TestExecutor_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	target := server.URL
	server.Close()

	endpoint := &entity.Endpoint{Name: "down", Method: http.MethodGet, URL: target + "/x"}

	result := newTestExecutor(testAPIConfig(), nil).Execute(context.Background(), endpoint, nil, nil)

	assert.False(t, result.Success)
	assert.Zero(t, result.StatusCode)
	assert.NotEmpty(t, result.Error)
}

func TestExecutor_RefreshesTokenOnAuthFailure(t *testing.T) {
	var mu sync.Mutex
	var seenTokens []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		mu.Lock()
		seenTokens = append(seenTokens, auth)
		mu.Unlock()

		if auth != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	tokens := &stubTokens{current: "stale", next: "fresh"}
	endpoint := &entity.Endpoint{
		Name:    "secured",
		Method:  http.MethodGet,
		URL:     server.URL + "/secure",
		Headers: map[string]string{"Authorization": "Bearer {{token}}"},
	}

	result := newTestExecutor(testAPIConfig(), tokens).Execute(context.Background(), endpoint, nil, nil)

	assert.True(t, result.Success, result.Error)
	assert.True(t, result.TokenRefreshed)
	assert.Equal(t, 1, tokens.refreshes)
	assert.Equal(t, []string{"Bearer stale", "Bearer fresh"}, seenTokens)
}

func TestExecutor_MarkerTriggersRefreshOnce(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "invalid token supplied"}`))
	}))
	defer server.Close()

	tokens := &stubTokens{current: "stale", next: "still-bad"}
	endpoint := &entity.Endpoint{
		Name:    "secured",
		Method:  http.MethodGet,
		URL:     server.URL,
		Headers: map[string]string{"authorization": "bearer x"},
	}

	result := newTestExecutor(testAPIConfig(), tokens).Execute(context.Background(), endpoint, nil, nil)

	assert.False(t, result.Success)
	assert.True(t, result.TokenRefreshed)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, tokens.refreshes)
}

func TestExecutor_NoRefreshWithoutBearerHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	tokens := &stubTokens{current: "stale", next: "fresh"}
	endpoint := &entity.Endpoint{Name: "keyed", Method: http.MethodGet, URL: server.URL}

	result := newTestExecutor(testAPIConfig(), tokens).Execute(context.Background(), endpoint, nil, nil)

	assert.False(t, result.Success)
	assert.False(t, result.TokenRefreshed)
	assert.Zero(t, tokens.refreshes)
}

func TestExecutor_EnforcesHTTPS(t *testing.T) {
	executor := newTestExecutor(testAPIConfig(), nil)

	target, missing := executor.resolveURL(&entity.Endpoint{URL: "api.example.com/places"}, nil, nil)

	assert.Empty(t, missing)
	assert.True(t, strings.HasPrefix(target, "https://"), target)
}
