package apitester

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"places/config"
	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	"places/internal/domain/service"
	"places/internal/infra/metrics"
	"places/internal/util"

	"go.uber.org/fx"
)

const maxResponseBytes = 10 << 20

// Executor sends endpoint requests and turns every outcome into an
// ExecutionResult.
type Executor struct {
	client       *http.Client
	tokens       service.TokenProvider
	substituter  *Substituter
	apiKey       string
	markers      []string
	previewLimit int
	logger       *slog.Logger
	metrics      *metrics.Metrics
	now          func() time.Time
}

var _ service.EndpointExecutor = (*Executor)(nil)

// ExecutorParams defines the dependencies of NewEndpointExecutor.
type ExecutorParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Tokens  service.TokenProvider
}

// NewEndpointExecutor builds the executor used by the API harness.
func NewEndpointExecutor(params ExecutorParams) service.EndpointExecutor {
	cfg := params.Config.APITester

	return NewExecutor(cfg, NewHTTPClient(cfg), params.Tokens, params.Logger, params.Metrics)
}

// NewTokenProvider builds the token source shared by the harness.
func NewTokenProvider(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) service.TokenProvider {
	return NewTokenSource(cfg.APITester, NewHTTPClient(cfg.APITester), logger, m)
}

// NewHTTPClient returns a client bounded by the configured request timeout.
func NewHTTPClient(cfg *config.APITesterConfig) *http.Client {
	return &http.Client{Timeout: cfg.RequestTimeout}
}

// NewExecutor creates an Executor. tokens may be nil.
func NewExecutor(cfg *config.APITesterConfig, client *http.Client, tokens service.TokenProvider, logger *slog.Logger, m *metrics.Metrics) *Executor {
	markers := make([]string, 0, len(cfg.AuthFailureMarkers))
	for _, marker := range cfg.AuthFailureMarkers {
		if marker = strings.ToLower(strings.TrimSpace(marker)); marker != "" {
			markers = append(markers, marker)
		}
	}

	return &Executor{
		client:       client,
		tokens:       tokens,
		substituter:  NewSubstituter(cfg.BaseURL),
		apiKey:       cfg.APIKey,
		markers:      markers,
		previewLimit: cfg.ResponsePreviewLimit,
		logger:       logger.With(slog.String("component", "api_executor")),
		metrics:      m,
		now:          time.Now,
	}
}

// Execute resolves path parameters, sends the request and, when the response
// looks like a rejected token, refreshes the token and retries once.
func (e *Executor) Execute(ctx context.Context, endpoint *entity.Endpoint, vars map[string]string, params map[string]string) *entity.ExecutionResult {
	target, missing := e.resolveURL(endpoint, vars, params)
	if len(missing) > 0 {
		return &entity.ExecutionResult{
			Endpoint:      endpoint.Name,
			URL:           target,
			Headers:       map[string]string{},
			Error:         domainerrors.ErrMissingParameters.WithDetails(strings.Join(missing, ", ")).Error(),
			MissingParams: missing,
			ExecutedAt:    e.now().UTC(),
		}
	}

	usesBearer := hasBearerHeader(endpoint.Headers)
	token := ""
	if usesBearer && e.tokens != nil {
		current, err := e.tokens.Token(ctx)
		if err != nil {
			e.logger.Warn("Using collection bearer token", slog.Any("error", err))
		}
		token = current
	}

	result, body := e.send(ctx, endpoint, target, vars, params, token)
	if !usesBearer || !e.canRefresh() || !e.isAuthFailure(result, body) {
		return result
	}

	e.logger.Info("Request rejected the bearer token, refreshing",
		slog.String("endpoint", endpoint.Name), slog.Int("status", result.StatusCode))

	fresh, err := e.tokens.Refresh(ctx)
	if err != nil {
		e.logger.Error("Token refresh failed", slog.String("endpoint", endpoint.Name), slog.Any("error", err))

		return result
	}

	retried, _ := e.send(ctx, endpoint, target, vars, params, fresh)
	retried.TokenRefreshed = true

	return retried
}

func (e *Executor) canRefresh() bool {
	if e.tokens == nil {
		return false
	}
	if refresher, ok := e.tokens.(interface{ CanRefresh() bool }); ok {
		return refresher.CanRefresh()
	}

	return true
}

func (e *Executor) isAuthFailure(result *entity.ExecutionResult, body string) bool {
	if result.StatusCode == http.StatusUnauthorized {
		return true
	}
	if result.StatusCode < http.StatusBadRequest {
		return false
	}

	lowered := strings.ToLower(body)
	for _, marker := range e.markers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}

	return false
}

// resolveURL fills {param} tokens from params, then vars, and reports those
// that neither provides.
func (e *Executor) resolveURL(endpoint *entity.Endpoint, vars, params map[string]string) (string, []string) {
	target := endpoint.URL

	var missing []string
	for _, name := range endpoint.RequiredParams {
		value, ok := params[name]
		if !ok || value == "" {
			value, ok = vars[name]
		}
		if !ok || value == "" {
			missing = append(missing, name)

			continue
		}
		target = strings.ReplaceAll(target, "{"+name+"}", url.PathEscape(value))
	}

	target = e.substituter.Substitute(target, vars)
	if !strings.Contains(target, "://") {
		target = "https://" + target
	}

	return target, missing
}

func hasBearerHeader(headers map[string]string) bool {
	for key, value := range headers {
		if strings.EqualFold(key, "Authorization") && strings.Contains(strings.ToLower(value), "bearer") {
			return true
		}
	}

	return false
}

func (e *Executor) buildRequest(ctx context.Context, endpoint *entity.Endpoint, target string, vars, params map[string]string, token string) (*http.Request, error) {
	base, rawQuery, _ := strings.Cut(target, "?")

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	for key, value := range endpoint.QueryParams {
		query.Set(key, e.substituter.Substitute(value, vars))
	}

	hasBody := bodyMethods[endpoint.Method]
	var body map[string]any
	if hasBody {
		body = maps.Clone(endpoint.BodyParams)
		if body == nil {
			body = map[string]any{}
		}
	}

	for _, key := range slices.Sorted(maps.Keys(params)) {
		if slices.Contains(endpoint.RequiredParams, key) {
			continue
		}
		if hasBody {
			body[key] = params[key]
		} else {
			query.Set(key, params[key])
		}
	}
	if e.apiKey != "" {
		query.Set("api_key", e.apiKey)
	}

	var reader io.Reader
	if hasBody {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, endpoint.Method, base, reader)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = query.Encode()

	for key, value := range endpoint.Headers {
		value = e.substituter.Substitute(value, vars)
		if token != "" && strings.EqualFold(key, "Authorization") && strings.Contains(strings.ToLower(value), "bearer") {
			value = "Bearer " + token
		}
		req.Header.Set(key, value)
	}
	if hasBody && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// send performs one attempt. The raw body is returned for auth failure checks.
func (e *Executor) send(ctx context.Context, endpoint *entity.Endpoint, target string, vars, params map[string]string, token string) (*entity.ExecutionResult, string) {
	result := &entity.ExecutionResult{
		Endpoint:   endpoint.Name,
		URL:        target,
		Headers:    map[string]string{},
		ExecutedAt: e.now().UTC(),
	}

	req, err := e.buildRequest(ctx, endpoint, target, vars, params, token)
	if err != nil {
		result.Error = err.Error()

		return result, ""
	}
	result.URL = req.URL.String()

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		result.ResponseTimeMs = util.RoundFloat(float64(time.Since(start).Microseconds())/1000, 2)
		result.Error = err.Error()
		e.metrics.APIRequest(endpoint.Method, 0, result.ResponseTimeMs)
		e.logger.Warn("Endpoint request failed", slog.String("endpoint", endpoint.Name), slog.Any("error", err))

		return result, ""
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	result.ResponseTimeMs = util.RoundFloat(float64(time.Since(start).Microseconds())/1000, 2)
	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode < http.StatusBadRequest
	e.metrics.APIRequest(endpoint.Method, resp.StatusCode, result.ResponseTimeMs)

	for key := range resp.Header {
		result.Headers[key] = resp.Header.Get(key)
	}

	if err != nil {
		result.Success = false
		result.Error = err.Error()

		return result, string(data)
	}

	result.Response = e.decodeBody(resp.Header.Get("Content-Type"), data)
	if !result.Success {
		result.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	e.logger.Debug("Endpoint request completed",
		slog.String("endpoint", endpoint.Name),
		slog.Int("status", resp.StatusCode),
		slog.Float64("response_time_ms", result.ResponseTimeMs))

	return result, string(data)
}

// decodeBody parses JSON responses; anything else becomes a truncated preview.
func (e *Executor) decodeBody(contentType string, data []byte) any {
	if strings.HasPrefix(strings.ToLower(contentType), "application/json") {
		var decoded any
		if err := json.Unmarshal(data, &decoded); err == nil {
			return decoded
		}
	}

	return util.TruncateString(string(data), e.previewLimit)
}
