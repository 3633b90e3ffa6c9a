package apitester

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"places/config"
	domainerrors "places/internal/domain/errors"
	"places/internal/domain/service"
	"places/internal/infra/metrics"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenSource holds the bearer token used by the executor and refreshes it
// through the OAuth2 client credentials grant.
type TokenSource struct {
	mu    sync.Mutex
	token string

	credentials *clientcredentials.Config
	httpClient  *http.Client
	logger      *slog.Logger
	metrics     *metrics.Metrics
	now         func() time.Time
}

var _ service.TokenProvider = (*TokenSource)(nil)

// NewTokenSource seeds the source with the configured token. Refresh is only
// possible when a client id and secret are configured.
func NewTokenSource(cfg *config.APITesterConfig, httpClient *http.Client, logger *slog.Logger, m *metrics.Metrics) *TokenSource {
	source := &TokenSource{
		token:      strings.TrimSpace(cfg.BearerToken),
		httpClient: httpClient,
		logger:     logger,
		metrics:    m,
		now:        time.Now,
	}

	if cfg.ClientID != "" && cfg.ClientSecret != "" && cfg.TokenURL != "" {
		source.credentials = &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
			AuthStyle:    oauth2.AuthStyleInParams,
		}
	}

	return source
}

// CanRefresh reports whether client credentials are configured.
func (s *TokenSource) CanRefresh() bool {
	return s.credentials != nil
}

// Token returns the current token. An expired JWT is refreshed first when
// possible; opaque tokens are returned as is.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && !tokenExpired(s.token, s.now()) {
		return s.token, nil
	}
	if s.credentials == nil {
		return s.token, nil
	}

	return s.refreshLocked(ctx)
}

// Refresh fetches a new token from the token endpoint.
func (s *TokenSource) Refresh(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshLocked(ctx)
}

func (s *TokenSource) refreshLocked(ctx context.Context) (string, error) {
	if s.credentials == nil {
		return "", domainerrors.ErrTokenRefreshFailed.WrapMessage("client credentials are not configured")
	}

	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}

	token, err := s.credentials.Token(ctx)
	s.metrics.TokenRefresh(err)
	if err != nil {
		s.logger.Error("Failed to refresh bearer token", slog.Any("error", err))

		return "", domainerrors.ErrTokenRefreshFailed.WrapMessage(err.Error())
	}

	s.token = token.AccessToken
	s.logger.Info("Refreshed bearer token", slog.Time("expiry", token.Expiry))

	return s.token, nil
}

// tokenExpired reads the exp claim without verifying the signature. Tokens
// that are not JWTs, or carry no exp, never expire.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !exp.After(now)
}
