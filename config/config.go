package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Pool tunes the database/sql connection pool owned by the place store
	Pool *PoolConfig `json:"pool" yaml:"pool"`

	// Pagination configuration for place listings
	Pagination *PaginationConfig `json:"pagination" yaml:"pagination"`

	// Excel configuration for the spreadsheet mirror
	Excel *ExcelConfig `json:"excel" yaml:"excel"`

	// APITester configuration for the collection-driven API harness
	APITester *APITesterConfig `json:"apiTester" yaml:"apiTester"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Analytics configuration for dashboards and charts
	Analytics *AnalyticsConfig `json:"analytics" yaml:"analytics"`

	// Worker configuration for the place event push receiver
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PoolConfig defines connection pool limits
type PoolConfig struct {
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// PaginationConfig defines page size defaults for listings
type PaginationConfig struct {
	DefaultPageSize int   `json:"defaultPageSize" yaml:"defaultPageSize"`
	PageSizeOptions []int `json:"pageSizeOptions" yaml:"pageSizeOptions"`
	MaxPageSize     int   `json:"maxPageSize" yaml:"maxPageSize"`
}

// ExcelConfig defines the spreadsheet mirror behaviour
type ExcelConfig struct {
	// Path of the workbook; backups live in a sibling "backups" directory
	Path      string `json:"path" yaml:"path"`
	SheetName string `json:"sheetName" yaml:"sheetName"`

	SyncEnabled bool `json:"syncEnabled" yaml:"syncEnabled"`
	PreferExcel bool `json:"preferExcel" yaml:"preferExcel"`

	// RepopulateOnFallback rewrites the mirror when a preferred Excel read falls back to the database
	RepopulateOnFallback bool `json:"repopulateOnFallback" yaml:"repopulateOnFallback"`

	BackupEnabled bool `json:"backupEnabled" yaml:"backupEnabled"`
	BackupCount   int  `json:"backupCount" yaml:"backupCount"`

	CacheEnabled bool          `json:"cacheEnabled" yaml:"cacheEnabled"`
	CacheTTL     time.Duration `json:"cacheTTL" yaml:"cacheTTL"`

	// AutoSaveThreshold is the number of syncs between forced backups
	AutoSaveThreshold int `json:"autoSaveThreshold" yaml:"autoSaveThreshold"`
}

// APITesterConfig defines the API harness settings
type APITesterConfig struct {
	CollectionsDir string        `json:"collectionsDir" yaml:"collectionsDir"`
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey         string        `json:"apiKey" yaml:"apiKey"`
	BearerToken    string        `json:"bearerToken" yaml:"bearerToken"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Client credentials grant used to refresh BearerToken
	TokenURL     string   `json:"tokenUrl" yaml:"tokenUrl"`
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	Scopes       []string `json:"scopes" yaml:"scopes"`

	// AuthFailureMarkers are body fragments that identify a rejected token
	AuthFailureMarkers []string `json:"authFailureMarkers" yaml:"authFailureMarkers"`

	ResponsePreviewLimit int `json:"responsePreviewLimit" yaml:"responsePreviewLimit"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the push receiver that keeps a mirror replica in step
// with place events
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// PushPath is the route Pub/Sub push subscriptions deliver to
	PushPath string `json:"pushPath" yaml:"pushPath"`
}

// AnalyticsConfig defines dashboard presentation settings
type AnalyticsConfig struct {
	RecentActivityLimit int      `json:"recentActivityLimit" yaml:"recentActivityLimit"`
	ChartHeight         int      `json:"chartHeight" yaml:"chartHeight"`
	MapStyle            string   `json:"mapStyle" yaml:"mapStyle"`
	DefaultZoom         float64  `json:"defaultZoom" yaml:"defaultZoom"`
	PlaceTypes          []string `json:"placeTypes" yaml:"placeTypes"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: EXCEL_CACHETTL -> excel.cacheTTL (not excel.cachettl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every section that the YAML file and environment left empty.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}

	if c.Pool == nil {
		c.Pool = &PoolConfig{}
	}
	c.Pool.applyDefaults()

	if c.Pagination == nil {
		c.Pagination = &PaginationConfig{}
	}
	c.Pagination.applyDefaults()

	if c.Excel == nil {
		c.Excel = &ExcelConfig{
			SyncEnabled:          true,
			PreferExcel:          true,
			RepopulateOnFallback: true,
			BackupEnabled:        true,
			CacheEnabled:         true,
		}
	}
	c.Excel.applyDefaults()

	if c.APITester == nil {
		c.APITester = &APITesterConfig{}
	}
	c.APITester.applyDefaults()

	if c.PubSub == nil {
		c.PubSub = &PubSubConfig{}
	}

	if c.Analytics == nil {
		c.Analytics = &AnalyticsConfig{}
	}
	c.Analytics.applyDefaults()

	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port == 0 {
		c.Worker.Port = 8085
	}
	if strings.TrimSpace(c.Worker.PushPath) == "" {
		c.Worker.PushPath = "/push"
	}
}

func (p *PoolConfig) applyDefaults() {
	if p.MaxOpenConns <= 0 {
		p.MaxOpenConns = 30
	}
	if p.MaxIdleConns <= 0 {
		p.MaxIdleConns = 10
	}
	if p.ConnMaxLifetime <= 0 {
		p.ConnMaxLifetime = time.Hour
	}
}

func (p *PaginationConfig) applyDefaults() {
	if p.MaxPageSize <= 0 {
		p.MaxPageSize = 1000
	}
	if p.DefaultPageSize <= 0 {
		p.DefaultPageSize = 10
	}
	if len(p.PageSizeOptions) == 0 {
		p.PageSizeOptions = []int{10, 25, 50, 100}
	}
}

func (e *ExcelConfig) applyDefaults() {
	if strings.TrimSpace(e.Path) == "" {
		e.Path = filepath.Join("data", "places.xlsx")
	}
	if strings.TrimSpace(e.SheetName) == "" {
		e.SheetName = "Places"
	}
	if e.BackupCount <= 0 {
		e.BackupCount = 5
	}
	if e.CacheTTL <= 0 {
		e.CacheTTL = 300 * time.Second
	}
	if e.AutoSaveThreshold <= 0 {
		e.AutoSaveThreshold = 10
	}
}

func (a *APITesterConfig) applyDefaults() {
	if strings.TrimSpace(a.CollectionsDir) == "" {
		a.CollectionsDir = "OLAMAPSapi"
	}
	if strings.TrimSpace(a.BaseURL) == "" {
		a.BaseURL = "https://api.olamaps.io"
	}
	if a.RequestTimeout <= 0 {
		a.RequestTimeout = 30 * time.Second
	}
	if strings.TrimSpace(a.TokenURL) == "" {
		a.TokenURL = "https://account.olamaps.io/realms/olamaps/protocol/openid-connect/token"
	}
	if len(a.Scopes) == 0 {
		a.Scopes = []string{"openid"}
	}
	if len(a.AuthFailureMarkers) == 0 {
		a.AuthFailureMarkers = []string{"invalid token", "token expired", "unauthorized", "invalid_token"}
	}
	if a.ResponsePreviewLimit <= 0 {
		a.ResponsePreviewLimit = 1000
	}
}

func (a *AnalyticsConfig) applyDefaults() {
	if a.RecentActivityLimit <= 0 {
		a.RecentActivityLimit = 10
	}
	if a.ChartHeight <= 0 {
		a.ChartHeight = 400
	}
	if strings.TrimSpace(a.MapStyle) == "" {
		a.MapStyle = "open-street-map"
	}
	if a.DefaultZoom <= 0 {
		a.DefaultZoom = 1
	}
	if len(a.PlaceTypes) == 0 {
		a.PlaceTypes = []string{"restaurant", "hotel", "tourist_attraction"}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
