package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
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

	// Provider configuration for the suggestion/geocode backend
	Provider *ProviderConfig `json:"provider" yaml:"provider"`

	// Suggestion configuration for the query controllers
	Suggestion *SuggestionConfig `json:"suggestion" yaml:"suggestion"`

	// Viewport configuration for fly-to instructions
	Viewport *ViewportConfig `json:"viewport" yaml:"viewport"`

	// PubSub configuration for fly-to publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Stream configuration for the SSE fly-to stream
	Stream *StreamConfig `json:"stream" yaml:"stream"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ProviderConfig selects and tunes the geocoding backend
type ProviderConfig struct {
	// Kind is "mapbox", "nominatim" or "mock"
	Kind string `json:"kind" yaml:"kind"`

	// AccessToken for token-based providers (Mapbox)
	AccessToken string `json:"accessToken" yaml:"accessToken"`

	// SearchURL overrides the suggest/retrieve endpoint base
	SearchURL string `json:"searchUrl" yaml:"searchUrl"`

	// GeocodeURL overrides the reverse geocoding endpoint base
	GeocodeURL string `json:"geocodeUrl" yaml:"geocodeUrl"`

	UserAgent    string        `json:"userAgent" yaml:"userAgent"`
	Language     string        `json:"language" yaml:"language"`
	SuggestLimit int           `json:"suggestLimit" yaml:"suggestLimit"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`

	// RateLimit is the sustained requests per second towards the provider (0 = unlimited)
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	RateBurst int     `json:"rateBurst" yaml:"rateBurst"`
}

// SuggestionConfig tunes the suggestion query controllers
type SuggestionConfig struct {
	// Debounce delays a lookup until the query has been stable for this long (0 = off)
	Debounce time.Duration `json:"debounce" yaml:"debounce"`

	// LookupTimeout bounds one suggest + enrichment round
	LookupTimeout time.Duration `json:"lookupTimeout" yaml:"lookupTimeout"`

	// EnrichConcurrency bounds parallel coordinate lookups per result set
	EnrichConcurrency int `json:"enrichConcurrency" yaml:"enrichConcurrency"`
}

// ViewportConfig defines the fly-to behavior
type ViewportConfig struct {
	FlyDuration   time.Duration `json:"flyDuration" yaml:"flyDuration"`
	DefaultRadius string        `json:"defaultRadius" yaml:"defaultRadius"`
}

// PubSubConfig defines Pub/Sub configuration for fly-to publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// StreamConfig defines the SSE stream behavior
type StreamConfig struct {
	// ClientBuffer is the per-subscriber channel size; full buffers drop instructions
	ClientBuffer int `json:"clientBuffer" yaml:"clientBuffer"`
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
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
