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
	defaultPath          = "."
	defaultCatalogMake   = "toyota"
	defaultFallbackImage = "https://images.unsplash.com/photo-1519641471654-76ce0107ad1b?w=800"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// CORS restricts browser access to the local development frontends.
	CORS struct {
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"cors" yaml:"cors"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Cohere *CohereConfig `json:"cohere" yaml:"cohere"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	ImageSearch *ImageSearchConfig `json:"imageSearch" yaml:"imageSearch"`

	Chat *ChatConfig `json:"chat" yaml:"chat"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MongoConfig defines the document database connection.
type MongoConfig struct {
	URI      string `json:"uri" yaml:"uri"`
	Database string `json:"database" yaml:"database"`
}

// CohereConfig defines the text-generation API client configuration.
type CohereConfig struct {
	APIKey      string        `json:"apiKey" yaml:"apiKey"`
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
	Model       string        `json:"model" yaml:"model"`
	Temperature float64       `json:"temperature" yaml:"temperature"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// CatalogConfig defines the external car-catalog API configuration.
type CatalogConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Make      string        `json:"make" yaml:"make"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	MaxModels int           `json:"maxModels" yaml:"maxModels"`

	// Demo prices are fabricated inside this band since the catalog
	// carries no pricing data.
	PriceMin int `json:"priceMin" yaml:"priceMin"`
	PriceMax int `json:"priceMax" yaml:"priceMax"`
}

// ImageSearchConfig defines the image-search API configuration.
type ImageSearchConfig struct {
	APIKey         string        `json:"apiKey" yaml:"apiKey"`
	SearchEngineID string        `json:"searchEngineId" yaml:"searchEngineId"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	FallbackURL    string        `json:"fallbackUrl" yaml:"fallbackUrl"`
}

// ChatConfig defines the conversation session behaviour.
type ChatConfig struct {
	// Store selects the session backend: "memory" (default) or "redis".
	Store string `json:"store" yaml:"store"`

	// MaxHistory caps stored turns per session, oldest evicted first.
	MaxHistory int `json:"maxHistory" yaml:"maxHistory"`
}

// RedisConfig defines the optional Redis session backend.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
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
			// Example: COHERE_APIKEY -> cohere.apiKey (not cohere.apikey)
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

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if strings.TrimSpace(cfg.Catalog.Make) == "" {
		cfg.Catalog.Make = defaultCatalogMake
	}
	if cfg.Catalog.MaxModels <= 0 {
		cfg.Catalog.MaxModels = 25
	}
	if cfg.Catalog.Timeout <= 0 {
		cfg.Catalog.Timeout = 8 * time.Second
	}
	if cfg.Catalog.PriceMin <= 0 {
		cfg.Catalog.PriceMin = 22000
	}
	if cfg.Catalog.PriceMax <= cfg.Catalog.PriceMin {
		cfg.Catalog.PriceMax = 45000
	}

	if cfg.ImageSearch == nil {
		cfg.ImageSearch = &ImageSearchConfig{}
	}
	if cfg.ImageSearch.Timeout <= 0 {
		cfg.ImageSearch.Timeout = 7 * time.Second
	}
	if strings.TrimSpace(cfg.ImageSearch.FallbackURL) == "" {
		cfg.ImageSearch.FallbackURL = defaultFallbackImage
	}

	if cfg.Chat == nil {
		cfg.Chat = &ChatConfig{}
	}
	if cfg.Chat.MaxHistory <= 0 {
		cfg.Chat.MaxHistory = 20
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
