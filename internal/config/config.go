// Package config loads service settings in three layers: built-in
// defaults, an optional YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/validation"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

const ConfigPathEnvVar = "CONFIG_PATH"

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Matching MatchingConfig `koanf:"matching"`
	Cache    CacheConfig    `koanf:"cache"`
	Logging  LoggingConfig  `koanf:"logging"`
}

type ServerConfig struct {
	Address string `koanf:"address" validate:"required"`
	// RateLimit is requests per RateLimitWindow per client IP; 0 disables it.
	RateLimit       int           `koanf:"rate_limit" validate:"gte=0"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
}

type CatalogConfig struct {
	// Path is the JSON or YAML variety file.
	Path string `koanf:"path" validate:"required"`
	// SQLitePath, when set, serves the catalog from SQLite seeded from Path.
	SQLitePath   string `koanf:"sqlite_path"`
	ProductsPath string `koanf:"products_path"`
	LinksPath    string `koanf:"links_path"`
}

type MatchingConfig struct {
	WeightsPath string `koanf:"weights_path"`
}

type CacheConfig struct {
	// Size 0 disables result caching.
	Size int           `koanf:"size" validate:"gte=0"`
	TTL  time.Duration `koanf:"ttl" validate:"gte=0"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:         ":8080",
			RateLimit:       120,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
		},
		Catalog: CatalogConfig{
			Path: "data/varieties.json",
		},
		Matching: MatchingConfig{
			WeightsPath: "configs/weights.json",
		},
		Cache: CacheConfig{
			Size: 256,
			TTL:  10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load resolves the config file from CONFIG_PATH or DefaultConfigPaths.
func Load() (*Config, error) {
	return LoadFrom(findConfigFile())
}

// LoadFrom layers defaults, the YAML file at path (skipped when empty) and
// the environment, then validates the result.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := splitList(k, "server.cors_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validation.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// splitList turns a comma-separated env value into a slice; values from
// YAML are already slices.
func splitList(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if err := k.Set(path, parts); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

var envMappings = map[string]string{
	"api_address":       "server.address",
	"rate_limit":        "server.rate_limit",
	"rate_limit_window": "server.rate_limit_window",
	"cors_origins":      "server.cors_origins",
	"read_timeout":      "server.read_timeout",
	"write_timeout":     "server.write_timeout",

	"catalog_path":  "catalog.path",
	"sqlite_path":   "catalog.sqlite_path",
	"products_path": "catalog.products_path",
	"links_path":    "catalog.links_path",

	"weights_path": "matching.weights_path",

	"cache_size": "cache.size",
	"cache_ttl":  "cache.ttl",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps known variables to config paths; anything else is
// dropped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
