// Package runtimeconfig holds the module configuration and its consistency
// checks. Values come from the host application directly or from STOREFRONT_*
// environment variables via FromEnv.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	urlkit "github.com/goliatone/go-urlkit"
)

var ErrStoreProviderUnknown = errors.New("storefront config: store provider is invalid")
var ErrCMSBaseURLRequired = errors.New("storefront config: cms base url is required for the cms store provider")
var ErrBunDSNRequired = errors.New("storefront config: database dsn is required for the bun store provider")
var ErrCMSTimeoutInvalid = errors.New("storefront config: cms request timeout must be zero or positive")
var ErrLoggingProviderUnknown = errors.New("storefront config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("storefront config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("storefront config: logging format is invalid")
var ErrListLimitInvalid = errors.New("storefront config: list limits must be positive")

// Config aggregates store bindings, read limits, seeding, and logging options.
type Config struct {
	Store   StoreConfig
	Reader  ReaderConfig
	Cache   CacheConfig
	Routes  RoutesConfig
	Logging LoggingConfig
}

// StoreConfig selects and configures the content store backend.
type StoreConfig struct {
	Provider string    `env:"STORE_PROVIDER"`
	CMS      CMSConfig `envPrefix:"CMS_"`
	Bun      BunConfig `envPrefix:"DB_"`
}

// CMSConfig configures the remote headless CMS client.
type CMSConfig struct {
	BaseURL  string        `env:"BASE_URL"`
	APIToken string        `env:"API_TOKEN,unset"`
	Timeout  time.Duration `env:"TIMEOUT"`
}

// BunConfig configures the SQLite-backed local store.
type BunConfig struct {
	DSN string `env:"DSN"`
}

// ReaderConfig caps the batch read operations.
type ReaderConfig struct {
	DictionaryLimit int `env:"DICTIONARY_LIMIT"`
	MediaLimit      int `env:"MEDIA_LIMIT"`
}

// CacheConfig toggles the repository-level cache on the bun store.
type CacheConfig struct {
	Enabled    bool          `env:"CACHE_ENABLED"`
	DefaultTTL time.Duration `env:"CACHE_TTL"`
}

// RoutesConfig wires go-urlkit route groups for page URL building.
type RoutesConfig struct {
	RouteConfig  *urlkit.Config `env:"-"`
	DefaultGroup string         `env:"ROUTES_GROUP"`
	PageRoute    string         `env:"ROUTES_PAGE_ROUTE"`
	SlugParam    string         `env:"ROUTES_SLUG_PARAM"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string `env:"LOG_PROVIDER"`
	Level     string `env:"LOG_LEVEL"`
	Format    string `env:"LOG_FORMAT"`
	AddSource bool   `env:"LOG_ADD_SOURCE"`
}

// DefaultConfig returns defaults suitable for local development against an
// in-memory store.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Provider: "memory",
			CMS: CMSConfig{
				Timeout: 10 * time.Second,
			},
			Bun: BunConfig{
				DSN: "file::memory:?cache=shared",
			},
		},
		Reader: ReaderConfig{
			DictionaryLimit: 500,
			MediaLimit:      200,
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Routes: RoutesConfig{
			DefaultGroup: "site",
			PageRoute:    "page",
			SlugParam:    "slug",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// FromEnv layers STOREFRONT_* environment variables over the defaults.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "STOREFRONT_"}); err != nil {
		return Config{}, fmt.Errorf("storefront config: parse environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	provider := strings.ToLower(strings.TrimSpace(cfg.Store.Provider))
	switch provider {
	case "cms":
		if strings.TrimSpace(cfg.Store.CMS.BaseURL) == "" {
			return ErrCMSBaseURLRequired
		}
	case "bun":
		if strings.TrimSpace(cfg.Store.Bun.DSN) == "" {
			return ErrBunDSNRequired
		}
	case "memory":
	default:
		return fmt.Errorf("%w: %s", ErrStoreProviderUnknown, cfg.Store.Provider)
	}
	if cfg.Store.CMS.Timeout < 0 {
		return ErrCMSTimeoutInvalid
	}
	if cfg.Reader.DictionaryLimit <= 0 || cfg.Reader.MediaLimit <= 0 {
		return ErrListLimitInvalid
	}
	if logProvider := strings.TrimSpace(cfg.Logging.Provider); logProvider != "" && !isSupportedProvider(logProvider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, logProvider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func isSupportedProvider(provider string) bool {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "console", "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
