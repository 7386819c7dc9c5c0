// Package di wires the storefront content runtime: store backend selection,
// caching, logging, seeding, and content resolution.
package di

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/mattn/go-sqlite3"

	"github.com/veloura/go-storefront/internal/bunstore"
	"github.com/veloura/go-storefront/internal/cmshttp"
	"github.com/veloura/go-storefront/internal/logging"
	"github.com/veloura/go-storefront/internal/logging/console"
	"github.com/veloura/go-storefront/internal/logging/gologger"
	"github.com/veloura/go-storefront/internal/markdown"
	"github.com/veloura/go-storefront/internal/reader"
	"github.com/veloura/go-storefront/internal/resolver"
	"github.com/veloura/go-storefront/internal/runtimeconfig"
	"github.com/veloura/go-storefront/internal/seeder"
	"github.com/veloura/go-storefront/internal/store"
	"github.com/veloura/go-storefront/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	httpClient     *http.Client

	bunDB         *bun.DB
	ownsBunDB     bool
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	store        store.Store
	reader       reader.Reader
	seeder       *seeder.Seeder
	renderer     *markdown.Renderer
	routeManager *urlkit.RouteManager
	pageURLs     *resolver.PageURLBuilder
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithStore overrides the configured store backend.
func WithStore(s store.Store) Option {
	return func(c *Container) {
		c.store = s
	}
}

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBunDB supplies an existing bun database for the bun store provider.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache used by the bun store provider.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithHTTPClient overrides the HTTP client used by the CMS store provider.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithMarkdownRenderer overrides the richtext renderer.
func WithMarkdownRenderer(renderer *markdown.Renderer) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// NewContainer builds the runtime from configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}
	if c.renderer == nil {
		c.renderer = markdown.NewRenderer(markdown.Options{})
	}

	if c.store == nil {
		if err := c.configureStore(); err != nil {
			return nil, err
		}
	}

	c.reader = reader.New(c.store,
		reader.WithLogger(logging.ReaderLogger(c.loggerProvider)),
		reader.WithDictionaryLimit(cfg.Reader.DictionaryLimit),
		reader.WithMediaLimit(cfg.Reader.MediaLimit),
	)
	c.seeder = seeder.New(c.store,
		seeder.WithLogger(logging.SeederLogger(c.loggerProvider)),
	)
	c.configureRoutes()

	return c, nil
}

func (c *Container) configureStore() error {
	switch strings.ToLower(strings.TrimSpace(c.Config.Store.Provider)) {
	case "memory", "":
		c.store = store.NewMemory()
	case "cms":
		clientOpts := []cmshttp.Option{
			cmshttp.WithLogger(logging.StoreLogger(c.loggerProvider)),
			cmshttp.WithTimeout(c.Config.Store.CMS.Timeout),
		}
		if c.httpClient != nil {
			clientOpts = append(clientOpts, cmshttp.WithHTTPClient(c.httpClient))
		}
		client, err := cmshttp.New(c.Config.Store.CMS.BaseURL, c.Config.Store.CMS.APIToken, clientOpts...)
		if err != nil {
			return err
		}
		c.store = client
	case "bun":
		if c.bunDB == nil {
			sqlDB, err := sql.Open("sqlite3", c.Config.Store.Bun.DSN)
			if err != nil {
				return fmt.Errorf("di: open database: %w", err)
			}
			c.bunDB = bun.NewDB(sqlDB, sqlitedialect.New())
			c.bunDB.SetMaxOpenConns(1)
			c.ownsBunDB = true
		}
		if err := c.configureCacheDefaults(); err != nil {
			return err
		}
		backed := bunstore.NewWithCache(c.bunDB, c.cacheService, c.keySerializer)
		if err := backed.ResetSchema(context.Background()); err != nil {
			return err
		}
		c.store = backed
	default:
		return fmt.Errorf("%w: %s", runtimeconfig.ErrStoreProviderUnknown, c.Config.Store.Provider)
	}
	return nil
}

func (c *Container) configureCacheDefaults() error {
	if !c.Config.Cache.Enabled || c.cacheService != nil {
		return nil
	}
	cacheCfg := repocache.DefaultConfig()
	if ttl := c.Config.Cache.DefaultTTL; ttl > 0 {
		cacheCfg.TTL = ttl
	}
	service, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		return fmt.Errorf("di: cache service: %w", err)
	}
	c.cacheService = service
	c.keySerializer = repocache.NewDefaultKeySerializer()
	return nil
}

func (c *Container) configureRoutes() {
	routes := c.Config.Routes
	if routes.RouteConfig == nil {
		return
	}
	c.routeManager = urlkit.NewRouteManager(routes.RouteConfig)
	c.pageURLs = resolver.NewPageURLBuilder(resolver.PageURLOptions{
		Manager:   c.routeManager,
		Group:     routes.DefaultGroup,
		Route:     routes.PageRoute,
		SlugParam: routes.SlugParam,
	})
}

// Store exposes the configured content store.
func (c *Container) Store() store.Store {
	return c.store
}

// Reader exposes the degrading read facade.
func (c *Container) Reader() reader.Reader {
	return c.reader
}

// NewScope returns a fresh request-scoped memoizing reader.
func (c *Container) NewScope() *reader.Scope {
	return reader.NewScope(c.reader)
}

// Seeder exposes the content seeder.
func (c *Container) Seeder() *seeder.Seeder {
	return c.seeder
}

// LoggerProvider exposes the active logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// RouteManager exposes the urlkit manager, nil when routes are unconfigured.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// Resolve builds a request resolver over a fresh scope.
func (c *Container) Resolve(ctx context.Context) *resolver.Resolver {
	opts := []resolver.Option{
		resolver.WithMarkdownRenderer(c.renderer),
		resolver.WithLogger(logging.ResolverLogger(c.loggerProvider)),
		resolver.WithAssetBaseURL(c.Config.Store.CMS.BaseURL),
	}
	if c.pageURLs != nil {
		opts = append(opts, resolver.WithPageURLBuilder(c.pageURLs))
	}
	return resolver.Build(ctx, c.NewScope(), opts...)
}

// Close releases resources the container created itself.
func (c *Container) Close() error {
	if c.ownsBunDB && c.bunDB != nil {
		return c.bunDB.Close()
	}
	return nil
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console":
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	case "noop":
		return noopProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, cfg.Provider)
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
