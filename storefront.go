// Package storefront is the content runtime for the Veloura storefront: a
// typed content schema, an idempotent seeder, a degrading read facade over
// the content store, and request-scoped content resolution.
package storefront

import (
	"context"

	"github.com/veloura/go-storefront/internal/di"
	"github.com/veloura/go-storefront/internal/reader"
	"github.com/veloura/go-storefront/internal/resolver"
	"github.com/veloura/go-storefront/internal/seeder"
	"github.com/veloura/go-storefront/internal/store"
)

// Store exports the content store contract.
type Store = store.Store

// StoreReader exports the raw store read contract.
type StoreReader = store.Reader

// StoreWriter exports the insert-only store write contract.
type StoreWriter = store.Writer

// NotFoundError exports the store miss error.
type NotFoundError = store.NotFoundError

// ConflictError exports the store duplicate-insert error.
type ConflictError = store.ConflictError

// Reader exports the degrading read facade contract.
type Reader = reader.Reader

// Scope exports the request-scoped memoizing reader.
type Scope = reader.Scope

// Resolver exports the request content resolver.
type Resolver = resolver.Resolver

// Seeder exports the content seeder.
type Seeder = seeder.Seeder

// SeedContent exports the seeding content bundle.
type SeedContent = seeder.Content

// SeedReport exports the seeding run report.
type SeedReport = seeder.Report

// Module is the top level storefront content runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module from configuration with optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Store returns the configured content store.
func (m *Module) Store() Store {
	return m.container.Store()
}

// Reader returns the shared degrading reader.
func (m *Module) Reader() Reader {
	return m.container.Reader()
}

// NewScope returns a fresh per-request memoizing reader.
func (m *Module) NewScope() *Scope {
	return m.container.NewScope()
}

// Resolve loads the shared content and returns a resolver for one request.
func (m *Module) Resolve(ctx context.Context) *Resolver {
	return m.container.Resolve(ctx)
}

// Close releases container-owned resources.
func (m *Module) Close() error {
	return m.container.Close()
}
