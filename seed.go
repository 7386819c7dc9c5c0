package storefront

import (
	"context"

	"github.com/veloura/go-storefront/internal/fixtures"
)

// Seed installs the default content into the configured store. Every step is
// insert-only and idempotent, so running it on every deploy is safe: records
// editors already changed are never touched. The returned error joins the
// failures of individual steps and is advisory; the report always reflects
// the work that did complete.
func (m *Module) Seed(ctx context.Context) (SeedReport, error) {
	bundle, err := fixtures.Bundle()
	if err != nil {
		return SeedReport{}, err
	}
	return m.container.Seeder().Run(ctx, bundle)
}

// SeedWith runs the seeder with custom content instead of the defaults.
func (m *Module) SeedWith(ctx context.Context, content SeedContent) (SeedReport, error) {
	return m.container.Seeder().Run(ctx, content)
}

// DefaultContent returns the default seeding bundle, useful for hosts that
// want to extend it before calling SeedWith.
func DefaultContent() (SeedContent, error) {
	return fixtures.Bundle()
}
