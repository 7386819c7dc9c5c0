// Package resolver turns loaded content into render-ready values: dictionary
// text with fallbacks, media URLs, page sections, and merged SEO metadata.
package resolver

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/veloura/go-storefront/internal/logging"
	"github.com/veloura/go-storefront/internal/markdown"
	"github.com/veloura/go-storefront/internal/reader"
	"github.com/veloura/go-storefront/pkg/interfaces"
	"github.com/veloura/go-storefront/schema"
)

// Resolver answers content lookups for one request. Build loads the shared
// content once; WithPage binds a page so section lookups stay scoped to it.
// Every accessor degrades to a fallback or zero value, never an error.
type Resolver struct {
	settings   *schema.GlobalSettings
	dictionary map[string]string
	media      map[string]schema.MediaAsset
	page       *schema.Page

	source       reader.Reader
	renderer     *markdown.Renderer
	pageURLs     *PageURLBuilder
	assetBaseURL string
	logger       interfaces.Logger
}

// Option configures the resolver.
type Option func(*Resolver)

// WithMarkdownRenderer replaces the richtext renderer.
func WithMarkdownRenderer(renderer *markdown.Renderer) Option {
	return func(r *Resolver) {
		if renderer != nil {
			r.renderer = renderer
		}
	}
}

// WithPageURLBuilder wires the route-based page URL builder.
func WithPageURLBuilder(builder *PageURLBuilder) Option {
	return func(r *Resolver) {
		r.pageURLs = builder
	}
}

// WithAssetBaseURL sets the origin prepended to relative media URLs.
func WithAssetBaseURL(base string) Option {
	return func(r *Resolver) {
		r.assetBaseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// WithLogger attaches a logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Build loads global settings, the dictionary, and media assets through the
// reader in one concurrent fan-out. Reads degrade individually, so a partial
// store outage still yields a usable resolver.
func Build(ctx context.Context, source reader.Reader, opts ...Option) *Resolver {
	r := &Resolver{
		source:   source,
		renderer: markdown.NewRenderer(markdown.Options{}),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		r.settings = source.GlobalSettings(groupCtx)
		return nil
	})
	group.Go(func() error {
		r.dictionary = source.Dictionary(groupCtx)
		return nil
	})
	group.Go(func() error {
		r.media = source.MediaAssets(groupCtx)
		return nil
	})
	_ = group.Wait()

	if r.dictionary == nil {
		r.dictionary = map[string]string{}
	}
	if r.media == nil {
		r.media = map[string]schema.MediaAsset{}
	}
	return r
}

// WithPage returns a copy of the resolver bound to the page with the given
// slug. Section lookups on the copy search only that page; a missing page
// leaves every section lookup nil rather than falling through to another
// page's sections.
func (r *Resolver) WithPage(ctx context.Context, slug string) *Resolver {
	bound := *r
	bound.page = r.source.PageBySlug(ctx, slug)
	return &bound
}

// Page returns the bound page, nil when none was loaded.
func (r *Resolver) Page() *schema.Page {
	return r.page
}

// Settings returns the loaded global settings, nil when unavailable.
func (r *Resolver) Settings() *schema.GlobalSettings {
	return r.settings
}

// Text resolves a dictionary key, returning fallback when the key is absent
// or empty.
func (r *Resolver) Text(key, fallback string) string {
	if value, ok := r.dictionary[key]; ok && value != "" {
		return value
	}
	return fallback
}

// RichText resolves a dictionary key and renders the value as HTML. The
// fallback passes through the renderer too so callers always get markup.
func (r *Resolver) RichText(key, fallback string) string {
	value := r.Text(key, fallback)
	if value == "" {
		return ""
	}
	rendered, err := r.renderer.Render(value)
	if err != nil {
		r.logger.Warn("resolver.richtext", "key", key, "error", err)
		return value
	}
	return rendered
}

// Media resolves a media asset by key. Slots whose file has not been
// uploaded yet resolve to nil, so templates skip the imagery entirely.
func (r *Resolver) Media(key string) *schema.MediaAsset {
	asset, ok := r.media[key]
	if !ok || asset.File == nil {
		return nil
	}
	return &asset
}

// MediaURL returns the asset's URL in the requested format, normalized
// against the asset base URL when the CMS returns a relative path. Empty
// format selects the original file; unknown formats fall back to it as well.
func (r *Resolver) MediaURL(key, format string) string {
	asset, ok := r.media[key]
	if !ok || asset.File == nil {
		return ""
	}

	raw := asset.File.URL
	if format != "" {
		if variant, ok := asset.File.Formats[format]; ok && variant.URL != "" {
			raw = variant.URL
		}
	}
	return r.normalizeURL(raw)
}

// MediaAlt returns the asset's alternative text, empty when absent.
func (r *Resolver) MediaAlt(key string) string {
	asset, ok := r.media[key]
	if !ok || asset.File == nil {
		return ""
	}
	return asset.File.AlternativeText
}

// Section finds a section by key on the bound page only.
func (r *Resolver) Section(key string) *schema.Section {
	if r.page == nil {
		return nil
	}
	return r.page.Section(key)
}

// Meta merges the bound page's SEO overrides onto the global defaults. Empty
// override fields inherit; the page title backfills the meta title when both
// the override and the default are empty.
func (r *Resolver) Meta() schema.SEO {
	merged := schema.SEO{}
	if r.settings != nil {
		merged = r.settings.DefaultSEO
	}
	if r.page != nil {
		if r.page.SEO.MetaTitle != "" {
			merged.MetaTitle = r.page.SEO.MetaTitle
		} else if merged.MetaTitle == "" {
			merged.MetaTitle = r.page.Title
		}
		if r.page.SEO.MetaDescription != "" {
			merged.MetaDescription = r.page.SEO.MetaDescription
		}
		if r.page.SEO.CanonicalURL != "" {
			merged.CanonicalURL = r.page.SEO.CanonicalURL
		}
	}
	return merged
}

// Announcement returns the enabled announcement banner, nil when disabled or
// settings are unavailable.
func (r *Resolver) Announcement() *schema.Announcement {
	if r.settings == nil || !r.settings.Announcement.Enabled {
		return nil
	}
	banner := r.settings.Announcement
	return &banner
}

// Navigation returns the main navigation items, empty when unavailable.
func (r *Resolver) Navigation() []schema.NavItem {
	if r.settings == nil {
		return nil
	}
	return r.settings.MainNavigation
}

// PageURL builds the public URL for a page slug through the route manager,
// falling back to a root-relative path when routing is not configured.
func (r *Resolver) PageURL(slug string) string {
	if r.pageURLs != nil {
		if built, err := r.pageURLs.Build(slug); err == nil && built != "" {
			return built
		} else if err != nil {
			r.logger.Warn("resolver.page_url", "slug", slug, "error", err)
		}
	}
	return "/" + strings.TrimPrefix(slug, "/")
}

func (r *Resolver) normalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "://") || strings.HasPrefix(trimmed, "//") {
		return trimmed
	}
	if r.assetBaseURL == "" {
		return trimmed
	}
	return r.assetBaseURL + "/" + strings.TrimLeft(trimmed, "/")
}
