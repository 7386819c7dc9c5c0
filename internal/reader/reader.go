// Package reader is the degrading read facade over the content store. Every
// operation absorbs store failures and returns an empty value instead, so a
// CMS outage renders a storefront without content rather than an error page.
package reader

import (
	"context"

	"github.com/veloura/go-storefront/internal/logging"
	"github.com/veloura/go-storefront/internal/store"
	"github.com/veloura/go-storefront/pkg/interfaces"
	"github.com/veloura/go-storefront/schema"
)

const (
	// DefaultDictionaryLimit caps the dictionary batch read.
	DefaultDictionaryLimit = 500
	// DefaultMediaLimit caps the media asset batch read.
	DefaultMediaLimit = 200
)

// Reader exposes degrading reads. Implementations never return errors to
// callers; absence and failure both surface as zero values.
type Reader interface {
	GlobalSettings(ctx context.Context) *schema.GlobalSettings
	PageBySlug(ctx context.Context, slug string) *schema.Page
	Dictionary(ctx context.Context) map[string]string
	MediaAssets(ctx context.Context) map[string]schema.MediaAsset
}

type storeReader struct {
	store           store.Reader
	logger          interfaces.Logger
	dictionaryLimit int
	mediaLimit      int
}

// Option configures the reader.
type Option func(*storeReader)

// WithLogger attaches a logger used when reads degrade.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *storeReader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDictionaryLimit overrides the dictionary batch size.
func WithDictionaryLimit(limit int) Option {
	return func(r *storeReader) {
		if limit > 0 {
			r.dictionaryLimit = limit
		}
	}
}

// WithMediaLimit overrides the media batch size.
func WithMediaLimit(limit int) Option {
	return func(r *storeReader) {
		if limit > 0 {
			r.mediaLimit = limit
		}
	}
}

// New builds a degrading reader over the store.
func New(backing store.Reader, opts ...Option) Reader {
	r := &storeReader{
		store:           backing,
		logger:          logging.NoOp(),
		dictionaryLimit: DefaultDictionaryLimit,
		mediaLimit:      DefaultMediaLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *storeReader) GlobalSettings(ctx context.Context) *schema.GlobalSettings {
	settings, err := r.store.GetGlobalSettings(ctx)
	if err != nil {
		r.degrade(ctx, "global_settings", "", err)
		return nil
	}
	return settings
}

func (r *storeReader) PageBySlug(ctx context.Context, slug string) *schema.Page {
	page, err := r.store.GetPageBySlug(ctx, slug)
	if err != nil {
		r.degrade(ctx, "page", slug, err)
		return nil
	}
	return page
}

func (r *storeReader) Dictionary(ctx context.Context) map[string]string {
	entries, err := r.store.ListDictionaryEntries(ctx, r.dictionaryLimit)
	if err != nil {
		r.degrade(ctx, "dictionary", "", err)
		return map[string]string{}
	}

	flattened := make(map[string]string, len(entries))
	for _, entry := range entries {
		flattened[entry.Key] = entry.Flatten()
	}
	return flattened
}

func (r *storeReader) MediaAssets(ctx context.Context) map[string]schema.MediaAsset {
	assets, err := r.store.ListMediaAssets(ctx, r.mediaLimit)
	if err != nil {
		r.degrade(ctx, "media_assets", "", err)
		return map[string]schema.MediaAsset{}
	}

	keyed := make(map[string]schema.MediaAsset, len(assets))
	for _, asset := range assets {
		keyed[asset.Key] = asset
	}
	return keyed
}

// degrade logs the swallowed error. Missing records are expected and stay at
// debug level; anything else is a warning.
func (r *storeReader) degrade(ctx context.Context, resource, key string, err error) {
	logger := r.logger.WithContext(ctx)
	if store.IsNotFound(err) {
		logger.Debug("reader.miss", "resource", resource, "key", key)
		return
	}
	logger.Warn("reader.degraded", "resource", resource, "key", key, "error", err)
}
