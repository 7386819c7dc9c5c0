package reader

import (
	"context"
	"sync"

	"github.com/veloura/go-storefront/schema"
)

// Scope memoizes reads for the lifetime of a single request. Each delegated
// operation hits the store at most once per scope, including negative
// results, so several components rendering the same request share one fetch.
// A Scope must not outlive its request; cross-request caching belongs to the
// store layer.
type Scope struct {
	reader Reader

	mu         sync.Mutex
	settings   *schema.GlobalSettings
	settingsOK bool
	dictionary map[string]string
	media      map[string]schema.MediaAsset
	pages      map[string]*schema.Page
}

// NewScope wraps the reader in a fresh per-request memo.
func NewScope(r Reader) *Scope {
	return &Scope{
		reader: r,
		pages:  map[string]*schema.Page{},
	}
}

func (s *Scope) GlobalSettings(ctx context.Context) *schema.GlobalSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.settingsOK {
		s.settings = s.reader.GlobalSettings(ctx)
		s.settingsOK = true
	}
	return s.settings
}

func (s *Scope) PageBySlug(ctx context.Context, slug string) *schema.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.pages[slug]
	if !ok {
		page = s.reader.PageBySlug(ctx, slug)
		s.pages[slug] = page
	}
	return page
}

func (s *Scope) Dictionary(ctx context.Context) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dictionary == nil {
		s.dictionary = s.reader.Dictionary(ctx)
	}
	return s.dictionary
}

func (s *Scope) MediaAssets(ctx context.Context) map[string]schema.MediaAsset {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.media == nil {
		s.media = s.reader.MediaAssets(ctx)
	}
	return s.media
}

var _ Reader = (*Scope)(nil)
