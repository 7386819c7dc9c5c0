package store

import (
	"context"
	"sort"
	"sync"

	"github.com/veloura/go-storefront/schema"
)

// Memory is an in-process Store used by tests and local scaffolding.
// All reads return clones so callers cannot mutate stored state.
type Memory struct {
	mu       sync.RWMutex
	settings *schema.GlobalSettings
	pages    map[string]schema.Page
	entries  map[string]schema.DictionaryEntry
	assets   map[string]schema.MediaAsset
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		pages:   make(map[string]schema.Page),
		entries: make(map[string]schema.DictionaryEntry),
		assets:  make(map[string]schema.MediaAsset),
	}
}

func (m *Memory) GetGlobalSettings(ctx context.Context) (*schema.GlobalSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return nil, &NotFoundError{Resource: "global settings"}
	}
	clone := cloneGlobalSettings(*m.settings)
	return &clone, nil
}

func (m *Memory) GetPageBySlug(ctx context.Context, slug string) (*schema.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	page, ok := m.pages[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: slug}
	}
	clone := clonePage(page)
	return &clone, nil
}

func (m *Memory) ListDictionaryEntries(ctx context.Context, limit int) ([]schema.DictionaryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]schema.DictionaryEntry, 0, len(keys))
	for _, key := range keys {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, cloneDictionaryEntry(m.entries[key]))
	}
	return out, nil
}

func (m *Memory) ListMediaAssets(ctx context.Context, limit int) ([]schema.MediaAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.assets))
	for key := range m.assets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]schema.MediaAsset, 0, len(keys))
	for _, key := range keys {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, cloneMediaAsset(m.assets[key]))
	}
	return out, nil
}

func (m *Memory) CountGlobalSettings(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return 0, nil
	}
	return 1, nil
}

func (m *Memory) CreateGlobalSettings(ctx context.Context, settings schema.GlobalSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.settings != nil {
		return &ConflictError{Resource: "global settings", Key: settings.SiteName}
	}
	clone := cloneGlobalSettings(settings)
	m.settings = &clone
	return nil
}

func (m *Memory) CreatePage(ctx context.Context, page schema.Page) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pages[page.Slug]; ok {
		return &ConflictError{Resource: "page", Key: page.Slug}
	}
	m.pages[page.Slug] = clonePage(page)
	return nil
}

func (m *Memory) GetDictionaryEntry(ctx context.Context, key string) (*schema.DictionaryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, &NotFoundError{Resource: "dictionary entry", Key: key}
	}
	clone := cloneDictionaryEntry(entry)
	return &clone, nil
}

func (m *Memory) CreateDictionaryEntry(ctx context.Context, entry schema.DictionaryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[entry.Key]; ok {
		return &ConflictError{Resource: "dictionary entry", Key: entry.Key}
	}
	m.entries[entry.Key] = cloneDictionaryEntry(entry)
	return nil
}

func (m *Memory) GetMediaAsset(ctx context.Context, key string) (*schema.MediaAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	asset, ok := m.assets[key]
	if !ok {
		return nil, &NotFoundError{Resource: "media asset", Key: key}
	}
	clone := cloneMediaAsset(asset)
	return &clone, nil
}

func (m *Memory) CreateMediaAsset(ctx context.Context, asset schema.MediaAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.assets[asset.Key]; ok {
		return &ConflictError{Resource: "media asset", Key: asset.Key}
	}
	m.assets[asset.Key] = cloneMediaAsset(asset)
	return nil
}

var _ Store = (*Memory)(nil)
