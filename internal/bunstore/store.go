package bunstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"

	"github.com/veloura/go-storefront/internal/identity"
	"github.com/veloura/go-storefront/internal/store"
	"github.com/veloura/go-storefront/schema"
)

// Store implements store.Store on a bun database.
type Store struct {
	db       *bun.DB
	settings repository.Repository[*GlobalSettingsRecord]
	pages    repository.Repository[*PageRecord]
	entries  repository.Repository[*DictionaryEntryRecord]
	assets   repository.Repository[*MediaAssetRecord]
}

// New builds a store over db without read caching.
func New(db *bun.DB) *Store {
	return NewWithCache(db, nil, nil)
}

// NewWithCache builds a store whose get-by-key reads go through the supplied
// cache service. Both cacheService and keySerializer must be set to enable
// caching; passing nil for either leaves the repositories unwrapped.
func NewWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *Store {
	return &Store{
		db:       db,
		settings: wrapWithCache(NewGlobalSettingsRepository(db), cacheService, keySerializer),
		pages:    wrapWithCache(NewPageRepository(db), cacheService, keySerializer),
		entries:  wrapWithCache(NewDictionaryEntryRepository(db), cacheService, keySerializer),
		assets:   wrapWithCache(NewMediaAssetRepository(db), cacheService, keySerializer),
	}
}

// ResetSchema creates the backing tables when they do not exist yet.
func (s *Store) ResetSchema(ctx context.Context) error {
	models := []any{
		(*GlobalSettingsRecord)(nil),
		(*PageRecord)(nil),
		(*DictionaryEntryRecord)(nil),
		(*MediaAssetRecord)(nil),
	}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("bunstore: create table %T: %w", model, err)
		}
	}
	return nil
}

func (s *Store) GetGlobalSettings(ctx context.Context) (*schema.GlobalSettings, error) {
	record, err := s.settings.GetByIdentifier(ctx, globalSettingsScope)
	if err != nil {
		return nil, mapRepositoryError(err, "global settings", "")
	}
	settings := schema.GlobalSettings{}
	if err := json.Unmarshal(record.Document, &settings); err != nil {
		return nil, fmt.Errorf("bunstore: decode global settings: %w", err)
	}
	return &settings, nil
}

func (s *Store) GetPageBySlug(ctx context.Context, slug string) (*schema.Page, error) {
	record, err := s.pages.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "page", slug)
	}
	page := schema.Page{}
	if err := json.Unmarshal(record.Document, &page); err != nil {
		return nil, fmt.Errorf("bunstore: decode page %q: %w", slug, err)
	}
	return &page, nil
}

func (s *Store) ListDictionaryEntries(ctx context.Context, limit int) ([]schema.DictionaryEntry, error) {
	records := []DictionaryEntryRecord{}
	query := s.db.NewSelect().Model(&records).Order("key ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("bunstore: list dictionary entries: %w", err)
	}

	entries := make([]schema.DictionaryEntry, 0, len(records))
	for _, record := range records {
		entry := schema.DictionaryEntry{}
		if err := json.Unmarshal(record.Document, &entry); err != nil {
			return nil, fmt.Errorf("bunstore: decode dictionary entry %q: %w", record.Key, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Store) ListMediaAssets(ctx context.Context, limit int) ([]schema.MediaAsset, error) {
	records := []MediaAssetRecord{}
	query := s.db.NewSelect().Model(&records).Order("key ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("bunstore: list media assets: %w", err)
	}

	assets := make([]schema.MediaAsset, 0, len(records))
	for _, record := range records {
		asset := schema.MediaAsset{}
		if err := json.Unmarshal(record.Document, &asset); err != nil {
			return nil, fmt.Errorf("bunstore: decode media asset %q: %w", record.Key, err)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func (s *Store) CountGlobalSettings(ctx context.Context) (int, error) {
	count, err := s.db.NewSelect().Model((*GlobalSettingsRecord)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("bunstore: count global settings: %w", err)
	}
	return count, nil
}

func (s *Store) CreateGlobalSettings(ctx context.Context, settings schema.GlobalSettings) error {
	document, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("bunstore: encode global settings: %w", err)
	}
	record := &GlobalSettingsRecord{
		ID:        identity.GlobalSettingsUUID(),
		Scope:     globalSettingsScope,
		Document:  document,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.settings.Create(ctx, record); err != nil {
		return mapCreateError(err, "global settings", globalSettingsScope)
	}
	return nil
}

func (s *Store) CreatePage(ctx context.Context, page schema.Page) error {
	document, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("bunstore: encode page %q: %w", page.Slug, err)
	}
	record := &PageRecord{
		ID:        identity.PageUUID(page.Slug),
		Slug:      page.Slug,
		Title:     page.Title,
		Document:  document,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.pages.Create(ctx, record); err != nil {
		return mapCreateError(err, "page", page.Slug)
	}
	return nil
}

func (s *Store) GetDictionaryEntry(ctx context.Context, key string) (*schema.DictionaryEntry, error) {
	record, err := s.entries.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, "dictionary entry", key)
	}
	entry := schema.DictionaryEntry{}
	if err := json.Unmarshal(record.Document, &entry); err != nil {
		return nil, fmt.Errorf("bunstore: decode dictionary entry %q: %w", key, err)
	}
	return &entry, nil
}

func (s *Store) CreateDictionaryEntry(ctx context.Context, entry schema.DictionaryEntry) error {
	document, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("bunstore: encode dictionary entry %q: %w", entry.Key, err)
	}
	record := &DictionaryEntryRecord{
		ID:        identity.DictionaryEntryUUID(entry.Key),
		Key:       entry.Key,
		Type:      string(entry.Type),
		Document:  document,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.entries.Create(ctx, record); err != nil {
		return mapCreateError(err, "dictionary entry", entry.Key)
	}
	return nil
}

func (s *Store) GetMediaAsset(ctx context.Context, key string) (*schema.MediaAsset, error) {
	record, err := s.assets.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, "media asset", key)
	}
	asset := schema.MediaAsset{}
	if err := json.Unmarshal(record.Document, &asset); err != nil {
		return nil, fmt.Errorf("bunstore: decode media asset %q: %w", key, err)
	}
	return &asset, nil
}

func (s *Store) CreateMediaAsset(ctx context.Context, asset schema.MediaAsset) error {
	document, err := json.Marshal(asset)
	if err != nil {
		return fmt.Errorf("bunstore: encode media asset %q: %w", asset.Key, err)
	}
	record := &MediaAssetRecord{
		ID:        identity.MediaAssetUUID(asset.Key),
		Key:       asset.Key,
		Document:  document,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.assets.Create(ctx, record); err != nil {
		return mapCreateError(err, "media asset", asset.Key)
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &store.NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("bunstore: %s repository error: %w", resource, err)
}

func mapCreateError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint") {
		return &store.ConflictError{Resource: resource, Key: key}
	}
	return fmt.Errorf("bunstore: create %s %q: %w", resource, key, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}

var _ store.Store = (*Store)(nil)
