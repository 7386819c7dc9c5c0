// Package store defines the storage contracts for storefront content.
// The production backend is the remote headless CMS (internal/cmshttp);
// bunstore provides a local SQLite-backed alternative and Memory backs
// tests and scaffolding.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/veloura/go-storefront/schema"
)

// Reader exposes the read operations consumed by the reading facade.
type Reader interface {
	GetGlobalSettings(ctx context.Context) (*schema.GlobalSettings, error)
	GetPageBySlug(ctx context.Context, slug string) (*schema.Page, error)
	ListDictionaryEntries(ctx context.Context, limit int) ([]schema.DictionaryEntry, error)
	ListMediaAssets(ctx context.Context, limit int) ([]schema.MediaAsset, error)
}

// Writer exposes the existence checks and insert-only writes used by the
// seeder. There are no update or delete operations: content is mutated only
// through the CMS's own editing interface.
type Writer interface {
	CountGlobalSettings(ctx context.Context) (int, error)
	CreateGlobalSettings(ctx context.Context, settings schema.GlobalSettings) error
	CreatePage(ctx context.Context, page schema.Page) error
	GetDictionaryEntry(ctx context.Context, key string) (*schema.DictionaryEntry, error)
	CreateDictionaryEntry(ctx context.Context, entry schema.DictionaryEntry) error
	GetMediaAsset(ctx context.Context, key string) (*schema.MediaAsset, error)
	CreateMediaAsset(ctx context.Context, asset schema.MediaAsset) error
}

// Store is the full content store contract.
type Store interface {
	Reader
	Writer
}

// NotFoundError represents missing records from store lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// ConflictError reports an insert against an existing unique key. The seeder
// never triggers it on the happy path because it checks before inserting,
// but stores still enforce uniqueness.
type ConflictError struct {
	Resource string
	Key      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Resource, e.Key)
}
