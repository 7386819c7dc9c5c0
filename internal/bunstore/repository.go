package bunstore

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewGlobalSettingsRepository(db *bun.DB) repository.Repository[*GlobalSettingsRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*GlobalSettingsRecord]{
		NewRecord: func() *GlobalSettingsRecord { return &GlobalSettingsRecord{} },
		GetID: func(r *GlobalSettingsRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *GlobalSettingsRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "scope"
		},
		GetIdentifierValue: func(r *GlobalSettingsRecord) string {
			return r.Scope
		},
	})
}

func NewPageRepository(db *bun.DB) repository.Repository[*PageRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PageRecord]{
		NewRecord: func() *PageRecord { return &PageRecord{} },
		GetID: func(r *PageRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *PageRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(r *PageRecord) string {
			return r.Slug
		},
	})
}

func NewDictionaryEntryRepository(db *bun.DB) repository.Repository[*DictionaryEntryRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*DictionaryEntryRecord]{
		NewRecord: func() *DictionaryEntryRecord { return &DictionaryEntryRecord{} },
		GetID: func(r *DictionaryEntryRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *DictionaryEntryRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(r *DictionaryEntryRecord) string {
			return r.Key
		},
	})
}

func NewMediaAssetRepository(db *bun.DB) repository.Repository[*MediaAssetRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*MediaAssetRecord]{
		NewRecord: func() *MediaAssetRecord { return &MediaAssetRecord{} },
		GetID: func(r *MediaAssetRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *MediaAssetRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(r *MediaAssetRecord) string {
			return r.Key
		},
	})
}
