// Package bunstore implements the content store on SQLite through bun. It
// backs local development and integration tests where no CMS instance is
// reachable; documents are persisted as JSON alongside their lookup keys.
package bunstore

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// globalSettingsScope is the constant discriminator that keeps the settings
// table a singleton: the column carries a unique constraint and every insert
// writes the same value.
const globalSettingsScope = "site"

type GlobalSettingsRecord struct {
	bun.BaseModel `bun:"table:global_settings,alias:gs"`

	ID        uuid.UUID       `bun:",pk,type:uuid"`
	Scope     string          `bun:"scope,notnull,unique"`
	Document  json.RawMessage `bun:"document,type:jsonb,notnull"`
	CreatedAt time.Time       `bun:"created_at,nullzero,default:current_timestamp"`
}

type PageRecord struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID        uuid.UUID       `bun:",pk,type:uuid"`
	Slug      string          `bun:"slug,notnull,unique"`
	Title     string          `bun:"title,notnull"`
	Document  json.RawMessage `bun:"document,type:jsonb,notnull"`
	CreatedAt time.Time       `bun:"created_at,nullzero,default:current_timestamp"`
}

type DictionaryEntryRecord struct {
	bun.BaseModel `bun:"table:dictionary_entries,alias:de"`

	ID        uuid.UUID       `bun:",pk,type:uuid"`
	Key       string          `bun:"key,notnull,unique"`
	Type      string          `bun:"type,notnull"`
	Document  json.RawMessage `bun:"document,type:jsonb,notnull"`
	CreatedAt time.Time       `bun:"created_at,nullzero,default:current_timestamp"`
}

type MediaAssetRecord struct {
	bun.BaseModel `bun:"table:media_assets,alias:ma"`

	ID        uuid.UUID       `bun:",pk,type:uuid"`
	Key       string          `bun:"key,notnull,unique"`
	Document  json.RawMessage `bun:"document,type:jsonb,notnull"`
	CreatedAt time.Time       `bun:"created_at,nullzero,default:current_timestamp"`
}
