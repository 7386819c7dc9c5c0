package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

func GlobalSettingsUUID() uuid.UUID {
	return UUID("storefront:global-settings")
}

func PageUUID(slug string) uuid.UUID {
	return UUID("storefront:page:" + strings.ToLower(strings.TrimSpace(slug)))
}

func DictionaryEntryUUID(key string) uuid.UUID {
	return UUID("storefront:dictionary:" + strings.TrimSpace(key))
}

func MediaAssetUUID(key string) uuid.UUID {
	return UUID("storefront:media:" + strings.TrimSpace(key))
}
