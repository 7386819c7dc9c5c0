package identity_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/veloura/go-storefront/internal/identity"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := identity.UUID("storefront:page:home")
	second := identity.UUID("storefront:page:home")
	if first != second {
		t.Fatalf("same key must map to same id: %s vs %s", first, second)
	}
	if first == uuid.Nil {
		t.Fatal("expected a non-nil id")
	}
}

func TestUUIDEmptyKeyIsNil(t *testing.T) {
	if id := identity.UUID("   "); id != uuid.Nil {
		t.Fatalf("blank key must map to uuid.Nil, got %s", id)
	}
}

func TestEntityIDsDoNotCollide(t *testing.T) {
	ids := map[uuid.UUID]string{
		identity.GlobalSettingsUUID():         "settings",
		identity.PageUUID("home"):             "page home",
		identity.PageUUID("about"):            "page about",
		identity.DictionaryEntryUUID("home"):  "entry home",
		identity.MediaAssetUUID("home"):       "asset home",
		identity.DictionaryEntryUUID("about"): "entry about",
	}
	if len(ids) != 6 {
		t.Fatalf("expected 6 distinct ids, got %d: %v", len(ids), ids)
	}
}

func TestPageUUIDNormalizesSlug(t *testing.T) {
	if identity.PageUUID("Home ") != identity.PageUUID("home") {
		t.Fatal("slug case and spacing must not change the id")
	}
}
