package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/veloura/go-storefront/schema"
)

func TestSectionUnmarshal_Hero(t *testing.T) {
	payload := []byte(`{
		"component": "hero",
		"key": "home-hero",
		"eyebrow": "New",
		"title": "Fall in love before you commit",
		"primaryCta": {"label": "Start", "href": "/discover"}
	}`)

	section := schema.Section{}
	if err := json.Unmarshal(payload, &section); err != nil {
		t.Fatalf("unmarshal hero section: %v", err)
	}
	if section.Key != "home-hero" {
		t.Fatalf("expected key home-hero, got %q", section.Key)
	}
	if section.Kind != schema.SectionHero {
		t.Fatalf("expected hero kind, got %q", section.Kind)
	}
	if section.Hero == nil {
		t.Fatal("expected hero payload to be populated")
	}
	if section.CardGrid != nil || section.Generic != nil {
		t.Fatal("expected other payloads to stay nil")
	}
	if section.Hero.Title != "Fall in love before you commit" {
		t.Fatalf("unexpected hero title %q", section.Hero.Title)
	}
	if section.Hero.PrimaryCTA == nil || section.Hero.PrimaryCTA.Href != "/discover" {
		t.Fatalf("unexpected primary cta: %+v", section.Hero.PrimaryCTA)
	}
}

func TestSectionUnmarshal_CardGrid(t *testing.T) {
	payload := []byte(`{
		"component": "card-grid",
		"key": "home-category-selection",
		"title": "Find your family",
		"cards": [{"title": "Woody", "href": "/notes/woody"}]
	}`)

	section := schema.Section{}
	if err := json.Unmarshal(payload, &section); err != nil {
		t.Fatalf("unmarshal card-grid section: %v", err)
	}
	if section.CardGrid == nil {
		t.Fatal("expected card-grid payload")
	}
	if len(section.CardGrid.Cards) != 1 || section.CardGrid.Cards[0].Title != "Woody" {
		t.Fatalf("unexpected cards: %+v", section.CardGrid.Cards)
	}
}

func TestSectionUnmarshal_UnknownComponentDegrades(t *testing.T) {
	payload := []byte(`{"component": "video-banner", "key": "home-video", "src": "x.mp4"}`)

	section := schema.Section{}
	if err := json.Unmarshal(payload, &section); err != nil {
		t.Fatalf("unknown component must not fail decoding: %v", err)
	}
	if section.Key != "home-video" {
		t.Fatalf("expected key to survive, got %q", section.Key)
	}
	if section.Kind != schema.SectionKind("video-banner") {
		t.Fatalf("expected kind to survive, got %q", section.Kind)
	}
	if section.Hero != nil || section.CardGrid != nil || section.Generic != nil {
		t.Fatal("expected every payload to stay nil for unknown components")
	}
}

func TestSectionMarshal_FlattensPayload(t *testing.T) {
	section := schema.Section{
		Key:  "about-story",
		Kind: schema.SectionGenericContent,
		Generic: &schema.GenericContentSection{
			Title: "Our Story",
			Body:  "body text",
		},
	}

	encoded, err := json.Marshal(section)
	if err != nil {
		t.Fatalf("marshal section: %v", err)
	}

	flat := map[string]any{}
	if err := json.Unmarshal(encoded, &flat); err != nil {
		t.Fatalf("decode marshalled section: %v", err)
	}
	if flat["component"] != "generic-content" {
		t.Fatalf("expected component discriminator, got %v", flat["component"])
	}
	if flat["key"] != "about-story" {
		t.Fatalf("expected key, got %v", flat["key"])
	}
	if flat["title"] != "Our Story" {
		t.Fatalf("expected flattened payload fields, got %v", flat)
	}
	if _, nested := flat["generic"]; nested {
		t.Fatal("payload must be flattened, not nested")
	}
}

func TestSectionRoundTrip(t *testing.T) {
	original := schema.Section{
		Key:  "home-hero",
		Kind: schema.SectionHero,
		Hero: &schema.HeroSection{
			Title:    "Welcome",
			MediaKey: "home-hero-backdrop",
		},
	}

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded := schema.Section{}
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Hero == nil || decoded.Hero.Title != "Welcome" || decoded.Hero.MediaKey != "home-hero-backdrop" {
		t.Fatalf("round trip lost hero payload: %+v", decoded.Hero)
	}
}

func TestPageSection_LookupByKey(t *testing.T) {
	page := schema.Page{
		Slug:  "home",
		Title: "Home",
		Sections: []schema.Section{
			{Key: "home-hero", Kind: schema.SectionHero, Hero: &schema.HeroSection{Title: "A"}},
			{Key: "home-product-showcase", Kind: schema.SectionCardGrid, CardGrid: &schema.CardGridSection{}},
		},
	}

	if section := page.Section("home-product-showcase"); section == nil || section.Kind != schema.SectionCardGrid {
		t.Fatalf("expected card-grid section, got %+v", section)
	}
	if section := page.Section("missing"); section != nil {
		t.Fatalf("expected nil for unknown key, got %+v", section)
	}

	var nilPage *schema.Page
	if section := nilPage.Section("home-hero"); section != nil {
		t.Fatal("nil page must resolve no sections")
	}
}
