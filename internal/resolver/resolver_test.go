package resolver_test

import (
	"context"
	"strings"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/veloura/go-storefront/internal/reader"
	"github.com/veloura/go-storefront/internal/resolver"
	"github.com/veloura/go-storefront/internal/store"
	"github.com/veloura/go-storefront/schema"
)

func seededReader(t *testing.T) reader.Reader {
	t.Helper()
	ctx := context.Background()
	memory := store.NewMemory()

	settings := schema.GlobalSettings{
		SiteName: "Veloura",
		SiteURL:  "https://veloura.example",
		DefaultSEO: schema.SEO{
			MetaTitle:       "Veloura | Fragrance Samples",
			MetaDescription: "Discover designer fragrance samples.",
		},
		Announcement: schema.Announcement{
			Message: "Free shipping over 35",
			Enabled: true,
		},
		MainNavigation: []schema.NavItem{
			{Label: "Shop", Href: "/shop"},
		},
	}
	if err := memory.CreateGlobalSettings(ctx, settings); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	home := schema.Page{
		Slug:  "home",
		Title: "Home",
		Sections: []schema.Section{
			{
				Key:  "home-hero",
				Kind: schema.SectionHero,
				Hero: &schema.HeroSection{Title: "Discover your signature scent"},
			},
		},
	}
	if err := memory.CreatePage(ctx, home); err != nil {
		t.Fatalf("seed home: %v", err)
	}
	about := schema.Page{
		Slug:  "about",
		Title: "Our Story",
		SEO:   schema.PageSEO{MetaDescription: "The Veloura story."},
		Sections: []schema.Section{
			{
				Key:     "about-story",
				Kind:    schema.SectionGenericContent,
				Generic: &schema.GenericContentSection{Title: "Our Story"},
			},
		},
	}
	if err := memory.CreatePage(ctx, about); err != nil {
		t.Fatalf("seed about: %v", err)
	}

	entries := []schema.DictionaryEntry{
		{Key: "cart.empty", Type: schema.EntryText, TextValue: "Your cart is empty"},
		{Key: "home.intro", Type: schema.EntryRichText, RichTextValue: "Notes of **amber** and oud."},
		{Key: "misc.blank", Type: schema.EntryText, TextValue: ""},
	}
	for _, entry := range entries {
		if err := memory.CreateDictionaryEntry(ctx, entry); err != nil {
			t.Fatalf("seed entry: %v", err)
		}
	}

	assets := []schema.MediaAsset{
		{
			Key: "home-hero-backdrop",
			File: &schema.AssetFile{
				URL:             "/uploads/hero.jpg",
				AlternativeText: "Perfume bottles on marble",
				Formats: map[string]schema.AssetFormat{
					"thumbnail": {URL: "/uploads/hero_thumb.jpg", Width: 240},
				},
			},
		},
		{
			Key:  "brand-mark",
			File: &schema.AssetFile{URL: "https://cdn.example/mark.svg"},
		},
		{Key: "empty-slot"},
	}
	for _, asset := range assets {
		if err := memory.CreateMediaAsset(ctx, asset); err != nil {
			t.Fatalf("seed asset: %v", err)
		}
	}

	return reader.New(memory)
}

func TestResolver_TextFallback(t *testing.T) {
	r := resolver.Build(context.Background(), seededReader(t))

	if got := r.Text("cart.empty", "fallback"); got != "Your cart is empty" {
		t.Fatalf("unexpected text %q", got)
	}
	if got := r.Text("does.not.exist", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for missing key, got %q", got)
	}
	if got := r.Text("misc.blank", "fallback"); got != "fallback" {
		t.Fatalf("empty values must fall back, got %q", got)
	}
}

func TestResolver_RichTextRendersMarkdown(t *testing.T) {
	r := resolver.Build(context.Background(), seededReader(t))

	html := r.RichText("home.intro", "")
	if !strings.Contains(html, "<strong>amber</strong>") {
		t.Fatalf("expected rendered markdown, got %q", html)
	}
	if fallback := r.RichText("does.not.exist", "plain *fallback*"); !strings.Contains(fallback, "<em>fallback</em>") {
		t.Fatalf("fallback must render too, got %q", fallback)
	}
	if empty := r.RichText("does.not.exist", ""); empty != "" {
		t.Fatalf("expected empty output, got %q", empty)
	}
}

func TestResolver_MediaURLNormalization(t *testing.T) {
	r := resolver.Build(context.Background(), seededReader(t),
		resolver.WithAssetBaseURL("https://cms.veloura.example/"))

	if got := r.MediaURL("home-hero-backdrop", ""); got != "https://cms.veloura.example/uploads/hero.jpg" {
		t.Fatalf("relative url must gain the base, got %q", got)
	}
	if got := r.MediaURL("home-hero-backdrop", "thumbnail"); got != "https://cms.veloura.example/uploads/hero_thumb.jpg" {
		t.Fatalf("unexpected format url %q", got)
	}
	if got := r.MediaURL("home-hero-backdrop", "missing-format"); got != "https://cms.veloura.example/uploads/hero.jpg" {
		t.Fatalf("unknown format must fall back to the original, got %q", got)
	}
	if got := r.MediaURL("brand-mark", ""); got != "https://cdn.example/mark.svg" {
		t.Fatalf("absolute urls pass through untouched, got %q", got)
	}
	if got := r.MediaURL("empty-slot", ""); got != "" {
		t.Fatalf("slot without file must yield empty url, got %q", got)
	}
	if got := r.MediaURL("unknown", ""); got != "" {
		t.Fatalf("unknown key must yield empty url, got %q", got)
	}
	if alt := r.MediaAlt("home-hero-backdrop"); alt != "Perfume bottles on marble" {
		t.Fatalf("unexpected alt text %q", alt)
	}
	if asset := r.Media("home-hero-backdrop"); asset == nil || asset.File == nil {
		t.Fatalf("expected resolved asset, got %+v", asset)
	}
	if asset := r.Media("empty-slot"); asset != nil {
		t.Fatalf("unfilled slot must resolve to nil, got %+v", asset)
	}
}

func TestResolver_WithPageScopesSections(t *testing.T) {
	ctx := context.Background()
	r := resolver.Build(ctx, seededReader(t))

	home := r.WithPage(ctx, "home")
	if section := home.Section("home-hero"); section == nil || section.Hero == nil {
		t.Fatal("expected hero section on home")
	}
	if section := home.Section("about-story"); section != nil {
		t.Fatal("section lookup must not cross pages")
	}

	missing := r.WithPage(ctx, "not-there")
	if missing.Page() != nil {
		t.Fatal("expected nil page binding")
	}
	if section := missing.Section("home-hero"); section != nil {
		t.Fatal("unbound resolver must not fall through to other pages")
	}

	// The original resolver stays unbound.
	if r.Section("home-hero") != nil {
		t.Fatal("WithPage must not mutate the source resolver")
	}
}

func TestResolver_MetaMergesOverrides(t *testing.T) {
	ctx := context.Background()
	r := resolver.Build(ctx, seededReader(t))

	defaults := r.Meta()
	if defaults.MetaTitle != "Veloura | Fragrance Samples" {
		t.Fatalf("unexpected default meta title %q", defaults.MetaTitle)
	}

	about := r.WithPage(ctx, "about").Meta()
	if about.MetaTitle != "Veloura | Fragrance Samples" {
		t.Fatalf("empty override must inherit the default, got %q", about.MetaTitle)
	}
	if about.MetaDescription != "The Veloura story." {
		t.Fatalf("override must win, got %q", about.MetaDescription)
	}
}

func TestResolver_MetaBackfillsPageTitle(t *testing.T) {
	ctx := context.Background()
	memory := store.NewMemory()
	if err := memory.CreatePage(ctx, schema.Page{Slug: "faq", Title: "FAQ"}); err != nil {
		t.Fatalf("seed page: %v", err)
	}

	// No settings in the store, so the default meta title is empty.
	r := resolver.Build(ctx, reader.New(memory)).WithPage(ctx, "faq")
	if meta := r.Meta(); meta.MetaTitle != "FAQ" {
		t.Fatalf("page title must backfill an empty meta title, got %q", meta.MetaTitle)
	}
}

func TestResolver_AnnouncementOnlyWhenEnabled(t *testing.T) {
	ctx := context.Background()
	r := resolver.Build(ctx, seededReader(t))

	banner := r.Announcement()
	if banner == nil || banner.Message != "Free shipping over 35" {
		t.Fatalf("expected enabled banner, got %+v", banner)
	}

	memory := store.NewMemory()
	disabled := schema.GlobalSettings{
		SiteName:     "Veloura",
		SiteURL:      "https://veloura.example",
		Announcement: schema.Announcement{Message: "off", Enabled: false},
	}
	if err := memory.CreateGlobalSettings(ctx, disabled); err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	if got := resolver.Build(ctx, reader.New(memory)).Announcement(); got != nil {
		t.Fatalf("disabled banner must resolve to nil, got %+v", got)
	}
}

func TestResolver_PageURLFallback(t *testing.T) {
	r := resolver.Build(context.Background(), seededReader(t))

	if got := r.PageURL("about"); got != "/about" {
		t.Fatalf("expected root-relative fallback, got %q", got)
	}
	if got := r.PageURL("/about"); got != "/about" {
		t.Fatalf("leading slash must not double, got %q", got)
	}
}

func TestResolver_PageURLThroughRoutes(t *testing.T) {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "site",
				BaseURL: "https://veloura.example",
				Paths: map[string]string{
					"page": "/pages/:slug",
				},
			},
		},
	})
	builder := resolver.NewPageURLBuilder(resolver.PageURLOptions{
		Manager: manager,
		Group:   "site",
		Route:   "page",
	})

	r := resolver.Build(context.Background(), seededReader(t),
		resolver.WithPageURLBuilder(builder))

	if got := r.PageURL("about"); got != "https://veloura.example/pages/about" {
		t.Fatalf("unexpected routed url %q", got)
	}
}

func TestResolver_DegradesWhenStoreEmpty(t *testing.T) {
	ctx := context.Background()
	r := resolver.Build(ctx, reader.New(store.NewMemory()))

	if r.Settings() != nil {
		t.Fatal("expected nil settings")
	}
	if got := r.Text("any", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if nav := r.Navigation(); len(nav) != 0 {
		t.Fatalf("expected empty navigation, got %v", nav)
	}
}
