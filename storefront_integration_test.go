package storefront_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	storefront "github.com/veloura/go-storefront"
)

func newModule(t *testing.T) *storefront.Module {
	t.Helper()
	module, err := storefront.New(storefront.DefaultConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() {
		if err := module.Close(); err != nil {
			t.Fatalf("close module: %v", err)
		}
	})
	return module
}

func TestModuleSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	module := newModule(t)

	first, err := module.Seed(ctx)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if first.Settings.Created != 1 {
		t.Fatalf("expected settings created, got %+v", first.Settings)
	}
	if first.Pages.Created == 0 || first.Dictionary.Created == 0 || first.Media.Created == 0 {
		t.Fatalf("expected content created, got %+v", first)
	}

	second, err := module.Seed(ctx)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if second.Settings.Created != 0 || second.Pages.Created != 0 {
		t.Fatalf("second run must create nothing, got %+v", second)
	}
	if second.Pages.Skipped != first.Pages.Created {
		t.Fatalf("second run must skip every page, got %+v", second.Pages)
	}
}

func TestModuleResolveRendersSeededContent(t *testing.T) {
	ctx := context.Background()
	module := newModule(t)

	if _, err := module.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resolved := module.Resolve(ctx)
	settings := resolved.Settings()
	if settings == nil || settings.SiteName != "Veloura" {
		t.Fatalf("unexpected settings %+v", settings)
	}
	if banner := resolved.Announcement(); banner == nil || banner.Message == "" {
		t.Fatalf("expected announcement, got %+v", banner)
	}
	if nav := resolved.Navigation(); len(nav) == 0 {
		t.Fatal("expected navigation items")
	}
	if text := resolved.Text("cart.empty", "fallback"); text != "Your cart is empty" {
		t.Fatalf("unexpected dictionary text %q", text)
	}
	if html := resolved.RichText("newsletter.blurb", ""); !strings.Contains(html, "<strong>") {
		t.Fatalf("expected rendered richtext, got %q", html)
	}

	home := resolved.WithPage(ctx, "home")
	hero := home.Section("home-hero")
	if hero == nil || hero.Hero == nil || hero.Hero.Title == "" {
		t.Fatalf("expected hero section, got %+v", hero)
	}
	if meta := home.Meta(); meta.MetaTitle == "" {
		t.Fatal("expected merged meta title")
	}
	if url := home.PageURL("about"); url != "/about" {
		t.Fatalf("expected fallback page url, got %q", url)
	}
}

func TestModuleScopeSharesReadsWithinRequest(t *testing.T) {
	ctx := context.Background()
	module := newModule(t)

	if _, err := module.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	scope := module.NewScope()
	first := scope.Dictionary(ctx)
	second := scope.Dictionary(ctx)
	if len(first) == 0 {
		t.Fatal("expected seeded dictionary")
	}
	if len(first) != len(second) {
		t.Fatalf("memoized reads must agree, got %d vs %d", len(first), len(second))
	}

	if page := scope.PageBySlug(ctx, "about"); page == nil || page.Title == "" {
		t.Fatalf("expected about page, got %+v", page)
	}
	if page := scope.PageBySlug(ctx, "not-a-page"); page != nil {
		t.Fatalf("expected nil for unknown slug, got %+v", page)
	}
}

func TestModuleReaderDegradesOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	module := newModule(t)

	r := module.Reader()
	if settings := r.GlobalSettings(ctx); settings != nil {
		t.Fatalf("expected nil settings before seeding, got %+v", settings)
	}
	if dictionary := r.Dictionary(ctx); len(dictionary) != 0 {
		t.Fatalf("expected empty dictionary, got %v", dictionary)
	}
}

func TestModuleBunProviderEndToEnd(t *testing.T) {
	ctx := context.Background()

	cfg := storefront.DefaultConfig()
	cfg.Store.Provider = "bun"

	module, err := storefront.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	defer module.Close()

	if _, err := module.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resolved := module.Resolve(ctx).WithPage(ctx, "home")
	if resolved.Page() == nil {
		t.Fatal("expected home page from bun store")
	}
	if section := resolved.Section("home-product-showcase"); section == nil || section.CardGrid == nil {
		t.Fatalf("expected showcase section, got %+v", section)
	}
}

func TestModuleRejectsInvalidConfig(t *testing.T) {
	cfg := storefront.DefaultConfig()
	cfg.Store.Provider = "cms"

	if _, err := storefront.New(cfg); !errors.Is(err, storefront.ErrCMSBaseURLRequired) {
		t.Fatalf("expected ErrCMSBaseURLRequired, got %v", err)
	}
}
