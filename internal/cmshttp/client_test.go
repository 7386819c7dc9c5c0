package cmshttp_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/veloura/go-storefront/internal/cmshttp"
	"github.com/veloura/go-storefront/internal/store"
	"github.com/veloura/go-storefront/schema"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *cmshttp.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := cmshttp.New(server.URL, "secret-token")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestGetPageBySlug_QueryAndAuth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/pages" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		query := r.URL.Query()
		if query.Get("filters[slug][$eq]") != "home" {
			t.Errorf("missing slug filter, query %v", query)
		}
		if query.Get("populate") != "deep" {
			t.Errorf("missing populate, query %v", query)
		}
		if query.Get("pagination[pageSize]") != "1" {
			t.Errorf("missing page size, query %v", query)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"slug": "home", "title": "Home", "seo": map[string]any{}},
			},
		})
	})

	page, err := client.GetPageBySlug(context.Background(), "home")
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if page.Slug != "home" || page.Title != "Home" {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestGetPageBySlug_AttributesShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{
					"id": 7,
					"attributes": map[string]any{
						"slug":  "about",
						"title": "About Veloura",
						"sections": []map[string]any{
							{"component": "generic-content", "key": "about-story", "body": "text"},
						},
					},
				},
			},
		})
	})

	page, err := client.GetPageBySlug(context.Background(), "about")
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if page.Title != "About Veloura" {
		t.Fatalf("attributes envelope not unwrapped: %+v", page)
	}
	if len(page.Sections) != 1 || page.Sections[0].Generic == nil {
		t.Fatalf("nested sections not decoded: %+v", page.Sections)
	}
}

func TestGetPageBySlug_EmptyResultIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := client.GetPageBySlug(context.Background(), "missing")
	if !store.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetGlobalSettings_NullDataIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": nil})
	})

	_, err := client.GetGlobalSettings(context.Background())
	if !store.IsNotFound(err) {
		t.Fatalf("expected not found for null data, got %v", err)
	}
}

func TestCountGlobalSettings_404MeansZero(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	count, err := client.CountGlobalSettings(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero, got %d", count)
	}
}

func TestServerErrorIsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.GetGlobalSettings(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if store.IsNotFound(err) {
		t.Fatal("server errors must not look like missing content")
	}
	if !errors.Is(err, cmshttp.ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestCreateDictionaryEntry_EnvelopeAndConflict(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		body := map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		data, ok := body["data"].(map[string]any)
		if !ok || data["key"] != "cart.empty" {
			t.Errorf("expected data envelope with entry payload, got %v", body)
		}

		if calls > 1 {
			w.WriteHeader(http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	entry := schema.DictionaryEntry{Key: "cart.empty", Type: schema.EntryText, TextValue: "Empty"}
	if err := client.CreateDictionaryEntry(context.Background(), entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	var conflict *store.ConflictError
	if err := client.CreateDictionaryEntry(context.Background(), entry); !errors.As(err, &conflict) {
		t.Fatalf("expected conflict for second create, got %v", err)
	}
}

func TestListMediaAssets_PopulatesFile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("populate") != "file" {
			t.Errorf("expected populate=file, got %v", query)
		}
		if query.Get("pagination[pageSize]") != "200" {
			t.Errorf("expected page size 200, got %v", query)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{
					"key":   "home-hero-backdrop",
					"title": "Backdrop",
					"file": map[string]any{
						"url": "/uploads/backdrop.jpg",
						"formats": map[string]any{
							"thumbnail": map[string]any{"url": "/uploads/thumb.jpg", "width": 245},
						},
					},
				},
			},
		})
	})

	assets, err := client.ListMediaAssets(context.Background(), 200)
	if err != nil {
		t.Fatalf("list assets: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("expected one asset, got %d", len(assets))
	}
	asset := assets[0]
	if asset.File == nil || asset.File.URL != "/uploads/backdrop.jpg" {
		t.Fatalf("file not decoded: %+v", asset.File)
	}
	if asset.File.Formats["thumbnail"].Width != 245 {
		t.Fatalf("formats not decoded: %+v", asset.File.Formats)
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := cmshttp.New("   ", ""); !errors.Is(err, cmshttp.ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}
