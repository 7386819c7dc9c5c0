package markdown_test

import (
	"strings"
	"testing"

	"github.com/veloura/go-storefront/internal/markdown"
)

func TestRendererBasics(t *testing.T) {
	r := markdown.NewRenderer(markdown.Options{})

	html, err := r.Render("Notes of **amber** and _oud_.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<strong>amber</strong>") || !strings.Contains(html, "<em>oud</em>") {
		t.Fatalf("unexpected output %q", html)
	}
}

func TestRendererGFMDefaultsOn(t *testing.T) {
	r := markdown.NewRenderer(markdown.Options{})

	html, err := r.Render("~~sold out~~ https://veloura.example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<del>sold out</del>") {
		t.Fatalf("expected strikethrough, got %q", html)
	}
	if !strings.Contains(html, "<a href=") {
		t.Fatalf("expected autolink, got %q", html)
	}
}

func TestRendererHardWraps(t *testing.T) {
	r := markdown.NewRenderer(markdown.Options{HardWraps: true})

	html, err := r.Render("line one\nline two")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<br") {
		t.Fatalf("expected hard break, got %q", html)
	}
}

func TestRendererSafeModeEscapesRawHTML(t *testing.T) {
	unsafe := markdown.NewRenderer(markdown.Options{})
	safe := markdown.NewRenderer(markdown.Options{SafeMode: true})

	source := `<span class="accent">gold</span>`

	html, err := unsafe.Render(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `<span class="accent">`) {
		t.Fatalf("expected raw html passthrough, got %q", html)
	}

	html, err = safe.Render(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, `<span class="accent">`) {
		t.Fatalf("safe mode must not emit raw html, got %q", html)
	}
}

func TestRendererUnknownExtensionIgnored(t *testing.T) {
	r := markdown.NewRenderer(markdown.Options{Extensions: []string{"gfm", "bogus"}})

	html, err := r.Render("~~gone~~")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<del>gone</del>") {
		t.Fatalf("expected gfm to stay enabled, got %q", html)
	}
}
