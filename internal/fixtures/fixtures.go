// Package fixtures holds the default content installed by the seeder on an
// empty store: global settings, the storefront pages, the text dictionary,
// and the media asset slots editors fill in later.
package fixtures

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/veloura/go-storefront/internal/markdown"
	"github.com/veloura/go-storefront/internal/seeder"
	"github.com/veloura/go-storefront/schema"
)

//go:embed content/*.md
var contentFS embed.FS

// Bundle assembles the full default content set for one seeding run.
func Bundle() (seeder.Content, error) {
	pages, err := Pages()
	if err != nil {
		return seeder.Content{}, err
	}
	settings := Settings()
	return seeder.Content{
		Settings:   &settings,
		Pages:      pages,
		Dictionary: Dictionary(),
		Media:      MediaAssets(),
	}, nil
}

// Settings returns the default site-wide settings singleton.
func Settings() schema.GlobalSettings {
	return schema.GlobalSettings{
		SiteName: "Veloura",
		SiteURL:  "https://www.veloura.example",
		Tagline:  "Fine fragrance, one sample at a time",
		DefaultSEO: schema.SEO{
			MetaTitle:       "Veloura | Luxury Fragrance Samples",
			MetaDescription: "Discover niche and designer perfumes through hand-decanted samples, delivered to your door.",
			Keywords:        []string{"fragrance samples", "niche perfume", "discovery set"},
		},
		Announcement: schema.Announcement{
			Message: "Free shipping on orders over €35",
			Variant: "info",
			Enabled: true,
		},
		MainNavigation: []schema.NavItem{
			{Label: "Discover", Href: "/discover", Children: []schema.Link{
				{Label: "New Arrivals", Href: "/discover/new"},
				{Label: "Bestsellers", Href: "/discover/bestsellers"},
				{Label: "Discovery Sets", Href: "/discover/sets"},
			}},
			{Label: "Houses", Href: "/houses"},
			{Label: "Notes", Href: "/notes"},
			{Label: "About", Href: "/about"},
		},
		AccountLinks: []schema.Link{
			{Label: "Sign In", Href: "/account/login"},
			{Label: "Orders", Href: "/account/orders"},
		},
		Footer: schema.Footer{
			Description: "Hand-decanted samples of the world's most coveted fragrances.",
			LinkGroups: []schema.LinkGroup{
				{Title: "Shop", Links: []schema.Link{
					{Label: "New Arrivals", Href: "/discover/new"},
					{Label: "Discovery Sets", Href: "/discover/sets"},
					{Label: "Gift Cards", Href: "/gift-cards"},
				}},
				{Title: "Help", Links: []schema.Link{
					{Label: "FAQ", Href: "/faq"},
					{Label: "Shipping", Href: "/faq#shipping"},
					{Label: "Contact", Href: "/contact"},
				}},
			},
			SocialLinks: []schema.Link{
				{Label: "Instagram", Href: "https://instagram.com/veloura"},
				{Label: "TikTok", Href: "https://tiktok.com/@veloura"},
			},
		},
		Support: schema.SupportContact{
			Email: "care@veloura.example",
			Phone: "+31 20 123 4567",
		},
		Policies: []schema.Link{
			{Label: "Terms of Service", Href: "/policies/terms"},
			{Label: "Privacy Policy", Href: "/policies/privacy"},
			{Label: "Returns", Href: "/policies/returns"},
		},
	}
}

// Pages returns the default pages: the composed home page plus the
// markdown-authored documents embedded under content/.
func Pages() ([]schema.Page, error) {
	pages := []schema.Page{homePage()}

	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return nil, fmt.Errorf("fixtures: glob content: %w", err)
	}
	for _, name := range entries {
		source, err := contentFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("fixtures: read %s: %w", name, err)
		}
		page, err := markdown.PageFromDocument(source)
		if err != nil {
			return nil, fmt.Errorf("fixtures: %s: %w", name, err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func homePage() schema.Page {
	return schema.Page{
		Slug:  "home",
		Title: "Home",
		SEO: schema.PageSEO{
			MetaTitle: "Veloura | Discover Your Signature Scent",
		},
		Sections: []schema.Section{
			{
				Key:  "home-hero",
				Kind: schema.SectionHero,
				Hero: &schema.HeroSection{
					Eyebrow:  "Hand-decanted in Amsterdam",
					Title:    "Fall in love before you commit",
					Subtitle: "Sample over 400 niche and designer fragrances in generous 2ml sprays.",
					PrimaryCTA: &schema.Link{
						Label: "Start Discovering",
						Href:  "/discover",
					},
					SecondaryCTA: &schema.Link{
						Label: "Shop Discovery Sets",
						Href:  "/discover/sets",
					},
					MediaKey: "home-hero-backdrop",
				},
			},
			{
				Key:  "home-category-selection",
				Kind: schema.SectionCardGrid,
				CardGrid: &schema.CardGridSection{
					Title:    "Find your family",
					Subtitle: "Browse by the notes you already love.",
					Cards: []schema.Card{
						{Title: "Woody", Description: "Sandalwood, cedar, vetiver", Href: "/notes/woody", MediaKey: "category-woody"},
						{Title: "Floral", Description: "Rose, jasmine, tuberose", Href: "/notes/floral", MediaKey: "category-floral"},
						{Title: "Amber", Description: "Resins, vanilla, spice", Href: "/notes/amber", MediaKey: "category-amber"},
						{Title: "Fresh", Description: "Citrus, marine, green", Href: "/notes/fresh", MediaKey: "category-fresh"},
					},
				},
			},
			{
				Key:  "home-product-showcase",
				Kind: schema.SectionCardGrid,
				CardGrid: &schema.CardGridSection{
					Title: "This week's most sampled",
					Cards: []schema.Card{
						{Title: "Santal Royale", Description: "Maison Aurel", Href: "/products/santal-royale", MediaKey: "product-santal-royale", Badge: "Bestseller"},
						{Title: "Jardin de Minuit", Description: "Parfums Lumen", Href: "/products/jardin-de-minuit", MediaKey: "product-jardin-de-minuit"},
						{Title: "Oud Célèste", Description: "Atelier Hespéride", Href: "/products/oud-celeste", MediaKey: "product-oud-celeste", Badge: "New"},
					},
				},
			},
		},
	}
}

// Dictionary returns the default UI text entries.
func Dictionary() []schema.DictionaryEntry {
	return []schema.DictionaryEntry{
		{Key: "cart.empty", Type: schema.EntryText, TextValue: "Your cart is empty"},
		{Key: "cart.checkout", Type: schema.EntryText, TextValue: "Proceed to checkout"},
		{Key: "cart.subtotal", Type: schema.EntryText, TextValue: "Subtotal"},
		{Key: "product.add-to-cart", Type: schema.EntryText, TextValue: "Add to cart"},
		{Key: "product.out-of-stock", Type: schema.EntryText, TextValue: "Temporarily out of stock"},
		{Key: "product.sample-size", Type: schema.EntryText, TextValue: "2ml spray sample"},
		{Key: "newsletter.title", Type: schema.EntryText, TextValue: "Stay in the know"},
		{Key: "newsletter.blurb", Type: schema.EntryRichText, RichTextValue: "Subscribe for early access to **limited decants** and private sales."},
		{Key: "checkout.shipping-notice", Type: schema.EntryRichText, RichTextValue: "Orders placed before **14:00 CET** ship the same day."},
		{Key: "footer.copyright", Type: schema.EntryText, TextValue: "© Veloura B.V. All rights reserved."},
		{Key: "search.placeholder", Type: schema.EntryText, TextValue: "Search fragrances, houses, notes…"},
		{Key: "shipping.tiers", Type: schema.EntryJSON, JSONValue: map[string]any{
			"standard": map[string]any{"label": "Standard", "price": 4.95},
			"express":  map[string]any{"label": "Express", "price": 9.95},
			"free":     map[string]any{"label": "Free over €35", "threshold": 35},
		}},
	}
}

// MediaAssets returns the default media slots. Slots ship without files;
// editors upload the artwork through the CMS media library.
func MediaAssets() []schema.MediaAsset {
	return []schema.MediaAsset{
		{Key: "home-hero-backdrop", Title: "Home hero backdrop", Description: "Full-bleed image behind the home hero"},
		{Key: "category-woody", Title: "Woody category tile"},
		{Key: "category-floral", Title: "Floral category tile"},
		{Key: "category-amber", Title: "Amber category tile"},
		{Key: "category-fresh", Title: "Fresh category tile"},
		{Key: "product-santal-royale", Title: "Santal Royale bottle"},
		{Key: "product-jardin-de-minuit", Title: "Jardin de Minuit bottle"},
		{Key: "product-oud-celeste", Title: "Oud Célèste bottle"},
		{Key: "brand-mark", Title: "Veloura brand mark", Description: "Monochrome logo used in the footer"},
	}
}
