package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/veloura/go-storefront/schema"
)

// DocumentMeta is the frontmatter accepted on markdown-authored pages.
type DocumentMeta struct {
	Title           string `yaml:"title"`
	Slug            string `yaml:"slug"`
	SectionKey      string `yaml:"sectionKey"`
	SectionTitle    string `yaml:"sectionTitle"`
	MetaTitle       string `yaml:"metaTitle"`
	MetaDescription string `yaml:"metaDescription"`
	CanonicalURL    string `yaml:"canonicalUrl"`
}

// ParseDocument splits a markdown source into its frontmatter metadata and
// body without the delimiters.
func ParseDocument(source []byte) (DocumentMeta, string, error) {
	var meta DocumentMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return DocumentMeta{}, "", fmt.Errorf("markdown: parse frontmatter: %w", err)
	}
	return meta, string(body), nil
}

// PageFromDocument builds a single-section page from a markdown document.
// The body stays as markdown; rendering happens at resolution time.
func PageFromDocument(source []byte) (schema.Page, error) {
	meta, body, err := ParseDocument(source)
	if err != nil {
		return schema.Page{}, err
	}
	if strings.TrimSpace(meta.Slug) == "" {
		return schema.Page{}, fmt.Errorf("markdown: document missing slug")
	}
	slug, err := schema.NormalizeSlug(meta.Slug)
	if err != nil {
		return schema.Page{}, fmt.Errorf("markdown: document slug %q: %w", meta.Slug, err)
	}
	if strings.TrimSpace(meta.Title) == "" {
		return schema.Page{}, fmt.Errorf("markdown: document %q missing title", slug)
	}

	sectionKey := meta.SectionKey
	if sectionKey == "" {
		sectionKey = slug + "-content"
	}

	return schema.Page{
		Slug:  slug,
		Title: meta.Title,
		SEO: schema.PageSEO{
			MetaTitle:       meta.MetaTitle,
			MetaDescription: meta.MetaDescription,
			CanonicalURL:    meta.CanonicalURL,
		},
		Sections: []schema.Section{
			{
				Key:  sectionKey,
				Kind: schema.SectionGenericContent,
				Generic: &schema.GenericContentSection{
					Title: meta.SectionTitle,
					Body:  strings.TrimSpace(body),
				},
			},
		},
	}, nil
}
