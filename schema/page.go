package schema

import (
	"encoding/json"
	"fmt"
)

// Page is a storefront page identified by a unique URL-path-safe slug and
// rendered from an ordered list of sections. Array position is display
// order; it carries no other meaning.
type Page struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	SEO      PageSEO   `json:"seo"`
	Sections []Section `json:"sections,omitempty"`
}

// Section finds a section by key within the page. Keys are unique per page,
// not globally.
func (p *Page) Section(key string) *Section {
	if p == nil || key == "" {
		return nil
	}
	for i := range p.Sections {
		if p.Sections[i].Key == key {
			return &p.Sections[i]
		}
	}
	return nil
}

// SectionKind discriminates the section union on the wire via the
// "component" field.
type SectionKind string

const (
	SectionHero           SectionKind = "hero"
	SectionCardGrid       SectionKind = "card-grid"
	SectionGenericContent SectionKind = "generic-content"
)

// Section is a tagged union: exactly one payload pointer is populated,
// selected by Kind. Unknown component tags survive decoding with all
// payloads nil so newer CMS content degrades instead of failing.
type Section struct {
	Key  string
	Kind SectionKind

	Hero     *HeroSection
	CardGrid *CardGridSection
	Generic  *GenericContentSection
}

// HeroSection is the large lead banner with up to two calls to action.
type HeroSection struct {
	Eyebrow      string `json:"eyebrow,omitempty"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle,omitempty"`
	PrimaryCTA   *Link  `json:"primaryCta,omitempty"`
	SecondaryCTA *Link  `json:"secondaryCta,omitempty"`
	MediaKey     string `json:"mediaKey,omitempty"`
}

// CardGridSection renders a titled grid of linked cards.
type CardGridSection struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Cards    []Card `json:"cards,omitempty"`
}

// Card is a single tile in a card grid.
type Card struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Href        string `json:"href,omitempty"`
	MediaKey    string `json:"mediaKey,omitempty"`
	Badge       string `json:"badge,omitempty"`
}

// GenericContentSection carries free-form body markup (markdown).
type GenericContentSection struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

type sectionEnvelope struct {
	Component SectionKind `json:"component"`
	Key       string      `json:"key"`
}

// UnmarshalJSON decodes the wire shape where the variant payload fields sit
// alongside the "component" and "key" discriminators.
func (s *Section) UnmarshalJSON(data []byte) error {
	var env sectionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("schema: decode section envelope: %w", err)
	}

	s.Key = env.Key
	s.Kind = env.Component
	s.Hero = nil
	s.CardGrid = nil
	s.Generic = nil

	switch env.Component {
	case SectionHero:
		payload := HeroSection{}
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("schema: decode hero section %q: %w", env.Key, err)
		}
		s.Hero = &payload
	case SectionCardGrid:
		payload := CardGridSection{}
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("schema: decode card-grid section %q: %w", env.Key, err)
		}
		s.CardGrid = &payload
	case SectionGenericContent:
		payload := GenericContentSection{}
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("schema: decode generic-content section %q: %w", env.Key, err)
		}
		s.Generic = &payload
	default:
		// Unknown components keep key and kind only.
	}
	return nil
}

// MarshalJSON produces the flat wire shape with "component" and "key"
// merged into the payload fields.
func (s Section) MarshalJSON() ([]byte, error) {
	fields := map[string]any{}

	var payload any
	switch {
	case s.Hero != nil:
		payload = s.Hero
	case s.CardGrid != nil:
		payload = s.CardGrid
	case s.Generic != nil:
		payload = s.Generic
	}

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("schema: encode section %q payload: %w", s.Key, err)
		}
		if err := json.Unmarshal(encoded, &fields); err != nil {
			return nil, fmt.Errorf("schema: flatten section %q payload: %w", s.Key, err)
		}
	}

	fields["component"] = s.Kind
	fields["key"] = s.Key
	return json.Marshal(fields)
}

// Payload returns the populated variant as a generic map, primarily for
// schema validation. The discriminators are not included.
func (s Section) Payload() (map[string]any, error) {
	var payload any
	switch {
	case s.Hero != nil:
		payload = s.Hero
	case s.CardGrid != nil:
		payload = s.CardGrid
	case s.Generic != nil:
		payload = s.Generic
	default:
		return map[string]any{}, nil
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("schema: encode section %q payload: %w", s.Key, err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("schema: flatten section %q payload: %w", s.Key, err)
	}
	return out, nil
}
