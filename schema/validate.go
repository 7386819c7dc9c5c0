package schema

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var dictionaryKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+(\.[a-zA-Z0-9_-]+)*$`)

// Validate checks the singleton carries the minimum site identity.
func (g GlobalSettings) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.SiteName, validation.Required),
		validation.Field(&g.SiteURL, validation.Required),
	)
}

// Validate checks slug discipline, the title, and every section.
func (p Page) Validate() error {
	errs := validation.Errors{}
	if p.Slug == "" {
		errs["slug"] = validation.NewError("schema.page.slug_required", "slug is required")
	} else if !IsValidSlug(p.Slug) {
		errs["slug"] = validation.NewError("schema.page.slug_invalid", "slug contains invalid characters")
	}
	if p.Title == "" {
		errs["title"] = validation.NewError("schema.page.title_required", "title is required")
	}

	seen := map[string]struct{}{}
	for _, section := range p.Sections {
		if err := section.Validate(); err != nil {
			errs["sections."+section.Key] = err
			continue
		}
		if _, ok := seen[section.Key]; ok {
			errs["sections."+section.Key] = validation.NewError("schema.page.section_key_duplicate", "section key appears more than once on the page")
			continue
		}
		seen[section.Key] = struct{}{}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate ensures the section key is present and the payload matches the
// declared component kind.
func (s Section) Validate() error {
	errs := validation.Errors{}
	if s.Key == "" {
		errs["key"] = validation.NewError("schema.section.key_required", "section key is required")
	}

	switch s.Kind {
	case SectionHero:
		if s.Hero == nil {
			errs["payload"] = validation.NewError("schema.section.payload_missing", "hero section carries no hero payload")
		} else if s.Hero.Title == "" {
			errs["title"] = validation.NewError("schema.section.hero_title_required", "hero title is required")
		}
	case SectionCardGrid:
		if s.CardGrid == nil {
			errs["payload"] = validation.NewError("schema.section.payload_missing", "card-grid section carries no card-grid payload")
		}
	case SectionGenericContent:
		if s.Generic == nil {
			errs["payload"] = validation.NewError("schema.section.payload_missing", "generic-content section carries no body payload")
		}
	case "":
		errs["component"] = validation.NewError("schema.section.component_required", "section component is required")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate enforces the dotted key namespace and the one-value-per-type rule.
func (e DictionaryEntry) Validate() error {
	errs := validation.Errors{}
	if e.Key == "" {
		errs["key"] = validation.NewError("schema.dictionary.key_required", "dictionary key is required")
	} else if !dictionaryKeyPattern.MatchString(e.Key) {
		errs["key"] = validation.NewError("schema.dictionary.key_invalid", "dictionary key must be a dotted namespace")
	}

	switch e.Type {
	case EntryText:
		if e.RichTextValue != "" || e.JSONValue != nil {
			errs["type"] = validation.NewError("schema.dictionary.value_mismatch", "text entries may only populate textValue")
		}
	case EntryRichText:
		if e.TextValue != "" || e.JSONValue != nil {
			errs["type"] = validation.NewError("schema.dictionary.value_mismatch", "richtext entries may only populate richTextValue")
		}
	case EntryJSON:
		if e.TextValue != "" || e.RichTextValue != "" {
			errs["type"] = validation.NewError("schema.dictionary.value_mismatch", "json entries may only populate jsonValue")
		}
	default:
		errs["type"] = validation.NewError("schema.dictionary.type_unknown", "entry type must be text, richtext, or json")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate checks the media slot key.
func (m MediaAsset) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Key, validation.Required, validation.Match(dictionaryKeyPattern).Error("media key must be a dotted namespace")),
	)
}
