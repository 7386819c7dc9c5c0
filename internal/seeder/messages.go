// Package seeder populates an empty content store with the default
// storefront content. Every step is insert-only and idempotent: existing
// records are never touched, so editors keep their changes across deploys.
package seeder

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/veloura/go-storefront/schema"
)

const (
	seedGlobalSettingsMessageType = "storefront.seed.global_settings"
	seedPagesMessageType          = "storefront.seed.pages"
	seedDictionaryMessageType     = "storefront.seed.dictionary"
	seedMediaAssetsMessageType    = "storefront.seed.media_assets"
)

// SeedGlobalSettingsCommand creates the settings singleton when absent.
type SeedGlobalSettingsCommand struct {
	Settings schema.GlobalSettings `json:"settings"`
}

// Type implements command.Message.
func (SeedGlobalSettingsCommand) Type() string { return seedGlobalSettingsMessageType }

// Validate ensures the payload is complete before reaching handlers.
func (m SeedGlobalSettingsCommand) Validate() error {
	return m.Settings.Validate()
}

// SeedPagesCommand inserts the pages whose slugs are not taken yet.
type SeedPagesCommand struct {
	Pages []schema.Page `json:"pages"`
}

// Type implements command.Message.
func (SeedPagesCommand) Type() string { return seedPagesMessageType }

// Validate checks each page and rejects duplicate slugs within the batch.
func (m SeedPagesCommand) Validate() error {
	errs := validation.Errors{}
	seen := map[string]bool{}
	for _, page := range m.Pages {
		if err := page.Validate(); err != nil {
			errs[page.Slug] = err
		}
		if seen[page.Slug] {
			errs[page.Slug] = validation.NewError(
				"storefront.seed.pages.duplicate_slug",
				"page slug appears more than once in the batch")
		}
		seen[page.Slug] = true
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SeedDictionaryCommand inserts the dictionary entries whose keys are absent.
type SeedDictionaryCommand struct {
	Entries []schema.DictionaryEntry `json:"entries"`
}

// Type implements command.Message.
func (SeedDictionaryCommand) Type() string { return seedDictionaryMessageType }

// Validate checks each entry and rejects duplicate keys within the batch.
func (m SeedDictionaryCommand) Validate() error {
	errs := validation.Errors{}
	seen := map[string]bool{}
	for _, entry := range m.Entries {
		if err := entry.Validate(); err != nil {
			errs[entry.Key] = err
		}
		if seen[entry.Key] {
			errs[entry.Key] = validation.NewError(
				"storefront.seed.dictionary.duplicate_key",
				"dictionary key appears more than once in the batch")
		}
		seen[entry.Key] = true
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SeedMediaAssetsCommand inserts media asset slots whose keys are absent.
// Slots are created without files; editors upload binaries through the CMS.
type SeedMediaAssetsCommand struct {
	Assets []schema.MediaAsset `json:"assets"`
}

// Type implements command.Message.
func (SeedMediaAssetsCommand) Type() string { return seedMediaAssetsMessageType }

// Validate checks each asset and rejects duplicate keys within the batch.
func (m SeedMediaAssetsCommand) Validate() error {
	errs := validation.Errors{}
	seen := map[string]bool{}
	for _, asset := range m.Assets {
		if err := asset.Validate(); err != nil {
			errs[asset.Key] = err
		}
		if seen[asset.Key] {
			errs[asset.Key] = validation.NewError(
				"storefront.seed.media.duplicate_key",
				"media key appears more than once in the batch")
		}
		seen[asset.Key] = true
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
