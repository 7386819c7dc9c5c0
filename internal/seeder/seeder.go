package seeder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/veloura/go-storefront/internal/commands"
	"github.com/veloura/go-storefront/internal/logging"
	"github.com/veloura/go-storefront/internal/store"
	"github.com/veloura/go-storefront/internal/validation"
	"github.com/veloura/go-storefront/pkg/interfaces"
	"github.com/veloura/go-storefront/schema"
)

// Content bundles everything one seeding run inserts.
type Content struct {
	Settings   *schema.GlobalSettings
	Pages      []schema.Page
	Dictionary []schema.DictionaryEntry
	Media      []schema.MediaAsset
}

// StepReport counts the outcome of a single seeding step.
type StepReport struct {
	Created int
	Skipped int
	Failed  int
}

// Report aggregates the outcome of a full seeding run.
type Report struct {
	Settings   StepReport
	Pages      StepReport
	Dictionary StepReport
	Media      StepReport
}

// Seeder executes the four seeding steps through the command foundation.
// Steps are independent: a failure in one never blocks the others, and the
// joined error of a run is advisory, callers may log and discard it.
type Seeder struct {
	store  store.Store
	logger interfaces.Logger

	// Run executions serialize; the report accumulates per run.
	mu sync.Mutex

	settingsHandler   *commands.Handler[SeedGlobalSettingsCommand]
	pagesHandler      *commands.Handler[SeedPagesCommand]
	dictionaryHandler *commands.Handler[SeedDictionaryCommand]
	mediaHandler      *commands.Handler[SeedMediaAssetsCommand]

	report *Report
}

// Option configures the seeder.
type Option func(*Seeder)

// WithLogger attaches a logger for per-step diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Seeder) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a seeder over the store.
func New(backing store.Store, opts ...Option) *Seeder {
	s := &Seeder{
		store:  backing,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.settingsHandler = commands.NewHandler(s.seedSettings,
		commands.WithLogger[SeedGlobalSettingsCommand](s.logger),
		commands.WithOperation[SeedGlobalSettingsCommand]("seed.global_settings"))
	s.pagesHandler = commands.NewHandler(s.seedPages,
		commands.WithLogger[SeedPagesCommand](s.logger),
		commands.WithOperation[SeedPagesCommand]("seed.pages"))
	s.dictionaryHandler = commands.NewHandler(s.seedDictionary,
		commands.WithLogger[SeedDictionaryCommand](s.logger),
		commands.WithOperation[SeedDictionaryCommand]("seed.dictionary"))
	s.mediaHandler = commands.NewHandler(s.seedMedia,
		commands.WithLogger[SeedMediaAssetsCommand](s.logger),
		commands.WithOperation[SeedMediaAssetsCommand]("seed.media_assets"))
	return s
}

// Run executes every seeding step in order and returns the aggregate report.
// The error joins all step failures; a non-nil error still comes with a
// report covering the steps that succeeded.
func (s *Seeder) Run(ctx context.Context, content Content) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := Report{}
	s.report = &report

	errs := []error{}
	if content.Settings != nil {
		if err := s.settingsHandler.Execute(ctx, SeedGlobalSettingsCommand{Settings: *content.Settings}); err != nil {
			errs = append(errs, fmt.Errorf("seed global settings: %w", err))
		}
	}
	if len(content.Pages) > 0 {
		if err := s.pagesHandler.Execute(ctx, SeedPagesCommand{Pages: content.Pages}); err != nil {
			errs = append(errs, fmt.Errorf("seed pages: %w", err))
		}
	}
	if len(content.Dictionary) > 0 {
		if err := s.dictionaryHandler.Execute(ctx, SeedDictionaryCommand{Entries: content.Dictionary}); err != nil {
			errs = append(errs, fmt.Errorf("seed dictionary: %w", err))
		}
	}
	if len(content.Media) > 0 {
		if err := s.mediaHandler.Execute(ctx, SeedMediaAssetsCommand{Assets: content.Media}); err != nil {
			errs = append(errs, fmt.Errorf("seed media assets: %w", err))
		}
	}

	s.report = nil
	return report, errors.Join(errs...)
}

func (s *Seeder) seedSettings(ctx context.Context, msg SeedGlobalSettingsCommand) error {
	count, err := s.store.CountGlobalSettings(ctx)
	if err != nil {
		s.report.Settings.Failed++
		return fmt.Errorf("count global settings: %w", err)
	}
	if count > 0 {
		s.report.Settings.Skipped++
		s.logger.Debug("seed.settings.skip", "reason", "exists")
		return nil
	}
	if err := s.store.CreateGlobalSettings(ctx, msg.Settings); err != nil {
		if isConflict(err) {
			s.report.Settings.Skipped++
			return nil
		}
		s.report.Settings.Failed++
		return fmt.Errorf("create global settings: %w", err)
	}
	s.report.Settings.Created++
	s.logger.Info("seed.settings.create", "site", msg.Settings.SiteName)
	return nil
}

func (s *Seeder) seedPages(ctx context.Context, msg SeedPagesCommand) error {
	errs := []error{}
	for _, page := range msg.Pages {
		if err := validateSections(page); err != nil {
			s.report.Pages.Failed++
			errs = append(errs, fmt.Errorf("page %q: %w", page.Slug, err))
			continue
		}
		_, err := s.store.GetPageBySlug(ctx, page.Slug)
		switch {
		case err == nil:
			s.report.Pages.Skipped++
			s.logger.Debug("seed.pages.skip", "slug", page.Slug, "reason", "exists")
			continue
		case !store.IsNotFound(err):
			s.report.Pages.Failed++
			errs = append(errs, fmt.Errorf("check page %q: %w", page.Slug, err))
			continue
		}
		if err := s.store.CreatePage(ctx, page); err != nil {
			if isConflict(err) {
				s.report.Pages.Skipped++
				continue
			}
			s.report.Pages.Failed++
			errs = append(errs, fmt.Errorf("create page %q: %w", page.Slug, err))
			continue
		}
		s.report.Pages.Created++
		s.logger.Info("seed.pages.create", "slug", page.Slug)
	}
	return errors.Join(errs...)
}

func (s *Seeder) seedDictionary(ctx context.Context, msg SeedDictionaryCommand) error {
	errs := []error{}
	for _, entry := range msg.Entries {
		_, err := s.store.GetDictionaryEntry(ctx, entry.Key)
		switch {
		case err == nil:
			s.report.Dictionary.Skipped++
			continue
		case !store.IsNotFound(err):
			s.report.Dictionary.Failed++
			errs = append(errs, fmt.Errorf("check dictionary entry %q: %w", entry.Key, err))
			continue
		}
		if err := s.store.CreateDictionaryEntry(ctx, entry); err != nil {
			if isConflict(err) {
				s.report.Dictionary.Skipped++
				continue
			}
			s.report.Dictionary.Failed++
			errs = append(errs, fmt.Errorf("create dictionary entry %q: %w", entry.Key, err))
			continue
		}
		s.report.Dictionary.Created++
	}
	if created := s.report.Dictionary.Created; created > 0 {
		s.logger.Info("seed.dictionary.create", "count", created)
	}
	return errors.Join(errs...)
}

func (s *Seeder) seedMedia(ctx context.Context, msg SeedMediaAssetsCommand) error {
	errs := []error{}
	for _, asset := range msg.Assets {
		// Seeded slots never carry a file; uploads happen in the CMS.
		asset.File = nil

		_, err := s.store.GetMediaAsset(ctx, asset.Key)
		switch {
		case err == nil:
			s.report.Media.Skipped++
			continue
		case !store.IsNotFound(err):
			s.report.Media.Failed++
			errs = append(errs, fmt.Errorf("check media asset %q: %w", asset.Key, err))
			continue
		}
		if err := s.store.CreateMediaAsset(ctx, asset); err != nil {
			if isConflict(err) {
				s.report.Media.Skipped++
				continue
			}
			s.report.Media.Failed++
			errs = append(errs, fmt.Errorf("create media asset %q: %w", asset.Key, err))
			continue
		}
		s.report.Media.Created++
	}
	if created := s.report.Media.Created; created > 0 {
		s.logger.Info("seed.media.create", "count", created)
	}
	return errors.Join(errs...)
}

func validateSections(page schema.Page) error {
	errs := []error{}
	for _, section := range page.Sections {
		if err := validation.ValidateSection(section); err != nil {
			errs = append(errs, fmt.Errorf("section %q: %w", section.Key, err))
		}
	}
	return errors.Join(errs...)
}

func isConflict(err error) bool {
	var conflict *store.ConflictError
	return errors.As(err, &conflict)
}
