package scraper

import (
	"context"
	"errors"
	"fmt"

	"foodscraper/internal/downloader"
	"foodscraper/pkg/browser"
	"foodscraper/pkg/collector"
	"foodscraper/pkg/config"
	errs "foodscraper/pkg/errors"
	"foodscraper/pkg/logger"
	"foodscraper/pkg/provider"
	"foodscraper/pkg/ratelimit"
	"foodscraper/pkg/storage"
	"foodscraper/pkg/ui"
)

// Scraper orchestrates the image collection process: one browser session,
// one results page per category, sequential downloads.
type Scraper struct {
	browser        SearchBrowser
	fetcher        downloader.ImageFetcher
	storageManager *storage.Manager
	rateLimiter    ratelimit.Limiter
	config         *config.Config
	logger         logger.Logger
}

// rodBrowser adapts the concrete browser manager to the SearchBrowser
// interface.
type rodBrowser struct {
	*browser.Manager
}

func (b rodBrowser) OpenSearchPage(query, queryContext string) (ResultsPage, error) {
	page, err := b.Manager.OpenSearchPage(query, queryContext)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// New creates a new Scraper instance
func New(cfg *config.Config) (*Scraper, error) {
	log := logger.GetLogger()

	storageManager, err := storage.NewManager(cfg.Output.BaseDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage manager: %w", err)
	}

	// Politeness delay between category searches.
	var rateLimiter ratelimit.Limiter
	if cfg.RateLimit.CategoryDelay > 0 {
		rateLimiter = ratelimit.NewTokenBucket(1, cfg.RateLimit.CategoryDelay)
	} else {
		rateLimiter = ratelimit.Unlimited{}
	}

	return &Scraper{
		browser:        rodBrowser{browser.NewManager(&cfg.Browser, log)},
		fetcher:        provider.NewClient(cfg.Download.Timeout, cfg.Download.UserAgent, log),
		storageManager: storageManager,
		rateLimiter:    rateLimiter,
		config:         cfg,
		logger:         log,
	}, nil
}

// Run scrapes every category in categoryList. Failures in one category are
// logged and the run moves on; browser failures and a blocked session abort
// the whole run.
func (s *Scraper) Run(ctx context.Context, categoryList []string) error {
	if len(categoryList) == 0 {
		return fmt.Errorf("no categories to scrape")
	}

	s.logger.InfoWithFields("Starting scraping run", map[string]interface{}{
		"categories":          len(categoryList),
		"images_per_category": s.config.Scrape.ImagesPerCategory,
		"output_dir":          s.storageManager.BaseDir(),
	})

	if err := s.browser.Start(); err != nil {
		s.logger.WithError(err).Error("Failed to start browser")
		return err
	}
	defer s.browser.Close()

	failed := 0
	for i, category := range categoryList {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Pace category searches so the session looks less mechanical.
		if !s.rateLimiter.Allow() {
			s.rateLimiter.Wait()
		}

		logger.LogCategoryStart(category, i+1, len(categoryList))
		ui.PrintInfo("Category", fmt.Sprintf("%s (%d/%d)", category, i+1, len(categoryList)))

		if err := s.ScrapeCategory(ctx, category); err != nil {
			var scrapeErr *errs.Error
			if errors.As(err, &scrapeErr) && errs.IsFatal(scrapeErr.Type) {
				ui.PrintError("Aborting run", err)
				return err
			}
			if errors.Is(err, context.Canceled) {
				return err
			}

			failed++
			s.logger.WithError(err).WithField("category", category).Error("Category failed")
			ui.PrintWarning("Skipping category", err)
		}
	}

	if failed > 0 {
		ui.PrintWarning(fmt.Sprintf("Finished with %d of %d categories failed", failed, len(categoryList)))
	} else {
		ui.PrintSuccess(fmt.Sprintf("Finished all %d categories", len(categoryList)))
	}
	return nil
}

// ScrapeCategory collects and downloads images for a single category. The
// category folder is created up front so it exists even when no image can
// be downloaded.
func (s *Scraper) ScrapeCategory(ctx context.Context, category string) error {
	if _, err := s.storageManager.EnsureCategoryDir(category); err != nil {
		return err
	}

	target := s.config.Scrape.ImagesPerCategory
	if target <= 0 {
		return nil
	}

	// Earlier runs count against the target, so a finished category costs
	// nothing on a re-run.
	existing, err := s.storageManager.CountImages(category)
	if err != nil {
		return err
	}
	remaining := target - existing
	if remaining <= 0 {
		s.logger.InfoWithFields("Category already complete", map[string]interface{}{
			"category": category,
			"existing": existing,
			"target":   target,
		})
		ui.PrintInfo("Already complete", category)
		return nil
	}

	page, err := s.browser.OpenSearchPage(category, s.config.Scrape.QueryContext)
	if err != nil {
		return err
	}
	defer page.Close()

	refs, err := collector.New(page, collector.Options{
		ScrollPause:   s.config.Browser.ScrollPause,
		MaxIdlePasses: s.config.Browser.MaxIdlePasses,
		Logger:        s.logger,
	}).Collect(ctx, remaining)
	if err != nil {
		return err
	}

	if len(refs) == 0 {
		s.logger.WithField("category", category).Warn("No thumbnails found")
		ui.PrintWarning("No images found", category)
		return nil
	}

	dl := downloader.New(s.fetcher, s.storageManager, s.logger, !ui.IsQuietMode())
	summary, err := dl.Run(ctx, category, refs, target)
	if err != nil {
		return err
	}

	logger.LogCategoryComplete(category, len(refs), summary.Downloaded, summary.Failed)
	ui.PrintInfo("Saved", fmt.Sprintf("%d/%d images for %s", summary.Downloaded, remaining, category))
	return nil
}
