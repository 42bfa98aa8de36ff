package scraper

import (
	"context"
	"os"
	"testing"
	"time"

	"foodscraper/pkg/config"
	errs "foodscraper/pkg/errors"
	"foodscraper/pkg/logger"
	"foodscraper/pkg/ratelimit"
	"foodscraper/pkg/storage"
)

type fakePage struct {
	sources   []string
	sourceErr error
	closed    bool
}

func (p *fakePage) Sources() ([]string, error) {
	if p.sourceErr != nil {
		return nil, p.sourceErr
	}
	return p.sources, nil
}

func (p *fakePage) LoadMore() error { return nil }
func (p *fakePage) Close()          { p.closed = true }

type fakeBrowser struct {
	pages    map[string]*fakePage
	openErr  error
	started  bool
	closed   bool
	searches []string
}

func (b *fakeBrowser) Start() error { b.started = true; return nil }
func (b *fakeBrowser) Close()       { b.closed = true }

func (b *fakeBrowser) OpenSearchPage(query, queryContext string) (ResultsPage, error) {
	b.searches = append(b.searches, query)
	if b.openErr != nil {
		return nil, b.openErr
	}
	page, ok := b.pages[query]
	if !ok {
		page = &fakePage{}
	}
	return page, nil
}

type fakeFetcher struct {
	failing bool
}

func (f *fakeFetcher) FetchImage(url string) ([]byte, string, error) {
	if f.failing {
		return nil, "", errs.New(errs.ErrorTypeNetwork, "connection refused")
	}
	return []byte("image-bytes"), ".jpg", nil
}

func newTestScraper(t *testing.T, b SearchBrowser, fetcher *fakeFetcher, target int) *Scraper {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Scrape.ImagesPerCategory = target
	cfg.Output.BaseDirectory = t.TempDir()
	cfg.Browser.ScrollPause = time.Millisecond
	cfg.RateLimit.CategoryDelay = 0

	manager, err := storage.NewManager(cfg.Output.BaseDirectory)
	if err != nil {
		t.Fatalf("failed to create storage manager: %v", err)
	}

	return &Scraper{
		browser:        b,
		fetcher:        fetcher,
		storageManager: manager,
		rateLimiter:    ratelimit.Unlimited{},
		config:         cfg,
		logger:         logger.GetLogger(),
	}
}

func TestRunDownloadsEachCategory(t *testing.T) {
	b := &fakeBrowser{pages: map[string]*fakePage{
		"mohinga":      {sources: []string{"http://img/m1", "http://img/m2", "http://img/m3"}},
		"shan noodles": {sources: []string{"http://img/s1", "http://img/s2"}},
	}}
	s := newTestScraper(t, b, &fakeFetcher{}, 2)

	if err := s.Run(context.Background(), []string{"mohinga", "shan noodles"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !b.started || !b.closed {
		t.Error("browser should be started and closed")
	}
	for _, category := range []string{"mohinga", "shan noodles"} {
		count, err := s.storageManager.CountImages(category)
		if err != nil {
			t.Fatalf("CountImages failed: %v", err)
		}
		if count != 2 {
			t.Errorf("%s: expected 2 images, got %d", category, count)
		}
	}
}

func TestRunNeverExceedsTarget(t *testing.T) {
	b := &fakeBrowser{pages: map[string]*fakePage{
		"mohinga": {sources: []string{
			"http://img/1", "http://img/2", "http://img/3", "http://img/4", "http://img/5",
		}},
	}}
	s := newTestScraper(t, b, &fakeFetcher{}, 3)

	if err := s.Run(context.Background(), []string{"mohinga"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	count, _ := s.storageManager.CountImages("mohinga")
	if count != 3 {
		t.Errorf("expected exactly 3 images, got %d", count)
	}
}

func TestRunRerunSkipsCompleteCategory(t *testing.T) {
	b := &fakeBrowser{pages: map[string]*fakePage{
		"mohinga": {sources: []string{"http://img/1", "http://img/2", "http://img/3"}},
	}}
	s := newTestScraper(t, b, &fakeFetcher{}, 2)

	if err := s.Run(context.Background(), []string{"mohinga"}); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := s.Run(context.Background(), []string{"mohinga"}); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	count, _ := s.storageManager.CountImages("mohinga")
	if count != 2 {
		t.Errorf("expected the folder to stay at the 2-image target, got %d", count)
	}
	// The complete category must not even open a results page again.
	if len(b.searches) != 1 {
		t.Errorf("expected 1 search across both runs, got %d", len(b.searches))
	}
}

func TestRunBlockedAbortsRemainingCategories(t *testing.T) {
	blocked := errs.New(errs.ErrorTypeBlocked, "verification page detected")
	b := &fakeBrowser{pages: map[string]*fakePage{
		"mohinga": {sourceErr: blocked},
	}}
	s := newTestScraper(t, b, &fakeFetcher{}, 2)

	err := s.Run(context.Background(), []string{"mohinga", "shan noodles"})
	if err == nil {
		t.Fatal("expected blocked error to abort the run")
	}
	if len(b.searches) != 1 {
		t.Errorf("expected 1 search before aborting, got %d", len(b.searches))
	}
	if !b.closed {
		t.Error("browser should still be closed on abort")
	}
}

func TestRunContinuesPastFailedCategory(t *testing.T) {
	b := &fakeBrowser{pages: map[string]*fakePage{
		"mohinga":      {sourceErr: errs.New(errs.ErrorTypeNetwork, "page gone")},
		"shan noodles": {sources: []string{"http://img/1"}},
	}}
	s := newTestScraper(t, b, &fakeFetcher{}, 1)

	if err := s.Run(context.Background(), []string{"mohinga", "shan noodles"}); err != nil {
		t.Fatalf("non-fatal category failure should not abort: %v", err)
	}

	count, _ := s.storageManager.CountImages("shan noodles")
	if count != 1 {
		t.Errorf("expected the second category to succeed, got %d images", count)
	}
}

func TestScrapeCategoryCreatesFolderWithoutDownloads(t *testing.T) {
	// Every download fails, but the category folder must still exist.
	b := &fakeBrowser{pages: map[string]*fakePage{
		"mont ti": {sources: []string{"http://img/1", "http://img/2"}},
	}}
	s := newTestScraper(t, b, &fakeFetcher{failing: true}, 2)

	if err := s.ScrapeCategory(context.Background(), "mont ti"); err != nil {
		t.Fatalf("ScrapeCategory failed: %v", err)
	}

	info, err := os.Stat(s.storageManager.CategoryDir("mont ti"))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected category folder to exist: %v", err)
	}
	count, _ := s.storageManager.CountImages("mont ti")
	if count != 0 {
		t.Errorf("expected no images, got %d", count)
	}
}

func TestScrapeCategoryZeroTargetSkipsBrowser(t *testing.T) {
	b := &fakeBrowser{}
	s := newTestScraper(t, b, &fakeFetcher{}, 0)

	if err := s.ScrapeCategory(context.Background(), "mohinga"); err != nil {
		t.Fatalf("ScrapeCategory failed: %v", err)
	}

	if len(b.searches) != 0 {
		t.Errorf("zero target must not open a search page, got %d searches", len(b.searches))
	}
	if _, err := os.Stat(s.storageManager.CategoryDir("mohinga")); err != nil {
		t.Errorf("category folder should exist even with zero target: %v", err)
	}
}
