package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"foodscraper/pkg/config"
	errs "foodscraper/pkg/errors"
	"foodscraper/pkg/logger"
	"foodscraper/pkg/provider"
)

// Manager owns the browser process for a scraping session. One Manager maps
// to one Chromium instance; result pages are opened as tabs.
type Manager struct {
	cfg     *config.BrowserConfig
	logger  logger.Logger
	browser *rod.Browser
}

// NewManager creates a browser session manager. The browser is not started
// until Start is called.
func NewManager(cfg *config.BrowserConfig, log logger.Logger) *Manager {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Manager{
		cfg:    cfg,
		logger: log,
	}
}

// Start launches the browser and connects to it.
func (m *Manager) Start() error {
	l := launcher.New().
		Headless(m.cfg.Headless).
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("window-size", fmt.Sprintf("%d,%d", m.cfg.WindowWidth, m.cfg.WindowHeight))

	controlURL, err := l.Launch()
	if err != nil {
		return errs.Newf(errs.ErrorTypeBrowser, "failed to launch browser: %v", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return errs.Newf(errs.ErrorTypeBrowser, "failed to connect to browser: %v", err)
	}

	m.browser = browser
	m.logger.DebugWithFields("Browser started", map[string]interface{}{
		"headless":    m.cfg.Headless,
		"control_url": controlURL,
	})
	return nil
}

// Close shuts the browser down. Safe to call when Start never succeeded.
func (m *Manager) Close() {
	if m.browser == nil {
		return
	}
	if err := m.browser.Close(); err != nil {
		m.logger.WithError(err).Warn("Failed to close browser")
	}
	m.browser = nil
}

// OpenSearchPage opens an image-search results tab for the given query and
// waits for the initial results to render.
func (m *Manager) OpenSearchPage(query, queryContext string) (*ResultsPage, error) {
	if m.browser == nil {
		return nil, errs.New(errs.ErrorTypeBrowser, "browser not started")
	}

	searchURL := provider.SearchURL(query, queryContext)
	m.logger.DebugWithFields("Opening search page", map[string]interface{}{
		"query": query,
		"url":   searchURL,
	})

	page, err := m.browser.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		return nil, errs.Newf(errs.ErrorTypeBrowser, "failed to open tab: %v", err)
	}

	if err := page.Navigate(searchURL); err != nil {
		_ = page.Close()
		return nil, errs.Newf(errs.ErrorTypeBrowser, "failed to navigate to search page: %v", err)
	}
	if err := page.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, errs.Newf(errs.ErrorTypeBrowser, "search page did not load: %v", err)
	}

	// The results grid is populated by script after the load event.
	time.Sleep(m.cfg.PageLoadWait)

	rp := &ResultsPage{
		page:   page,
		cfg:    m.cfg,
		logger: m.logger,
	}
	if err := rp.checkBlocked(); err != nil {
		_ = page.Close()
		return nil, err
	}
	return rp, nil
}
