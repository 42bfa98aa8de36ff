package browser

import (
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"foodscraper/pkg/config"
	errs "foodscraper/pkg/errors"
	"foodscraper/pkg/logger"
	"foodscraper/pkg/provider"
)

// showMoreTimeout bounds the lookup of the "show more" button, which is
// absent on most passes.
const showMoreTimeout = 2 * time.Second

// ResultsPage is a live image-search results tab. It satisfies the
// collector's ThumbnailSource.
type ResultsPage struct {
	page   *rod.Page
	cfg    *config.BrowserConfig
	logger logger.Logger
}

// Sources returns the usable thumbnail URLs currently in the DOM.
func (p *ResultsPage) Sources() ([]string, error) {
	if err := p.checkBlocked(); err != nil {
		return nil, err
	}

	elements, err := p.page.Elements(provider.ThumbnailSelector)
	if err != nil {
		return nil, errs.Newf(errs.ErrorTypeBrowser, "failed to query thumbnails: %v", err)
	}

	sources := make([]string, 0, len(elements))
	for _, el := range elements {
		src, err := el.Attribute(provider.SourceAttr)
		if err != nil || src == nil || *src == "" {
			src, err = el.Attribute(provider.LazySourceAttr)
			if err != nil || src == nil {
				continue
			}
		}
		if provider.IsUsableSource(*src) {
			sources = append(sources, *src)
		}
	}
	return sources, nil
}

// LoadMore scrolls to the bottom of the page and clicks the "show more"
// button when one is present. The button is missing most of the time, so a
// failed lookup is not an error.
func (p *ResultsPage) LoadMore() error {
	if _, err := p.page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`); err != nil {
		return errs.Newf(errs.ErrorTypeBrowser, "failed to scroll results page: %v", err)
	}

	button, err := p.page.Timeout(showMoreTimeout).ElementX(provider.ShowMoreXPath)
	if err != nil {
		return nil
	}
	if visible, err := button.Visible(); err != nil || !visible {
		return nil
	}
	if err := button.Click(proto.InputMouseButtonLeft, 1); err != nil {
		p.logger.WithError(err).Debug("Show more button click failed")
	} else {
		p.logger.Debug("Clicked show more results")
	}
	return nil
}

// Close closes the results tab.
func (p *ResultsPage) Close() {
	if err := p.page.Close(); err != nil {
		p.logger.WithError(err).Debug("Failed to close results tab")
	}
}

// checkBlocked detects the provider's verification interstitial. Once that
// page shows up the whole session is burned, so the error is fatal.
func (p *ResultsPage) checkBlocked() error {
	info, err := p.page.Info()
	if err != nil {
		return errs.Newf(errs.ErrorTypeBrowser, "failed to read page info: %v", err)
	}
	if provider.IsBlockedURL(info.URL) {
		return errs.New(errs.ErrorTypeBlocked, "provider served a verification page; retry later from a different network")
	}
	return nil
}
