package collector

import (
	"context"
	"errors"
	"time"

	"foodscraper/pkg/logger"
	"foodscraper/pkg/retry"
)

// errNoProgress signals that a full read pass found no new sources. It
// drives the retry loop: each occurrence scrolls, waits, and re-reads,
// until the idle-pass budget runs out.
var errNoProgress = errors.New("no new thumbnails")

// Options tunes the collection loop.
type Options struct {
	// ScrollPause is the wait after each scroll before re-reading the page.
	ScrollPause time.Duration

	// MaxIdlePasses is the number of consecutive passes without a new
	// source before the collector gives up on the page.
	MaxIdlePasses int

	Logger logger.Logger
}

// Collector gathers unique thumbnail sources from a results page until a
// target count is reached or the page stops producing new ones.
type Collector struct {
	source        ThumbnailSource
	scrollPause   time.Duration
	maxIdlePasses int
	logger        logger.Logger
}

// New creates a Collector reading from source.
func New(source ThumbnailSource, opts Options) *Collector {
	log := opts.Logger
	if log == nil {
		log = logger.GetLogger()
	}
	pause := opts.ScrollPause
	if pause <= 0 {
		pause = 2 * time.Second
	}
	idle := opts.MaxIdlePasses
	if idle <= 0 {
		idle = 5
	}
	return &Collector{
		source:        source,
		scrollPause:   pause,
		maxIdlePasses: idle,
		logger:        log,
	}
}

// Collect reads thumbnail sources until it has target unique entries.
// Duplicates are dropped; first-seen order is preserved. When the page
// stops yielding new sources for maxIdlePasses consecutive passes the
// partial result is returned without error. A target of zero returns
// immediately without touching the page.
func (c *Collector) Collect(ctx context.Context, target int) ([]string, error) {
	if target <= 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, target)
	refs := make([]string, 0, target)

	pass := func() error {
		sources, err := c.source.Sources()
		if err != nil {
			return err
		}

		added := 0
		for _, src := range sources {
			if _, dup := seen[src]; dup {
				continue
			}
			seen[src] = struct{}{}
			refs = append(refs, src)
			added++
			if len(refs) >= target {
				break
			}
		}

		if added == 0 {
			if err := c.source.LoadMore(); err != nil {
				return err
			}
			return errNoProgress
		}

		c.logger.DebugWithFields("Collected thumbnail sources", map[string]interface{}{
			"new":   added,
			"total": len(refs),
		})
		return nil
	}

	cfg := &retry.Config{
		MaxAttempts: c.maxIdlePasses,
		Backoff:     &retry.ConstantBackoff{Delay: c.scrollPause},
		RetryIf: func(err error) bool {
			return errors.Is(err, errNoProgress)
		},
		Context: ctx,
		Logger:  c.logger,
	}

	for len(refs) < target {
		if err := retry.Do(pass, cfg); err != nil {
			if errors.Is(err, errNoProgress) {
				// Page exhausted. Whatever we have is the result.
				c.logger.InfoWithFields("Results page exhausted", map[string]interface{}{
					"collected": len(refs),
					"target":    target,
				})
				return refs, nil
			}
			return refs, err
		}
	}

	return refs, nil
}
