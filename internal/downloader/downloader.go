package downloader

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"foodscraper/pkg/logger"
)

// ImageFetcher retrieves image bytes for a URL and reports the file
// extension inferred from the response.
type ImageFetcher interface {
	FetchImage(url string) ([]byte, string, error)
}

// ImageStore persists image files into a category folder.
type ImageStore interface {
	NextIndex(category string) (int, error)
	SaveImage(r io.Reader, category string, index int, ext string) (string, error)
	CountImages(category string) (int, error)
}

// Result records the outcome of one download attempt.
type Result struct {
	URL      string
	Path     string
	Success  bool
	Error    error
	Duration time.Duration
	Size     int
}

// Summary aggregates a category's download run.
type Summary struct {
	Downloaded int
	Failed     int
	Results    []Result
}

// Downloader fetches collected image references one at a time and writes
// the successes to storage. Failures are logged and skipped; the run only
// aborts on context cancellation.
type Downloader struct {
	fetcher      ImageFetcher
	store        ImageStore
	logger       logger.Logger
	showProgress bool
}

// New creates a sequential Downloader.
func New(fetcher ImageFetcher, store ImageStore, log logger.Logger, showProgress bool) *Downloader {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Downloader{
		fetcher:      fetcher,
		store:        store,
		logger:       log,
		showProgress: showProgress,
	}
}

// Run downloads refs into the category folder until the category holds
// target images or the refs run out. Files saved by earlier runs count
// against the target, so the folder never grows past it; numbering still
// continues after the existing files.
func (d *Downloader) Run(ctx context.Context, category string, refs []string, target int) (*Summary, error) {
	summary := &Summary{Results: make([]Result, 0, len(refs))}
	if target <= 0 || len(refs) == 0 {
		return summary, nil
	}

	existing, err := d.store.CountImages(category)
	if err != nil {
		return summary, err
	}
	budget := target - existing
	if budget <= 0 {
		d.logger.DebugWithFields("Category already at target", map[string]interface{}{
			"category": category,
			"existing": existing,
			"target":   target,
		})
		return summary, nil
	}

	index, err := d.store.NextIndex(category)
	if err != nil {
		return summary, err
	}

	d.logger.DebugWithFields("Starting downloads", map[string]interface{}{
		"category":    category,
		"refs":        len(refs),
		"target":      target,
		"budget":      budget,
		"start_index": index,
	})

	var bar *progressbar.ProgressBar
	if d.showProgress {
		bar = newProgressBar(budget, category)
	}

	for _, ref := range refs {
		if summary.Downloaded >= budget {
			break
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := d.download(category, index, ref)
		summary.Results = append(summary.Results, result)
		if result.Success {
			summary.Downloaded++
			index++
			if bar != nil {
				_ = bar.Add(1)
			}
		} else {
			summary.Failed++
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return summary, nil
}

func (d *Downloader) download(category string, index int, ref string) Result {
	start := time.Now()
	result := Result{URL: ref}

	data, ext, err := d.fetcher.FetchImage(ref)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		logger.LogDownload(category, index, ref, false, err)
		return result
	}
	result.Size = len(data)

	path, err := d.store.SaveImage(bytes.NewReader(data), category, index, ext)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		logger.LogDownload(category, index, ref, false, err)
		return result
	}

	result.Path = path
	result.Success = true
	result.Duration = time.Since(start)
	logger.LogDownload(category, index, ref, true, nil)
	return result
}

func newProgressBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
