// Package retry provides bounded retry with pluggable backoff strategies.
//
// The only retry loop in the scraper is the collector's scroll-and-look-again
// pass: a no-progress pass is "retried" by scrolling, pausing, and reading the
// page again, up to a configured bound. Failed image downloads are never
// retried; they are skipped.
//
// Usage:
//
//	err := retry.Do(func() error {
//	    return readPage()
//	}, &retry.Config{
//	    MaxAttempts: 5,
//	    Backoff:     &retry.ConstantBackoff{Delay: 2 * time.Second},
//	    RetryIf:     func(err error) bool { return errors.Is(err, errNoProgress) },
//	})
package retry
