package collector

// ThumbnailSource yields image source strings from the currently loaded
// results page. It is the single seam between the collection loop and the
// provider's fragile page structure: the production implementation is a
// live browser page, tests use fakes.
type ThumbnailSource interface {
	// Sources returns the source URL of every thumbnail currently in the
	// DOM. Repeated calls may return overlapping sets as the page grows.
	Sources() ([]string, error)

	// LoadMore asks the page to load another batch of thumbnails, typically
	// by scrolling to the bottom.
	LoadMore() error
}
