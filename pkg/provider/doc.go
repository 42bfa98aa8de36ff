// Package provider isolates everything specific to the search provider's
// current page structure: the image-search URL format, the DOM attributes
// thumbnails carry their sources in, the "show more" control, and the block
// interstitial. When the provider's markup changes, this package is the one
// that breaks.
//
// The package also holds the HTTP client used to fetch individual images
// from their hosts; that part is provider-agnostic but lives here to keep
// all outbound network behavior in one place.
package provider
