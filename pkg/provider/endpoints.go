package provider

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// BaseURL is the base URL for the search provider
	BaseURL = "https://www.google.com"

	// SearchEndpoint is the image-search endpoint
	SearchEndpoint = "/search"

	// imageSearchParam selects the image results tab
	imageSearchParam = "isch"

	// ThumbnailSelector matches candidate image elements on the results page
	ThumbnailSelector = "img"

	// SourceAttr and LazySourceAttr are the attributes a thumbnail's image
	// URL is read from, in order of preference
	SourceAttr     = "src"
	LazySourceAttr = "data-src"

	// ShowMoreXPath locates the button that loads another results batch
	ShowMoreXPath = `//input[@value='Show more results']`

	// BlockedPathMarker appears in the URL of the provider's interstitial
	// page when the session has been blocked or challenged
	BlockedPathMarker = "/sorry/"
)

// SearchURL constructs the image-search URL for a query, appending the
// context suffix (e.g. "Myanmar food") when it is not already part of the
// query.
func SearchURL(query, context string) string {
	query = strings.TrimSpace(query)
	if context != "" && !strings.Contains(strings.ToLower(query), strings.ToLower(context)) {
		query = query + " " + context
	}

	params := url.Values{}
	params.Set("tbm", imageSearchParam)
	params.Set("q", query)

	return fmt.Sprintf("%s%s?%s", BaseURL, SearchEndpoint, params.Encode())
}

// IsBlockedURL reports whether a page URL is the provider's block/challenge
// interstitial rather than a results page.
func IsBlockedURL(pageURL string) bool {
	return strings.Contains(pageURL, BlockedPathMarker)
}

// IsUsableSource reports whether a thumbnail source attribute is a
// downloadable image reference. Inline data: URIs and empty or relative
// sources are ignored.
func IsUsableSource(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
