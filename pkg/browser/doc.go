// Package browser wraps the rod browser automation library behind the two
// operations the rest of the program needs: start a session and open an
// image-search results page.
//
// The results page is read-only from the caller's point of view: Sources
// snapshots the thumbnail URLs currently rendered, LoadMore scrolls and, if
// present, clicks the button that loads the next batch. Everything fragile
// about the provider's markup lives in pkg/provider as named selectors.
package browser
