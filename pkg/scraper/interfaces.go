package scraper

// ResultsPage is an open image-search results tab.
type ResultsPage interface {
	Sources() ([]string, error)
	LoadMore() error
	Close()
}

// SearchBrowser defines the browser operations the scraper drives.
type SearchBrowser interface {
	Start() error
	Close()
	OpenSearchPage(query, queryContext string) (ResultsPage, error)
}
