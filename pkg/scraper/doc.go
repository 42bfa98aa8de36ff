// Package scraper ties the pieces together: it owns the browser session,
// walks the category list, and for each category opens a results page,
// collects thumbnail references, and downloads them one at a time.
//
// Failure handling follows one rule: problems scoped to a single image or
// category are logged and skipped, problems that poison the whole session
// (a browser crash, the provider's verification page) abort the run.
package scraper
