// Package collector implements the scroll-and-collect loop that gathers
// unique thumbnail sources from a results page.
//
// The loop is deliberately simple: read every source currently on the
// page, keep the ones not seen before, and when a full pass yields
// nothing new, scroll, pause, and read again. A bounded number of
// consecutive idle passes ends the run with whatever was collected,
// which keeps a sparse category from hanging the whole session.
//
// The collector only ever sees strings. Filtering out unusable sources
// (data: URIs, empty attributes) is the page adapter's job, so the same
// loop works against fakes in tests.
package collector
