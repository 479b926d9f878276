package store

import "github.com/forestrie/go-mst/page"

// PageStore is a mapping from page.ID to page.Page. Implementations need not
// be safe for concurrent use; the MST does no locking, so callers serialize
// mutations.
type PageStore interface {
	// Put records the mapping id -> p. Idempotent: putting the same (id, p)
	// twice leaves the store unchanged.
	Put(id page.ID, p page.Page)

	// Get returns the page stored under id, and whether it was present.
	Get(id page.ID) (page.Page, bool)

	// Has reports whether id is present, without materializing the page.
	Has(id page.ID) bool

	// Remove drops id. A no-op if id is not present.
	Remove(id page.ID)

	// Iter calls fn once for every (id, page) pair, in unspecified order.
	// Iteration stops early if fn returns false.
	Iter(fn func(id page.ID, p page.Page) bool)

	// MissingSet returns every page ID reachable from root that is not
	// present in the store.
	MissingSet(root page.ID) map[page.ID]struct{}
}
