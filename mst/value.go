package mst

import "github.com/forestrie/go-mst/page"

// Value is the capability bundle required of anything stored in the tree: a
// canonical byte view and outbound refs (both inherited from page.Value,
// since those are all the page/hash layer ever needs), plus key comparison
// and merge-on-collision, which only the tree algebra uses. Page and Hash
// depend only on page.Value, so this package is the only place that needs
// the richer bundle.
type Value interface {
	page.Value

	// CompareKeys orders two raw keys (typically lexicographic on the key
	// bytes). It is conceptually a function of the key type alone, not of
	// the receiver: any live Value may be used to call it. Implementations
	// must supply a total, transitive order — violating that surfaces as
	// ErrInvariantViolation, not as a recoverable error.
	CompareKeys(a, b []byte) int

	// Merge combines this value with an incoming value sharing its key,
	// returning the value to store. Called as existing.Merge(incoming); a
	// "last write wins" policy simply returns other.
	Merge(other Value) Value
}
