package page

import "errors"

// HashBytes is the fixed width of a page identifier, mirroring
// urkle.HashBytes / digest.Size.
const HashBytes = 32

// ID identifies a stored page (or, via Entry.Next/Page.Low, a subtree) by the
// canonical content hash of its page. The zero ID is the empty-tree sentinel:
// it never identifies a real stored page.
type ID [HashBytes]byte

// IsZero reports whether id is the all-zero sentinel.
func (id ID) IsZero() bool {
	return id == ID{}
}

// Value is the minimal capability a page entry's value must provide: a
// canonical byte view for hashing, and any hash identifiers the value's own
// content points to. mst.Value extends this with the key-comparison and merge-on-collision
// operations that the tree algebra needs but the page/hash layer does not;
// Page lives at this narrower interface so it never depends on the mst
// package.
type Value interface {
	AsBytes() []byte
	Refs() []ID
}

// BytesValue is the trivial Value: an opaque byte string with no references
// to other pages. It is the concrete type used throughout this package's own
// tests and by callers that have no richer Value semantics to contribute.
type BytesValue []byte

// AsBytes returns v itself.
func (v BytesValue) AsBytes() []byte { return v }

// Refs always returns nil: a bare byte string never points at another page.
func (v BytesValue) Refs() []ID { return nil }

// Entry is one (key, value, next) triple within a Page's ordered list.
// Next, when present, identifies the subtree holding keys strictly between
// this entry's key and the following entry's key (or, for the last entry,
// all keys greater than it).
type Entry struct {
	Key   []byte
	Value Value
	Next  *ID
}

// Page is the Merkle Search Tree's node record.
type Page struct {
	Level uint32
	Low   *ID
	List  []Entry
}

// Refs returns every subtree ID this page points to: Low, each entry's
// value's own refs, and each entry's Next, in that order. Used by
// store.MissingSet's reachability walk.
func (p Page) Refs() []ID {
	refs := make([]ID, 0, len(p.List)+1)
	if p.Low != nil {
		refs = append(refs, *p.Low)
	}
	for _, e := range p.List {
		if e.Value != nil {
			refs = append(refs, e.Value.Refs()...)
		}
		if e.Next != nil {
			refs = append(refs, *e.Next)
		}
	}
	return refs
}

var (
	// ErrInvariantViolation signals that a page-local invariant the caller's
	// comparison function is supposed to guarantee (total, transitive
	// ordering) did not hold. This is treated as an internal bug, not a
	// recoverable error.
	ErrInvariantViolation = errors.New("page: comparison invariant violated")
)
