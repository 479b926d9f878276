package mst

import "errors"

// ErrInvariantViolation signals that a page reached a state its
// Value.CompareKeys implementation
// was supposed to make impossible (a non-total or non-transitive key
// order). This is an internal bug, not a recoverable condition —
// insertAfterFirst panics with it rather than returning it.
var ErrInvariantViolation = errors.New("mst: comparison invariant violated")
