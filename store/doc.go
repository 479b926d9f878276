// Package store provides the content-addressable Page Store: a mapping from
// page IDs to immutable pages, with reachability-based missing-set
// computation. It is defined at the interface level; MemStore is the only
// backend required today, leaving durable or networked backends as a future
// extension behind the same PageStore interface.
package store
