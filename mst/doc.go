// Package mst implements the Merkle Search Tree's operations: lookup,
// insertion, split, union merge, traversal, and debug dump, built on top of
// digest, page, and store.
//
// A Tree owns a root page.ID and a store.PageStore. Every mutating
// operation (Insert, Merge) is purely functional over pages: it produces
// new pages, writes them into the store under their content hash, and
// returns a new root. Existing pages are never mutated in place.
package mst
