// Package page defines the Merkle Search Tree's node record, its canonical
// content hash, and a CBOR-based debug codec for exporting page graphs.
//
// A Page is level, an optional low-subtree hash, and an ordered list of
// Entry. Its identifier is digest.Sum applied to the exact byte layout
// described by Hash; two pages with identical content always hash identically
// and are therefore the same stored object (content addressing).
package page
