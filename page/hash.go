package page

import (
	"encoding/binary"

	"github.com/forestrie/go-mst/digest"
)

// Hash computes the canonical content hash of p:
//
//	digest(
//	  u32_be(level) ||
//	  (low.bytes if low else ε) ||
//	  for each entry: key || value || (next.bytes if next else ε)
//	)
//
// This is the wire contract: any two conformant implementations given the
// same Page must produce the same ID.
func Hash(p Page) ID {
	var levelBytes [4]byte
	binary.BigEndian.PutUint32(levelBytes[:], p.Level)

	parts := make([][]byte, 0, 2+3*len(p.List))
	parts = append(parts, levelBytes[:])
	if p.Low != nil {
		low := *p.Low
		parts = append(parts, low[:])
	}
	for _, e := range p.List {
		parts = append(parts, e.Key, e.Value.AsBytes())
		if e.Next != nil {
			next := *e.Next
			parts = append(parts, next[:])
		}
	}
	return ID(digest.Sum(parts...))
}
