package store

import (
	"bytes"
	"sort"

	"github.com/forestrie/go-mst/page"
)

// snapshotEntry pairs an id with its page for CBOR export, since CBOR has no
// native map-with-array-key encoding we'd want to rely on across decoders.
type snapshotEntry struct {
	ID []byte `cbor:"1,keyasint"`
	P  []byte `cbor:"2,keyasint"`
}

// Export serializes every page in s to a deterministic CBOR blob: each
// page's bytes come from codec, and the outer envelope is a plain CBOR array
// of (id, page bytes) pairs sorted by id. This is a minimal, in-process
// snapshot mechanism, not a networked or blob-backed store.
func Export(s *MemStore, codec page.Codec) ([]byte, error) {
	entries := make([]snapshotEntry, 0, s.Len())
	var outerErr error
	s.Iter(func(id page.ID, p page.Page) bool {
		data, err := codec.Marshal(p)
		if err != nil {
			outerErr = err
			return false
		}
		entries = append(entries, snapshotEntry{ID: id[:], P: data})
		return true
	})
	if outerErr != nil {
		return nil, outerErr
	}
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].ID, entries[j].ID) < 0
	})
	return marshalEnvelope(entries)
}

// Import rebuilds a MemStore from bytes produced by Export.
func Import(data []byte, codec page.Codec) (*MemStore, error) {
	entries, err := unmarshalEnvelope(data)
	if err != nil {
		return nil, err
	}
	s := NewMemStoreSized(defaultBloomBits)
	for _, e := range entries {
		var id page.ID
		copy(id[:], e.ID)
		p, err := codec.Unmarshal(e.P)
		if err != nil {
			return nil, err
		}
		s.Put(id, p)
	}
	return s, nil
}
