package store

import "github.com/forestrie/go-mst/page"

// defaultBloomBits sizes the accelerator for a few thousand pages at a low
// false-positive rate (about 0.5% at 5,000 pages, with bloomK positions set per id); callers
// with larger trees should use NewMemStoreSized.
const defaultBloomBits = 1 << 16

// MemStore is the in-memory PageStore implementation: a map from page.ID to
// page.Page, fronted by a bloom-filter existence accelerator. It is the
// only store backend the core requires today.
type MemStore struct {
	pages map[page.ID]page.Page
	bloom *bloomIndex
}

// NewMemStore returns an empty store sized for moderate trees.
func NewMemStore() *MemStore {
	return NewMemStoreSized(defaultBloomBits)
}

// NewMemStoreSized returns an empty store whose existence accelerator uses
// mBits bits; larger trees should pass a larger mBits to keep the
// accelerator's false-positive rate low.
func NewMemStoreSized(mBits uint64) *MemStore {
	return &MemStore{
		pages: make(map[page.ID]page.Page),
		bloom: newBloomIndex(mBits),
	}
}

func (s *MemStore) Put(id page.ID, p page.Page) {
	if _, exists := s.pages[id]; exists {
		return
	}
	s.pages[id] = p
	s.bloom.insert(id)
}

func (s *MemStore) Get(id page.ID) (page.Page, bool) {
	if !s.bloom.maybeContains(id) {
		return page.Page{}, false
	}
	p, ok := s.pages[id]
	return p, ok
}

func (s *MemStore) Has(id page.ID) bool {
	if !s.bloom.maybeContains(id) {
		return false
	}
	_, ok := s.pages[id]
	return ok
}

func (s *MemStore) Remove(id page.ID) {
	// The bloom filter has no unset operation (a shared bit may back other
	// members), so removal leaves it as a conservative superset: it may
	// still answer maybeContains(id) true after removal, which only costs a
	// redundant map lookup, never a wrong result.
	delete(s.pages, id)
}

func (s *MemStore) Iter(fn func(id page.ID, p page.Page) bool) {
	for id, p := range s.pages {
		if !fn(id, p) {
			return
		}
	}
}

func (s *MemStore) Len() int {
	return len(s.pages)
}
