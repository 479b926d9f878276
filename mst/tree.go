package mst

import (
	"github.com/forestrie/go-mst/internal/logging"
	"github.com/forestrie/go-mst/page"
	"github.com/forestrie/go-mst/store"
)

// Tree is a Merkle Search Tree: an ordered key/value map, content-addressed
// via page hashes, whose nodes live in a store.PageStore. The zero value is
// not usable; construct with New, WithRoot, or WithStore.
type Tree struct {
	root  page.ID
	store store.PageStore
	log   *logging.Logger
}

// New returns an empty tree backed by a fresh in-memory store.
func New() *Tree {
	return &Tree{store: store.NewMemStore()}
}

// WithRoot returns a tree rooted at root, backed by a fresh, empty
// in-memory store. The caller is responsible for populating the store
// (reachable through Store) before the tree can resolve root to a page;
// WithStore attaches an existing store instead.
func WithRoot(root page.ID) *Tree {
	return &Tree{root: root, store: store.NewMemStore()}
}

// WithStore returns a tree rooted at root, backed by s.
func WithStore(root page.ID, s store.PageStore) *Tree {
	return &Tree{root: root, store: s}
}

// Root returns the tree's current root page ID. The zero ID is the
// empty-tree sentinel.
func (t *Tree) Root() page.ID { return t.root }

// Store returns the tree's backing PageStore.
func (t *Tree) Store() store.PageStore { return t.store }

// Get returns the raw page stored under id. Most callers should use
// GetValue instead; this is exposed for debugging and traversal tooling.
func (t *Tree) Get(id page.ID) (page.Page, bool) {
	return t.store.Get(id)
}

// SetLogger attaches a logger for internal diagnostics (split/insert
// decisions). A nil logger, the default, disables logging.
func (t *Tree) SetLogger(l *logging.Logger) {
	t.log = l
}

func (t *Tree) putPage(p page.Page) page.ID {
	id := page.Hash(p)
	t.store.Put(id, p)
	if t.log != nil {
		t.log.Debugw("mst: stored page", "id", id, "level", p.Level, "entries", len(p.List))
	}
	return id
}
