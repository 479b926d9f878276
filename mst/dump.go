package mst

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-mst/page"
)

// Dump renders the tree as an indented, human-readable string via
// DepthFirst traversal: one "<hex id> (<level>)" line per page, one
// "- <hex key> => <hex value bytes>" line per entry, indented two spaces
// per depth from the root.
func (t *Tree) Dump() string {
	if t.root.IsZero() {
		return ""
	}

	var b strings.Builder
	depth := map[page.ID]int{t.root: 0}

	t.DepthFirst(func(ev Event) Control {
		switch e := ev.(type) {
		case VisitNodeEvent:
			d := depth[e.ID]
			fmt.Fprintf(&b, "%s%x (%d)\n", strings.Repeat("  ", d), e.ID, e.Page.Level)

			if e.Page.Low != nil {
				depth[*e.Page.Low] = d + 1
			}
			for _, entry := range e.Page.List {
				if entry.Next != nil {
					depth[*entry.Next] = d + 1
				}
			}

		case VisitEntryEvent:
			d := depth[e.NodeID]
			fmt.Fprintf(&b, "%s- %x => %x\n", strings.Repeat("  ", d), e.Entry.Key, e.Entry.Value.AsBytes())
		}
		return Continue
	})

	return b.String()
}
