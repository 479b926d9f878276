package mst

import "github.com/forestrie/go-mst/page"

// Event is one occurrence during a traversal. Visitors type-switch on the
// concrete event to decide what happened.
type Event interface{ isEvent() }

// VisitNodeEvent fires when a traversal first reaches a page.
type VisitNodeEvent struct {
	ID   page.ID
	Page page.Page
}

// VisitEntryEvent fires for each entry in a visited page's list, in order.
type VisitEntryEvent struct {
	NodeID page.ID
	Entry  page.Entry
}

// ExitNodeEvent fires after a page and everything reachable from it (that
// the traversal chooses to descend into) has been visited.
type ExitNodeEvent struct {
	ID page.ID
}

func (VisitNodeEvent) isEvent()  {}
func (VisitEntryEvent) isEvent() {}
func (ExitNodeEvent) isEvent()   {}

// Control tells a traversal how to proceed after a Visitor handles an
// Event.
type Control int

const (
	// Continue descends normally.
	Continue Control = iota
	// Skip, returned from a VisitNode, suppresses descent into that node's
	// children (still emitting ExitNode); under MSTOrder the low subtree has
	// already been visited by then, so only the entries and their
	// next-subtrees are skipped. Returned from a VisitEntry, it
	// suppresses descent into that entry's next-subtree.
	Skip
	// Return stops the traversal immediately.
	Return
)

// Visitor is called once per Event during a traversal.
type Visitor func(Event) Control

// DepthFirst visits the tree pre-order, following the page layout rather
// than key order: a node, then its low child, then each entry (the entry
// itself, then its next branch), then ExitNode. A visited-set guards
// against revisiting subtrees shared after a merge.
func (t *Tree) DepthFirst(visit Visitor) {
	t.depthFirst(t.root, visit, map[page.ID]struct{}{})
}

func (t *Tree) depthFirst(node page.ID, visit Visitor, visited map[page.ID]struct{}) Control {
	if node.IsZero() {
		return Continue
	}
	if _, seen := visited[node]; seen {
		return Continue
	}
	visited[node] = struct{}{}

	p, ok := t.store.Get(node)
	if !ok {
		return Continue
	}

	switch visit(VisitNodeEvent{ID: node, Page: p}) {
	case Return:
		return Return
	case Skip:
		visit(ExitNodeEvent{ID: node})
		return Continue
	}

	if p.Low != nil {
		if t.depthFirst(*p.Low, visit, visited) == Return {
			return Return
		}
	}

	for _, e := range p.List {
		switch visit(VisitEntryEvent{NodeID: node, Entry: e}) {
		case Return:
			return Return
		case Skip:
			continue
		}
		if e.Next != nil {
			if t.depthFirst(*e.Next, visit, visited) == Return {
				return Return
			}
		}
	}

	visit(ExitNodeEvent{ID: node})
	return Continue
}

// MSTOrder visits entries in strictly ascending key order: a node's low
// subtree first, then each entry interleaved with the subtree holding keys
// between it and the next entry.
func (t *Tree) MSTOrder(visit Visitor) {
	t.mstOrder(t.root, visit, map[page.ID]struct{}{})
}

func (t *Tree) mstOrder(node page.ID, visit Visitor, visited map[page.ID]struct{}) Control {
	if node.IsZero() {
		return Continue
	}
	if _, seen := visited[node]; seen {
		return Continue
	}
	visited[node] = struct{}{}

	p, ok := t.store.Get(node)
	if !ok {
		return Continue
	}

	if p.Low != nil {
		if t.mstOrder(*p.Low, visit, visited) == Return {
			return Return
		}
	}

	switch visit(VisitNodeEvent{ID: node, Page: p}) {
	case Return:
		return Return
	case Skip:
		visit(ExitNodeEvent{ID: node})
		return Continue
	}

	for _, e := range p.List {
		switch visit(VisitEntryEvent{NodeID: node, Entry: e}) {
		case Return:
			return Return
		case Skip:
			continue
		}
		if e.Next != nil {
			if t.mstOrder(*e.Next, visit, visited) == Return {
				return Return
			}
		}
	}

	visit(ExitNodeEvent{ID: node})
	return Continue
}

// ToList returns every value in the tree in strictly ascending key order.
func (t *Tree) ToList() []Value {
	if t.root.IsZero() {
		return nil
	}
	var out []Value
	t.MSTOrder(func(ev Event) Control {
		if ve, ok := ev.(VisitEntryEvent); ok {
			out = append(out, ve.Entry.Value.(Value))
		}
		return Continue
	})
	return out
}
