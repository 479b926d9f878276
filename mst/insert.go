package mst

import (
	"github.com/forestrie/go-mst/digest"
	"github.com/forestrie/go-mst/page"
)

// Insert adds (key, value) to the tree, or merges value into the existing
// entry for key via existing.Merge(value) if key is already present.
// Returns the tree's new root.
func (t *Tree) Insert(key []byte, value Value) page.ID {
	level := uint32(digest.Level(key))
	newRoot, _ := t.insertAt(t.root, key, value, level)
	t.root = newRoot
	return t.root
}

// insertAt recursively inserts (key, value, level) into the subtree rooted
// at current, returning the subtree's new root and whether the subtree
// actually changed (false lets an unmodified ancestor reuse its existing
// hash rather than rehash for no reason).
func (t *Tree) insertAt(current page.ID, key []byte, value Value, level uint32) (page.ID, bool) {
	if current.IsZero() {
		return t.newLeaf(key, value, level), true
	}

	p, ok := t.store.Get(current)
	if !ok {
		return t.newLeaf(key, value, level), true
	}

	switch {
	case p.Level < level:
		return t.insertAbove(current, key, value, level), true

	case p.Level == level:
		return t.insertHere(p, key, value), true

	default:
		return t.insertBelow(current, p, key, value, level)
	}
}

func (t *Tree) newLeaf(key []byte, value Value, level uint32) page.ID {
	return t.putPage(page.Page{Level: level, List: []page.Entry{{Key: key, Value: value}}})
}

// insertAbove handles cur_level < L: the new key sits above the existing
// subtree, so that subtree is split at key and the two halves become the
// low/next children of a freshly created page at the target level.
func (t *Tree) insertAbove(current page.ID, key []byte, value Value, level uint32) page.ID {
	low, high := t.split(&current, key)
	return t.putPage(page.Page{Level: level, Low: low, List: []page.Entry{{Key: key, Value: value, Next: high}}})
}

// insertHere handles cur_level == L: the key belongs in this page's own
// entry list.
func (t *Tree) insertHere(p page.Page, key []byte, value Value) page.ID {
	newPage := page.Page{Level: p.Level, Low: p.Low}

	switch {
	case len(p.List) == 0:
		newPage.List = []page.Entry{{Key: key, Value: value}}

	case p.List[0].Value.(Value).CompareKeys(key, p.List[0].Key) < 0:
		low, high := t.split(p.Low, key)
		list := make([]page.Entry, 0, len(p.List)+1)
		list = append(list, page.Entry{Key: key, Value: value, Next: high})
		list = append(list, p.List...)
		newPage.Low = low
		newPage.List = list

	default:
		newPage.List = t.insertAfterFirst(p.List, key, value)
	}

	return t.putPage(newPage)
}

// insertBelow handles cur_level > L: descend into whichever child pointer
// covers key, and rebuild current with that child's new hash if (and only
// if) the child actually changed.
func (t *Tree) insertBelow(current page.ID, p page.Page, key []byte, value Value, level uint32) (page.ID, bool) {
	followLow := len(p.List) == 0 || p.List[0].Value.(Value).CompareKeys(key, p.List[0].Key) < 0

	if followLow {
		newLow, modified := t.insertAtChild(p.Low, key, value, level)
		if !modified {
			return current, false
		}
		newPage := p
		newPage.Low = &newLow
		return t.putPage(newPage), true
	}

	newList, modified := t.insertIntoList(p.List, key, value, level)
	if !modified {
		return current, false
	}
	newPage := p
	newPage.List = newList
	return t.putPage(newPage), true
}

// insertAtChild descends into an optional child pointer, treating a nil
// child as an empty subtree that gets a fresh leaf page.
func (t *Tree) insertAtChild(child *page.ID, key []byte, value Value, level uint32) (page.ID, bool) {
	if child == nil {
		return t.newLeaf(key, value, level), true
	}
	return t.insertAt(*child, key, value, level)
}

// insertIntoList finds which entry's next-pointer covers key and recurses
// into it, returning a rebuilt list (or the original, unmodified, if the
// recursion reports no change).
func (t *Tree) insertIntoList(list []page.Entry, key []byte, value Value, level uint32) ([]page.Entry, bool) {
	target := len(list) - 1
	for i := 0; i < len(list)-1; i++ {
		if list[i].Value.(Value).CompareKeys(key, list[i+1].Key) < 0 {
			target = i
			break
		}
	}

	newNext, modified := t.insertAtChild(list[target].Next, key, value, level)
	if !modified {
		return list, false
	}
	out := append([]page.Entry(nil), list...)
	out[target].Next = &newNext
	return out, true
}

// insertAfterFirst inserts (key, value) into entries, given that key is
// known not to belong before entries[0]. It either merges into an existing
// equal-key entry, or splits the covering entry's next-subtree and inserts
// the new entry immediately after it.
func (t *Tree) insertAfterFirst(entries []page.Entry, key []byte, value Value) []page.Entry {
	out := make([]page.Entry, 0, len(entries)+1)

	for i := 0; i < len(entries); i++ {
		e := entries[i]
		v := e.Value.(Value)

		switch cmp := v.CompareKeys(e.Key, key); {
		case cmp == 0:
			merged := v.Merge(value)
			out = append(out, page.Entry{Key: e.Key, Value: merged, Next: e.Next})
			out = append(out, entries[i+1:]...)
			return out

		case cmp < 0:
			lastIdx := i == len(entries)-1
			if lastIdx || v.CompareKeys(key, entries[i+1].Key) < 0 {
				left, right := t.split(e.Next, key)
				out = append(out, page.Entry{Key: e.Key, Value: e.Value, Next: left})
				out = append(out, page.Entry{Key: key, Value: value, Next: right})
				out = append(out, entries[i+1:]...)
				return out
			}
			out = append(out, e)

		default:
			// entries is sorted ascending and key is known to sort at or
			// after entries[0], so no entry can compare greater than key
			// while scanning forward: this would mean the
			// caller's CompareKeys is not a total, transitive order.
			panic(ErrInvariantViolation)
		}
	}

	return out
}
