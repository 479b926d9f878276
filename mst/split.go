package mst

import "github.com/forestrie/go-mst/page"

// split decomposes the subtree rooted at node into two subtrees: left holds
// every key strictly less than splitKey, right holds every key greater
// than splitKey. An entry whose key equals splitKey stays in left; Insert
// only splits subtrees below the level of the key being inserted, which
// cannot hold that key. Both results are optional (nil means "empty
// subtree").
//
// split removes node's own page from the store before building its
// replacements, matching the reference implementation's unconditional
// eager-free policy: the page being decomposed is never needed again
// under its old identity once split returns, *provided* no other root
// still references it. The direct Insert
// path does not track cross-root reachability, so a caller holding an
// older root across a split may find that root's pages partially removed.
// Merge is unaffected: it always splits against the fresh store of the
// result tree it is building, whose intermediate roots nobody holds.
func (t *Tree) split(node *page.ID, splitKey []byte) (left, right *page.ID) {
	if node == nil || node.IsZero() {
		return nil, nil
	}

	p, ok := t.store.Get(*node)
	if !ok {
		return nil, nil
	}
	t.store.Remove(*node)

	level := p.Level
	lowChild := p.Low
	entries := p.List

	if len(entries) == 0 {
		return lowChild, nil
	}

	first := entries[0].Value.(Value)
	if first.CompareKeys(splitKey, entries[0].Key) < 0 {
		lowLow, lowHigh := t.split(lowChild, splitKey)
		rightID := t.putPage(page.Page{Level: level, Low: lowHigh, List: entries})
		return lowLow, &rightID
	}

	leftEntries := make([]page.Entry, 0, len(entries))
	for i, e := range entries {
		v := e.Value.(Value)

		lastIdx := i == len(entries)-1
		splitsBeforeNext := !lastIdx && v.CompareKeys(splitKey, entries[i+1].Key) < 0

		if splitsBeforeNext {
			nextLeft, nextRight := t.split(e.Next, splitKey)
			leftEntries = append(leftEntries, page.Entry{Key: e.Key, Value: e.Value, Next: nextLeft})

			rightEntries := append([]page.Entry(nil), entries[i+1:]...)
			rightID := t.putPage(page.Page{Level: level, Low: nextRight, List: rightEntries})
			leftID := t.putPage(page.Page{Level: level, Low: lowChild, List: leftEntries})
			return &leftID, &rightID
		}

		if lastIdx {
			nextLeft, nextRight := t.split(e.Next, splitKey)
			leftEntries = append(leftEntries, page.Entry{Key: e.Key, Value: e.Value, Next: nextLeft})

			leftID := t.putPage(page.Page{Level: level, Low: lowChild, List: leftEntries})
			return &leftID, nextRight
		}

		leftEntries = append(leftEntries, e)
	}

	// Unreachable: entries is non-empty, so the loop always returns on its
	// last iteration.
	return nil, nil
}
