package mst

// Merge returns a new tree holding the union of a and b: every key from
// both, with colliding keys combined via Value.Merge. a and b are left
// unmodified; the result owns a fresh store, built by reinserting every
// entry of both trees (in MST order) into an initially empty tree.
// Determinism follows from level being a pure function of the key and
// insertion being path-local.
func Merge(a, b *Tree) *Tree {
	result := New()
	a.addItemsTo(result)
	b.addItemsTo(result)
	return result
}

// Merge is the method form of the package-level Merge, combining t with
// other into a newly returned tree and leaving both receivers unmodified.
func (t *Tree) Merge(other *Tree) *Tree {
	return Merge(t, other)
}

func (t *Tree) addItemsTo(target *Tree) {
	if t.root.IsZero() {
		return
	}
	t.MSTOrder(func(ev Event) Control {
		if ve, ok := ev.(VisitEntryEvent); ok {
			target.Insert(ve.Entry.Key, ve.Entry.Value.(Value))
		}
		return Continue
	})
}
