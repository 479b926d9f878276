package mst

import "github.com/forestrie/go-mst/page"

// GetValue returns the value stored under key, if any. It never mutates the
// tree or the store.
func (t *Tree) GetValue(key []byte) (Value, bool) {
	return t.getValueFrom(t.root, key)
}

func (t *Tree) getValueFrom(node page.ID, key []byte) (Value, bool) {
	if node.IsZero() {
		return nil, false
	}

	p, ok := t.store.Get(node)
	if !ok {
		return nil, false
	}

	if len(p.List) == 0 {
		if p.Low != nil {
			return t.getValueFrom(*p.Low, key)
		}
		return nil, false
	}

	for i, e := range p.List {
		v := e.Value.(Value)
		switch cmp := v.CompareKeys(key, e.Key); {
		case cmp == 0:
			return v, true

		case cmp < 0:
			if i == 0 {
				if p.Low != nil {
					return t.getValueFrom(*p.Low, key)
				}
				return nil, false
			}
			if prevNext := p.List[i-1].Next; prevNext != nil {
				return t.getValueFrom(*prevNext, key)
			}
			return nil, false

		default:
			if i == len(p.List)-1 {
				if e.Next != nil {
					return t.getValueFrom(*e.Next, key)
				}
				return nil, false
			}
			// key is greater than this entry but not yet compared against
			// the next one: continue the scan.
		}
	}

	return nil, false
}
