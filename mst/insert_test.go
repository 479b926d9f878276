package mst

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/forestrie/go-mst/digest"
	"github.com/forestrie/go-mst/msttesting"
	"github.com/forestrie/go-mst/page"
	"github.com/stretchr/testify/require"
)

func TestRootIsIndependentOfInsertionOrder(t *testing.T) {
	type kv struct {
		key   []byte
		value msttesting.TestValue
	}
	var items []kv
	for i := 1; i <= 10; i++ {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(i))
		items = append(items, kv{key: msttesting.Key(string(buf[:])), value: msttesting.NewTestValue(buf[:])})
	}

	t1 := New()
	for _, it := range items {
		t1.Insert(it.key, it.value)
	}

	shuffled := append([]kv(nil), items...)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	t2 := New()
	for _, it := range shuffled {
		t2.Insert(it.key, it.value)
	}

	require.Equal(t, t1.Root(), t2.Root())

	l1, l2 := t1.ToList(), t2.ToList()
	require.Len(t, l1, len(l2))
	for i := range l1 {
		require.Equal(t, l1[i].AsBytes(), l2[i].AsBytes())
	}
}

func TestInsertThenGetReturnsStoredValue(t *testing.T) {
	tr := New()
	key := msttesting.Key("k")
	tr.Insert(key, msttesting.NewTestValue([]byte("v1")))

	got, ok := tr.GetValue(key)
	require.True(t, ok)
	require.Equal(t, []byte("v1"), got.AsBytes())

	tr.Insert(key, msttesting.NewTestValue([]byte("v2")))
	got, ok = tr.GetValue(key)
	require.True(t, ok)
	require.Equal(t, []byte("v2"), got.AsBytes())
}

func TestContentAddressingEveryStoredPageHashesToItsID(t *testing.T) {
	tr := New()
	for i := 0; i < 30; i++ {
		key := msttesting.KeyUint64BE(uint64(i))
		tr.Insert(key, msttesting.NewTestValue(key))
	}

	count := 0
	tr.Store().Iter(func(id page.ID, p page.Page) bool {
		require.Equal(t, page.Hash(p), id)
		count++
		return true
	})
	require.Greater(t, count, 0)
}

func TestLevelInvariantEntriesMatchPageLevelAndChildrenAreLower(t *testing.T) {
	tr := New()
	for i := 0; i < 60; i++ {
		key := msttesting.KeyUint64BE(uint64(i))
		tr.Insert(key, msttesting.NewTestValue(key))
	}

	tr.DepthFirst(func(ev Event) Control {
		if n, ok := ev.(VisitNodeEvent); ok {
			for _, e := range n.Page.List {
				require.EqualValues(t, n.Page.Level, digest.Level(e.Key))
			}
			if n.Page.Low != nil {
				child, found := tr.Get(*n.Page.Low)
				require.True(t, found)
				require.Less(t, child.Level, n.Page.Level)
			}
			for _, e := range n.Page.List {
				if e.Next == nil {
					continue
				}
				child, found := tr.Get(*e.Next)
				require.True(t, found)
				require.Less(t, child.Level, n.Page.Level)
			}
		}
		return Continue
	})
}

func TestIdempotentPutLeavesStoreUnchanged(t *testing.T) {
	tr := New()
	tr.Insert(msttesting.Key("a"), msttesting.NewTestValue([]byte("1")))
	root := tr.Root()
	p, ok := tr.Get(root)
	require.True(t, ok)

	tr.Store().Put(root, p)
	got, ok := tr.Get(root)
	require.True(t, ok)
	require.Equal(t, p, got)
}

func TestUnexpectedOrderPanicsWithInvariantViolation(t *testing.T) {
	// insertAfterFirst requires its caller to have already established that
	// key does not sort before entries[0]; violating that precondition
	// surfaces the same way a non-transitive CompareKeys would: the scan
	// finds an entry comparing greater than key.
	tr := New()
	entries := []page.Entry{
		{Key: []byte("b"), Value: msttesting.NewTestValue([]byte("1"))},
	}

	require.PanicsWithValue(t, ErrInvariantViolation, func() {
		tr.insertAfterFirst(entries, []byte("a"), msttesting.NewTestValue([]byte("v")))
	})
}
