package mst

import (
	"testing"

	"github.com/forestrie/go-mst/msttesting"
	"github.com/stretchr/testify/require"
)

func TestDisjointMergeRetainsAllKeys(t *testing.T) {
	a, b := New(), New()
	for i := 1; i <= 5; i++ {
		key := msttesting.KeyUint64BE(uint64(i))
		a.Insert(key, msttesting.NewTestValue(key))
	}
	for i := 6; i <= 10; i++ {
		key := msttesting.KeyUint64BE(uint64(i))
		b.Insert(key, msttesting.NewTestValue(key))
	}

	merged := Merge(a, b)
	require.Len(t, merged.ToList(), 10)

	for i := 1; i <= 10; i++ {
		key := msttesting.KeyUint64BE(uint64(i))
		got, ok := merged.GetValue(key)
		require.True(t, ok, "key %d missing from merged tree", i)
		require.Equal(t, key, got.AsBytes())
	}
}

func TestOverlappingMergeKeepsSecondTreesValue(t *testing.T) {
	a, b := New(), New()
	for i := 1; i <= 5; i++ {
		key := msttesting.KeyUint64BE(uint64(i))
		a.Insert(key, msttesting.NewTestValue([]byte{byte(i), 0, 0, 0}))
		b.Insert(key, msttesting.NewTestValue([]byte{byte(i), byte(i), byte(i), byte(i)}))
	}

	merged := Merge(a, b)
	list := merged.ToList()
	require.Len(t, list, 5)

	for i := 1; i <= 5; i++ {
		key := msttesting.KeyUint64BE(uint64(i))
		got, ok := merged.GetValue(key)
		require.True(t, ok)
		require.Equal(t, []byte{byte(i), byte(i), byte(i), byte(i)}, got.AsBytes())
	}
}

func TestUnionIdentityWithEmptyTree(t *testing.T) {
	tr := New()
	for i := 0; i < 8; i++ {
		key := msttesting.KeyUint64BE(uint64(i))
		tr.Insert(key, msttesting.NewTestValue(key))
	}

	empty := New()

	require.Equal(t, tr.Root(), Merge(tr, empty).Root())
	require.Equal(t, tr.Root(), Merge(empty, tr).Root())
}
