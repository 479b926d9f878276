package mst

import (
	"strings"
	"testing"

	"github.com/forestrie/go-mst/msttesting"
	"github.com/stretchr/testify/require"
)

func TestDumpOnEmptyTreeIsEmptyString(t *testing.T) {
	tr := New()
	require.Equal(t, "", tr.Dump())
}

func TestDumpIncludesEveryEntry(t *testing.T) {
	tr := New()
	tr.Insert(msttesting.Key("a"), msttesting.NewTestValue([]byte("1")))
	tr.Insert(msttesting.Key("b"), msttesting.NewTestValue([]byte("2")))

	out := tr.Dump()
	require.NotEmpty(t, out)
	require.Equal(t, 2, strings.Count(out, "=>"))
}
