package msttesting

import (
	"bytes"

	"github.com/forestrie/go-mst/mst"
	"github.com/forestrie/go-mst/page"
)

// TestValue is the reference mst.Value used across this module's tests: key
// comparison is plain lexicographic byte order, merge policy is "last write
// wins" (the incoming value replaces the stored one), and it never
// references another page.
type TestValue struct {
	Data []byte
}

var _ mst.Value = TestValue{}

// NewTestValue copies data into a TestValue.
func NewTestValue(data []byte) TestValue {
	return TestValue{Data: append([]byte(nil), data...)}
}

// AsBytes returns v's data.
func (v TestValue) AsBytes() []byte { return v.Data }

// Refs is always empty: a TestValue never points at another page.
func (v TestValue) Refs() []page.ID { return nil }

// CompareKeys orders keys lexicographically by byte value.
func (v TestValue) CompareKeys(a, b []byte) int { return bytes.Compare(a, b) }

// Merge implements last-write-wins: the incoming value replaces this one.
func (v TestValue) Merge(other mst.Value) mst.Value { return other }
