package page

import (
	"testing"

	"github.com/forestrie/go-mst/digest"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTripsEmptyPage(t *testing.T) {
	c, err := NewCodec()
	require.NoError(t, err)

	p := Page{Level: 2}
	data, err := c.Marshal(p)
	require.NoError(t, err)

	got, err := c.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, p.Level, got.Level)
	require.Nil(t, got.Low)
	require.Empty(t, got.List)
}

func TestCodecRoundTripsFullPage(t *testing.T) {
	c, err := NewCodec()
	require.NoError(t, err)

	low := ID(digest.Sum([]byte("low")))
	next := ID(digest.Sum([]byte("next")))
	p := Page{
		Level: 5,
		Low:   &low,
		List: []Entry{
			{Key: []byte("a"), Value: BytesValue("1")},
			{Key: []byte("b"), Value: BytesValue("2"), Next: &next},
		},
	}

	data, err := c.Marshal(p)
	require.NoError(t, err)

	got, err := c.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, p.Level, got.Level)
	require.Equal(t, *p.Low, *got.Low)
	require.Len(t, got.List, 2)
	require.Nil(t, got.List[0].Next)
	require.Equal(t, *p.List[1].Next, *got.List[1].Next)
	require.Equal(t, Hash(p), Hash(got))
}

func TestCodecIsDeterministic(t *testing.T) {
	c, err := NewCodec()
	require.NoError(t, err)

	p := Page{Level: 1, List: []Entry{{Key: []byte("a"), Value: BytesValue("1")}}}
	a, err := c.Marshal(p)
	require.NoError(t, err)
	b, err := c.Marshal(p)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
