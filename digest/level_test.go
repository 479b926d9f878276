package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelOfDigestAllZero(t *testing.T) {
	var h [Size]byte
	require.Equal(t, MaxLevel, LevelOfDigest(h))
}

func TestLevelOfDigestFirstByteNonZero(t *testing.T) {
	var h [Size]byte
	h[0] = 0b01000000 // one leading zero bit
	require.Equal(t, 9*0+1+1, LevelOfDigest(h))
}

func TestLevelOfDigestSkipsLeadingZeroBytes(t *testing.T) {
	var h [Size]byte
	h[0], h[1] = 0, 0
	h[2] = 0b00010000 // three leading zero bits
	require.Equal(t, 9*2+1+3, LevelOfDigest(h))
}

func TestLevelOfDigestFirstByteIsOne(t *testing.T) {
	var h [Size]byte
	h[0] = 0b00000001
	require.Equal(t, 1+7, LevelOfDigest(h))
}

func TestLevelIsDeterministicFunctionOfKey(t *testing.T) {
	l1 := Level([]byte("some-key"))
	l2 := Level([]byte("some-key"))
	require.Equal(t, l1, l2)
}

func TestLevelWithinPlausibleRange(t *testing.T) {
	for _, k := range [][]byte{[]byte("a"), []byte("b"), []byte("the-quick-fox")} {
		l := Level(k)
		require.GreaterOrEqual(t, l, 1)
		require.LessOrEqual(t, l, MaxLevel)
	}
}
