package digest

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumMatchesConcatenatedSha256(t *testing.T) {
	a := []byte("alpha")
	b := []byte("beta")
	c := []byte("gamma")

	got := Sum(a, b, c)

	want := sha256.Sum256(append(append(append([]byte{}, a...), b...), c...))
	require.Equal(t, want, got)
}

func TestSumNoParts(t *testing.T) {
	got := Sum()
	want := sha256.Sum256(nil)
	require.Equal(t, want, got)
}

func TestSumIsDeterministic(t *testing.T) {
	require.Equal(t, Sum([]byte("x")), Sum([]byte("x")))
}
