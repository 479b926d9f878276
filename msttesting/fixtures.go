package msttesting

import (
	"encoding/binary"

	"github.com/forestrie/go-mst/digest"
)

// Key returns digest.Sum(s) as a key, matching the K(x) notation used
// throughout the scenario tests this package supports.
func Key(s string) []byte {
	sum := digest.Sum([]byte(s))
	return sum[:]
}

// KeyUint64BE returns digest.Sum applied to i's big-endian encoding, for
// scenarios that key on an integer sequence (e.g. K(i.to_be_bytes())).
func KeyUint64BE(i uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], i)
	sum := digest.Sum(buf[:])
	return sum[:]
}
