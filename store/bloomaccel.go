package store

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/forestrie/go-mst/page"
)

// bloomDomain separates this accelerator's hash inputs from any other use of
// sha256 in the process, the same domain-separation technique
// forestrie-go-merklelog/bloom uses (bloomDomainV1 prefix byte).
const bloomDomain = 0xB1

// bloomK is the number of bit positions set per inserted id, matching
// bloom.InitV1's per-element fan-out.
const bloomK = 4

// bloomIndex is a fixed-size, double-hashed (Kirsch-Mitzenmacher) bloom
// filter used purely to short-circuit Get/Has misses before touching the
// backing map. It can only produce false positives, never false negatives,
// so it never changes MemStore's observable behavior — it is an
// accelerator, not part of the content-addressing contract.
type bloomIndex struct {
	bits []byte // mBits/8 bytes
	m    uint64 // number of bits
}

func newBloomIndex(mBits uint64) *bloomIndex {
	if mBits == 0 {
		mBits = 1
	}
	return &bloomIndex{
		bits: make([]byte, (mBits+7)/8),
		m:    mBits,
	}
}

func (b *bloomIndex) insert(id page.ID) {
	h1, h2 := bloomHashPair(id)
	for i := uint64(0); i < bloomK; i++ {
		j := (h1 + i*h2) % b.m
		b.bits[j>>3] |= 1 << (j & 7)
	}
}

// maybeContains reports false only when id is definitely absent.
func (b *bloomIndex) maybeContains(id page.ID) bool {
	h1, h2 := bloomHashPair(id)
	for i := uint64(0); i < bloomK; i++ {
		j := (h1 + i*h2) % b.m
		if b.bits[j>>3]&(1<<(j&7)) == 0 {
			return false
		}
	}
	return true
}

func bloomHashPair(id page.ID) (h1, h2 uint64) {
	var buf [1 + page.HashBytes]byte
	buf[0] = bloomDomain
	copy(buf[1:], id[:])
	sum := sha256.Sum256(buf[:])
	h1 = binary.BigEndian.Uint64(sum[0:8])
	h2 = binary.BigEndian.Uint64(sum[8:16])
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}
