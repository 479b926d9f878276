package digest

import "math/bits"

// MaxLevel is the level assigned to an all-zero digest (9 * 32).
const MaxLevel = 9 * Size

// Level derives the balancing level of a key: the digest of the key is
// computed, and the level is 9*z + w, where z is the count of leading whole
// zero bytes and w is 1 plus the count of leading zero bits in the first
// nonzero byte. A digest that is all zero (astronomically unlikely) reports
// MaxLevel.
func Level(key []byte) int {
	h := Sum(key)
	return LevelOfDigest(h)
}

// LevelOfDigest applies the level formula directly to an already-computed
// digest, avoiding a redundant hash when the caller has one on hand.
func LevelOfDigest(h [Size]byte) int {
	for i, b := range h {
		if b != 0 {
			return 9*i + 1 + bits.LeadingZeros8(b)
		}
	}
	return MaxLevel
}
