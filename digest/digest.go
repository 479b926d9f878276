package digest

import "crypto/sha256"

// Size is the fixed width, in bytes, of every digest produced by this package.
const Size = sha256.Size

// Sum computes the SHA-256 digest of the concatenation, in order, of parts.
//
// The variadic signature mirrors the hash functions threaded through the
// pack's other Merkle structures (mmr.AddHashedLeaf's repeated hasher.Write
// calls, lwm.MerkleTree's `hash func(data ...[]byte) []byte`), so callers
// building a canonical serialization can pass each field as it is produced
// instead of pre-concatenating into one buffer.
func Sum(parts ...[]byte) [Size]byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out [Size]byte
	sum := h.Sum(out[:0])
	copy(out[:], sum)
	return out
}
