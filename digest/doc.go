// Package digest provides the hash primitive and level function on top of
// which the Merkle Search Tree balances itself.
//
// Digest is a black-box 32-byte content hash (SHA-256). Level is a
// deterministic function of a key's digest: its leading zero bits counted as
// if an extra zero bit were prepended to every byte, expressed as 9*z + w
// where z counts whole leading zero bytes (8 bits plus the extra one each)
// and w is 1 + the leading zero bit count of the first nonzero byte.
package digest
