// Package mstsign signs and verifies a tree's root hash as a COSE_Sign1
// message, the way massifs.RootSigner signs an MMR's accumulator state —
// simplified to a single 32-byte root rather than a peak list, since the
// MST has no receipt/inclusion-proof machinery to pre-sign.
package mstsign
