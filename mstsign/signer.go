package mstsign

import (
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/veraison/go-cose"

	"github.com/forestrie/go-mst/page"
)

// RootState is the payload a root signature commits to: the tree's root
// hash, an optional subject identifying what the root belongs to, and the
// unix-millisecond time it was signed — enough context for the signature to
// be meaningful on its own, the way massifs.MMRState carries MMR size and
// timestamp alongside the peaks it seals.
type RootState struct {
	Root      []byte `cbor:"1,keyasint"`
	Subject   string `cbor:"2,keyasint,omitempty"`
	Timestamp int64  `cbor:"3,keyasint"`
}

// RootSigner produces COSE_Sign1 messages over a RootState using ES256
// (ECDSA P-256 / SHA-256), the algorithm massifs.RootSigner's test signers
// use.
type RootSigner struct {
	keyIdentifier string
}

// NewRootSigner returns a RootSigner that tags produced messages with
// keyIdentifier, carried in the protected header per COSE convention (kid).
func NewRootSigner(keyIdentifier string) RootSigner {
	return RootSigner{keyIdentifier: keyIdentifier}
}

// Sign1 signs state with privateKey and returns the encoded COSE_Sign1
// message.
func (rs RootSigner) Sign1(privateKey *ecdsa.PrivateKey, state RootState) ([]byte, error) {
	if len(state.Root) != page.HashBytes {
		return nil, fmt.Errorf("mstsign: root must be %d bytes, got %d", page.HashBytes, len(state.Root))
	}

	signer, err := cose.NewSigner(cose.AlgorithmES256, privateKey)
	if err != nil {
		return nil, err
	}

	payload, err := cbor.Marshal(state)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelAlgorithm: cose.AlgorithmES256,
				cose.HeaderLabelKeyID:     []byte(rs.keyIdentifier),
			},
		},
		Payload: payload,
	}
	if err := msg.Sign(rand.Reader, nil, signer); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

// Verify checks a COSE_Sign1 message produced by Sign1 against publicKey
// and returns the RootState it commits to.
func Verify(publicKey *ecdsa.PublicKey, data []byte) (RootState, error) {
	verifier, err := cose.NewVerifier(cose.AlgorithmES256, publicKey)
	if err != nil {
		return RootState{}, err
	}

	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(data); err != nil {
		return RootState{}, err
	}
	if err := msg.Verify(nil, verifier); err != nil {
		return RootState{}, err
	}

	var state RootState
	if err := cbor.Unmarshal(msg.Payload, &state); err != nil {
		return RootState{}, err
	}
	return state, nil
}
