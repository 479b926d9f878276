package page

import "github.com/fxamacker/cbor/v2"

// wirePage and wireEntry are the CBOR-friendly shadow of Page/Entry: CBOR has
// no notion of Go's *ID, so optional hashes are carried as a present/absent
// byte slice instead.
type wireEntry struct {
	Key   []byte `cbor:"1,keyasint"`
	Value []byte `cbor:"2,keyasint"`
	Next  []byte `cbor:"3,keyasint,omitempty"`
}

type wirePage struct {
	Level uint32      `cbor:"1,keyasint"`
	Low   []byte      `cbor:"2,keyasint,omitempty"`
	List  []wireEntry `cbor:"3,keyasint"`
}

// Codec encodes and decodes pages deterministically, the way
// massifs.NewCBORCodec wraps fxamacker/cbor with a fixed option set so that
// two encoders of the same logical value always produce the same bytes. This
// is not the page hash contract (Hash operates directly on the raw field
// bytes) — it is used for debug export/import of whole page graphs.
//
// Decoding cannot recover the original Value's concrete type: it only saw
// AsBytes' output on the wire. Unmarshal reconstructs each entry's value as a
// BytesValue, which reproduces the same Hash (Hash only ever calls AsBytes)
// but loses any richer Refs() the original Value implementation carried.
// Callers that need those refs preserved across export/import must recompute
// them from application state after import.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCodec builds a Codec with canonical (deterministic) encode options and
// a conservative, tag-forbidding decode option set.
func NewCodec() (Codec, error) {
	encOpts := cbor.CanonicalEncOptions()
	enc, err := encOpts.EncMode()
	if err != nil {
		return Codec{}, err
	}
	decOpts := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
		TagsMd:    cbor.TagsForbidden,
	}
	dec, err := decOpts.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

// Marshal renders p as deterministic CBOR.
func (c Codec) Marshal(p Page) ([]byte, error) {
	w := wirePage{Level: p.Level, List: make([]wireEntry, len(p.List))}
	if p.Low != nil {
		low := *p.Low
		w.Low = low[:]
	}
	for i, e := range p.List {
		we := wireEntry{Key: e.Key, Value: e.Value.AsBytes()}
		if e.Next != nil {
			next := *e.Next
			we.Next = next[:]
		}
		w.List[i] = we
	}
	return c.enc.Marshal(w)
}

// Unmarshal parses CBOR bytes produced by Marshal back into a Page.
func (c Codec) Unmarshal(data []byte) (Page, error) {
	var w wirePage
	if err := c.dec.Unmarshal(data, &w); err != nil {
		return Page{}, err
	}
	p := Page{Level: w.Level, List: make([]Entry, len(w.List))}
	if len(w.Low) > 0 {
		var id ID
		copy(id[:], w.Low)
		p.Low = &id
	}
	for i, we := range w.List {
		e := Entry{Key: we.Key, Value: BytesValue(we.Value)}
		if len(we.Next) > 0 {
			var id ID
			copy(id[:], we.Next)
			e.Next = &id
		}
		p.List[i] = e
	}
	return p, nil
}
