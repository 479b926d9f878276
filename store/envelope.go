package store

import "github.com/fxamacker/cbor/v2"

func marshalEnvelope(entries []snapshotEntry) ([]byte, error) {
	return cbor.Marshal(entries)
}

func unmarshalEnvelope(data []byte) ([]snapshotEntry, error) {
	var entries []snapshotEntry
	if err := cbor.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
