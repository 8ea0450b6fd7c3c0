package zkp

import (
	"encoding/json"
	"fmt"
)

// Proof records travel inside vote and count requests as JSON documents with
// base64 point fields. The helpers below are the standalone record codecs
// for callers that exchange proofs on their own.

func marshalRecord(v any) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalRecord(b []byte, v any, kind string) error {
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s record: %w", kind, err)
	}
	return nil
}

// EncodeFormatProof serializes a format proof record.
func EncodeFormatProof(p *FormatProof) ([]byte, error) { return marshalRecord(p) }

// DecodeFormatProof deserializes a format proof record.
func DecodeFormatProof(b []byte) (*FormatProof, error) {
	p := new(FormatProof)
	if err := unmarshalRecord(b, p, "format proof"); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeSumProof serializes a sum-relationship proof record.
func EncodeSumProof(p *SumProof) ([]byte, error) { return marshalRecord(p) }

// DecodeSumProof deserializes a sum-relationship proof record.
func DecodeSumProof(b []byte) (*SumProof, error) {
	p := new(SumProof)
	if err := unmarshalRecord(b, p, "sum proof"); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeEqualityProof serializes an equality proof record.
func EncodeEqualityProof(p *EqualityProof) ([]byte, error) { return marshalRecord(p) }

// DecodeEqualityProof deserializes an equality proof record.
func DecodeEqualityProof(b []byte) (*EqualityProof, error) {
	p := new(EqualityProof)
	if err := unmarshalRecord(b, p, "equality proof"); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeRangeProof serializes a batched range proof record.
func EncodeRangeProof(p *RangeProof) ([]byte, error) { return marshalRecord(p) }

// DecodeRangeProof deserializes a batched range proof record.
func DecodeRangeProof(b []byte) (*RangeProof, error) {
	p := new(RangeProof)
	if err := unmarshalRecord(b, p, "range proof"); err != nil {
		return nil, err
	}
	return p, nil
}
