package abv

import (
	"encoding/json"
	"fmt"
)

// Records are exchanged as JSON documents with base64 byte fields. Decoding
// only checks document structure here; group elements and proofs stay as
// bytes and fail closed inside the verifiers.

func decodeRecord(b []byte, v any, kind string) error {
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %v: %w", kind, err, ErrDecode)
	}
	return nil
}

// EncodeSystemParameters serializes election parameters.
func EncodeSystemParameters(p *SystemParameters) ([]byte, error) {
	return json.Marshal(p)
}

// DecodeSystemParameters deserializes election parameters.
func DecodeSystemParameters(b []byte) (*SystemParameters, error) {
	p := new(SystemParameters)
	if err := decodeRecord(b, p, "system parameters"); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeVoteRequest serializes a vote request.
func EncodeVoteRequest(r *VoteRequest) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeVoteRequest deserializes a vote request.
func DecodeVoteRequest(b []byte) (*VoteRequest, error) {
	r := new(VoteRequest)
	if err := decodeRecord(b, r, "vote request"); err != nil {
		return nil, err
	}
	return r, nil
}

// EncodeVoteStorage serializes a ballot set or tally.
func EncodeVoteStorage(v *VoteStorage) ([]byte, error) {
	return json.Marshal(v)
}

// DecodeVoteStorage deserializes a ballot set or tally.
func DecodeVoteStorage(b []byte) (*VoteStorage, error) {
	v := new(VoteStorage)
	if err := decodeRecord(b, v, "vote storage"); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeDecryptedResultPart serializes an authority's partial decryptions or
// the combined sum.
func EncodeDecryptedResultPart(d *DecryptedResultPartStorage) ([]byte, error) {
	return json.Marshal(d)
}

// DecodeDecryptedResultPart deserializes partial decryptions.
func DecodeDecryptedResultPart(b []byte) (*DecryptedResultPartStorage, error) {
	d := new(DecryptedResultPartStorage)
	if err := decodeRecord(b, d, "decrypted result part"); err != nil {
		return nil, err
	}
	return d, nil
}

// EncodeVoteResult serializes a disclosed result.
func EncodeVoteResult(r *VoteResultStorage) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeVoteResult deserializes a disclosed result.
func DecodeVoteResult(b []byte) (*VoteResultStorage, error) {
	r := new(VoteResultStorage)
	if err := decodeRecord(b, r, "vote result"); err != nil {
		return nil, err
	}
	return r, nil
}
