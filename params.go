package abv

import (
	"fmt"

	"github.com/abvote/abv/group"
)

// TotalBallotsKey is the reserved result key under which the total number of
// cast ballots is disclosed.
const TotalBallotsKey = "Wedpr_voting_total_ballots"

// g2Tag derives the randomness basepoint G2: an element with an unknown
// discrete logarithm relative to the generator G1.
const g2Tag = "abv-basepoint-g2"

// SystemParameters fix the public configuration of one election: the
// ordered candidate set, the poll point (the commitment and encryption base
// formed from the counting authorities' public shares) and the range proof
// bit width bounding every ballot value. Immutable for the life of an
// election.
type SystemParameters struct {
	Candidates []string `json:"candidates"`
	PollPoint  []byte   `json:"pollPoint"`
	RangeBits  int      `json:"rangeBits"`
}

// NewSystemParameters validates and assembles the parameters of an election.
func NewSystemParameters(candidates []string, pollPoint group.Element, rangeBits int) (*SystemParameters, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates: %w", ErrDecode)
	}
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c == "" || c == TotalBallotsKey {
			return nil, fmt.Errorf("reserved candidate name %q: %w", c, ErrDecode)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("duplicate candidate %q: %w", c, ErrDecode)
		}
		seen[c] = struct{}{}
	}
	if rangeBits < 1 || rangeBits > 64 {
		return nil, fmt.Errorf("range bit width %d: %w", rangeBits, ErrDecode)
	}
	point, err := pollPoint.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encode poll point: %w", ErrDecode)
	}
	return &SystemParameters{
		Candidates: append([]string(nil), candidates...),
		PollPoint:  point,
		RangeBits:  rangeBits,
	}, nil
}

// BasepointG2 returns the deterministic second basepoint of the protocol,
// used for the randomness-carrying ballot component and authority shares.
func BasepointG2(g group.Group) group.Element {
	return g.Derive(g2Tag)
}

// decodePoint recovers a group element from its canonical encoding, failing
// closed on malformed input.
func decodePoint(g group.Group, b []byte) (group.Element, error) {
	e := g.Element()
	if err := e.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("decode point: %w", ErrDecode)
	}
	return e, nil
}

// encodePoint returns the canonical encoding of a group element.
func encodePoint(e group.Element) []byte {
	b, _ := e.MarshalBinary()
	return b
}
