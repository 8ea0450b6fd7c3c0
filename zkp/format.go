package zkp

import (
	"errors"
	"math/big"

	"github.com/abvote/abv/group"
)

// FormatProof attests that a ballot ciphertext (c1, c2) is consistently
// formed: c1 = v*gen1 + r*base and c2 = r*gen2 for the same (v, r).
type FormatProof struct {
	T1 []byte   `json:"t1"`
	T2 []byte   `json:"t2"`
	Z1 *big.Int `json:"z1"`
	Z2 *big.Int `json:"z2"`
}

// ProveFormat proves that the ciphertext of the value v under randomness r
// is consistently formed. gen1 is the value base, gen2 the randomness base,
// and base the election's poll point.
func ProveFormat(g group.Group, v, r *big.Int, gen1, gen2, base group.Element) (*FormatProof, error) {
	n := g.N()

	a, err := randScalar(n)
	if err != nil {
		return nil, err
	}
	b, err := randScalar(n)
	if err != nil {
		return nil, err
	}

	c1 := commit2(g, v, gen1, r, base)
	c2 := g.Element().Scale(gen2, r)

	T1 := commit2(g, a, gen1, b, base)
	T2 := g.Element().Scale(gen2, b)

	e := challenge(n, labelFormat,
		encode(gen1), encode(gen2), encode(base),
		encode(c1), encode(c2), encode(T1), encode(T2))

	return &FormatProof{
		T1: encode(T1),
		T2: encode(T2),
		Z1: mulAddMod(n, a, e, v),
		Z2: mulAddMod(n, b, e, r),
	}, nil
}

// VerifyFormatProof checks a format proof against the ciphertext (c1, c2).
// It returns an error only when the proof record cannot be decoded.
func VerifyFormatProof(g group.Group, c1, c2 group.Element, proof *FormatProof,
	gen1, gen2, base group.Element) (bool, error) {
	if proof == nil || proof.Z1 == nil || proof.Z2 == nil {
		return false, errors.New("format proof: missing fields")
	}

	T1, err := decode(g, proof.T1)
	if err != nil {
		return false, err
	}
	T2, err := decode(g, proof.T2)
	if err != nil {
		return false, err
	}

	n := g.N()
	e := challenge(n, labelFormat,
		encode(gen1), encode(gen2), encode(base),
		encode(c1), encode(c2), encode(T1), encode(T2))

	// z1*gen1 + z2*base == T1 + e*c1
	left := commit2(g, proof.Z1, gen1, proof.Z2, base)
	right := g.Element().Scale(c1, e)
	right.Add(T1, right)
	if !left.IsEqual(right) {
		return false, nil
	}

	// z2*gen2 == T2 + e*c2
	left = g.Element().Scale(gen2, proof.Z2)
	right = g.Element().Scale(c2, e)
	right.Add(T2, right)
	return left.IsEqual(right), nil
}
