package zkp

import (
	"errors"
	"math/big"

	"github.com/abvote/abv/group"
)

// SumProof attests that three commitments open consistently as a sum:
// cSum = v1*gen1 + r1*base, cRest = v2*gen1 + r2*base and
// cBlank = (v1+v2)*gen1 + (r1+r2)*base. For ballots this is the conservation
// of the voting budget: votes cast plus the unused rest equals the blank
// ballot.
type SumProof struct {
	T1  []byte   `json:"t1"`
	T2  []byte   `json:"t2"`
	ZV1 *big.Int `json:"zv1"`
	ZR1 *big.Int `json:"zr1"`
	ZV2 *big.Int `json:"zv2"`
	ZR2 *big.Int `json:"zr2"`
}

// ProveSum proves the sum relationship for openings (v1, r1) of the voted
// sum and (v2, r2) of the rest commitment, with the blank commitment opening
// to their component-wise sums.
func ProveSum(g group.Group, v1, r1, v2, r2 *big.Int, gen1, base group.Element) (*SumProof, error) {
	n := g.N()

	a1, err := randScalar(n)
	if err != nil {
		return nil, err
	}
	b1, err := randScalar(n)
	if err != nil {
		return nil, err
	}
	a2, err := randScalar(n)
	if err != nil {
		return nil, err
	}
	b2, err := randScalar(n)
	if err != nil {
		return nil, err
	}

	cSum := commit2(g, v1, gen1, r1, base)
	cRest := commit2(g, v2, gen1, r2, base)
	cBlank := commit2(g, addMod(n, v1, v2), gen1, addMod(n, r1, r2), base)

	T1 := commit2(g, a1, gen1, b1, base)
	T2 := commit2(g, a2, gen1, b2, base)

	e := challenge(n, labelSum,
		encode(gen1), encode(base),
		encode(cSum), encode(cRest), encode(cBlank),
		encode(T1), encode(T2))

	return &SumProof{
		T1:  encode(T1),
		T2:  encode(T2),
		ZV1: mulAddMod(n, a1, e, v1),
		ZR1: mulAddMod(n, b1, e, r1),
		ZV2: mulAddMod(n, a2, e, v2),
		ZR2: mulAddMod(n, b2, e, r2),
	}, nil
}

// VerifySumRelationship checks the sum relationship between the voted sum,
// rest and blank commitments. It returns an error only when the proof record
// cannot be decoded.
func VerifySumRelationship(g group.Group, cSum, cRest, cBlank group.Element,
	proof *SumProof, gen1, base group.Element) (bool, error) {
	if proof == nil || proof.ZV1 == nil || proof.ZR1 == nil ||
		proof.ZV2 == nil || proof.ZR2 == nil {
		return false, errors.New("sum proof: missing fields")
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
	e := challenge(n, labelSum,
		encode(gen1), encode(base),
		encode(cSum), encode(cRest), encode(cBlank),
		encode(T1), encode(T2))

	// zv1*gen1 + zr1*base == T1 + e*cSum
	left := commit2(g, proof.ZV1, gen1, proof.ZR1, base)
	right := g.Element().Scale(cSum, e)
	right.Add(T1, right)
	if !left.IsEqual(right) {
		return false, nil
	}

	// zv2*gen1 + zr2*base == T2 + e*cRest
	left = commit2(g, proof.ZV2, gen1, proof.ZR2, base)
	right = g.Element().Scale(cRest, e)
	right.Add(T2, right)
	if !left.IsEqual(right) {
		return false, nil
	}

	// (zv1+zv2)*gen1 + (zr1+zr2)*base == T1 + T2 + e*cBlank
	// Together with the first two checks this pins cBlank = cSum + cRest.
	left = commit2(g,
		addMod(n, proof.ZV1, proof.ZV2), gen1,
		addMod(n, proof.ZR1, proof.ZR2), base)
	right = g.Element().Scale(cBlank, e)
	right.Add(right, T1)
	right.Add(right, T2)
	return left.IsEqual(right), nil
}
