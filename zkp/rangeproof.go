package zkp

import (
	"errors"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/abvote/abv/group"
	"github.com/abvote/abv/util"
)

// RangeProof attests that every commitment in a batch opens to a value in
// [0, 2^bits). The batch length must be a power of two; callers pad with the
// group identity, which opens to (0, 0) and therefore proves trivially.
//
// Each committed value is split into bit commitments. A disjunctive
// Chaum-Pedersen proof shows every bit commitment opens to 0 or 1, and the
// bit commitments must recompose exactly to the value commitment, which ties
// the bit blindings back to the original blinding.
type RangeProof struct {
	Values []ValueRangeProof `json:"values"`
}

// ValueRangeProof carries the per-bit commitments and proofs of one batch
// entry.
type ValueRangeProof struct {
	BitCommitments [][]byte   `json:"bitCommitments"`
	BitProofs      []BitProof `json:"bitProofs"`
}

// BitProof is a disjunctive proof that a commitment B opens to 0 or 1 over
// (gen1, base): either B = s*base or B - gen1 = s*base.
type BitProof struct {
	T0 []byte   `json:"t0"`
	T1 []byte   `json:"t1"`
	E0 *big.Int `json:"e0"`
	E1 *big.Int `json:"e1"`
	Z0 *big.Int `json:"z0"`
	Z1 *big.Int `json:"z1"`
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// batchContext binds the whole commitment batch and the bases into every
// per-bit challenge.
func batchContext(gen1, base group.Element, commitments []group.Element) []byte {
	parts := make([][]byte, 0, len(commitments)+3)
	parts = append(parts, []byte(labelRange), encode(gen1), encode(base))
	for _, c := range commitments {
		parts = append(parts, encode(c))
	}
	return ethcrypto.Keccak256(parts...)
}

// ProveRangeBatch proves that each value lies in [0, 2^bits), with
// commitments value_j*gen1 + blind_j*base. The batch length must be a power
// of two; pad values and blindings with zeros beforehand.
func ProveRangeBatch(g group.Group, values, blinds []*big.Int, bits int,
	gen1, base group.Element) (*RangeProof, error) {
	if len(values) == 0 || len(values) != len(blinds) {
		return nil, errors.New("range proof: mismatched batch")
	}
	if !isPowerOfTwo(len(values)) {
		return nil, errors.New("range proof: batch length must be a power of two")
	}
	if bits < 1 || bits > 64 {
		return nil, errors.New("range proof: unsupported bit width")
	}

	commitments := make([]group.Element, len(values))
	for j := range values {
		commitments[j] = commit2(g, values[j], gen1, blinds[j], base)
	}
	ctx := batchContext(gen1, base, commitments)

	proof := &RangeProof{Values: make([]ValueRangeProof, len(values))}
	for j := range values {
		vp, err := proveValue(g, values[j], blinds[j], bits, gen1, base, ctx, j)
		if err != nil {
			return nil, err
		}
		proof.Values[j] = *vp
	}
	return proof, nil
}

func proveValue(g group.Group, value, blind *big.Int, bits int,
	gen1, base group.Element, ctx []byte, j int) (*ValueRangeProof, error) {
	n := g.N()
	digits := util.Decompose(value, 2, bits)

	// Pick bit blindings so that sum(2^i * s_i) = blind: the recomposition
	// check then holds exactly, with no extra consistency proof needed.
	blinds := make([]*big.Int, bits)
	acc := new(big.Int)
	for i := bits - 1; i >= 1; i-- {
		s, err := randScalar(n)
		if err != nil {
			return nil, err
		}
		blinds[i] = s
		acc.Add(acc, new(big.Int).Lsh(s, uint(i)))
	}
	blinds[0] = subMod(n, blind, acc.Mod(acc, n))

	vp := &ValueRangeProof{
		BitCommitments: make([][]byte, bits),
		BitProofs:      make([]BitProof, bits),
	}
	for i := 0; i < bits; i++ {
		B := commit2(g, big.NewInt(digits[i]), gen1, blinds[i], base)
		vp.BitCommitments[i] = encode(B)

		bp, err := proveBit(g, digits[i] == 1, blinds[i], B, gen1, base, ctx, j, i)
		if err != nil {
			return nil, err
		}
		vp.BitProofs[i] = *bp
	}
	return vp, nil
}

// proveBit builds the 0-or-1 disjunction, simulating the branch that does
// not hold.
func proveBit(g group.Group, bitSet bool, s *big.Int, B, gen1, base group.Element,
	ctx []byte, j, i int) (*BitProof, error) {
	n := g.N()

	w, err := randScalar(n)
	if err != nil {
		return nil, err
	}
	eSim, err := randScalar(n)
	if err != nil {
		return nil, err
	}
	zSim, err := randScalar(n)
	if err != nil {
		return nil, err
	}

	shifted := g.Element().Subtract(B, gen1)

	var t0, t1 group.Element
	if bitSet {
		// Real proof for B - gen1 = s*base, simulate the zero branch.
		t1 = g.Element().Scale(base, w)
		t0 = g.Element().Scale(base, zSim)
		t0.Subtract(t0, g.Element().Scale(B, eSim))
	} else {
		// Real proof for B = s*base, simulate the one branch.
		t0 = g.Element().Scale(base, w)
		t1 = g.Element().Scale(base, zSim)
		t1.Subtract(t1, g.Element().Scale(shifted, eSim))
	}

	e := challenge(n, labelRange, ctx, index(j), index(i),
		encode(B), encode(t0), encode(t1))

	bp := &BitProof{T0: encode(t0), T1: encode(t1)}
	if bitSet {
		bp.E0 = eSim
		bp.Z0 = zSim
		bp.E1 = subMod(n, e, eSim)
		bp.Z1 = mulAddMod(n, w, bp.E1, s)
	} else {
		bp.E1 = eSim
		bp.Z1 = zSim
		bp.E0 = subMod(n, e, eSim)
		bp.Z0 = mulAddMod(n, w, bp.E0, s)
	}
	return bp, nil
}

// VerifyRangeBatch checks a batched range proof over the commitment vector
// against the configured bit width. The batch length must be a power of two.
// It returns an error only when the proof record cannot be decoded.
func VerifyRangeBatch(g group.Group, commitments []group.Element, proof *RangeProof,
	bits int, gen1, base group.Element) (bool, error) {
	if proof == nil {
		return false, errors.New("range proof: missing proof")
	}
	if !isPowerOfTwo(len(commitments)) || len(proof.Values) != len(commitments) {
		return false, nil
	}
	if bits < 1 || bits > 64 {
		return false, nil
	}

	ctx := batchContext(gen1, base, commitments)
	for j, c := range commitments {
		ok, err := verifyValue(g, c, &proof.Values[j], bits, gen1, base, ctx, j)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func verifyValue(g group.Group, commitment group.Element, vp *ValueRangeProof,
	bits int, gen1, base group.Element, ctx []byte, j int) (bool, error) {
	if len(vp.BitCommitments) != bits || len(vp.BitProofs) != bits {
		return false, nil
	}

	sum := g.Identity()
	for i := 0; i < bits; i++ {
		B, err := decode(g, vp.BitCommitments[i])
		if err != nil {
			return false, err
		}
		sum.Add(sum, g.Element().Scale(B, new(big.Int).Lsh(big.NewInt(1), uint(i))))

		ok, err := verifyBit(g, B, &vp.BitProofs[i], gen1, base, ctx, j, i)
		if err != nil || !ok {
			return false, err
		}
	}

	// The bit commitments must recompose to the committed value exactly.
	return sum.IsEqual(commitment), nil
}

func verifyBit(g group.Group, B group.Element, bp *BitProof,
	gen1, base group.Element, ctx []byte, j, i int) (bool, error) {
	if bp.E0 == nil || bp.E1 == nil || bp.Z0 == nil || bp.Z1 == nil {
		return false, errors.New("range proof: missing bit proof fields")
	}

	t0, err := decode(g, bp.T0)
	if err != nil {
		return false, err
	}
	t1, err := decode(g, bp.T1)
	if err != nil {
		return false, err
	}

	n := g.N()
	e := challenge(n, labelRange, ctx, index(j), index(i),
		encode(B), encode(t0), encode(t1))
	if addMod(n, bp.E0, bp.E1).Cmp(e) != 0 {
		return false, nil
	}

	// z0*base == t0 + e0*B
	left := g.Element().Scale(base, bp.Z0)
	right := g.Element().Scale(B, bp.E0)
	right.Add(t0, right)
	if !left.IsEqual(right) {
		return false, nil
	}

	// z1*base == t1 + e1*(B - gen1)
	shifted := g.Element().Subtract(B, gen1)
	left = g.Element().Scale(base, bp.Z1)
	right = g.Element().Scale(shifted, bp.E1)
	right.Add(t1, right)
	return left.IsEqual(right), nil
}
