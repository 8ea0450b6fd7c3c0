package zkp

import (
	"errors"
	"math/big"

	"github.com/abvote/abv/group"
)

// EqualityProof is a Chaum-Pedersen proof of discrete logarithm equality:
// share = x*gen2 and part = x*target for the same secret x. Counting
// authorities use it to show a partial decryption was derived from the same
// secret share as their public commitment.
type EqualityProof struct {
	T1 []byte   `json:"t1"`
	T2 []byte   `json:"t2"`
	Z  *big.Int `json:"z"`
}

// ProveEquality proves that x links the public share x*gen2 with the partial
// decryption x*target.
func ProveEquality(g group.Group, x *big.Int, gen2, target group.Element) (*EqualityProof, error) {
	n := g.N()

	w, err := randScalar(n)
	if err != nil {
		return nil, err
	}

	share := g.Element().Scale(gen2, x)
	part := g.Element().Scale(target, x)

	T1 := g.Element().Scale(gen2, w)
	T2 := g.Element().Scale(target, w)

	e := challenge(n, labelEquality,
		encode(gen2), encode(target),
		encode(share), encode(part), encode(T1), encode(T2))

	return &EqualityProof{
		T1: encode(T1),
		T2: encode(T2),
		Z:  mulAddMod(n, w, e, x),
	}, nil
}

// VerifyEqualityRelationship checks that the partial decryption part was
// derived from the secret behind share, relative to target. It returns an
// error only when the proof record cannot be decoded.
func VerifyEqualityRelationship(g group.Group, share, part group.Element,
	proof *EqualityProof, gen2, target group.Element) (bool, error) {
	if proof == nil || proof.Z == nil {
		return false, errors.New("equality proof: missing fields")
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
	e := challenge(n, labelEquality,
		encode(gen2), encode(target),
		encode(share), encode(part), encode(T1), encode(T2))

	// z*gen2 == T1 + e*share
	left := g.Element().Scale(gen2, proof.Z)
	right := g.Element().Scale(share, e)
	right.Add(T1, right)
	if !left.IsEqual(right) {
		return false, nil
	}

	// z*target == T2 + e*part
	left = g.Element().Scale(target, proof.Z)
	right = g.Element().Scale(part, e)
	right.Add(T2, right)
	return left.IsEqual(right), nil
}
