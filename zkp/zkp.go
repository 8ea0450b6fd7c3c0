// Package zkp implements the zero-knowledge proofs used by the bounded
// voting protocol: a format proof tying the two components of a ballot
// ciphertext to the same opening, a sum-relationship proof for the ballot
// budget, an equality (Chaum-Pedersen) proof for partial decryptions, and a
// batched bit-decomposition range proof for ballot values.
//
// Every proof kind comes as a Prove/Verify pair of sigma protocols made
// non-interactive with the Fiat-Shamir transform. Verifiers return false for
// a well-formed but invalid proof, and an error only when the proof record
// itself cannot be decoded into group elements.
package zkp

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/abvote/abv/group"
)

// Domain separation labels for the Fiat-Shamir transcripts.
const (
	labelFormat   = "abv-zkp-format-v1"
	labelSum      = "abv-zkp-sum-v1"
	labelEquality = "abv-zkp-equality-v1"
	labelRange    = "abv-zkp-range-v1"
)

// challenge derives a Fiat-Shamir challenge scalar from the transcript
// parts, reduced modulo the group order n.
func challenge(n *big.Int, label string, parts ...[]byte) *big.Int {
	data := make([][]byte, 0, len(parts)+1)
	data = append(data, []byte(label))
	data = append(data, parts...)
	digest := ethcrypto.Keccak256(data...)
	e := new(big.Int).SetBytes(digest)
	return e.Mod(e, n)
}

// randScalar samples a uniform scalar in [0, n).
func randScalar(n *big.Int) (*big.Int, error) {
	s, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil, fmt.Errorf("sample scalar: %w", err)
	}
	return s, nil
}

// encode returns the canonical encoding of an element for transcript use.
func encode(e group.Element) []byte {
	b, _ := e.MarshalBinary()
	return b
}

// decode recovers an element from its canonical encoding, failing closed.
func decode(g group.Group, b []byte) (group.Element, error) {
	e := g.Element()
	if err := e.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("decode group element: %w", err)
	}
	return e, nil
}

// index encodes a transcript position counter.
func index(i int) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(i))
	return buf[:]
}

// addMod returns (a + b) mod n.
func addMod(n, a, b *big.Int) *big.Int {
	s := new(big.Int).Add(a, b)
	return s.Mod(s, n)
}

// subMod returns (a - b) mod n.
func subMod(n, a, b *big.Int) *big.Int {
	s := new(big.Int).Sub(a, b)
	return s.Mod(s, n)
}

// mulAddMod returns (a + e*b) mod n, the standard sigma protocol response.
func mulAddMod(n, a, e, b *big.Int) *big.Int {
	s := new(big.Int).Mul(e, b)
	s.Add(s, a)
	return s.Mod(s, n)
}

// commit2 returns a*A + b*B.
func commit2(g group.Group, a *big.Int, A group.Element, b *big.Int, B group.Element) group.Element {
	left := g.Element().Scale(A, a)
	right := g.Element().Scale(B, b)
	return left.Add(left, right)
}
