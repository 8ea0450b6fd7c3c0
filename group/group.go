// Package group provides a prime-order group abstraction for the voting
// protocol. All ballots, proofs and decryption shares live in one such group,
// fixed per election.
package group

import (
	"encoding"
	"math/big"
)

// Element represents an element of a prime-order group.
//
// Operations set the receiver to the result and return it, so calls can be
// chained. Implementations must provide a canonical binary encoding, and
// UnmarshalBinary must reject any byte string that is not the canonical
// encoding of a group element.
type Element interface {
	// Add sets the receiver to X + Y, and returns it.
	Add(X, Y Element) Element
	// Subtract sets the receiver to X - Y, and returns it.
	Subtract(X, Y Element) Element
	// Negate sets the receiver to -X, and returns it.
	Negate(X Element) Element
	// Scale performs the group operation s times with X,
	// sets the receiver to the result, and returns it.
	Scale(X Element, s *big.Int) Element
	// BaseScale performs the group operation s times with the
	// group's generator, sets the receiver to the result, and returns it.
	BaseScale(s *big.Int) Element
	// Set sets the receiver to X, and returns it.
	Set(X Element) Element
	// IsEqual returns true if the receiver is equal to X.
	IsEqual(X Element) bool
	// IsIdentity returns true if the receiver is the group's
	// identity element.
	IsIdentity() bool
	// GroupOrder returns the number of elements in the group.
	GroupOrder() *big.Int

	// BinaryMarshaler returns the canonical byte representation
	// of the element.
	encoding.BinaryMarshaler
	// BinaryUnmarshaler recovers an element from its canonical byte
	// representation. It fails on any malformed encoding.
	encoding.BinaryUnmarshaler
}

// Group represents a prime-order group.
type Group interface {
	// Name returns the name of the group.
	Name() string

	// Element creates a new group element.
	Element() Element
	// Generator creates a group element set to the group's generator.
	Generator() Element
	// Identity creates a group element set to the group's identity element.
	Identity() Element

	// Random returns a uniformly sampled element of the group.
	Random() Element

	// Derive hashes the tag to a group element whose discrete logarithm
	// with respect to the generator is not known to anyone.
	Derive(tag string) Element

	// N returns the prime order of the group.
	N() *big.Int
}
