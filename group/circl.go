package group

import (
	"crypto/rand"
	"math/big"

	"github.com/cloudflare/circl/group"
)

// circlGroup adapts a circl prime-order group to the Group interface.
type circlGroup struct {
	group      group.Group
	curveOrder *big.Int
	name       string
}

type circlPoint struct {
	curve *circlGroup
	val   group.Element
}

func (g *circlGroup) Name() string {
	return g.name
}

func (g *circlGroup) N() *big.Int {
	return g.curveOrder
}

func (g *circlGroup) Generator() Element {
	return &circlPoint{
		curve: g,
		val:   g.group.Generator(),
	}
}

func (g *circlGroup) Identity() Element {
	return &circlPoint{
		curve: g,
		val:   g.group.Identity(),
	}
}

func (g *circlGroup) Random() Element {
	return &circlPoint{
		curve: g,
		val:   g.group.RandomElement(rand.Reader),
	}
}

func (g *circlGroup) Element() Element {
	return &circlPoint{
		curve: g,
		val:   g.group.NewElement(),
	}
}

func (g *circlGroup) Derive(tag string) Element {
	dst := []byte("abv-derive-" + g.name)
	return &circlPoint{
		curve: g,
		val:   g.group.HashToElement([]byte(tag), dst),
	}
}

func (e *circlPoint) check(a Element) *circlPoint {
	ca, ok := a.(*circlPoint)
	if !ok || ca.curve.name != e.curve.name {
		panic("incompatible group element type")
	}
	return ca
}

func (e *circlPoint) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = e.curve.group.NewElement().Add(ca.val, cb.val)
	return e
}

func (e *circlPoint) Subtract(a Element, b Element) Element {
	tmp := e.curve.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *circlPoint) Negate(a Element) Element {
	ca := e.check(a)
	e.val = e.curve.group.NewElement().Neg(ca.val)
	return e
}

func (e *circlPoint) Scale(x Element, s *big.Int) Element {
	cx := e.check(x)
	scalar := e.curve.group.NewScalar()
	e.val = e.curve.group.NewElement().Mul(cx.val, scalar.SetBigInt(s))
	return e
}

func (e *circlPoint) BaseScale(s *big.Int) Element {
	scalar := e.curve.group.NewScalar()
	e.val = e.curve.group.NewElement().MulGen(scalar.SetBigInt(s))
	return e
}

func (e *circlPoint) Set(x Element) Element {
	cx := e.check(x)
	e.val = e.curve.group.NewElement().Set(cx.val)
	return e
}

func (e *circlPoint) IsEqual(b Element) bool {
	cb := e.check(b)
	return e.val.IsEqual(cb.val)
}

func (e *circlPoint) IsIdentity() bool {
	return e.val.IsIdentity()
}

func (e *circlPoint) GroupOrder() *big.Int {
	return e.curve.curveOrder
}

func (e *circlPoint) MarshalBinary() ([]byte, error) {
	return e.val.MarshalBinary()
}

func (e *circlPoint) UnmarshalBinary(data []byte) error {
	val := e.curve.group.NewElement()
	if err := val.UnmarshalBinary(data); err != nil {
		return err
	}
	e.val = val
	return nil
}

// Ristretto255 returns the ristretto255 group, the default ballot group of
// the protocol.
func Ristretto255() Group {
	n, _ := new(big.Int).SetString(
		"1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

	return &circlGroup{
		group:      group.Ristretto255,
		curveOrder: n,
		name:       "ristretto255",
	}
}

// P256 returns the NIST P-256 group.
func P256() Group {
	n, _ := new(big.Int).SetString(
		"ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)

	return &circlGroup{
		group:      group.P256,
		curveOrder: n,
		name:       "P-256",
	}
}
