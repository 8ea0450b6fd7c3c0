package group

import (
	"math/big"
	"testing"
)

var allGroups = []Group{
	Ristretto255(),
	P256(),
}

func TestGroup(t *testing.T) {
	const testTimes = 1 << 7
	for _, g := range allGroups {
		n := g.Name()
		t.Run(n+"/Neg", func(tt *testing.T) { testNeg(tt, testTimes, g) })
		t.Run(n+"/Order", func(tt *testing.T) { testOrder(tt, testTimes, g) })
		t.Run(n+"/Set", func(tt *testing.T) { testSet(tt, g) })
		t.Run(n+"/MarshalBinary", func(tt *testing.T) { testMarshalBinary(tt, testTimes, g) })
	}
}

func testNeg(t *testing.T, testTimes int, g Group) {
	Q := g.Element()
	for i := 0; i < testTimes; i++ {
		P := g.Random()
		Q.Set(P)
		Q.Subtract(Q, P)
		got := Q.IsIdentity()
		want := true
		if got != want {
			t.Error("testNeg | Got:", got, "Wanted:", want)
		}
	}
}

func testOrder(t *testing.T, testTimes int, g Group) {
	I := g.Identity()
	Q := g.Element()
	nMinusOne := new(big.Int).Sub(g.N(), big.NewInt(1))
	for i := 0; i < testTimes; i++ {
		P := g.Random()

		Q.Scale(P, nMinusOne)
		got := Q.Add(Q, P)
		want := I
		if !got.IsEqual(want) {
			t.Error("testOrder | Got:", got, "Wanted:", want)
		}
	}
}

func testSet(t *testing.T, g Group) {
	P := g.Random()
	Q := g.Element()
	Q.Set(P)
	if !Q.IsEqual(P) {
		t.Error("testSet | Got:", false, "Wanted:", true)
	}
}

func testMarshalBinary(t *testing.T, testTimes int, g Group) {
	I := g.Identity()
	got, err := I.MarshalBinary()
	if err != nil {
		t.Error("testMarshalBinary | I:", I)
	}

	II := g.Element()
	err = II.UnmarshalBinary(got)
	if err != nil || !I.IsEqual(II) {
		t.Error("testMarshalBinary | I:", I, "II:", II)
	}

	gotEl := g.Element()
	for i := 0; i < testTimes; i++ {
		x := g.Random()
		enc, err := x.MarshalBinary()
		if err != nil {
			t.Error(err)
		}

		err = gotEl.UnmarshalBinary(enc)
		if err != nil || !x.IsEqual(gotEl) {
			t.Error("testMarshalBinary | Got:", gotEl, "Wanted:", x)
		}
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	for _, g := range allGroups {
		e := g.Element()
		if err := e.UnmarshalBinary(nil); err == nil {
			t.Errorf("%s: empty encoding accepted", g.Name())
		}
		if err := e.UnmarshalBinary([]byte{0xff}); err == nil {
			t.Errorf("%s: short encoding accepted", g.Name())
		}
	}
}

func TestDerive(t *testing.T) {
	for _, g := range allGroups {
		a := g.Derive("tag-a")
		b := g.Derive("tag-b")
		aa := g.Derive("tag-a")
		if !a.IsEqual(aa) {
			t.Errorf("%s: derivation is not deterministic", g.Name())
		}
		if a.IsEqual(b) {
			t.Errorf("%s: distinct tags derived the same element", g.Name())
		}
		if a.IsIdentity() || a.IsEqual(g.Generator()) {
			t.Errorf("%s: derived element is trivial", g.Name())
		}
	}
}

func TestMath(t *testing.T) {
	g := Ristretto255()

	a := g.Element().BaseScale(big.NewInt(2))
	b := g.Element().Add(g.Generator(), g.Generator())
	if !a.IsEqual(b) {
		t.Error("doubling error")
	}

	a = g.Element().Add(a, g.Generator())
	b = g.Element().BaseScale(big.NewInt(3))
	if !a.IsEqual(b) {
		t.Error("error in adding or scaling")
	}

	e := g.Identity()
	r1 := g.Random()
	r2 := g.Random()
	e.Add(r1, r2)
	e.Subtract(e, r2)
	if !e.IsEqual(r1) {
		t.Error("error in subtracting")
	}
}
