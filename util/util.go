package util

import (
	"math/big"

	"github.com/abvote/abv/group"
)

// Decompose returns the first l digits of x in base u, least significant
// first, such that x = sum(digit_i * u^i) whenever x fits in l digits.
func Decompose(x *big.Int, u int64, l int) []int64 {
	result := make([]int64, l)
	base := big.NewInt(u)

	rest := new(big.Int).Set(x)
	for i := 0; i < l; i++ {
		result[i] = new(big.Int).Mod(rest, base).Int64()
		rest.Div(rest, base)
	}

	return result
}

// PedersenCommit commits to the value x with randomness r, over the value
// base (the group generator) and the blinding base h.
func PedersenCommit(g group.Group, x, r *big.Int, h group.Element) group.Element {
	C := g.Element().BaseScale(x)
	Hr := g.Element().Scale(h, r)
	return C.Add(C, Hr)
}
