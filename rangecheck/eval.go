package rangecheck

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
)

// EvalGate evaluates the product gate polynomial
//
//	v · (1 − v) · (2 − v) · … · (bound−1 − v)  (mod modulus)
//
// outside the circuit. The result is zero exactly when v mod modulus is one
// of 0, …, bound−1. It exists for diagnostics: the proving path never calls
// it, since soundness is enforced by the in-circuit constraint alone.
func EvalGate(v *big.Int, bound uint64, modulus *big.Int) *big.Int {
	acc := new(big.Int).Mod(v, modulus)
	term := new(big.Int)
	for i := uint64(1); i < bound; i++ {
		term.SetUint64(i)
		term.Sub(term, v)
		acc.Mul(acc, term)
		acc.Mod(acc, modulus)
	}
	return acc
}

// GateSatisfied reports whether v satisfies the product gate for the given
// bound over the given field.
func GateSatisfied(v *big.Int, bound uint64, modulus *big.Int) bool {
	return EvalGate(v, bound, modulus).Sign() == 0
}

// CheckAll evaluates the gate for every value and returns the set of indices
// whose value falls outside [0, bound).
func CheckAll(values []*big.Int, bound uint64, modulus *big.Int) *bitset.BitSet {
	failed := bitset.New(uint(len(values)))
	for i, v := range values {
		if !GateSatisfied(v, bound, modulus) {
			failed.Set(uint(i))
		}
	}
	return failed
}
