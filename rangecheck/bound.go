package rangecheck

import "github.com/consensys/gnark/frontend"

// Bound provides type parametrization for range bounds. A bound type tags a
// half-open interval [0, Bound()) at the type level so that values constrained
// under different bounds are distinct types for the Go compiler. Implementations
// should be zero-size tag types, similar to the field parametrization in
// [github.com/consensys/gnark/std/math/emulated].
type Bound interface {
	// Bound returns the exclusive upper bound of the interval. Must be
	// non-zero and constant for a given type.
	Bound() uint64
}

// Range16 provides type parametrization for the interval [0, 16).
type Range16 struct{}

func (Range16) Bound() uint64 { return 16 }

// Range256 provides type parametrization for the interval [0, 256).
type Range256 struct{}

func (Range256) Bound() uint64 { return 256 }

// Constrained is a value which has been constrained to the interval
// [0, B.Bound()). It carries no behavior; it exists so that downstream gadgets
// can rely on the bound without re-checking it, and so that values constrained
// under different bounds cannot be interchanged without an explicit visible
// conversion.
type Constrained[B Bound] struct {
	Value frontend.Variable
}
