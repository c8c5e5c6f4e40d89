package rangetable

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	solver.RegisterHint(GetHints()...)
}

// GetHints returns all hints used in this package.
func GetHints() []solver.Hint {
	return []solver.Hint{countHint}
}

// countHint computes the multiplicity of every table entry among the queries.
// inputs: [size, query_0, …, query_{m−1}]; outputs: [count_0, …, count_{size−1}].
// A query outside [0, size) is unprovable and fails solving here.
func countHint(_ *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	if len(inputs) < 2 {
		return fmt.Errorf("expected table size and at least one query")
	}
	if !inputs[0].IsUint64() {
		return fmt.Errorf("table size must be uint64")
	}
	size := inputs[0].Uint64()
	if uint64(len(outputs)) != size {
		return fmt.Errorf("expected %d outputs, got %d", size, len(outputs))
	}
	for i := range outputs {
		outputs[i].SetUint64(0)
	}
	one := big.NewInt(1)
	for _, q := range inputs[1:] {
		if !q.IsUint64() || q.Uint64() >= size {
			return fmt.Errorf("query %s outside table range [0, %d)", q, size)
		}
		outputs[q.Uint64()].Add(outputs[q.Uint64()], one)
	}
	return nil
}
