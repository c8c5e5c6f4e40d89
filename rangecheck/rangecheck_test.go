package rangecheck

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

// Range8 tags [0, 8); small enough to exercise the lookup path cheaply.
type Range8 struct{}

func (Range8) Bound() uint64 { return 8 }

type zeroBound struct{}

func (zeroBound) Bound() uint64 { return 0 }

type simpleCircuit[R, L Bound] struct {
	Value frontend.Variable
}

func (c *simpleCircuit[R, L]) Define(api frontend.API) error {
	cfg, err := Configure[R, L](api)
	if err != nil {
		return err
	}
	_, err = cfg.AssignSimple(c.Value)
	return err
}

type lookupCircuit[R, L Bound] struct {
	Value frontend.Variable
}

func (c *lookupCircuit[R, L]) Define(api frontend.API) error {
	cfg, err := Configure[R, L](api)
	if err != nil {
		return err
	}
	_, err = cfg.AssignLookup(c.Value)
	return err
}

type exposeCircuit[R, L Bound] struct {
	Value    frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *exposeCircuit[R, L]) Define(api frontend.API) error {
	cfg, err := Configure[R, L](api)
	if err != nil {
		return err
	}
	v, err := cfg.AssignSimple(c.Value)
	if err != nil {
		return err
	}
	Expose(api, v, c.Expected)
	return nil
}

func TestAssignSimple(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(
		&simpleCircuit[Range16, Range256]{},
		test.WithValidAssignment(&simpleCircuit[Range16, Range256]{Value: 7}),
		test.WithValidAssignment(&simpleCircuit[Range16, Range256]{Value: 0}),
		test.WithValidAssignment(&simpleCircuit[Range16, Range256]{Value: 15}),
		test.WithInvalidAssignment(&simpleCircuit[Range16, Range256]{Value: 16}),
		test.WithInvalidAssignment(&simpleCircuit[Range16, Range256]{Value: 1 << 30}),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.PLONK, backend.GROTH16),
	)
}

func TestAssignLookup(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(
		&lookupCircuit[Range16, Range8]{},
		test.WithValidAssignment(&lookupCircuit[Range16, Range8]{Value: 7}),
		test.WithValidAssignment(&lookupCircuit[Range16, Range8]{Value: 0}),
		test.WithInvalidAssignment(&lookupCircuit[Range16, Range8]{Value: 8}),
		test.WithInvalidAssignment(&lookupCircuit[Range16, Range8]{Value: 9}),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.PLONK, backend.GROTH16),
	)
}

func TestExpose(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(
		&exposeCircuit[Range16, Range256]{},
		test.WithValidAssignment(&exposeCircuit[Range16, Range256]{Value: 7, Expected: 7}),
		test.WithInvalidAssignment(&exposeCircuit[Range16, Range256]{Value: 7, Expected: 8}),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.PLONK),
	)
}

func TestConfigureZeroBound(t *testing.T) {
	_, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &simpleCircuit[zeroBound, Range8]{})
	require.Error(t, err)
	require.ErrorContains(t, err, "range bound must be positive")

	_, err = frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &simpleCircuit[Range16, zeroBound]{})
	require.Error(t, err)
	require.ErrorContains(t, err, "range bound must be positive")
}

func TestAssignSimpleSolved(t *testing.T) {
	assert := test.NewAssert(t)
	for v := 0; v < 16; v++ {
		assert.NoError(test.IsSolved(
			&simpleCircuit[Range16, Range256]{},
			&simpleCircuit[Range16, Range256]{Value: v},
			ecc.BN254.ScalarField(),
		))
	}
	assert.Error(test.IsSolved(
		&simpleCircuit[Range16, Range256]{},
		&simpleCircuit[Range16, Range256]{Value: 16},
		ecc.BN254.ScalarField(),
	))
}
