// Package rangeproof holds the top-level circuit driver for the range gadget
// and a thin harness over the PLONK proof lifecycle: compile, setup, prove,
// verify and proof persistence.
package rangeproof

import (
	"github.com/consensys/gnark/frontend"

	"github.com/consensys/gnark-rangecheck/rangecheck"
)

// Circuit proves that Value lies in [0, R.Bound()). The zero value of Circuit
// carries no witnesses and is used for compilation, where only the circuit
// shape matters.
//
// LookupValue is a witness slot for the table path. This driver declares it
// but does not route it through AssignLookup; the two paths are independent
// and wiring the lookup path is left to the caller. Because the slot is then
// unconstrained, [Compile] passes frontend.IgnoreUnconstrainedInputs.
type Circuit[R rangecheck.Bound, L rangecheck.Bound] struct {
	Value       frontend.Variable
	LookupValue frontend.Variable
}

// Define configures the gadget, which loads the reference table, and assigns
// Value through the product-gate path.
func (c *Circuit[R, L]) Define(api frontend.API) error {
	cfg, err := rangecheck.Configure[R, L](api)
	if err != nil {
		return err
	}
	if _, err := cfg.AssignSimple(c.Value); err != nil {
		return err
	}
	return nil
}
