// Package rangecheck implements a range-constraint gadget with two encodings.
//
// Given a witnessed value v and a static bound N, the gadget constrains
// v ∈ [0, N) without revealing v. Two encodings are available:
//   - a product constraint v·(1−v)·(2−v)·…·(N−1−v) == 0, whose root set is
//     exactly {0, …, N−1}. Its cost grows linearly with N, so it only suits
//     small bounds;
//   - a membership query against a reference table holding {0, …, N−1},
//     proven with a log-derivative argument (see [rangetable]). The cost per
//     query is constant, so it suits large bounds.
//
// Bounds are carried as type parameters (see [Bound]) and validated once at
// configuration time. Out-of-range witnesses are not rejected when assigned:
// they surface later as an unsatisfied constraint when the system is solved
// or a proof is attempted.
//
// [rangetable]: github.com/consensys/gnark-rangecheck/rangetable
package rangecheck

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/consensys/gnark-rangecheck/logger"
	"github.com/consensys/gnark-rangecheck/rangetable"
)

// ErrInvalidRange is returned by [Configure] when a bound type reports a zero
// bound. It is a configuration failure: it aborts circuit construction before
// any witness is touched.
var ErrInvalidRange = errors.New("range bound must be positive")

// gateWarnThreshold is the bound above which Configure warns that the product
// gate is likely the wrong encoding.
const gateWarnThreshold = 256

// Config holds the configured gadget for the bound pair (R, L): the product
// gate path constrains values to [0, R.Bound()), the table path to
// [0, L.Bound()). A Config is built once per circuit by [Configure] and is
// immutable afterwards.
type Config[R Bound, L Bound] struct {
	api   frontend.API
	table *rangetable.Table
}

// Configure validates the two bounds, builds the reference table for the
// lookup path and returns the gadget configuration. It returns
// [ErrInvalidRange] when either bound is zero.
func Configure[R Bound, L Bound](api frontend.API) (*Config[R, L], error) {
	var (
		r R
		l L
	)
	if r.Bound() == 0 {
		return nil, fmt.Errorf("%w: gate bound is zero", ErrInvalidRange)
	}
	if l.Bound() == 0 {
		return nil, fmt.Errorf("%w: lookup bound is zero", ErrInvalidRange)
	}
	table, err := rangetable.New(api, l.Bound())
	if err != nil {
		return nil, fmt.Errorf("configure table: %w", err)
	}
	log := logger.Logger().With().Str("gadget", "rangecheck").Logger()
	log.Debug().Uint64("range", r.Bound()).Uint64("lookupRange", l.Bound()).Msg("configured")
	if r.Bound() > gateWarnThreshold {
		log.Warn().Uint64("range", r.Bound()).Msg("product gate degree grows linearly with the bound; prefer the lookup path")
	}
	return &Config[R, L]{api: api, table: table}, nil
}

// AssignSimple constrains value to [0, R.Bound()) using the product gate
//
//	value · (1 − value) · (2 − value) · … · (R−1 − value) == 0.
//
// The constraint is recorded unconditionally: an out-of-range value is
// accepted here and only fails once the constraint system is solved.
func (c *Config[R, L]) AssignSimple(value frontend.Variable) (Constrained[R], error) {
	var r R
	acc := value
	for i := uint64(1); i < r.Bound(); i++ {
		acc = c.api.Mul(acc, c.api.Sub(i, value))
	}
	c.api.AssertIsEqual(acc, 0)
	return Constrained[R]{Value: value}, nil
}

// AssignLookup constrains value to [0, L.Bound()) by recording a membership
// query against the reference table. It fails when the table no longer
// accepts queries; the query itself is unchecked until solving time.
func (c *Config[R, L]) AssignLookup(value frontend.Variable) (Constrained[L], error) {
	if err := c.table.Query(value); err != nil {
		return Constrained[L]{}, fmt.Errorf("lookup assignment: %w", err)
	}
	return Constrained[L]{Value: value}, nil
}

// Expose asserts that a range-constrained cell equals a public input, so that
// values proven in range can be bound to instance data or to other gadgets'
// outputs.
func Expose[B Bound](api frontend.API, c Constrained[B], public frontend.Variable) {
	api.AssertIsEqual(c.Value, public)
}
