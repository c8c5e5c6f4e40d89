// Package rangetable implements a reference table over the ordered set
// {0, …, size−1} together with a membership argument.
//
// The table is loaded with the ascending sequence 0..size−1 and accepts
// membership queries for witnessed values. At the end of circuit construction
// a deferred commitment builds the log-derivative argument of [Haböck22]: for
// a challenge x derived from a commitment to the queries,
//
//	∑_{i∈[0,size)} count(i)/(x−i) == ∑_{q∈queries} 1/(x−q),
//
// where count(i) is the multiplicity of entry i among the queries, supplied
// by a hint. The argument holds only when every query equals some table
// entry, so a query outside [0, size) makes the circuit unsatisfiable.
//
// [Haböck22]: https://eprint.iacr.org/2022/1530
package rangetable

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/multicommit"

	"github.com/consensys/gnark-rangecheck/logger"
)

var (
	// ErrEmptyTable is returned by [New] for a zero-size table.
	ErrEmptyTable = errors.New("table must hold at least one entry")
	// ErrCommitted is returned by [Table.Query] once the membership argument
	// has been built.
	ErrCommitted = errors.New("table already committed")
)

// Table is a reference column holding the constants 0..size−1 and the
// membership queries recorded against it. The membership argument is built
// once, by a function deferred at construction time.
type Table struct {
	size    uint64
	queries []frontend.Variable

	committed bool
}

// New returns a table over [0, size) and defers the construction of the
// membership argument to the end of the circuit definition.
func New(api frontend.API, size uint64) (*Table, error) {
	if size == 0 {
		return nil, ErrEmptyTable
	}
	t := &Table{size: size}
	api.Compiler().Defer(t.commit)
	return t, nil
}

// Size returns the number of table entries.
func (t *Table) Size() uint64 {
	return t.size
}

// Entries returns the loaded reference column: exactly the ascending
// constants 0, 1, …, size−1, with no duplicates and no gaps.
func (t *Table) Entries() []frontend.Variable {
	return entries(t.size)
}

func entries(size uint64) []frontend.Variable {
	col := make([]frontend.Variable, size)
	for i := range col {
		col[i] = uint64(i)
	}
	return col
}

// Query records a membership claim for v. The claim is unchecked here; it is
// enforced by the deferred argument. Querying a committed table fails.
func (t *Table) Query(v frontend.Variable) error {
	if t.committed {
		return ErrCommitted
	}
	t.queries = append(t.queries, v)
	return nil
}

// commit builds the log-derivative membership argument over all recorded
// queries. Deferred by [New]; a table with no queries adds no constraints.
func (t *Table) commit(api frontend.API) error {
	if t.committed {
		return nil
	}
	t.committed = true
	if len(t.queries) == 0 {
		return nil
	}
	log := logger.Logger()
	log.Debug().Uint64("size", t.size).Int("queries", len(t.queries)).Msg("committing range table")

	hintIn := make([]frontend.Variable, 0, len(t.queries)+1)
	hintIn = append(hintIn, t.size)
	hintIn = append(hintIn, t.queries...)
	counts, err := api.NewHint(countHint, int(t.size), hintIn...)
	if err != nil {
		return fmt.Errorf("count hint: %w", err)
	}

	col := t.Entries()
	toCommit := make([]frontend.Variable, 0, len(t.queries)+len(counts))
	toCommit = append(toCommit, t.queries...)
	toCommit = append(toCommit, counts...)
	multicommit.WithCommitment(api, func(api frontend.API, challenge frontend.Variable) error {
		var lhs frontend.Variable = 0
		for i := range col {
			term := api.DivUnchecked(counts[i], api.Sub(challenge, col[i]))
			lhs = api.Add(lhs, term)
		}
		var rhs frontend.Variable = 0
		for _, q := range t.queries {
			rhs = api.Add(rhs, api.Inverse(api.Sub(challenge, q)))
		}
		api.AssertIsEqual(lhs, rhs)
		return nil
	}, toCommit...)
	return nil
}
