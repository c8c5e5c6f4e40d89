package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/consensys/gnark-rangecheck/rangecheck"
)

// checkCmd represents the check command: a diagnostic pass over witness
// values, evaluating the gate polynomial outside the circuit. It shares no
// code with the proving path.
var checkCmd = &cobra.Command{
	Use:   "check [values]",
	Short: "evaluates the range gate on values without building a proof",
	Args:  cobra.MinimumNArgs(1),
	RunE:  cmdCheck,
}

var fBound uint64

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.PersistentFlags().Uint64Var(&fBound, "bound", 16, "exclusive upper bound of the range")
}

func cmdCheck(cmd *cobra.Command, args []string) error {
	curve, err := curveID()
	if err != nil {
		return err
	}
	if fBound == 0 {
		return rangecheck.ErrInvalidRange
	}
	values := make([]*big.Int, len(args))
	for i, arg := range args {
		v, ok := new(big.Int).SetString(arg, 10)
		if !ok {
			return fmt.Errorf("not a decimal value: %q", arg)
		}
		values[i] = v
	}
	failed := rangecheck.CheckAll(values, fBound, curve.ScalarField())
	if failed.Count() == 0 {
		fmt.Printf("all %d values satisfy [0, %d)\n", len(values), fBound)
		return nil
	}
	for i, ok := failed.NextSet(0); ok; i, ok = failed.NextSet(i + 1) {
		fmt.Printf("value %s at index %d is outside [0, %d)\n", values[i], i, fBound)
	}
	return fmt.Errorf("%d of %d values out of range", failed.Count(), len(values))
}
