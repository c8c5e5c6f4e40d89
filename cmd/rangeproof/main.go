// rangeproof is a CLI driver around the range gadget: it compiles the default
// range circuit, runs the PLONK lifecycle over it and checks witness files
// against the gate polynomial outside the circuit. All gadget logic lives in
// the library packages; this binary is glue.
package main

import (
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rangeproof",
	Short: "prove and verify range membership of witnessed values",
}

var fCurve string

func init() {
	rootCmd.PersistentFlags().StringVar(&fCurve, "curve", "bn254", "curve to instantiate the circuit over")
}

func curveID() (ecc.ID, error) {
	for _, id := range ecc.Implemented() {
		if id.String() == fCurve {
			return id, nil
		}
	}
	return ecc.UNKNOWN, fmt.Errorf("unknown curve %q", fCurve)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
