package main

import (
	"fmt"
	"os"
	"time"

	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"
	"github.com/spf13/cobra"

	"github.com/consensys/gnark-rangecheck/rangecheck"
	"github.com/consensys/gnark-rangecheck/rangeproof"
)

// proveCmd represents the prove command
var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "creates a proof that --value lies in the circuit's range",
	RunE:  cmdProve,
}

var (
	fValue     uint64
	fProofPath string
	fProvePk   string
)

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.PersistentFlags().Uint64Var(&fValue, "value", 0, "witness value to range-constrain")
	proveCmd.PersistentFlags().StringVar(&fProvePk, "pk", "range.pk", "path of the proving key written by setup")
	proveCmd.PersistentFlags().StringVar(&fProofPath, "proof", "range.proof", "output path for the proof artifact")
	_ = proveCmd.MarkPersistentFlagRequired("value")
}

func cmdProve(cmd *cobra.Command, args []string) error {
	curve, err := curveID()
	if err != nil {
		return err
	}
	// the circuit shape is deterministic; recompiling avoids a ccs file
	ccs, err := rangeproof.Compile[rangecheck.Range16, rangecheck.Range256](curve)
	if err != nil {
		return err
	}
	pk := plonk.NewProvingKey(curve)
	f, err := os.Open(fProvePk)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := pk.ReadFrom(f); err != nil {
		return fmt.Errorf("read proving key: %w", err)
	}

	assignment := &rangeproof.Circuit[rangecheck.Range16, rangecheck.Range256]{Value: fValue, LookupValue: 0}
	start := time.Now()
	proof, err := rangeproof.Prove(ccs, pk, assignment, curve)
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}
	pub, err := frontend.NewWitness(assignment, curve.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return err
	}
	artifact, err := rangeproof.NewArtifact(curve, proof, pub)
	if err != nil {
		return err
	}
	if err := artifact.WriteFile(fProofPath); err != nil {
		return err
	}
	fmt.Printf("%-30s %-30s %s\n", "generated proof", fProofPath, time.Since(start))
	return nil
}
