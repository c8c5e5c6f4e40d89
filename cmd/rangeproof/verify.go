package main

import (
	"fmt"
	"os"
	"time"

	"github.com/consensys/gnark/backend/plonk"
	"github.com/spf13/cobra"

	"github.com/consensys/gnark-rangecheck/rangeproof"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [proof files]",
	Short: "verifies proof artifacts against a verifying key",
	Args:  cobra.MinimumNArgs(1),
	RunE:  cmdVerify,
}

var fVerifyVk string

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.PersistentFlags().StringVar(&fVerifyVk, "vk", "range.vk", "path of the verifying key written by setup")
}

func cmdVerify(cmd *cobra.Command, args []string) error {
	curve, err := curveID()
	if err != nil {
		return err
	}
	vk := plonk.NewVerifyingKey(curve)
	f, err := os.Open(fVerifyVk)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := vk.ReadFrom(f); err != nil {
		return fmt.Errorf("read verifying key: %w", err)
	}

	artifacts := make([]*rangeproof.Artifact, len(args))
	for i, path := range args {
		if artifacts[i], err = rangeproof.ReadArtifact(path); err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
	}
	start := time.Now()
	if err := rangeproof.VerifyBatch(vk, artifacts); err != nil {
		return fmt.Errorf("proof is invalid: %w", err)
	}
	fmt.Printf("%-30s %-d artifacts %s\n", "proofs are valid", len(artifacts), time.Since(start))
	return nil
}
