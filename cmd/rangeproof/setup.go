package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/consensys/gnark-rangecheck/rangecheck"
	"github.com/consensys/gnark-rangecheck/rangeproof"
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "compiles the range circuit and generates proving and verifying keys",
	RunE:  cmdSetup,
}

var (
	fPkPath string
	fVkPath string
)

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.PersistentFlags().StringVar(&fPkPath, "pk", "range.pk", "output path for the proving key")
	setupCmd.PersistentFlags().StringVar(&fVkPath, "vk", "range.vk", "output path for the verifying key")
}

func cmdSetup(cmd *cobra.Command, args []string) error {
	curve, err := curveID()
	if err != nil {
		return err
	}
	ccs, err := rangeproof.Compile[rangecheck.Range16, rangecheck.Range256](curve)
	if err != nil {
		return err
	}
	pk, vk, err := rangeproof.Setup(ccs)
	if err != nil {
		return err
	}
	if err := writeTo(fPkPath, pk); err != nil {
		return fmt.Errorf("write proving key: %w", err)
	}
	if err := writeTo(fVkPath, vk); err != nil {
		return fmt.Errorf("write verifying key: %w", err)
	}
	fmt.Printf("%-30s %s\n", "generated proving key", fPkPath)
	fmt.Printf("%-30s %s\n", "generated verifying key", fVkPath)
	return nil
}

func writeTo(path string, w io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = w.WriteTo(f)
	return err
}
