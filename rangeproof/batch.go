package rangeproof

import (
	"fmt"
	"runtime"

	"github.com/consensys/gnark/backend/plonk"
	"golang.org/x/sync/errgroup"
)

// VerifyBatch verifies artifacts concurrently against a single verifying key.
// It returns the first failure, tagged with the artifact index.
func VerifyBatch(vk plonk.VerifyingKey, artifacts []*Artifact) error {
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, a := range artifacts {
		i, a := i, a
		g.Go(func() error {
			if err := a.Verify(vk); err != nil {
				return fmt.Errorf("artifact %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
