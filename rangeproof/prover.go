package rangeproof

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test/unsafekzg"

	"github.com/consensys/gnark-rangecheck/logger"
	"github.com/consensys/gnark-rangecheck/rangecheck"
)

// Compile builds the constraint system of the driver circuit for the given
// curve. The compiled shape is witness-free and is reused unchanged for key
// generation and for every later proving attempt.
func Compile[R, L rangecheck.Bound](curve ecc.ID) (constraint.ConstraintSystem, error) {
	var circuit Circuit[R, L]
	// the dormant lookup slot is deliberately unconstrained in this driver
	ccs, err := frontend.Compile(curve.ScalarField(), scs.NewBuilder, &circuit, frontend.IgnoreUnconstrainedInputs())
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	log := logger.Logger()
	log.Debug().Int("constraints", ccs.GetNbConstraints()).Msg("compiled range circuit")
	return ccs, nil
}

// Setup derives the proving and verifying keys from a compiled constraint
// system. The KZG SRS comes from test/unsafekzg and is suitable for testing
// and benchmarking only; production deployments must supply a ceremony SRS.
func Setup(ccs constraint.ConstraintSystem) (plonk.ProvingKey, plonk.VerifyingKey, error) {
	srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
	if err != nil {
		return nil, nil, fmt.Errorf("srs: %w", err)
	}
	pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
	if err != nil {
		return nil, nil, fmt.Errorf("setup: %w", err)
	}
	return pk, vk, nil
}

// Prove solves the circuit with the given assignment and creates a proof. An
// out-of-range witness fails here, at solving time: assignment never rejects
// values, the activated constraints do.
func Prove(ccs constraint.ConstraintSystem, pk plonk.ProvingKey, assignment frontend.Circuit, curve ecc.ID) (plonk.Proof, error) {
	w, err := frontend.NewWitness(assignment, curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness: %w", err)
	}
	proof, err := plonk.Prove(ccs, pk, w)
	if err != nil {
		return nil, fmt.Errorf("prove: %w", err)
	}
	return proof, nil
}

// Verify checks a proof against a verifying key and the public part of the
// assignment.
func Verify(proof plonk.Proof, vk plonk.VerifyingKey, assignment frontend.Circuit, curve ecc.ID) error {
	pub, err := frontend.NewWitness(assignment, curve.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("public witness: %w", err)
	}
	if err := plonk.Verify(proof, vk, pub); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	return nil
}
