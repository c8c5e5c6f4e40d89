package rangeproof

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/consensys/gnark-rangecheck/rangecheck"
)

func TestDriverSolved(t *testing.T) {
	assert := test.NewAssert(t)
	for v := 0; v < 16; v++ {
		assert.NoError(test.IsSolved(
			&Circuit[rangecheck.Range16, rangecheck.Range256]{},
			&Circuit[rangecheck.Range16, rangecheck.Range256]{Value: v, LookupValue: 0},
			ecc.BN254.ScalarField(),
		))
	}
	assert.Error(test.IsSolved(
		&Circuit[rangecheck.Range16, rangecheck.Range256]{},
		&Circuit[rangecheck.Range16, rangecheck.Range256]{Value: 16, LookupValue: 0},
		ecc.BN254.ScalarField(),
	))
}

func TestLifecycle(t *testing.T) {
	curve := ecc.BN254

	// key generation runs on the witness-free shape only
	ccs, err := Compile[rangecheck.Range16, rangecheck.Range256](curve)
	require.NoError(t, err)
	pk, vk, err := Setup(ccs)
	require.NoError(t, err)

	assignment := &Circuit[rangecheck.Range16, rangecheck.Range256]{Value: 7, LookupValue: 0}
	proof, err := Prove(ccs, pk, assignment, curve)
	require.NoError(t, err)
	require.NoError(t, Verify(proof, vk, assignment, curve))

	t.Run("out-of-range witness fails at proving time", func(t *testing.T) {
		bad := &Circuit[rangecheck.Range16, rangecheck.Range256]{Value: 16, LookupValue: 0}
		_, err := Prove(ccs, pk, bad, curve)
		require.Error(t, err)
	})

	t.Run("mismatched verifying key rejects the proof", func(t *testing.T) {
		otherCCS, err := Compile[rangecheck.Range256, rangecheck.Range16](curve)
		require.NoError(t, err)
		_, otherVK, err := Setup(otherCCS)
		require.NoError(t, err)
		require.Error(t, Verify(proof, otherVK, assignment, curve))
	})

	t.Run("artifact round-trip", func(t *testing.T) {
		pub, err := frontend.NewWitness(assignment, curve.ScalarField(), frontend.PublicOnly())
		require.NoError(t, err)
		art, err := NewArtifact(curve, proof, pub)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, art.Encode(&buf))
		decoded, err := DecodeArtifact(&buf)
		require.NoError(t, err)
		require.Equal(t, art.Proof, decoded.Proof)
		require.Equal(t, art.CurveID, decoded.CurveID)
		require.NoError(t, decoded.Verify(vk))
	})

	t.Run("tampered artifact fails", func(t *testing.T) {
		pub, err := frontend.NewWitness(assignment, curve.ScalarField(), frontend.PublicOnly())
		require.NoError(t, err)
		art, err := NewArtifact(curve, proof, pub)
		require.NoError(t, err)
		art.Proof[0] ^= 0xff
		require.Error(t, art.Verify(vk))
	})

	t.Run("batch verification isolates the failing artifact", func(t *testing.T) {
		pub, err := frontend.NewWitness(assignment, curve.ScalarField(), frontend.PublicOnly())
		require.NoError(t, err)
		good, err := NewArtifact(curve, proof, pub)
		require.NoError(t, err)
		bad, err := NewArtifact(curve, proof, pub)
		require.NoError(t, err)
		bad.Proof = append([]byte(nil), bad.Proof...)
		bad.Proof[1] ^= 0xff

		require.NoError(t, VerifyBatch(vk, []*Artifact{good, good}))
		err = VerifyBatch(vk, []*Artifact{good, bad})
		require.Error(t, err)
		require.ErrorContains(t, err, "artifact 1")
	})
}

func TestArtifactFile(t *testing.T) {
	path := t.TempDir() + "/proof.cbor"
	art := &Artifact{CurveID: uint32(ecc.BN254), Proof: []byte{1, 2, 3}, PublicWitness: []byte{}}
	require.NoError(t, art.WriteFile(path))
	loaded, err := ReadArtifact(path)
	require.NoError(t, err)
	require.Equal(t, art.Proof, loaded.Proof)
	require.Equal(t, ecc.BN254, loaded.Curve())
}
