package rangeproof

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/backend/witness"
	"github.com/fxamacker/cbor/v2"
)

// Artifact is a persisted proof: the proof bytes, the public witness it was
// produced for and the curve they belong to, wrapped in a CBOR envelope. The
// proof and witness bytes themselves are opaque blobs in the backend's own
// serialization format.
type Artifact struct {
	CurveID       uint32 `cbor:"curve"`
	Proof         []byte `cbor:"proof"`
	PublicWitness []byte `cbor:"publicWitness"`
}

// NewArtifact captures a proof and the matching public witness for
// persistence.
func NewArtifact(curve ecc.ID, proof plonk.Proof, public witness.Witness) (*Artifact, error) {
	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize proof: %w", err)
	}
	pub, err := public.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("serialize public witness: %w", err)
	}
	return &Artifact{CurveID: uint32(curve), Proof: buf.Bytes(), PublicWitness: pub}, nil
}

// Curve returns the curve the artifact was produced on.
func (a *Artifact) Curve() ecc.ID {
	return ecc.ID(a.CurveID)
}

// Encode writes the CBOR envelope to w.
func (a *Artifact) Encode(w io.Writer) error {
	return cbor.NewEncoder(w).Encode(a)
}

// DecodeArtifact reads a CBOR envelope from r.
func DecodeArtifact(r io.Reader) (*Artifact, error) {
	var a Artifact
	if err := cbor.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return &a, nil
}

// WriteFile persists the artifact at path.
func (a *Artifact) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return a.Encode(f)
}

// ReadArtifact loads an artifact persisted by WriteFile.
func ReadArtifact(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeArtifact(f)
}

// Verify deserializes the persisted proof and public witness and checks them
// against the verifying key.
func (a *Artifact) Verify(vk plonk.VerifyingKey) error {
	proof := plonk.NewProof(a.Curve())
	if _, err := proof.ReadFrom(bytes.NewReader(a.Proof)); err != nil {
		return fmt.Errorf("deserialize proof: %w", err)
	}
	pub, err := witness.New(a.Curve().ScalarField())
	if err != nil {
		return fmt.Errorf("new witness: %w", err)
	}
	if err := pub.UnmarshalBinary(a.PublicWitness); err != nil {
		return fmt.Errorf("deserialize public witness: %w", err)
	}
	return plonk.Verify(proof, vk, pub)
}
