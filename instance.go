package whitebox

import "github.com/opd-ai/go-whitebox-aes/internal/gf2"

// Instance is a self-contained white-box AES-128 instance: the key never
// appears in it explicitly, only as the particular values baked into its
// round tables and input encoding.
//
// An Instance is immutable after construction by GenerateInstance or
// LoadInstance and safe to share read-only across goroutines.
type Instance struct {
	// Table holds the Rounds sets of TablesPerRound tables evaluated in
	// order by the runtime.
	Table [Rounds]Round

	// FIn is the input affine encoding applied to the wide state before
	// round 1. It absorbs both AES's initial key whitening and the random
	// encoding covering round 1's tables, so the runtime never performs an
	// explicit AddRoundKey step.
	FIn gf2.Affine

	// FOut is the output affine encoding applied after round 10, if any.
	// In this implementation it is always nil: an enabled output encoding
	// is folded directly into round 10's tables rather than kept as a
	// separate runtime step, so FOut carries no information beyond what
	// OutputEncodingPresent already states. It exists so the type can
	// represent the general case described for the construction.
	FOut *gf2.Affine

	// OutputEncodingPresent reports whether the instance was generated
	// with an external output encoding. When true, the runtime's raw
	// output is not plain AES-parallel ciphertext, and reference AES-128
	// decryption of it will not round-trip.
	OutputEncodingPresent bool
}
