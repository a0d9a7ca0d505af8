package whitebox

import (
	"fmt"
	"io"

	"github.com/opd-ai/go-whitebox-aes/internal/aesref"
	"github.com/opd-ai/go-whitebox-aes/internal/gf2"
)

// Config configures a Generator.
type Config struct {
	// ExternalEncodings, when true, folds a random external output
	// encoding into round 10's tables. The resulting instance's
	// OutputEncodingPresent flag is then set, and reference AES-128
	// decryption of its output will not round-trip.
	ExternalEncodings bool
}

// Validate reports whether c is well-formed. Config has no field whose
// value can be invalid; it exists for symmetry with the rest of the
// ambient Config/Validate convention and as a hook for future options.
func (c Config) Validate() error {
	return nil
}

// Generator builds white-box instances from a seeded random source.
// A Generator is not safe for concurrent use: it consumes its random
// source strictly sequentially, and the draw order is what makes
// GenerateInstance deterministic in the source's seed.
type Generator struct {
	rng io.Reader
	cfg Config
}

// NewGenerator returns a Generator that draws randomness from rng
// according to cfg.
func NewGenerator(rng io.Reader, cfg Config) *Generator {
	return &Generator{rng: rng, cfg: cfg}
}

// chain holds the random affine encodings drawn for one instance, in both
// their directly-drawn sparse inverse form and their lazily-derived dense
// forward form.
type chain struct {
	cinv [Rounds + 2]gf2.SparseAffine // cinv[r] = A^(r)^-1, r in 1..11
	fwd  [Rounds + 2]gf2.Affine       // fwd[r] = A^(r), r in 1..11
}

// GenerateInstance builds a white-box instance encoding two parallel
// AES-128 encryptions under key. Two calls against Generators seeded
// identically, with the same key, produce byte-identical instances.
func (g *Generator) GenerateInstance(key [16]byte) (*Instance, error) {
	roundKeys := aesref.ExpandKey(key)

	ch, err := g.drawChain()
	if err != nil {
		return nil, err
	}

	linMC := liftMixColumnsAfterShiftRows()
	linSR := liftShiftRows()

	inst := &Instance{
		OutputEncodingPresent: g.cfg.ExternalEncodings,
	}

	k0 := duplicateHalves(roundKeys[0])
	arkK0 := gf2.NewAffine(gf2.Identity(WideStateLen*8), k0)
	inst.FIn = gf2.Compose(ch.fwd[1], arkK0)

	for r := 1; r <= Rounds; r++ {
		lr := linMC
		if r == Rounds {
			lr = linSR
		}
		kr := duplicateHalves(roundKeys[r])

		round, err := g.buildRound(ch.cinv[r], ch.fwd[r+1], lr, kr)
		if err != nil {
			return nil, fmt.Errorf("whitebox: building round %d: %w", r, err)
		}
		inst.Table[r-1] = round
	}

	return inst, nil
}

// drawChain draws the sparse inverse encodings Cinv[1..10] (always random)
// and Cinv[11] (random only if external output encodings are enabled,
// identity otherwise), then derives each encoding's dense forward form.
func (g *Generator) drawChain() (*chain, error) {
	var ch chain

	for r := 1; r <= Rounds; r++ {
		c, err := gf2.RandomSparseAffine(g.rng)
		if err != nil {
			return nil, fmt.Errorf("whitebox: drawing encoding %d: %w: %w", r, err, ErrDomain)
		}
		ch.cinv[r] = c
		fwd, err := c.Dense().Invert()
		if err != nil {
			return nil, fmt.Errorf("whitebox: inverting encoding %d: %w: %w", r, err, ErrDomain)
		}
		ch.fwd[r] = fwd
	}

	if g.cfg.ExternalEncodings {
		c, err := gf2.RandomSparseAffine(g.rng)
		if err != nil {
			return nil, fmt.Errorf("whitebox: drawing output encoding: %w: %w", err, ErrDomain)
		}
		fwd, err := c.Dense().Invert()
		if err != nil {
			return nil, fmt.Errorf("whitebox: inverting output encoding: %w: %w", err, ErrDomain)
		}
		ch.cinv[Rounds+1] = c
		ch.fwd[Rounds+1] = fwd
	} else {
		ch.fwd[Rounds+1] = gf2.IdentityAffine(WideStateLen * 8)
	}

	return &ch, nil
}

// buildRound constructs the TablesPerRound tables for one round. cinvR is
// A^(r)^-1 (sparse); fwdNext is A^(r+1) (dense, forward); lr is the round's
// linear layer (MC∘SR for rounds 1..9, SR alone for round 10); kr is the
// round key duplicated across both halves.
func (g *Generator) buildRound(cinvR gf2.SparseAffine, fwdNext gf2.Affine, lr gf2.Matrix, kr []byte) (Round, error) {
	blin := fwdNext.L.Mul(lr)
	bbias := fwdNext.L.Apply(kr)
	xorWideState(bbias, fwdNext.C)

	bcols := precomputeColumns(blin)

	var masks [TablesPerRound]MaskGadget
	for i := 0; i < TablesPerRound; i++ {
		m, err := drawMaskGadget(g.rng)
		if err != nil {
			return Round{}, fmt.Errorf("drawing mask gadget %d: %w", i, err)
		}
		masks[i] = m
	}

	biasSplit, err := drawBiasSplit(g.rng, bbias)
	if err != nil {
		return Round{}, err
	}

	var round Round
	for i := 0; i < TablesPerRound; i++ {
		j := (i + 1) % TablesPerRound
		table := newRoundTable()
		for x := 0; x < 256; x++ {
			hx := masks[i][x]
			for y := 0; y < 256; y++ {
				a := cinvR.ApplyBlockRow(i, byte(x), byte(y))
				s := aesref.SBox[a]

				entry := make([]byte, WideStateLen)
				copy(entry, bcols[i][s][:])
				xorWideState(entry, biasSplit[i][:])
				xorWideState(entry, hx[:])
				xorWideState(entry, masks[j][y][:])

				table.Set(byte(x), byte(y), entry)
			}
		}
		round[i] = table
	}

	return round, nil
}

// precomputeColumns builds, for each byte position i of a WideStateLen-byte
// vector, a 256-entry table mapping a byte value b to blin applied to the
// vector that is zero everywhere except byte i, which holds b. This is the
// B^(r)_i map: the contribution of byte position i alone to blin's output.
func precomputeColumns(blin gf2.Matrix) [WideStateLen][256][WideStateLen]byte {
	var out [WideStateLen][256][WideStateLen]byte
	v := make([]byte, WideStateLen)
	for i := 0; i < WideStateLen; i++ {
		for b := 0; b < 256; b++ {
			for k := range v {
				v[k] = 0
			}
			v[i] = byte(b)
			copy(out[i][b][:], blin.Apply(v))
		}
	}
	return out
}

// drawBiasSplit draws TablesPerRound-1 random WideStateLen-byte values and
// sets the last one so that XORing all of them together reproduces bias.
func drawBiasSplit(rng io.Reader, bias []byte) ([TablesPerRound][WideStateLen]byte, error) {
	var split [TablesPerRound][WideStateLen]byte
	acc := make([]byte, WideStateLen)
	for i := 0; i < TablesPerRound-1; i++ {
		if _, err := io.ReadFull(rng, split[i][:]); err != nil {
			return split, fmt.Errorf("whitebox: drawing bias split %d: %w", i, ErrIO)
		}
		xorWideState(acc, split[i][:])
	}
	xorWideState(acc, bias)
	copy(split[TablesPerRound-1][:], acc)
	return split, nil
}

// duplicateHalves returns a WideStateLen-byte vector holding block repeated
// across both halves of the wide state.
func duplicateHalves(block [16]byte) []byte {
	out := make([]byte, WideStateLen)
	copy(out[:16], block[:])
	copy(out[16:], block[:])
	return out
}

// liftMixColumnsAfterShiftRows builds the WideStateLen*8-bit matrix applying
// AES's MC∘SR linear layer independently to each 16-byte half of the wide
// state (the layer used by rounds 1..9).
func liftMixColumnsAfterShiftRows() gf2.Matrix {
	return gf2.Lift(WideStateLen*8, func(v []byte) []byte {
		out := make([]byte, WideStateLen)
		copy(out[:16], aesref.MixColumnsAfterShiftRows(v[:16]))
		copy(out[16:], aesref.MixColumnsAfterShiftRows(v[16:]))
		return out
	})
}

// liftShiftRows builds the WideStateLen*8-bit matrix applying AES's
// ShiftRows independently to each 16-byte half of the wide state (the
// layer used by round 10, which omits MixColumns).
func liftShiftRows() gf2.Matrix {
	return gf2.Lift(WideStateLen*8, func(v []byte) []byte {
		out := make([]byte, WideStateLen)
		copy(out[:16], aesref.ShiftRowsBytes(v[:16]))
		copy(out[16:], aesref.ShiftRowsBytes(v[16:]))
		return out
	})
}
