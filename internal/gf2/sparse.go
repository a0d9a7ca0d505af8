package gf2

import (
	"fmt"
	"io"
)

// SparseBlocks is the number of 8-bit blocks a 256-bit sparse unsplit affine
// map is divided into.
const SparseBlocks = 32

// SparseAffine is a 256-bit affine map whose linear part, viewed as a 32x32
// grid of 8x8 blocks, is non-zero only on the main diagonal (Diag[i] at
// block (i,i)) and one cyclic super-diagonal (Super[i] at block
// (i,(i+1) mod 32)). Byte i of SparseAffine.Apply(v) therefore depends only
// on bytes i and (i+1) mod 32 of v, which is the property the white-box
// construction's 16-bit-indexed tables rely on.
type SparseAffine struct {
	Diag  [SparseBlocks]Matrix
	Super [SparseBlocks]Matrix
	Bias  [SparseBlocks]byte
}

// applyBlock applies an 8x8 matrix to a single byte.
func applyBlock(m Matrix, b byte) byte {
	return m.Apply([]byte{b})[0]
}

// ApplyBlockRow computes byte i of SparseAffine.Apply(v) given only v's
// bytes at position i (x) and position (i+1) mod 32 (y), without
// materializing the dense 256-bit matrix. This is the primitive the
// generator uses to decompose a round's two-byte-indexed tables.
func (s SparseAffine) ApplyBlockRow(i int, x, y byte) byte {
	return applyBlock(s.Diag[i], x) ^ applyBlock(s.Super[i], y) ^ s.Bias[i]
}

// Apply computes the full 256-bit application, byte by byte, via
// ApplyBlockRow. It exists for testing the sparse structure against a dense
// Affine built from the same blocks, and for direct use as a 256-bit
// encoding (e.g. when folding a sparse map directly into the runtime).
func (s SparseAffine) Apply(v []byte) []byte {
	if len(v) != SparseBlocks {
		panic(fmt.Sprintf("gf2: sparse affine expects a %d-byte vector, got %d", SparseBlocks, len(v)))
	}
	out := make([]byte, SparseBlocks)
	for i := 0; i < SparseBlocks; i++ {
		out[i] = s.ApplyBlockRow(i, v[i], v[(i+1)%SparseBlocks])
	}
	return out
}

// Dense materializes the full 256x256 Affine equivalent to s, for use where
// general matrix composition or inversion is required.
func (s SparseAffine) Dense() Affine {
	n := SparseBlocks * 8
	m := Zero(n)
	for i := 0; i < SparseBlocks; i++ {
		placeBlock(m, i, i, s.Diag[i])
		placeBlock(m, i, (i+1)%SparseBlocks, s.Super[i])
	}
	c := make([]byte, n/8)
	copy(c, s.Bias[:])
	return Affine{L: m, C: c}
}

// placeBlock writes an 8x8 block into m at block-row blockRow, block-column
// blockCol (each block is one byte wide and one byte tall in bit terms: 8
// rows, 8 columns).
func placeBlock(m Matrix, blockRow, blockCol int, block Matrix) {
	for bi := 0; bi < 8; bi++ {
		row := blockRow*8 + bi
		for bj := 0; bj < 8; bj++ {
			col := blockCol*8 + bj
			if getBit(block.rows[bi], bj) == 1 {
				setBit(m.rows[row], col, true)
			}
		}
	}
}

// RandomSparseAffine draws a random invertible sparse unsplit 256-bit affine
// map from rng, following the traversal order: 32 diagonal 8x8 blocks, then
// 32 super-diagonal 8x8 blocks, then a uniform 256-bit bias. Invertible
// blocks do not make the cyclic banded matrix invertible, and a singular
// linear part is common, so the blocks are redrawn from the top until the
// linear part is invertible; the bias is drawn only after that.
func RandomSparseAffine(rng io.Reader) (SparseAffine, error) {
	for {
		var s SparseAffine
		for i := 0; i < SparseBlocks; i++ {
			d, err := RandomInvertible(rng, 8)
			if err != nil {
				return SparseAffine{}, fmt.Errorf("gf2: drawing diagonal block %d: %w", i, err)
			}
			s.Diag[i] = d
		}
		for i := 0; i < SparseBlocks; i++ {
			sup, err := RandomInvertible(rng, 8)
			if err != nil {
				return SparseAffine{}, fmt.Errorf("gf2: drawing super-diagonal block %d: %w", i, err)
			}
			s.Super[i] = sup
		}

		if _, err := s.Dense().L.Invert(); err != nil {
			continue // singular: retry the whole draw
		}

		if _, err := io.ReadFull(rng, s.Bias[:]); err != nil {
			return SparseAffine{}, fmt.Errorf("gf2: drawing sparse affine bias: %w", err)
		}
		return s, nil
	}
}
