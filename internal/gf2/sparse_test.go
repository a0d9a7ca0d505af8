package gf2

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestRandomSparseAffineIsInvertible(t *testing.T) {
	s, err := RandomSparseAffine(rand.Reader)
	if err != nil {
		t.Fatalf("RandomSparseAffine() error = %v", err)
	}

	dense := s.Dense()
	if _, err := dense.Invert(); err != nil {
		t.Errorf("sparse affine's dense linear part is not invertible: %v", err)
	}
}

func TestSparseAffineBlockStructure(t *testing.T) {
	s, err := RandomSparseAffine(rand.Reader)
	if err != nil {
		t.Fatalf("RandomSparseAffine() error = %v", err)
	}
	dense := s.Dense()

	// Every block (blockRow, blockCol) outside {(i,i), (i,(i+1)%32)} must be
	// the zero 8x8 block.
	for row := 0; row < SparseBlocks; row++ {
		for col := 0; col < SparseBlocks; col++ {
			if col == row || col == (row+1)%SparseBlocks {
				continue
			}
			for bi := 0; bi < 8; bi++ {
				r := dense.L.Row(row*8 + bi)
				for bj := 0; bj < 8; bj++ {
					if getBit(r, col*8+bj) != 0 {
						t.Fatalf("block (%d,%d) is non-zero; only the diagonal and super-diagonal should be", row, col)
					}
				}
			}
		}
	}
}

func TestSparseAffineApplyMatchesDense(t *testing.T) {
	s, err := RandomSparseAffine(rand.Reader)
	if err != nil {
		t.Fatalf("RandomSparseAffine() error = %v", err)
	}
	dense := s.Dense()

	v := make([]byte, SparseBlocks)
	if _, err := rand.Read(v); err != nil {
		t.Fatalf("rand.Read() error = %v", err)
	}

	want := dense.Apply(v)
	got := s.Apply(v)
	if !bytes.Equal(got, want) {
		t.Errorf("SparseAffine.Apply(v) = %x, want %x (dense)", got, want)
	}
}

func TestSparseAffineByteDependsOnTwoBytesOnly(t *testing.T) {
	s, err := RandomSparseAffine(rand.Reader)
	if err != nil {
		t.Fatalf("RandomSparseAffine() error = %v", err)
	}

	v := make([]byte, SparseBlocks)
	if _, err := rand.Read(v); err != nil {
		t.Fatalf("rand.Read() error = %v", err)
	}
	out1 := s.Apply(v)

	// Flipping a byte that is neither i nor i+1 mod 32 must not change byte i.
	const i = 5
	for j := 0; j < SparseBlocks; j++ {
		if j == i || j == (i+1)%SparseBlocks {
			continue
		}
		v2 := append([]byte(nil), v...)
		v2[j] ^= 0xFF
		out2 := s.Apply(v2)
		if out1[i] != out2[i] {
			t.Fatalf("byte %d changed when unrelated byte %d was flipped", i, j)
		}
	}
}
