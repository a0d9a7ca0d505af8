package gf2

import "fmt"

// Affine is a GF(2) affine map x -> L*x XOR C over an n-bit space.
type Affine struct {
	L Matrix
	C []byte // n/8 bytes
}

// NewAffine builds an affine map from a linear part and a constant. It
// panics if their dimensions disagree.
func NewAffine(l Matrix, c []byte) Affine {
	if len(c) != l.Dim()/8 {
		panic(fmt.Sprintf("gf2: affine constant has %d bytes, want %d", len(c), l.Dim()/8))
	}
	return Affine{L: l, C: append([]byte(nil), c...)}
}

// IdentityAffine returns the identity affine map on n bits.
func IdentityAffine(n int) Affine {
	return Affine{L: Identity(n), C: make([]byte, n/8)}
}

// Dim returns the affine map's dimension.
func (a Affine) Dim() int { return a.L.Dim() }

// Apply computes L*x XOR C.
func (a Affine) Apply(x []byte) []byte {
	out := a.L.Apply(x)
	for i := range out {
		out[i] ^= a.C[i]
	}
	return out
}

// Invert computes (L,c)^-1 = (L^-1, L^-1*c).
func (a Affine) Invert() (Affine, error) {
	linv, err := a.L.Invert()
	if err != nil {
		return Affine{}, fmt.Errorf("gf2: inverting affine map: %w", err)
	}
	return Affine{L: linv, C: linv.Apply(a.C)}, nil
}

// Compose returns a2 ∘ a1: the map x -> a2(a1(x)).
func Compose(a2, a1 Affine) Affine {
	if a2.Dim() != a1.Dim() {
		panic(fmt.Sprintf("gf2: dimension mismatch %d vs %d", a2.Dim(), a1.Dim()))
	}
	l := a2.L.Mul(a1.L)
	c := a2.L.Apply(a1.C)
	for i := range c {
		c[i] ^= a2.C[i]
	}
	return Affine{L: l, C: c}
}

// Equal reports whether two affine maps are identical.
func (a Affine) Equal(other Affine) bool {
	if !a.L.Equal(other.L) {
		return false
	}
	for i := range a.C {
		if a.C[i] != other.C[i] {
			return false
		}
	}
	return true
}
