package gf2

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func randomAffine(t *testing.T, n int) Affine {
	t.Helper()
	l, err := RandomInvertible(rand.Reader, n)
	if err != nil {
		t.Fatalf("RandomInvertible() error = %v", err)
	}
	c := make([]byte, n/8)
	if _, err := rand.Read(c); err != nil {
		t.Fatalf("rand.Read() error = %v", err)
	}
	return NewAffine(l, c)
}

func TestAffineInvertRoundTrip(t *testing.T) {
	a := randomAffine(t, 128)
	ainv, err := a.Invert()
	if err != nil {
		t.Fatalf("Invert() error = %v", err)
	}

	x := make([]byte, 16)
	if _, err := rand.Read(x); err != nil {
		t.Fatalf("rand.Read() error = %v", err)
	}

	if got := ainv.Apply(a.Apply(x)); !bytes.Equal(got, x) {
		t.Errorf("ainv(a(x)) = %x, want %x", got, x)
	}
	if got := a.Apply(ainv.Apply(x)); !bytes.Equal(got, x) {
		t.Errorf("a(ainv(x)) = %x, want %x", got, x)
	}
}

func TestComposeMatchesSequentialApplication(t *testing.T) {
	a1 := randomAffine(t, 128)
	a2 := randomAffine(t, 128)
	composed := Compose(a2, a1)

	x := make([]byte, 16)
	if _, err := rand.Read(x); err != nil {
		t.Fatalf("rand.Read() error = %v", err)
	}

	want := a2.Apply(a1.Apply(x))
	got := composed.Apply(x)
	if !bytes.Equal(got, want) {
		t.Errorf("Compose(a2,a1).Apply(x) = %x, want %x", got, want)
	}
}

func TestIdentityAffineIsNoop(t *testing.T) {
	id := IdentityAffine(256)
	x := make([]byte, 32)
	if _, err := rand.Read(x); err != nil {
		t.Fatalf("rand.Read() error = %v", err)
	}
	if got := id.Apply(x); !bytes.Equal(got, x) {
		t.Errorf("IdentityAffine.Apply(x) = %x, want %x", got, x)
	}
}
