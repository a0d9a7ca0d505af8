package whitebox

import (
	"testing"

	"github.com/opd-ai/go-whitebox-aes/internal/gf2"
)

// identityInstance builds a degenerate instance whose every table outputs
// the byte-wise identity split across two input bytes (T_i(x, y) = x at
// position i, y unused beyond routing) and whose input encoding is the
// identity. It exists purely to exercise the evaluator's plumbing
// (round order, accumulator reset, table indexing) independent of the
// generator.
func identityInstance(t *testing.T) *Instance {
	t.Helper()
	inst := &Instance{FIn: gf2.IdentityAffine(WideStateLen * 8)}

	for r := 0; r < Rounds; r++ {
		var round Round
		for i := 0; i < TablesPerRound; i++ {
			table := newRoundTable()
			for x := 0; x < 256; x++ {
				entry := make([]byte, WideStateLen)
				entry[i] = byte(x)
				for y := 0; y < 256; y++ {
					table.Set(byte(x), byte(y), entry)
				}
			}
			round[i] = table
		}
		inst.Table[r] = round
	}
	return inst
}

func TestCipherEncryptBlockIsIdentityUnderIdentityInstance(t *testing.T) {
	inst := identityInstance(t)
	c := NewCipher(inst)

	var buf [WideStateLen]byte
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	want := buf

	c.EncryptBlock(&buf)
	if buf != want {
		t.Errorf("EncryptBlock() under the identity instance = %x, want %x", buf, want)
	}
}

func TestCipherEncryptPairSplitsCorrectly(t *testing.T) {
	inst := identityInstance(t)
	c := NewCipher(inst)

	upper := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	lower := [16]byte{21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36}

	gotUpper, gotLower := c.EncryptPair(upper, lower)
	if gotUpper != upper {
		t.Errorf("upper half = %v, want %v", gotUpper, upper)
	}
	if gotLower != lower {
		t.Errorf("lower half = %v, want %v", gotLower, lower)
	}
}

func TestCipherAppliesOutputEncodingWhenPresent(t *testing.T) {
	inst := identityInstance(t)

	rng := newTestRNG(t, []byte("cipher output encoding test seed"))
	l, err := gf2.RandomInvertible(rng, WideStateLen*8)
	if err != nil {
		t.Fatalf("RandomInvertible() error = %v", err)
	}
	bias := make([]byte, WideStateLen)
	fout := gf2.NewAffine(l, bias)
	inst.FOut = &fout

	var buf [WideStateLen]byte
	for i := range buf {
		buf[i] = byte(i)
	}
	input := buf

	NewCipher(inst).EncryptBlock(&buf)

	want := fout.Apply(input[:])
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("EncryptBlock() did not apply FOut: got %x, want %x", buf[:], want)
			break
		}
	}
}
