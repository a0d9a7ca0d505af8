package whitebox

import (
	"io"
	"testing"

	"github.com/opd-ai/go-whitebox-aes/internal/drbg"
)

// newTestRNG returns a deterministic random source for tests that do not
// need a Generator, such as exercising gf2 or table-layer helpers directly.
func newTestRNG(t *testing.T, seed []byte) io.Reader {
	t.Helper()
	rng, err := drbg.New(seed)
	if err != nil {
		t.Fatalf("drbg.New() error = %v", err)
	}
	return rng
}
