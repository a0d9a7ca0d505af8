// Package drbg provides a deterministic, seeded random byte stream for the
// white-box generator. Reproducibility across platforms and processes is
// the only contract: the same seed must always produce the same stream, on
// any machine. It is built the way the ancestor codebase's AES-CTR-DRBG
// reference material does it: key and IV are derived from the caller's seed
// with a hash function, and a block cipher in counter mode then supplies
// the keystream.
package drbg

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/opd-ai/go-whitebox-aes/internal"
)

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// New returns a deterministic io.Reader seeded from seed. Reading from it
// repeatedly yields the AES-128-CTR keystream of a key and IV derived from
// seed via BLAKE2b, so identical seeds always yield identical streams.
func New(seed []byte) (io.Reader, error) {
	key, iv, err := deriveKeyIV(seed)
	if err != nil {
		return nil, fmt.Errorf("drbg: deriving key and IV: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("drbg: building AES-CTR stream: %w", err)
	}
	stream := cipher.NewCTR(block, iv)

	return &cipher.StreamReader{S: stream, R: zeroReader{}}, nil
}

// deriveKeyIV derives a 16-byte AES key and a 16-byte CTR initial counter
// from seed using two domain-separated keyed BLAKE2b-256 hashes.
func deriveKeyIV(seed []byte) (key, iv []byte, err error) {
	keyHash, err := internal.Blake2b256([]byte("go-whitebox-aes/drbg/key"), seed)
	if err != nil {
		return nil, nil, err
	}
	ivHash, err := internal.Blake2b256([]byte("go-whitebox-aes/drbg/iv"), seed)
	if err != nil {
		return nil, nil, err
	}
	return keyHash[:16], ivHash[:16], nil
}
