// Package internal provides small cryptographic helpers shared by the other
// internal packages, wrapping golang.org/x/crypto/blake2b.
package internal

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Blake2b256 computes a 256-bit, optionally keyed BLAKE2b hash. It is used
// to derive the AES-CTR DRBG's key and IV from a caller-supplied seed with
// domain separation.
func Blake2b256(key, data []byte) ([32]byte, error) {
	var out [32]byte
	var h hash.Hash
	var err error
	if len(key) > 0 {
		h, err = blake2b.New256(key)
	} else {
		h, err = blake2b.New256(nil)
	}
	if err != nil {
		return out, err
	}
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return out, nil
}
