package main

import (
	"encoding/hex"
	"fmt"

	whitebox "github.com/opd-ai/go-whitebox-aes"
)

// parseKeyHex decodes a 32-character hex string into a 16-byte AES-128 key.
func parseKeyHex(s string) ([16]byte, error) {
	var key [16]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return key, fmt.Errorf("decoding --key-hex: %w: %w", err, whitebox.ErrInvalidArgument)
	}
	if len(b) != 16 {
		return key, fmt.Errorf("--key-hex must decode to 16 bytes, got %d: %w", len(b), whitebox.ErrInvalidArgument)
	}
	copy(key[:], b)
	return key, nil
}

// parseSeedHex decodes an optional hex seed. An empty string is not an
// error; callers substitute a freshly drawn random seed in that case.
func parseSeedHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding --seed: %w: %w", err, whitebox.ErrInvalidArgument)
	}
	return b, nil
}
