package main

import (
	"crypto/rand"
	"flag"
	"fmt"

	whitebox "github.com/opd-ai/go-whitebox-aes"
	"github.com/opd-ai/go-whitebox-aes/internal/aesref"
)

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	instPath := fs.String("instance", "", "path to a serialized instance")
	keyHex := fs.String("key-hex", "", "AES-128 key, 32 hex characters")
	samples := fs.Int("samples", 64, "number of random 32-byte inputs to check")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", err, whitebox.ErrInvalidArgument)
	}

	if *instPath == "" || *keyHex == "" {
		return fmt.Errorf("check requires --instance and --key-hex: %w", whitebox.ErrInvalidArgument)
	}
	if *samples <= 0 {
		return fmt.Errorf("--samples must be positive, got %d: %w", *samples, whitebox.ErrInvalidArgument)
	}

	inst, err := loadInstanceFile(*instPath)
	if err != nil {
		return err
	}
	key, err := parseKeyHex(*keyHex)
	if err != nil {
		return err
	}

	c := whitebox.NewCipher(inst)
	for n := 0; n < *samples; n++ {
		var upper, lower [16]byte
		if _, err := rand.Read(upper[:]); err != nil {
			return fmt.Errorf("drawing a random sample: %w: %w", err, whitebox.ErrIO)
		}
		if _, err := rand.Read(lower[:]); err != nil {
			return fmt.Errorf("drawing a random sample: %w: %w", err, whitebox.ErrIO)
		}

		gotUpper, gotLower := c.EncryptPair(upper, lower)
		wantUpper := aesref.EncryptBlock(key, upper)
		wantLower := aesref.EncryptBlock(key, lower)

		if gotUpper != wantUpper || gotLower != wantLower {
			return fmt.Errorf("sample %d disagreed with reference AES-128: %w", n, whitebox.ErrMismatch)
		}
	}

	fmt.Printf("check: %d samples agreed with reference AES-128\n", *samples)
	return nil
}
