package main

import (
	"crypto/rand"
	"flag"
	"fmt"

	whitebox "github.com/opd-ai/go-whitebox-aes"
	"github.com/opd-ai/go-whitebox-aes/internal/aesref"
	"github.com/opd-ai/go-whitebox-aes/internal/drbg"
)

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", err, whitebox.ErrInvalidArgument)
	}

	var key [16]byte
	if _, err := rand.Read(key[:]); err != nil {
		return fmt.Errorf("drawing a random key: %w: %w", err, whitebox.ErrIO)
	}
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return fmt.Errorf("drawing a random seed: %w: %w", err, whitebox.ErrIO)
	}

	rng, err := drbg.New(seed)
	if err != nil {
		return fmt.Errorf("building the random source: %w", err)
	}
	gen := whitebox.NewGenerator(rng, whitebox.Config{})

	fmt.Println("demo: generating instance...")
	inst, err := gen.GenerateInstance(key)
	if err != nil {
		return fmt.Errorf("generating instance: %w", err)
	}

	var upper, lower [16]byte
	if _, err := rand.Read(upper[:]); err != nil {
		return fmt.Errorf("drawing a random block: %w: %w", err, whitebox.ErrIO)
	}
	if _, err := rand.Read(lower[:]); err != nil {
		return fmt.Errorf("drawing a random block: %w: %w", err, whitebox.ErrIO)
	}

	gotUpper, gotLower := whitebox.NewCipher(inst).EncryptPair(upper, lower)
	backUpper := aesref.DecryptBlock(key, gotUpper)
	backLower := aesref.DecryptBlock(key, gotLower)

	if backUpper != upper || backLower != lower {
		return fmt.Errorf("reference AES-128 decryption of the white-box output did not recover the input: %w", whitebox.ErrMismatch)
	}

	fmt.Println("demo: reference AES-128 decryption of the white-box output recovered the input")
	return nil
}
