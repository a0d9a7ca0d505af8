package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"

	whitebox "github.com/opd-ai/go-whitebox-aes"
	"github.com/opd-ai/go-whitebox-aes/internal/drbg"
)

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	keyHex := fs.String("key-hex", "", "AES-128 key, 32 hex characters")
	out := fs.String("out", "", "path to write the serialized instance")
	seedHex := fs.String("seed", "", "hex-encoded seed for the deterministic random source (random if omitted)")
	externalEncodings := fs.Bool("external-encodings", false, "fold a random external output encoding into the instance")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", err, whitebox.ErrInvalidArgument)
	}

	if *keyHex == "" || *out == "" {
		return fmt.Errorf("gen requires --key-hex and --out: %w", whitebox.ErrInvalidArgument)
	}

	key, err := parseKeyHex(*keyHex)
	if err != nil {
		return err
	}

	seed, err := parseSeedHex(*seedHex)
	if err != nil {
		return err
	}
	if seed == nil {
		seed = make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			return fmt.Errorf("drawing a random seed: %w: %w", err, whitebox.ErrIO)
		}
	}

	rng, err := drbg.New(seed)
	if err != nil {
		return fmt.Errorf("building the random source: %w", err)
	}

	gen := whitebox.NewGenerator(rng, whitebox.Config{ExternalEncodings: *externalEncodings})
	inst, err := gen.GenerateInstance(key)
	if err != nil {
		return fmt.Errorf("generating instance: %w", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating %s: %w: %w", *out, err, whitebox.ErrIO)
	}
	defer f.Close()

	if err := inst.Save(f); err != nil {
		return fmt.Errorf("writing instance: %w", err)
	}
	return nil
}
