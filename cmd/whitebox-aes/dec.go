package main

import (
	"flag"
	"fmt"
	"os"

	whitebox "github.com/opd-ai/go-whitebox-aes"
	"github.com/opd-ai/go-whitebox-aes/internal/aesref"
)

func runDec(args []string) error {
	fs := flag.NewFlagSet("dec", flag.ContinueOnError)
	instPath := fs.String("instance", "", "path to a serialized instance")
	keyHex := fs.String("key-hex", "", "AES-128 key, 32 hex characters")
	inPath := fs.String("in", "", "path to ciphertext, length a multiple of 32 bytes")
	outPath := fs.String("out", "", "path to write plaintext")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", err, whitebox.ErrInvalidArgument)
	}

	if *instPath == "" || *keyHex == "" || *inPath == "" || *outPath == "" {
		return fmt.Errorf("dec requires --instance, --key-hex, --in, and --out: %w", whitebox.ErrInvalidArgument)
	}

	inst, err := loadInstanceFile(*instPath)
	if err != nil {
		return err
	}
	if inst.OutputEncodingPresent {
		return fmt.Errorf("instance %s carries an external output encoding; reference AES-128 decryption cannot undo it: %w", *instPath, whitebox.ErrInvalidArgument)
	}

	key, err := parseKeyHex(*keyHex)
	if err != nil {
		return err
	}

	ciphertext, err := os.ReadFile(*inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w: %w", *inPath, err, whitebox.ErrIO)
	}
	if len(ciphertext) == 0 || len(ciphertext)%whitebox.WideStateLen != 0 {
		return fmt.Errorf("input length %d is not a positive multiple of %d: %w", len(ciphertext), whitebox.WideStateLen, whitebox.ErrInvalidArgument)
	}

	plaintext := make([]byte, len(ciphertext))
	for off := 0; off < len(ciphertext); off += whitebox.WideStateLen {
		var upper, lower [16]byte
		copy(upper[:], ciphertext[off:off+16])
		copy(lower[:], ciphertext[off+16:off+32])

		pUpper := aesref.DecryptBlock(key, upper)
		pLower := aesref.DecryptBlock(key, lower)

		copy(plaintext[off:off+16], pUpper[:])
		copy(plaintext[off+16:off+32], pLower[:])
	}

	if err := os.WriteFile(*outPath, plaintext, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w: %w", *outPath, err, whitebox.ErrIO)
	}
	return nil
}
