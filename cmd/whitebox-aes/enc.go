package main

import (
	"flag"
	"fmt"
	"os"

	whitebox "github.com/opd-ai/go-whitebox-aes"
)

func runEnc(args []string) error {
	fs := flag.NewFlagSet("enc", flag.ContinueOnError)
	instPath := fs.String("instance", "", "path to a serialized instance")
	inPath := fs.String("input", "", "path to plaintext, length a multiple of 32 bytes")
	outPath := fs.String("output", "", "path to write ciphertext")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", err, whitebox.ErrInvalidArgument)
	}

	if *instPath == "" || *inPath == "" || *outPath == "" {
		return fmt.Errorf("enc requires --instance, --input, and --output: %w", whitebox.ErrInvalidArgument)
	}

	inst, err := loadInstanceFile(*instPath)
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(*inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w: %w", *inPath, err, whitebox.ErrIO)
	}
	if len(plaintext) == 0 || len(plaintext)%whitebox.WideStateLen != 0 {
		return fmt.Errorf("input length %d is not a positive multiple of %d: %w", len(plaintext), whitebox.WideStateLen, whitebox.ErrInvalidArgument)
	}

	c := whitebox.NewCipher(inst)
	ciphertext := make([]byte, len(plaintext))
	copy(ciphertext, plaintext)
	for off := 0; off < len(ciphertext); off += whitebox.WideStateLen {
		var block [whitebox.WideStateLen]byte
		copy(block[:], ciphertext[off:off+whitebox.WideStateLen])
		c.EncryptBlock(&block)
		copy(ciphertext[off:off+whitebox.WideStateLen], block[:])
	}

	if err := os.WriteFile(*outPath, ciphertext, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w: %w", *outPath, err, whitebox.ErrIO)
	}
	return nil
}

func loadInstanceFile(path string) (*whitebox.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %w", path, err, whitebox.ErrIO)
	}
	defer f.Close()

	inst, err := whitebox.LoadInstance(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return inst, nil
}
