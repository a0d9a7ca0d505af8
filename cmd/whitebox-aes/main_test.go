package main

import (
	"errors"
	"fmt"
	"testing"

	whitebox "github.com/opd-ai/go-whitebox-aes"
)

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"mismatch", fmt.Errorf("wrap: %w", whitebox.ErrMismatch), 3},
		{"io", fmt.Errorf("wrap: %w", whitebox.ErrIO), 2},
		{"malformed", fmt.Errorf("wrap: %w", whitebox.ErrMalformedInstance), 2},
		{"invalid argument", fmt.Errorf("wrap: %w", whitebox.ErrInvalidArgument), 1},
		{"domain", fmt.Errorf("wrap: %w", whitebox.ErrDomain), 1},
		{"unclassified", errors.New("boom"), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCodeFor(tc.err); got != tc.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestRunWithNoArgsIsUsageError(t *testing.T) {
	if got := run(nil); got != 1 {
		t.Errorf("run(nil) = %d, want 1", got)
	}
}

func TestRunWithUnknownSubcommandIsUsageError(t *testing.T) {
	if got := run([]string{"frobnicate"}); got != 1 {
		t.Errorf("run([frobnicate]) = %d, want 1", got)
	}
}

func TestRunHelpSucceeds(t *testing.T) {
	if got := run([]string{"--help"}); got != 0 {
		t.Errorf("run([--help]) = %d, want 0", got)
	}
}

func TestRunGenWithMissingFlagsIsUsageError(t *testing.T) {
	if got := run([]string{"gen"}); got != 1 {
		t.Errorf("run([gen]) = %d, want 1", got)
	}
}

func TestParseKeyHexRejectsWrongLength(t *testing.T) {
	if _, err := parseKeyHex("00"); err == nil {
		t.Error("parseKeyHex(\"00\") succeeded, want an error")
	}
	key, err := parseKeyHex("00")
	if !errors.Is(mustErr(t, key, err), whitebox.ErrInvalidArgument) {
		t.Error("parseKeyHex error does not wrap ErrInvalidArgument")
	}
}

func mustErr(t *testing.T, _ [16]byte, err error) error {
	t.Helper()
	return err
}
