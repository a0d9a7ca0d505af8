package whitebox

import "errors"

// Sentinel error kinds. Library errors wrap one of these with
// fmt.Errorf("...: %w", ...) so callers can classify failures with
// errors.Is regardless of the wrapping message.
var (
	// ErrInvalidArgument marks a caller-supplied argument that is
	// structurally wrong: bad hex length, a plaintext length that is not a
	// multiple of 32, or a decrypt request against an instance carrying an
	// output encoding.
	ErrInvalidArgument = errors.New("whitebox: invalid argument")

	// ErrIO marks a failure reading, writing, or seeking a stream.
	ErrIO = errors.New("whitebox: i/o failure")

	// ErrMalformedInstance marks a serialized instance that carries an
	// unrecognized magic or version. LoadInstance reports a stream that
	// ends early (a truncated instance) as ErrIO, not as this kind.
	ErrMalformedInstance = errors.New("whitebox: malformed instance")

	// ErrDomain marks a linear-algebra domain error: a non-invertible
	// matrix handed to Invert. Seeing this at runtime indicates a
	// programming error or corrupted random source, not bad user input.
	ErrDomain = errors.New("whitebox: linear algebra domain error")

	// ErrMismatch marks a correctness check (the check subcommand, or a
	// test) finding that white-box evaluation disagrees with the reference
	// AES-128 implementation.
	ErrMismatch = errors.New("whitebox: correctness mismatch")
)
