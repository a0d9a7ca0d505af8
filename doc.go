// Package whitebox implements the Baek-Cheon-Hong white-box AES-128
// construction: given a 128-bit key and a seeded random source, it generates
// a self-contained table-based instance that evaluates the same function as
// two independent AES-128 encryptions performed side by side on a 32-byte
// wide state, without the key ever appearing explicitly in the instance.
//
// Generation is the expensive, one-time step (NewGenerator,
// (*Generator).GenerateInstance). Evaluation (NewCipher,
// (*Cipher).EncryptBlock) is a fixed sequence of table lookups and XORs with
// no branching on secret data. The round loop itself does not allocate; the
// input and output affine applications each allocate their result slice.
//
// This package offers no protection against an adversary who can read the
// generated tables; it hides the key from casual inspection of the lookup
// tables, nothing more.
package whitebox
