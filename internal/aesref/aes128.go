// Package aesref provides the AES-128 reference material the white-box
// generator treats as ground truth: the key schedule (which crypto/aes does
// not expose) plus the individual round transformations needed to build the
// GF(2) matrices of AES's linear layers, and whole-block encrypt/decrypt
// backed by the standard library for use in tests and the `check`/`dec` CLI
// paths.
package aesref

import "crypto/aes"

// Rounds is the number of AES-128 rounds.
const Rounds = 10

// ExpandKey computes the 11 round keys of the AES-128 key schedule
// (FIPS-197 section 5.2) from a 16-byte cipher key. RoundKeys[0] is the
// cipher key itself.
func ExpandKey(key [16]byte) [Rounds + 1][16]byte {
	var w [4 * (Rounds + 1)][4]byte
	for i := 0; i < 4; i++ {
		w[i] = [4]byte{key[4*i], key[4*i+1], key[4*i+2], key[4*i+3]}
	}

	for i := 4; i < len(w); i++ {
		temp := w[i-1]
		if i%4 == 0 {
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/4-1]
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-4][j] ^ temp[j]
		}
	}

	var roundKeys [Rounds + 1][16]byte
	for r := 0; r <= Rounds; r++ {
		for c := 0; c < 4; c++ {
			copy(roundKeys[r][4*c:4*c+4], w[4*r+c][:])
		}
	}
	return roundKeys
}

func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

func subWord(w [4]byte) [4]byte {
	return [4]byte{SBox[w[0]], SBox[w[1]], SBox[w[2]], SBox[w[3]]}
}

// SubBytesBytes applies the AES S-box to every byte of a 16-byte block,
// returning a new slice.
func SubBytesBytes(block []byte) []byte {
	out := make([]byte, len(block))
	for i, b := range block {
		out[i] = SBox[b]
	}
	return out
}

// ShiftRowsBytes applies AES's ShiftRows to a 16-byte block in the
// standard column-major layout (state[row+4*col]), returning a new slice.
// It is linear over GF(2), so it may be lifted to a bit matrix with
// gf2.Lift.
func ShiftRowsBytes(block []byte) []byte {
	out := make([]byte, 16)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			srcCol := (col + row) % 4
			out[row+4*col] = block[row+4*srcCol]
		}
	}
	return out
}

// InvShiftRowsBytes is the inverse of ShiftRowsBytes.
func InvShiftRowsBytes(block []byte) []byte {
	out := make([]byte, 16)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			srcCol := (col - row + 4) % 4
			out[row+4*col] = block[row+4*srcCol]
		}
	}
	return out
}

// MixColumnsBytes applies AES's MixColumns to a 16-byte block, returning a
// new slice. It is linear over GF(2).
func MixColumnsBytes(block []byte) []byte {
	out := make([]byte, 16)
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := block[4*c], block[4*c+1], block[4*c+2], block[4*c+3]
		out[4*c+0] = gmul(s0, 2) ^ gmul(s1, 3) ^ s2 ^ s3
		out[4*c+1] = s0 ^ gmul(s1, 2) ^ gmul(s2, 3) ^ s3
		out[4*c+2] = s0 ^ s1 ^ gmul(s2, 2) ^ gmul(s3, 3)
		out[4*c+3] = gmul(s0, 3) ^ s1 ^ s2 ^ gmul(s3, 2)
	}
	return out
}

// InvMixColumnsBytes is the inverse of MixColumnsBytes.
func InvMixColumnsBytes(block []byte) []byte {
	out := make([]byte, 16)
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := block[4*c], block[4*c+1], block[4*c+2], block[4*c+3]
		out[4*c+0] = gmul(s0, 14) ^ gmul(s1, 11) ^ gmul(s2, 13) ^ gmul(s3, 9)
		out[4*c+1] = gmul(s0, 9) ^ gmul(s1, 14) ^ gmul(s2, 11) ^ gmul(s3, 13)
		out[4*c+2] = gmul(s0, 13) ^ gmul(s1, 9) ^ gmul(s2, 14) ^ gmul(s3, 11)
		out[4*c+3] = gmul(s0, 11) ^ gmul(s1, 13) ^ gmul(s2, 9) ^ gmul(s3, 14)
	}
	return out
}

// MixColumnsAfterShiftRows composes MixColumns after ShiftRows, the linear
// layer AES applies in rounds 1..9. It is linear over GF(2).
func MixColumnsAfterShiftRows(block []byte) []byte {
	return MixColumnsBytes(ShiftRowsBytes(block))
}

// EncryptBlock encrypts a single 16-byte block under key using the standard
// library's AES-128 implementation as ground truth.
func EncryptBlock(key [16]byte, block [16]byte) [16]byte {
	c, err := aes.NewCipher(key[:])
	if err != nil {
		// key is always exactly 16 bytes by its type, so aes.NewCipher
		// cannot reject it.
		panic(err)
	}
	var out [16]byte
	c.Encrypt(out[:], block[:])
	return out
}

// DecryptBlock decrypts a single 16-byte block under key using the standard
// library's AES-128 implementation as ground truth.
func DecryptBlock(key [16]byte, block [16]byte) [16]byte {
	c, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	var out [16]byte
	c.Decrypt(out[:], block[:])
	return out
}
