package whitebox_test

import (
	"bytes"
	"fmt"

	whitebox "github.com/opd-ai/go-whitebox-aes"
	"github.com/opd-ai/go-whitebox-aes/internal/drbg"
)

// Example generates an instance for an all-zero key and confirms that
// saving and reloading it preserves its behavior.
func Example() {
	rng, err := drbg.New([]byte("example seed"))
	if err != nil {
		panic(err)
	}
	gen := whitebox.NewGenerator(rng, whitebox.Config{})

	var key [16]byte
	inst, err := gen.GenerateInstance(key)
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	if err := inst.Save(&buf); err != nil {
		panic(err)
	}
	loaded, err := whitebox.LoadInstance(&buf)
	if err != nil {
		panic(err)
	}

	upper := [16]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	var lower [16]byte

	a, _ := whitebox.NewCipher(inst).EncryptPair(upper, lower)
	b, _ := whitebox.NewCipher(loaded).EncryptPair(upper, lower)

	fmt.Println(a == b)
	// Output: true
}
