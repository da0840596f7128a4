package sm4_test

import (
	"encoding/hex"
	"fmt"

	sm4 "github.com/gmcrypto/go-sm4"
)

// ExampleNewCipher encrypts and decrypts the standard test block
func ExampleNewCipher() {
	key, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")
	c, err := sm4.NewCipher(key)
	if err != nil {
		panic(err)
	}

	ct := make([]byte, sm4.BlockSize)
	c.Encrypt(ct, key)
	fmt.Println(hex.EncodeToString(ct))

	pt := make([]byte, sm4.BlockSize)
	c.Decrypt(pt, ct)
	fmt.Println(hex.EncodeToString(pt))

	// Output:
	// 681edf34d206965e86b3e94f536e4246
	// 0123456789abcdeffedcba9876543210
}

// ExampleCipher_EncryptBlocks encrypts a buffer of several blocks. The
// buffer needs no particular alignment.
func ExampleCipher_EncryptBlocks() {
	key := []byte("0123456789abcdef")
	c, _ := sm4.NewCipher(key, sm4.WithEngine(sm4.EngineLanes))

	src := make([]byte, 9*sm4.BlockSize)
	dst := make([]byte, len(src))
	c.EncryptBlocks(dst, src)

	back := make([]byte, len(dst))
	c.DecryptBlocks(back, dst)

	fmt.Printf("Engine: %v\n", c.Engine())
	fmt.Printf("Blocks: %d\n", len(dst)/sm4.BlockSize)
	fmt.Printf("Round trip: %t\n", string(back) == string(src))

	// Output:
	// Engine: lanes
	// Blocks: 9
	// Round trip: true
}
