// Package sm4 implements the SM4 block cipher (GB/T 32907-2016).
//
// A Cipher satisfies crypto/cipher.Block and adds EncryptBlocks and
// DecryptBlocks for buffers holding many independent blocks. Modes of
// operation, padding and authentication are left to the caller.
//
// # Engines
//
// Three engines produce identical output:
//
//   - EngineScalar computes the S-box substitution and the linear diffusion
//     directly for every block.
//   - EngineTable replaces substitution plus diffusion with four lookups in
//     a 256-entry table built when the Cipher is created.
//   - EngineLanes transposes groups of eight blocks into four eight-lane
//     vectors and runs all eight through the rounds at once, gathering
//     table entries per lane. Buffers that do not start on a 32-byte
//     boundary, and the final blocks that do not fill a group, go through
//     EngineScalar instead. The lanes are plain Go arrays rather than
//     vector registers, so this engine is the slowest of the three.
//
// EngineAuto, the default, picks EngineTable.
//
// Buffers passed to any call must overlap exactly or not at all; partial
// overlap panics.
//
// # Basic Usage
//
//	c, err := sm4.NewCipher(key)
//	if err != nil {
//	    return err
//	}
//	c.EncryptBlocks(dst, src) // len(src) must be a multiple of 16
//
// A Cipher is never modified after NewCipher returns, so one instance can be
// shared between goroutines.
package sm4
