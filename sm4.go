package sm4

import (
	"crypto/cipher"
	"errors"
	"strconv"
)

// Algorithm parameters
const (
	KeySize   = 16 // 128 bits
	BlockSize = 16 // 128 bits
	Rounds    = 32 // Number of Feistel rounds and round keys
)

// ErrInvalidKeySize is matched by every KeySizeError through errors.Is.
var ErrInvalidKeySize = errors.New("sm4: invalid key size")

// KeySizeError is returned by NewCipher for a key that is not KeySize bytes.
type KeySizeError int

// Error returns the message including the rejected length.
func (k KeySizeError) Error() string {
	return "sm4: invalid key size " + strconv.Itoa(int(k))
}

// Is reports whether target is ErrInvalidKeySize.
func (k KeySizeError) Is(target error) bool {
	return target == ErrInvalidKeySize
}

// Cipher is an SM4 instance bound to a single key. The round keys and the
// transform table are written once by NewCipher, so a Cipher may be shared
// between goroutines.
type Cipher struct {
	roundKeys [Rounds]uint32 // Encryption order; decryption reverses a copy
	table     tTable         // τ and L folded into one lookup per byte
	engine    Engine         // Resolved engine, never EngineAuto
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key and returns a ready Cipher.
func NewCipher(key []byte, opts ...Option) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cipher{
		roundKeys: expandKey(key),
		table:     newTTable(),
		engine:    cfg.resolveEngine(),
	}

	log.Debugf("New cipher using %v engine (wide lanes supported: %v)",
		c.engine, SupportsWideLanes())

	return c, nil
}

// BlockSize returns the cipher's block size.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Engine returns the engine the batch calls run on.
func (c *Cipher) Engine() Engine {
	return c.engine
}

// Encrypt encrypts the first block of src into dst. dst and src must overlap
// entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	checkBlock(dst, src)
	c.cryptBlock(&c.roundKeys, dst, src)
}

// Decrypt decrypts the first block of src into dst. dst and src must overlap
// entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	checkBlock(dst, src)
	rk := reverseKeys(&c.roundKeys)
	c.cryptBlock(&rk, dst, src)
}

// EncryptBlocks encrypts every block of src into dst. It gives the same
// result as calling Encrypt on each block in turn; groups of eight blocks
// may be processed together depending on the engine and buffer alignment.
// dst and src must overlap entirely or not at all.
func (c *Cipher) EncryptBlocks(dst, src []byte) {
	checkBlocks(dst, src)
	c.cryptBlocks(&c.roundKeys, dst, src)
}

// DecryptBlocks is the inverse of EncryptBlocks.
func (c *Cipher) DecryptBlocks(dst, src []byte) {
	checkBlocks(dst, src)
	rk := reverseKeys(&c.roundKeys)
	c.cryptBlocks(&rk, dst, src)
}

// Reset wipes the key material. The Cipher must not be used afterwards.
func (c *Cipher) Reset() {
	zeroWords(c.roundKeys[:])
}

// cryptBlock runs one block through the per-block engine that matches the
// configured engine.
func (c *Cipher) cryptBlock(rk *[Rounds]uint32, dst, src []byte) {
	if c.engine == EngineTable {
		cryptBlockTable(rk, &c.table, dst, src)
		return
	}
	cryptBlockGeneric(rk, dst, src)
}

// cryptBlocks applies the batch policy: whole groups of eight go through the
// lane engine when it is selected and both buffers are aligned, everything
// else block by block.
func (c *Cipher) cryptBlocks(rk *[Rounds]uint32, dst, src []byte) {
	n := len(src) / BlockSize
	if n == 0 {
		return
	}

	done := 0
	if c.engine == EngineLanes && isAligned(src) && isAligned(dst) {
		for ; n-done >= Lanes; done += Lanes {
			off := done * BlockSize
			cryptBlocksLanes(
				rk, &c.table, dst[off:off+groupSize],
				src[off:off+groupSize],
			)
		}
	}

	for ; done < n; done++ {
		off := done * BlockSize
		c.cryptBlock(rk, dst[off:off+BlockSize], src[off:off+BlockSize])
	}
}

// checkBlock validates the buffers of a single-block call.
func checkBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sm4: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sm4: output not full block")
	}
	if inexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("sm4: invalid buffer overlap")
	}
}

// checkBlocks validates the buffers of a batch call.
func checkBlocks(dst, src []byte) {
	if len(src)%BlockSize != 0 {
		panic("sm4: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("sm4: output smaller than input")
	}
	if inexactOverlap(dst[:len(src)], src) {
		panic("sm4: invalid buffer overlap")
	}
}
