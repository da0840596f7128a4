package sm4

import (
	"encoding/binary"
	"math/bits"
)

// Shared implementations used by every build

// tau applies the S-box to each byte of a, most significant byte first.
func tau(a uint32) uint32 {
	return uint32(sBox[a>>24])<<24 |
		uint32(sBox[a>>16&0xff])<<16 |
		uint32(sBox[a>>8&0xff])<<8 |
		uint32(sBox[a&0xff])
}

// l is the diffusion used by the encryption rounds.
func l(b uint32) uint32 {
	return b ^ bits.RotateLeft32(b, 2) ^ bits.RotateLeft32(b, 10) ^
		bits.RotateLeft32(b, 18) ^ bits.RotateLeft32(b, 24)
}

// lPrime is the diffusion used by the key schedule.
func lPrime(b uint32) uint32 {
	return b ^ bits.RotateLeft32(b, 13) ^ bits.RotateLeft32(b, 23)
}

// roundT is the round transform T = L∘τ.
func roundT(x uint32) uint32 {
	return l(tau(x))
}

// keyT is the key schedule transform T′ = L′∘τ.
func keyT(x uint32) uint32 {
	return lPrime(tau(x))
}

// expandKey derives the 32 round keys in encryption order. key must be
// exactly KeySize bytes.
func expandKey(key []byte) [Rounds]uint32 {
	if len(key) != KeySize {
		panic("expandKey: key must be exactly 16 bytes")
	}

	s0 := binary.BigEndian.Uint32(key[0:4]) ^ fk[0]
	s1 := binary.BigEndian.Uint32(key[4:8]) ^ fk[1]
	s2 := binary.BigEndian.Uint32(key[8:12]) ^ fk[2]
	s3 := binary.BigEndian.Uint32(key[12:16]) ^ fk[3]

	var rk [Rounds]uint32
	for i := 0; i < Rounds; i++ {
		next := s0 ^ keyT(s1^s2^s3^ck[i])
		rk[i] = next
		s0, s1, s2, s3 = s1, s2, s3, next
	}
	return rk
}

// reverseKeys returns a copy of rk in reverse order. The source is left
// untouched.
func reverseKeys(rk *[Rounds]uint32) [Rounds]uint32 {
	var out [Rounds]uint32
	for i := range out {
		out[i] = rk[Rounds-1-i]
	}
	return out
}

// cryptBlockGeneric runs the 32-round network on one block, computing T
// directly. Passing the round keys reversed decrypts.
func cryptBlockGeneric(rk *[Rounds]uint32, dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("cryptBlockGeneric: input and output must be at least 16 bytes")
	}

	x0 := binary.BigEndian.Uint32(src[0:4])
	x1 := binary.BigEndian.Uint32(src[4:8])
	x2 := binary.BigEndian.Uint32(src[8:12])
	x3 := binary.BigEndian.Uint32(src[12:16])

	for i := 0; i < Rounds; i += 4 {
		x0 ^= roundT(x1 ^ x2 ^ x3 ^ rk[i])
		x1 ^= roundT(x2 ^ x3 ^ x0 ^ rk[i+1])
		x2 ^= roundT(x3 ^ x0 ^ x1 ^ rk[i+2])
		x3 ^= roundT(x0 ^ x1 ^ x2 ^ rk[i+3])
	}

	binary.BigEndian.PutUint32(dst[0:4], x3)
	binary.BigEndian.PutUint32(dst[4:8], x2)
	binary.BigEndian.PutUint32(dst[8:12], x1)
	binary.BigEndian.PutUint32(dst[12:16], x0)
}

// tTable folds τ and L into one lookup per input byte. Entry b holds
// L(S[b]) with S[b] in the least significant byte.
type tTable [256]uint32

// newTTable builds the table from the S-box.
func newTTable() tTable {
	var tab tTable
	for b := range tab {
		tab[b] = l(uint32(sBox[b]))
	}
	return tab
}

// transform computes T(x) with four lookups. L commutes with rotation, so
// the byte at shift s contributes rotl(tab[b], s).
func (tab *tTable) transform(x uint32) uint32 {
	return bits.RotateLeft32(tab[x>>24], 24) ^
		bits.RotateLeft32(tab[x>>16&0xff], 16) ^
		bits.RotateLeft32(tab[x>>8&0xff], 8) ^
		tab[x&0xff]
}

// cryptBlockTable is cryptBlockGeneric with T taken from the table.
func cryptBlockTable(rk *[Rounds]uint32, tab *tTable, dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("cryptBlockTable: input and output must be at least 16 bytes")
	}

	x0 := binary.BigEndian.Uint32(src[0:4])
	x1 := binary.BigEndian.Uint32(src[4:8])
	x2 := binary.BigEndian.Uint32(src[8:12])
	x3 := binary.BigEndian.Uint32(src[12:16])

	for i := 0; i < Rounds; i++ {
		tmp := x0 ^ tab.transform(x1^x2^x3^rk[i])
		x0, x1, x2, x3 = x1, x2, x3, tmp
	}

	binary.BigEndian.PutUint32(dst[0:4], x3)
	binary.BigEndian.PutUint32(dst[4:8], x2)
	binary.BigEndian.PutUint32(dst[8:12], x1)
	binary.BigEndian.PutUint32(dst[12:16], x0)
}
