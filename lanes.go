package sm4

import (
	"encoding/binary"
	"math/bits"
)

// Eight-lane engine. Each lane vector holds the same word position of eight
// independent blocks, one lane per block, so one pass of the round loop
// advances all eight blocks.

const (
	Lanes     = 8                 // Blocks per lane group
	groupSize = Lanes * BlockSize // Bytes per lane group
	laneAlign = 32                // Required buffer alignment for the lane engine
)

// lanes is one wide register: lane j belongs to block j of the group.
type lanes [Lanes]uint32

// laneState holds word i of every block of the group in x[i].
type laneState struct {
	x [4]lanes
}

// blockRows is the group in block layout: row j is block j as four words.
type blockRows [Lanes][4]uint32

// loadBlocks reads eight big-endian blocks from src.
func loadBlocks(rows *blockRows, src []byte) {
	for j := range rows {
		b := src[j*BlockSize : (j+1)*BlockSize]
		rows[j][0] = binary.BigEndian.Uint32(b[0:4])
		rows[j][1] = binary.BigEndian.Uint32(b[4:8])
		rows[j][2] = binary.BigEndian.Uint32(b[8:12])
		rows[j][3] = binary.BigEndian.Uint32(b[12:16])
	}
}

// storeBlocks writes eight blocks to dst in big-endian order.
func storeBlocks(dst []byte, rows *blockRows) {
	for j := range rows {
		b := dst[j*BlockSize : (j+1)*BlockSize]
		binary.BigEndian.PutUint32(b[0:4], rows[j][0])
		binary.BigEndian.PutUint32(b[4:8], rows[j][1])
		binary.BigEndian.PutUint32(b[8:12], rows[j][2])
		binary.BigEndian.PutUint32(b[12:16], rows[j][3])
	}
}

// transpose moves word i of block j into lane j of vector i.
func transpose(s *laneState, rows *blockRows) {
	for i := range s.x {
		for j := range s.x[i] {
			s.x[i][j] = rows[j][i]
		}
	}
}

// untranspose is the inverse of transpose.
func untranspose(rows *blockRows, s *laneState) {
	for j := range rows {
		for i := range rows[j] {
			rows[j][i] = s.x[i][j]
		}
	}
}

// broadcast copies w into every lane.
func broadcast(w uint32) lanes {
	var v lanes
	for j := range v {
		v[j] = w
	}
	return v
}

// xorLanes XORs two vectors lane by lane.
func xorLanes(a, b lanes) lanes {
	for j := range a {
		a[j] ^= b[j]
	}
	return a
}

// gather reads tab at each lane's own byte selected by shift and rotates the
// entry into that byte's position.
func gather(tab *tTable, idx *lanes, shift uint) lanes {
	var v lanes
	for j := range v {
		v[j] = bits.RotateLeft32(tab[idx[j]>>shift&0xff], int(shift))
	}
	return v
}

// transformLanes computes T on every lane from four gathered lookups.
func transformLanes(tab *tTable, x lanes) lanes {
	v := gather(tab, &x, 24)
	v = xorLanes(v, gather(tab, &x, 16))
	v = xorLanes(v, gather(tab, &x, 8))
	return xorLanes(v, gather(tab, &x, 0))
}

// cryptBlocksLanes runs exactly one group of eight blocks through the
// network. Its output matches cryptBlockGeneric applied to each block.
func cryptBlocksLanes(rk *[Rounds]uint32, tab *tTable, dst, src []byte) {
	if len(src) < groupSize || len(dst) < groupSize {
		panic("cryptBlocksLanes: input and output must be at least 128 bytes")
	}

	var (
		rows blockRows
		s    laneState
	)
	loadBlocks(&rows, src)
	transpose(&s, &rows)

	x0, x1, x2, x3 := s.x[0], s.x[1], s.x[2], s.x[3]
	for i := 0; i < Rounds; i++ {
		tmp := xorLanes(xorLanes(x1, x2), xorLanes(x3, broadcast(rk[i])))
		tmp = xorLanes(x0, transformLanes(tab, tmp))
		x0, x1, x2, x3 = x1, x2, x3, tmp
	}

	s.x[0], s.x[1], s.x[2], s.x[3] = x3, x2, x1, x0
	untranspose(&rows, &s)
	storeBlocks(dst, &rows)
}
