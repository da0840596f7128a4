package sm4

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestTransposeLaneMapping checks that word i of block j lands in lane j of
// vector i and that untranspose restores the block layout.
func TestTransposeLaneMapping(t *testing.T) {
	t.Parallel()

	var rows blockRows
	for j := range rows {
		for i := range rows[j] {
			rows[j][i] = uint32(j<<8 | i)
		}
	}

	var s laneState
	transpose(&s, &rows)
	for i := range s.x {
		for j := range s.x[i] {
			require.Equal(t, uint32(j<<8|i), s.x[i][j],
				"vector %d lane %d", i, j)
		}
	}

	var back blockRows
	untranspose(&back, &s)
	require.Equal(t, rows, back)
}

// TestLoadStoreBlocks checks the block load and store helpers against each
// other.
func TestLoadStoreBlocks(t *testing.T) {
	t.Parallel()

	src := make([]byte, groupSize)
	for i := range src {
		src[i] = byte(i)
	}

	var rows blockRows
	loadBlocks(&rows, src)
	require.Equal(t, uint32(0x00010203), rows[0][0])
	require.Equal(t, uint32(0x7c7d7e7f), rows[7][3])

	dst := make([]byte, groupSize)
	storeBlocks(dst, &rows)
	require.Equal(t, src, dst)
}

// TestTableTransformEdges compares the table transform with the direct
// computation on structured inputs.
func TestTableTransformEdges(t *testing.T) {
	t.Parallel()

	tab := newTTable()

	inputs := []uint32{0, 0xffffffff, 0x80000000, 0x00000001, 0x01234567,
		0x89abcdef, 0xdeadbeef}
	for b := uint32(0); b < 256; b++ {
		inputs = append(inputs, b, b<<8, b<<16, b<<24,
			b*0x01010101)
	}

	for _, x := range inputs {
		require.Equal(t, roundT(x), tab.transform(x), "x=%08x", x)
	}
}

// TestTableTransform checks table and direct transforms agree on random
// words.
func TestTableTransform(t *testing.T) {
	t.Parallel()

	tab := newTTable()
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Uint32().Draw(rt, "x")
		require.Equal(rt, roundT(x), tab.transform(x))
	})
}

// TestTransformLanes checks the gathered lane transform against the scalar
// table transform lane by lane.
func TestTransformLanes(t *testing.T) {
	t.Parallel()

	tab := newTTable()
	rapid.Check(t, func(rt *rapid.T) {
		var x lanes
		for j := range x {
			x[j] = rapid.Uint32().Draw(rt, "lane")
		}

		got := transformLanes(&tab, x)
		for j := range x {
			require.Equal(rt, roundT(x[j]), got[j], "lane %d", j)
		}
	})
}

// TestCryptBlocksLanes runs one group directly through the lane engine and
// compares it with the scalar engine, in both directions.
func TestCryptBlocksLanes(t *testing.T) {
	t.Parallel()

	tab := newTTable()
	rapid.Check(t, func(rt *rapid.T) {
		key := rapid.SliceOfN(rapid.Byte(), KeySize, KeySize).Draw(rt, "key")
		src := rapid.SliceOfN(
			rapid.Byte(), groupSize, groupSize,
		).Draw(rt, "src")

		rk := expandKey(key)
		want := make([]byte, groupSize)
		for j := 0; j < Lanes; j++ {
			cryptBlockGeneric(&rk, want[j*BlockSize:], src[j*BlockSize:])
		}

		got := make([]byte, groupSize)
		cryptBlocksLanes(&rk, &tab, got, src)
		require.Equal(rt, want, got)

		dec := reverseKeys(&rk)
		cryptBlocksLanes(&dec, &tab, got, got)
		require.Equal(rt, src, got)
	})
}

// TestReverseKeys checks that the reversed copy leaves its source intact.
func TestReverseKeys(t *testing.T) {
	t.Parallel()

	var rk [Rounds]uint32
	for i := range rk {
		rk[i] = uint32(i)
	}
	orig := rk

	rev := reverseKeys(&rk)
	require.Equal(t, orig, rk)
	for i := range rev {
		require.Equal(t, uint32(Rounds-1-i), rev[i])
	}
	require.Equal(t, rk, reverseKeys(&rev))
}

// TestIsAligned checks the alignment probe.
func TestIsAligned(t *testing.T) {
	t.Parallel()

	buf := alignedBuffer(2 * laneAlign)
	require.True(t, isAligned(buf))
	require.True(t, isAligned(buf[laneAlign:]))
	for off := 1; off < laneAlign; off++ {
		require.False(t, isAligned(buf[off:]), "offset %d", off)
	}
	require.False(t, isAligned(nil))
}

// TestInexactOverlap checks the buffer overlap helpers.
func TestInexactOverlap(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 64)

	require.False(t, inexactOverlap(buf, buf))
	require.False(t, inexactOverlap(buf[:32], buf[32:]))
	require.False(t, inexactOverlap(nil, buf))
	require.True(t, inexactOverlap(buf[1:], buf))
	require.True(t, inexactOverlap(buf[:33], buf[32:]))

	require.True(t, anyOverlap(buf, buf))
	require.False(t, anyOverlap(buf[:32], buf[32:]))
}
