//go:build amd64

package sm4

import "golang.org/x/sys/cpu"

// AMD64 feature detection for the lane engine

// hasWideLanes is true when eight 32-bit lanes fit one vector register and
// the CPU can gather from a table (AVX2).
var hasWideLanes = cpu.X86.HasAVX2

// SupportsWideLanes reports whether the CPU has eight-lane vector registers.
// The lane engine does not use them yet, so this is informational only.
func SupportsWideLanes() bool {
	return hasWideLanes
}
