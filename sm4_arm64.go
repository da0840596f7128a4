//go:build arm64

package sm4

import "golang.org/x/sys/cpu"

// ARM64 feature detection for the lane engine

var hasWideLanes bool

func init() {
	// ASIMD is mandatory on ARMv8, but some systems leave the HWCAP bit
	// unset; assume it when the detection came back empty.
	hasWideLanes = cpu.ARM64.HasASIMD || !cpu.Initialized
}

// SupportsWideLanes reports whether the CPU has eight-lane vector registers.
// The lane engine does not use them yet, so this is informational only.
func SupportsWideLanes() bool {
	return hasWideLanes
}
