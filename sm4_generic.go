//go:build !amd64 && !arm64

package sm4

// SupportsWideLanes returns false on architectures without detected
// eight-lane vector registers.
func SupportsWideLanes() bool {
	return false
}
