package sm4

import "fmt"

// Engine selects how blocks are pushed through the cipher network.
type Engine uint8

const (
	// EngineAuto picks EngineTable, the fastest engine on every
	// architecture.
	EngineAuto Engine = iota

	// EngineScalar computes τ and L directly for every block.
	EngineScalar

	// EngineTable runs each block on its own using the precomputed
	// transform table.
	EngineTable

	// EngineLanes transforms aligned groups of eight blocks at once and
	// handles the rest with EngineScalar. The lanes are plain Go arrays,
	// so it is slower than EngineTable; it serves as the reference for
	// the lane layout.
	EngineLanes
)

// String returns a human readable name for the engine.
func (e Engine) String() string {
	switch e {
	case EngineAuto:
		return "auto"
	case EngineScalar:
		return "scalar"
	case EngineTable:
		return "table"
	case EngineLanes:
		return "lanes"
	default:
		return fmt.Sprintf("engine(%d)", uint8(e))
	}
}

// config holds the construction settings of a Cipher.
type config struct {
	engine Engine
}

// defaultConfig returns the settings used when no Option is given.
func defaultConfig() *config {
	return &config{
		engine: EngineAuto,
	}
}

// resolveEngine maps EngineAuto and unknown values to a concrete engine.
func (c *config) resolveEngine() Engine {
	switch c.engine {
	case EngineScalar, EngineTable, EngineLanes:
		return c.engine

	case EngineAuto:

	default:
		log.Warnf("Unknown engine %v, falling back to auto", c.engine)
	}

	return EngineTable
}

// Option modifies the construction settings of a Cipher.
type Option func(*config)

// WithEngine forces the engine used by the Cipher.
func WithEngine(e Engine) Option {
	return func(c *config) {
		c.engine = e
	}
}
