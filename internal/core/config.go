package core

// RuntimeConfig contains configuration passed to a game at initialization.
// The platform fills it from the terminal and CLI flags.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 40,
		Seed:    0, // 0 means use current time in platform layer
	}
}
