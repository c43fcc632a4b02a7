package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for window hosts)
	ScreenH  int   // Screen height
	TickRate int   // Frames per second the host pumps
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the fixed frame duration in seconds for TickRate.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the host-visible summary of a running game.
type GameState struct {
	Score    uint64 // Current score
	Lives    int    // Remaining player health
	Scene    string // Name of the active scene
	GameOver bool   // Whether the game over scene is active
	Paused   bool   // Whether the simulation is paused
}

// StepResult is returned after each simulated frame.
type StepResult struct {
	State GameState
	Quit  bool // The game asked the host to terminate
}
