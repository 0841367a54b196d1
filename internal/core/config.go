package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
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

// FrameDelta returns the elapsed seconds of one frame at the configured rate.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the summary a game reports to the platform after each frame.
type GameState struct {
	Score     int  // Displayed score
	HighScore int  // Best score reached this run
	Stage     int  // Current stage, starting at 1
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the player is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
