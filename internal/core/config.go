package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt its board layout to the terminal size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level    int  // Active level, 1-indexed
	Levels   int  // Total number of levels
	Solved   int  // Levels whose closed path satisfied the completion policy
	GameOver bool // No further input is processed
	Finished bool // All levels were played through
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
