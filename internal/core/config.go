package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int  // Current score
	Won      bool // Whether the win tile was reached
	GameOver bool // Whether the game has ended (won or lost)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState
	Moved bool // Whether a move changed the board
}
