package t2048

import "github.com/vovakirdan/tui-2048/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWin         GameStateType = "win"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism checks and replay.
type Snapshot struct {
	Tick    uint64
	Moves   int
	Score   int
	Board   engine.Grid
	MaxTile int
	State   GameStateType
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.Status() == engine.StatusWon:
		state = StateWin
	case g.engine.Status() == engine.StatusLost:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	board := g.engine.Grid()
	return Snapshot{
		Tick:    g.tick,
		Moves:   g.engine.Moves(),
		Score:   g.engine.Score(),
		Board:   board,
		MaxTile: engine.MaxTile(board),
		State:   state,
	}
}
