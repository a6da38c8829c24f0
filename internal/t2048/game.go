// Package t2048 wraps the 2048 engine into a playable session: input frames
// in, screen buffer out.
package t2048

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Title is the display name of the game.
const Title = "2048"

// Game is a single player's 2048 session.
type Game struct {
	engine  *engine.Engine
	palette Palette
	tick    uint64

	best    int    // best recorded score, shown in the HUD
	message string // transient status line set by the platform

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a 2048 session using the default palette and a time-seeded
// board. Reset starts over with an explicit config.
func New() *Game {
	g := &Game{palette: DefaultPalette()}
	g.Reset(core.DefaultConfig())
	return g
}

// SetPalette overrides the tile tier colors.
func (g *Game) SetPalette(p Palette) {
	g.palette = p
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = engine.New(engine.NewSource(cfg.Seed))
	g.engine.Initialize()
	g.tick = 0
	g.paused = false
	g.message = ""
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the layout without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// SetBest sets the best score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// SetMessage sets a one-line status message. An empty string clears it.
func (g *Game) SetMessage(msg string) {
	g.message = msg
}

// Step applies one input frame. At most one direction is applied per frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	over := g.engine.Status().Terminal()

	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	if g.paused || over {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	turn := g.engine.Move(dir)
	if turn.Changed {
		g.message = ""
	}

	return core.StepResult{State: g.State(), Moved: turn.Changed}
}

// directionFor picks the move direction from a frame.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.engine.Status()
	return core.GameState{
		Score:    g.engine.Score(),
		Won:      status == engine.StatusWon,
		GameOver: status.Terminal(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Status returns the engine status.
func (g *Game) Status() engine.Status {
	return g.engine.Status()
}

// Board returns the current grid.
func (g *Game) Board() engine.Grid {
	return g.engine.Grid()
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.engine.Moves()
}

// Restore loads a position into the session, e.g. for tests or replays.
func (g *Game) Restore(board engine.Grid, score int) {
	g.engine.Restore(board, score)
}

// ShareText builds the message for the share action.
func (g *Game) ShareText(title, url string) string {
	return ShareText(title, url, g.engine.Score())
}

// ShareText formats "<title> <url> Score: <score>", skipping empty parts.
func ShareText(title, url string, score int) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{title, url} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, fmt.Sprintf("Score: %d", score))
	return strings.Join(parts, " ")
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | P: Pause | X: Share | R: New | Q: Quit"
}
