// Package engine implements the 2048 grid rules: sliding, merging, scoring,
// tile spawning and win/loss detection. It has no UI or I/O dependencies.
package engine

// Spawn4Probability is the chance that a spawned tile is a 4 rather than a 2.
const Spawn4Probability = 0.1

// Tile is a tile placed on the grid.
type Tile struct {
	Cell
	Value int
}

// Turn reports everything a single Move did.
type Turn struct {
	MoveResult

	// Spawned is the tile added after a changed move.
	// Valid only when HasSpawn is true.
	Spawned  Tile
	HasSpawn bool

	// Status is the engine status after the move.
	Status Status
}

// Engine owns the state of one game: grid, score and status.
// It is not safe for concurrent use; each session owns its own Engine.
type Engine struct {
	rng    Source
	grid   Grid
	score  int
	moves  int
	status Status
}

// New creates an engine drawing spawns from src. Call Initialize before playing.
func New(src Source) *Engine {
	if src == nil {
		src = NewSource(0)
	}
	return &Engine{rng: src}
}

// Initialize starts a new game: empty grid plus two spawned tiles.
func (e *Engine) Initialize() Grid {
	e.grid = Grid{}
	e.score = 0
	e.moves = 0
	e.status = StatusInProgress

	e.grid, _, _ = SpawnRandomTile(e.grid, e.rng)
	e.grid, _, _ = SpawnRandomTile(e.grid, e.rng)

	return e.grid
}

// Restore replaces the grid and score, e.g. to replay a recorded position.
// The status is re-derived from the grid.
func (e *Engine) Restore(g Grid, score int) {
	e.grid = g
	e.score = max(score, 0)
	e.moves = 0
	e.status = EvaluateStatus(g)
}

// Move slides the grid in dir. Moves that change nothing, moves after the
// game has ended and unknown directions leave the engine untouched.
func (e *Engine) Move(dir Direction) Turn {
	if e.status.Terminal() {
		return Turn{MoveResult: MoveResult{Grid: e.grid}, Status: e.status}
	}

	res := Slide(e.grid, dir)
	if !res.Changed {
		return Turn{MoveResult: res, Status: e.status}
	}

	e.grid = res.Grid
	e.score += res.ScoreDelta
	e.moves++

	turn := Turn{MoveResult: res}

	e.grid, turn.Spawned, turn.HasSpawn = SpawnRandomTile(e.grid, e.rng)

	// Status only ever leaves InProgress.
	if e.status == StatusInProgress {
		e.status = EvaluateStatus(e.grid)
	}
	turn.Status = e.status

	return turn
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Score returns the cumulative score.
func (e *Engine) Score() int {
	return e.score
}

// Status returns the latched game status.
func (e *Engine) Status() Status {
	return e.status
}

// Moves returns the number of moves that changed the grid.
func (e *Engine) Moves() int {
	return e.moves
}

// SpawnRandomTile places a 2 (90%) or 4 (10%) on a uniformly chosen empty
// cell. On a full grid it returns the grid unchanged and ok=false.
func SpawnRandomTile(g Grid, src Source) (out Grid, tile Tile, ok bool) {
	empty := EmptyCells(g)
	if len(empty) == 0 {
		return g, Tile{}, false
	}

	cell := empty[src.Intn(len(empty))]

	value := 2
	if src.Float64() < Spawn4Probability {
		value = 4
	}

	g[cell.Y][cell.X] = value
	return g, Tile{Cell: cell, Value: value}, true
}
