package engine

import "testing"

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [Size]int{2, 2, 0, 0},
			expected: [Size]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "gap before merge",
			input:    [Size]int{2, 0, 2, 4},
			expected: [Size]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [Size]int{2, 2, 2, 0},
			expected: [Size]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "run of four merges pairwise",
			input:    [Size]int{2, 2, 2, 2},
			expected: [Size]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile is not merged again",
			input:    [Size]int{4, 4, 8, 0},
			expected: [Size]int{8, 8, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile next to earlier equal tile",
			input:    [Size]int{8, 4, 4, 0},
			expected: [Size]int{8, 8, 0, 0},
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    [Size]int{2, 4, 8, 16},
			expected: [Size]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "tiles at far end",
			input:    [Size]int{0, 0, 2, 2},
			expected: [Size]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "empty line",
			input:    [Size]int{},
			expected: [Size]int{},
			score:    0,
		},
		{
			name:     "single tile",
			input:    [Size]int{0, 4, 0, 0},
			expected: [Size]int{4, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideLine(tt.input)
			if result != tt.expected {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideDirections(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected Grid
		score    int
	}{
		{
			dir: DirLeft,
			expected: Grid{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			dir: DirRight,
			expected: Grid{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			dir: DirUp,
			expected: Grid{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4 + 4,
		},
		{
			dir: DirDown,
			expected: Grid{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
			score: 4 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			res := Slide(board, tt.dir)
			if res.Grid != tt.expected {
				t.Errorf("Slide(%s): got\n%v\nwant\n%v", tt.dir, res.Grid, tt.expected)
			}
			if !res.Changed {
				t.Errorf("Slide(%s) should report a change", tt.dir)
			}
			if res.ScoreDelta != tt.score {
				t.Errorf("Slide(%s) score = %d, want %d", tt.dir, res.ScoreDelta, tt.score)
			}
		})
	}
}

func TestSlideUnchanged(t *testing.T) {
	board := Grid{
		{4, 2, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := Slide(board, DirLeft)
	if res.Changed {
		t.Error("Slide left should not change left-aligned tiles")
	}
	if res.Grid != board {
		t.Errorf("unchanged slide altered grid:\n%v", res.Grid)
	}
	if res.ScoreDelta != 0 {
		t.Errorf("unchanged slide score = %d, want 0", res.ScoreDelta)
	}
}

func TestSlideUnknownDirection(t *testing.T) {
	board := Grid{{2, 2, 0, 0}}

	res := Slide(board, Direction(42))
	if res.Changed || res.Grid != board || res.ScoreDelta != 0 {
		t.Errorf("unknown direction should be a no-op, got %+v", res)
	}
}

func TestEvaluateStatus(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		expected Status
	}{
		{
			name: "win with empty cells",
			grid: Grid{
				{2048, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 2, 0},
				{0, 0, 0, 0},
			},
			expected: StatusWon,
		},
		{
			name: "win checked before loss",
			grid: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4},
				{8, 16, 32, 64},
			},
			expected: StatusWon,
		},
		{
			name: "full with no merges",
			grid: Grid{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			expected: StatusLost,
		},
		{
			name: "full with horizontal pair",
			grid: Grid{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 4, 8},
				{16, 32, 64, 128},
			},
			expected: StatusInProgress,
		},
		{
			name: "full with vertical pair",
			grid: Grid{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 4},
			},
			expected: StatusInProgress,
		},
		{
			name: "empty cell remaining",
			grid: Grid{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 0, 4},
				{4, 2, 4, 2},
			},
			expected: StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateStatus(tt.grid); got != tt.expected {
				t.Errorf("EvaluateStatus() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestGridHelpers(t *testing.T) {
	board := Grid{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	if cells := EmptyCells(board); len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if first := EmptyCells(board)[0]; first != (Cell{X: 1, Y: 0}) {
		t.Errorf("first empty cell = %+v, want {X:1 Y:0}", first)
	}
	if n := TileCount(board); n != 8 {
		t.Errorf("TileCount = %d, want 8", n)
	}
	if m := MaxTile(board); m != 2048 {
		t.Errorf("MaxTile = %d, want 2048", m)
	}
	if HasPossibleMerge(board) {
		t.Error("HasPossibleMerge should ignore empty neighbours")
	}
	if !CanMove(board) {
		t.Error("CanMove should be true with empty cells")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}

	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection should reject unknown names")
	}
}
