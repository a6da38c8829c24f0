package engine

// Size is the board dimension.
const Size = 4

// WinTile is the tile value that wins the game.
const WinTile = 2048

// Grid is a 4x4 board. 0 marks an empty cell.
type Grid [Size][Size]int

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return 0, false
}

// Cell is a board coordinate. X is the column, Y the row.
type Cell struct {
	X, Y int
}

// MoveResult is the outcome of sliding a grid in one direction.
type MoveResult struct {
	Grid       Grid
	Changed    bool
	ScoreDelta int
}

// slideLine compacts a line toward index 0 and merges equal neighbours.
// A tile produced by a merge is not merged again in the same pass.
func slideLine(line [Size]int) (result [Size]int, gained int) {
	writePos := 0
	mergeable := false

	for _, v := range line {
		if v == 0 {
			continue
		}

		if mergeable && result[writePos-1] == v {
			result[writePos-1] = v * 2
			gained += v * 2
			mergeable = false
			continue
		}

		result[writePos] = v
		writePos++
		mergeable = true
	}

	return result, gained
}

func reverseLine(line [Size]int) [Size]int {
	var result [Size]int
	for i := range Size {
		result[i] = line[Size-1-i]
	}
	return result
}

func transpose(g Grid) Grid {
	var result Grid
	for y := range Size {
		for x := range Size {
			result[y][x] = g[x][y]
		}
	}
	return result
}

// slideRows applies slideLine to every row, optionally reading rows right to left.
func slideRows(g Grid, reversed bool) (Grid, int) {
	var out Grid
	total := 0

	for y := range Size {
		row := g[y]
		if reversed {
			row = reverseLine(row)
		}
		moved, gained := slideLine(row)
		if reversed {
			moved = reverseLine(moved)
		}
		out[y] = moved
		total += gained
	}

	return out, total
}

// Slide moves every tile in the given direction without spawning.
// Unknown directions leave the grid untouched.
func Slide(g Grid, dir Direction) MoveResult {
	var (
		out    Grid
		gained int
	)

	switch dir {
	case DirLeft:
		out, gained = slideRows(g, false)
	case DirRight:
		out, gained = slideRows(g, true)
	case DirUp:
		out, gained = slideRows(transpose(g), false)
		out = transpose(out)
	case DirDown:
		out, gained = slideRows(transpose(g), true)
		out = transpose(out)
	default:
		return MoveResult{Grid: g}
	}

	return MoveResult{
		Grid:       out,
		Changed:    out != g,
		ScoreDelta: gained,
	}
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for y := range Size {
		for x := range Size {
			if g[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for y := range Size {
		for x := range Size {
			if g[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any two adjacent non-empty tiles are equal.
func HasPossibleMerge(g Grid) bool {
	for y := range Size {
		for x := range Size {
			v := g[y][x]
			if v == 0 {
				continue
			}
			if x < Size-1 && g[y][x+1] == v {
				return true
			}
			if y < Size-1 && g[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if some direction would change the grid.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// MaxTile returns the highest tile value on the grid.
func MaxTile(g Grid) int {
	best := 0
	for y := range Size {
		for x := range Size {
			best = max(best, g[y][x])
		}
	}
	return best
}

// TileCount returns the number of non-empty cells.
func TileCount(g Grid) int {
	n := 0
	for y := range Size {
		for x := range Size {
			if g[y][x] != 0 {
				n++
			}
		}
	}
	return n
}
