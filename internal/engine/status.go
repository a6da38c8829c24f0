package engine

// Status is the lifecycle state of a game.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a display name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// EvaluateStatus derives the status of a grid. Win is checked before loss.
func EvaluateStatus(g Grid) Status {
	if MaxTile(g) >= WinTile {
		return StatusWon
	}
	if !CanMove(g) {
		return StatusLost
	}
	return StatusInProgress
}
