package game

// Piece is the occupant of one board intersection.
type Piece int8

const (
	Empty Piece = iota
	Tiger
	Goat
)

// Side identifies which player a move or query concerns.
type Side int

const (
	TigerSide Side = iota
	GoatSide
)

func (s Side) String() string {
	if s == TigerSide {
		return "tigers"
	}
	return "goats"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == TigerSide {
		return GoatSide
	}
	return TigerSide
}

// Winner is the outcome of a position.
type Winner int

const (
	NoWinner Winner = iota
	TigersWin
	GoatsWin
)

func (w Winner) String() string {
	switch w {
	case TigersWin:
		return "tigers"
	case GoatsWin:
		return "goats"
	default:
		return "none"
	}
}

// Move is a (from, to) pair of intersections. Goat placements from the hand
// use From == To.
type Move struct {
	From int
	To   int
}

// IsPlacement reports whether the move drops a goat from the hand rather
// than moving a piece already on the board.
func (m Move) IsPlacement() bool { return m.From == m.To }

// Evaluate scores a position; positive values favor the tigers.
type Evaluate func(*Board) int
