package game

// Board is the full mutable game position: intersection occupancy, the goat
// player's hand, the capture count, the UI selection hint and the reversible
// move history. Exactly four cells hold a Tiger at all times, and on-board
// goats plus captured goats plus goats in hand always total GoatCount.
type Board struct {
	Cells         [Cells]Piece
	GoatsInHand   int
	CapturedGoats int

	// Selected is a UI hint with no rules effect; -1 when nothing is selected.
	Selected int

	history []histEntry
}

type histKind int8

const (
	histPlaceGoat histKind = iota
	histMoveGoat
	histMoveTiger
)

// histEntry records one accepted move with enough detail to invert it
// exactly. captured is -1 unless a tiger jump removed a goat.
type histEntry struct {
	kind     histKind
	from, to int
	captured int
}

// NewBoard returns the fixed starting position: four tigers on the corners,
// every other intersection empty and twenty goats in hand.
func NewBoard() *Board {
	b := &Board{
		GoatsInHand: GoatCount,
		Selected:    -1,
	}
	b.Cells[0] = Tiger
	b.Cells[4] = Tiger
	b.Cells[20] = Tiger
	b.Cells[24] = Tiger
	return b
}

// PlaceGoat drops a goat from the hand onto an empty intersection. It
// reports false, mutating nothing, if pos is off the board, occupied, or the
// hand is empty.
func (b *Board) PlaceGoat(pos int) bool {
	if pos < 0 || pos >= Cells || b.Cells[pos] != Empty || b.GoatsInHand == 0 {
		return false
	}
	b.Cells[pos] = Goat
	b.GoatsInHand--
	b.history = append(b.history, histEntry{kind: histPlaceGoat, from: pos, to: pos, captured: -1})
	return true
}

// MoveTiger moves a tiger from one intersection to another, capturing the
// goat in between on a jump. It reports false, mutating nothing, unless from
// holds a tiger, to is empty and (from, to) is among the tiger's valid
// moves.
func (b *Board) MoveTiger(from, to int) bool {
	if !b.isLegal(Tiger, from, to) {
		return false
	}
	captured := -1
	if mid, jump := jumpMidpoint(from, to); jump {
		// The legality check guarantees a goat on the midpoint.
		b.Cells[mid] = Empty
		b.CapturedGoats++
		captured = mid
	}
	b.Cells[to] = Tiger
	b.Cells[from] = Empty
	b.history = append(b.history, histEntry{kind: histMoveTiger, from: from, to: to, captured: captured})
	return true
}

// MoveGoat steps an on-board goat to an adjacent empty intersection. Same
// failure contract as MoveTiger.
func (b *Board) MoveGoat(from, to int) bool {
	if !b.isLegal(Goat, from, to) {
		return false
	}
	b.Cells[to] = Goat
	b.Cells[from] = Empty
	b.history = append(b.history, histEntry{kind: histMoveGoat, from: from, to: to, captured: -1})
	return true
}

// isLegal re-derives the move's legality from the canonical generator so
// that accepted moves can never diverge from enumerated ones.
func (b *Board) isLegal(piece Piece, from, to int) bool {
	if from < 0 || from >= Cells || to < 0 || to >= Cells {
		return false
	}
	if b.Cells[from] != piece || b.Cells[to] != Empty {
		return false
	}
	for _, dest := range b.ValidMoves(from) {
		if dest == to {
			return true
		}
	}
	return false
}

// CanUndo reports whether the history holds any move to reverse.
func (b *Board) CanUndo() bool { return len(b.history) > 0 }

// Undo pops the latest history entry and applies its exact inverse,
// restoring cells, hand and capture count. It also drops any selection.
// Reports false on an empty history.
func (b *Board) Undo() bool {
	if len(b.history) == 0 {
		return false
	}
	e := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	switch e.kind {
	case histPlaceGoat:
		b.Cells[e.to] = Empty
		b.GoatsInHand++
	case histMoveGoat:
		b.Cells[e.from] = Goat
		b.Cells[e.to] = Empty
	case histMoveTiger:
		b.Cells[e.from] = Tiger
		b.Cells[e.to] = Empty
		if e.captured >= 0 {
			b.Cells[e.captured] = Goat
			b.CapturedGoats--
		}
	}
	b.Selected = -1
	return true
}

// Winner determines the outcome: the tigers win once CaptureThreshold goats
// are captured, checked before mobility; the goats win when no tiger has a
// valid move; otherwise the game goes on.
func (b *Board) Winner() Winner {
	if b.CapturedGoats >= CaptureThreshold {
		return TigersWin
	}
	for pos, p := range b.Cells {
		if p == Tiger && len(b.tigerMoves(pos)) > 0 {
			return NoWinner
		}
	}
	return GoatsWin
}

// IsGameOver reports whether either side has won.
func (b *Board) IsGameOver() bool { return b.Winner() != NoWinner }

// Apply mutates the position by a legal move for side without touching the
// history or the selection, returning the captured intersection (-1 if
// none). It is the search engine's provisional counterpart of the public
// mutators: paired with Revert it avoids the history bookkeeping, and it
// does not re-validate the move.
func (b *Board) Apply(m Move, side Side) int {
	if side == GoatSide {
		if m.IsPlacement() {
			b.Cells[m.To] = Goat
			b.GoatsInHand--
			return -1
		}
		b.Cells[m.To] = Goat
		b.Cells[m.From] = Empty
		return -1
	}

	captured := -1
	if mid, jump := jumpMidpoint(m.From, m.To); jump {
		b.Cells[mid] = Empty
		b.CapturedGoats++
		captured = mid
	}
	b.Cells[m.To] = Tiger
	b.Cells[m.From] = Empty
	return captured
}

// Revert undoes a prior Apply of the same move, given the capture position
// Apply returned.
func (b *Board) Revert(m Move, side Side, captured int) {
	if side == GoatSide {
		if m.IsPlacement() {
			b.Cells[m.To] = Empty
			b.GoatsInHand++
			return
		}
		b.Cells[m.From] = Goat
		b.Cells[m.To] = Empty
		return
	}

	b.Cells[m.From] = Tiger
	b.Cells[m.To] = Empty
	if captured >= 0 {
		b.Cells[captured] = Goat
		b.CapturedGoats--
	}
}
