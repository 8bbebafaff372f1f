package game

// Candidate step directions in (row, col) form, the orthogonal four first so
// that ineligible intersections can use a prefix of the array.
var directions = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

func stepDirections(from int) [][2]int {
	if DiagonalEligible(from) {
		return directions[:]
	}
	return directions[:4]
}

// ValidMoves returns every legal destination for the piece standing on from.
// Tigers step to an empty neighbor or jump a single adjacent goat onto the
// empty intersection behind it; goats only step. A diagonal step or jump
// requires every participating intersection to be diagonal-eligible. The
// result is empty when from is off the board or holds no piece.
func (b *Board) ValidMoves(from int) []int {
	if from < 0 || from >= Cells {
		return nil
	}
	switch b.Cells[from] {
	case Tiger:
		return b.tigerMoves(from)
	case Goat:
		return b.goatMoves(from)
	default:
		return nil
	}
}

func (b *Board) tigerMoves(from int) []int {
	row, col := from/Size, from%Size
	var moves []int
	for _, d := range stepDirections(from) {
		diag := d[0] != 0 && d[1] != 0
		sr, sc := row+d[0], col+d[1]
		if sr < 0 || sr >= Size || sc < 0 || sc >= Size {
			continue
		}
		step := sr*Size + sc
		if diag && !DiagonalEligible(step) {
			continue
		}
		switch b.Cells[step] {
		case Empty:
			moves = append(moves, step)
		case Goat:
			// A jump lands two cells out, over the goat.
			jr, jc := row+2*d[0], col+2*d[1]
			if jr < 0 || jr >= Size || jc < 0 || jc >= Size {
				continue
			}
			jump := jr*Size + jc
			if diag && !DiagonalEligible(jump) {
				continue
			}
			if b.Cells[jump] == Empty {
				moves = append(moves, jump)
			}
		}
	}
	return moves
}

func (b *Board) goatMoves(from int) []int {
	row, col := from/Size, from%Size
	var moves []int
	for _, d := range stepDirections(from) {
		sr, sc := row+d[0], col+d[1]
		if sr < 0 || sr >= Size || sc < 0 || sc >= Size {
			continue
		}
		step := sr*Size + sc
		if d[0] != 0 && d[1] != 0 && !DiagonalEligible(step) {
			continue
		}
		if b.Cells[step] == Empty {
			moves = append(moves, step)
		}
	}
	return moves
}

// AllMoves enumerates the legal (from, to) pairs for one side. While the
// goat player still holds goats in hand the only goat moves are placements
// onto empty intersections; goats already on the board move only once the
// hand is empty.
func (b *Board) AllMoves(side Side) []Move {
	var moves []Move
	if side == TigerSide {
		for pos, p := range b.Cells {
			if p != Tiger {
				continue
			}
			for _, to := range b.tigerMoves(pos) {
				moves = append(moves, Move{From: pos, To: to})
			}
		}
		return moves
	}

	if b.GoatsInHand > 0 {
		for pos, p := range b.Cells {
			if p == Empty {
				moves = append(moves, Move{From: pos, To: pos})
			}
		}
		return moves
	}

	for pos, p := range b.Cells {
		if p != Goat {
			continue
		}
		for _, to := range b.goatMoves(pos) {
			moves = append(moves, Move{From: pos, To: to})
		}
	}
	return moves
}

// jumpMidpoint returns the intersection a jump from..to passes over, and
// whether the move is a jump at all (a row or column delta of two).
func jumpMidpoint(from, to int) (int, bool) {
	fr, fc := from/Size, from%Size
	tr, tc := to/Size, to%Size
	if abs(fr-tr) > 1 || abs(fc-tc) > 1 {
		return (fr+tr)/2*Size + (fc+tc)/2, true
	}
	return -1, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
