package game

const (
	tigerWinScore = 10000
	goatWinScore  = -10000

	capturedGoatWeight   = 100
	trappedTigerPenalty  = 50
	strategicGoatPenalty = 10
	availableJumpBonus   = 20
)

// strategicCells are the intersections worth holding for the goats: the
// center, the four intersections diagonal to it and the four orthogonal to
// it.
var strategicCells = [9]int{12, 6, 8, 16, 18, 7, 11, 13, 17}

// EvaluatePosition statically scores a position from the tigers' point of
// view. Terminal positions short-circuit to the win scores; otherwise the
// score rewards captures and currently available jump captures, and
// penalizes immobilized tigers and goats sitting on the strategic cells.
func EvaluatePosition(b *Board) int {
	switch b.Winner() {
	case TigersWin:
		return tigerWinScore
	case GoatsWin:
		return goatWinScore
	}

	score := b.CapturedGoats * capturedGoatWeight

	for pos, p := range b.Cells {
		if p != Tiger {
			continue
		}
		moves := b.tigerMoves(pos)
		if len(moves) == 0 {
			score -= trappedTigerPenalty
		}
		for _, to := range moves {
			if _, jump := jumpMidpoint(pos, to); jump {
				score += availableJumpBonus
			}
		}
	}

	for _, pos := range strategicCells {
		if b.Cells[pos] == Goat {
			score -= strategicGoatPenalty
		}
	}
	return score
}
