package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func countPieces(b *Board) (tigers, goats int) {
	for _, p := range b.Cells {
		switch p {
		case Tiger:
			tigers++
		case Goat:
			goats++
		}
	}
	return tigers, goats
}

func requireInvariants(t *testing.T, b *Board) {
	t.Helper()
	tigers, goats := countPieces(b)
	require.Equal(t, 4, tigers, "Board should always hold exactly four tigers")
	require.Equal(t, GoatCount, goats+b.CapturedGoats+b.GoatsInHand,
		"On-board, captured and in-hand goats should always total %d", GoatCount)
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	for _, corner := range []int{0, 4, 20, 24} {
		require.Equal(t, Tiger, b.Cells[corner], "Corner %d should start with a tiger", corner)
	}
	tigers, goats := countPieces(b)
	require.Equal(t, 4, tigers, "Starting board should hold four tigers")
	require.Equal(t, 0, goats, "Starting board should hold no goats")
	require.Equal(t, GoatCount, b.GoatsInHand, "All goats should start in hand")
	require.Equal(t, 0, b.CapturedGoats, "No goats should start captured")
	require.Equal(t, -1, b.Selected, "Nothing should start selected")
	require.False(t, b.CanUndo(), "Fresh board should have no history")
}

func TestPlaceGoat(t *testing.T) {
	t.Run("placing on an empty intersection", func(t *testing.T) {
		b := NewBoard()

		require.True(t, b.PlaceGoat(12))
		require.Equal(t, Goat, b.Cells[12])
		require.Equal(t, GoatCount-1, b.GoatsInHand)
		require.True(t, b.CanUndo(), "Accepted placement should be recorded")
	})

	t.Run("rejecting bad placements without mutation", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(12))

		require.False(t, b.PlaceGoat(12), "Occupied intersection should be rejected")
		require.False(t, b.PlaceGoat(0), "Tiger's intersection should be rejected")
		require.False(t, b.PlaceGoat(25), "Out-of-range position should be rejected")
		require.False(t, b.PlaceGoat(-1), "Negative position should be rejected")
		require.Equal(t, GoatCount-1, b.GoatsInHand, "Failed placements should not touch the hand")
	})

	t.Run("rejecting placement with an empty hand", func(t *testing.T) {
		b := NewBoard()
		b.GoatsInHand = 0

		require.False(t, b.PlaceGoat(12))
		require.Equal(t, Empty, b.Cells[12])
	})
}

func TestMoveTiger(t *testing.T) {
	t.Run("orthogonal steps", func(t *testing.T) {
		b := NewBoard()

		require.True(t, b.MoveTiger(0, 1), "Right step should be legal")
		require.True(t, b.MoveTiger(1, 0), "Left step should be legal")
		require.True(t, b.MoveTiger(0, 5), "Down step should be legal")
		require.True(t, b.MoveTiger(5, 0), "Up step should be legal")
	})

	t.Run("rejecting bad moves without mutation", func(t *testing.T) {
		b := NewBoard()

		require.False(t, b.MoveTiger(12, 13), "Source without a tiger should be rejected")
		require.False(t, b.MoveTiger(0, 25), "Out-of-range destination should be rejected")
		require.False(t, b.MoveTiger(0, 7), "Destination beyond reach should be rejected")
		require.False(t, b.MoveTiger(0, 24), "Occupied destination should be rejected")
		require.Equal(t, Tiger, b.Cells[0], "Failed moves should leave the board untouched")
		require.False(t, b.CanUndo(), "Failed moves should not be recorded")
	})

	t.Run("jump capture over a goat", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(1))

		require.True(t, b.MoveTiger(0, 2), "Jump over the goat should be legal")
		require.Equal(t, Empty, b.Cells[1], "Jumped goat should be removed")
		require.Equal(t, Tiger, b.Cells[2])
		require.Equal(t, 1, b.CapturedGoats)
		requireInvariants(t, b)
	})

	t.Run("rejecting a jump with no goat in between", func(t *testing.T) {
		b := NewBoard()

		require.False(t, b.MoveTiger(0, 2))
		require.Equal(t, Tiger, b.Cells[0])
		require.Equal(t, Empty, b.Cells[2])
		require.Equal(t, 0, b.CapturedGoats)
	})

	t.Run("diagonal jump capture", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(6))

		require.True(t, b.MoveTiger(0, 12), "Diagonal jump from the corner should be legal")
		require.Equal(t, Empty, b.Cells[6], "Jumped goat should be removed")
		require.Equal(t, 1, b.CapturedGoats)
	})

	t.Run("rejecting a diagonal jump through an ineligible intersection", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(7))

		require.False(t, b.MoveTiger(0, 14), "Jump through intersection 7 should be rejected")
		require.Equal(t, Goat, b.Cells[7])
		require.Equal(t, 0, b.CapturedGoats)
	})
}

func TestMoveGoat(t *testing.T) {
	t.Run("steps from the center", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(12))

		require.True(t, b.MoveGoat(12, 11), "Left step should be legal")
		require.True(t, b.MoveGoat(11, 12), "Right step should be legal")
		require.True(t, b.MoveGoat(12, 7), "Up step should be legal")
		require.True(t, b.MoveGoat(7, 12), "Down step should be legal")
		require.True(t, b.MoveGoat(12, 6), "Diagonal step from an eligible intersection should be legal")
	})

	t.Run("rejecting bad moves", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(12))

		require.False(t, b.MoveGoat(12, 14), "Destination beyond reach should be rejected")
		require.False(t, b.MoveGoat(12, 10), "Goats should never jump")
		require.False(t, b.MoveGoat(0, 1), "Source holding a tiger should be rejected")
		require.False(t, b.MoveGoat(12, 12), "Moving in place should be rejected")
	})

	t.Run("rejecting a diagonal step from an ineligible intersection", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(7))

		for _, to := range []int{1, 3, 11, 13} {
			require.False(t, b.MoveGoat(7, to), "Diagonal step 7->%d should be rejected", to)
		}
	})
}

func TestUndo(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		b := NewBoard()

		require.False(t, b.Undo())
		require.False(t, b.CanUndo())
	})

	t.Run("reversing a placement", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(12))

		require.True(t, b.Undo())
		require.Equal(t, Empty, b.Cells[12])
		require.Equal(t, GoatCount, b.GoatsInHand)
		require.False(t, b.CanUndo())
	})

	t.Run("reversing a goat move", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(12))
		require.True(t, b.MoveGoat(12, 7))

		require.True(t, b.Undo())
		require.Equal(t, Goat, b.Cells[12])
		require.Equal(t, Empty, b.Cells[7])
	})

	t.Run("reversing a capture", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(1))
		require.True(t, b.MoveTiger(0, 2))
		require.Equal(t, 1, b.CapturedGoats)
		require.Equal(t, Empty, b.Cells[1])

		require.True(t, b.Undo())
		require.Equal(t, Tiger, b.Cells[0])
		require.Equal(t, Empty, b.Cells[2])
		require.Equal(t, Goat, b.Cells[1], "Captured goat should be restored")
		require.Equal(t, 0, b.CapturedGoats)
	})

	t.Run("clearing the selection", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(12))
		b.Selected = 12

		require.True(t, b.Undo())
		require.Equal(t, -1, b.Selected)
	})
}

// TestRandomPlayoutRoundTrip drives a random playout through the public
// mutators, checking the piece-count invariants after every accepted move,
// then unwinds the whole history and expects the exact starting position.
func TestRandomPlayoutRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoard()

	applied := 0
	side := GoatSide
	for turn := 0; turn < 120 && !b.IsGameOver(); turn++ {
		moves := b.AllMoves(side)
		if len(moves) == 0 {
			break
		}
		move := moves[rng.Intn(len(moves))]

		var ok bool
		switch {
		case side == GoatSide && move.IsPlacement():
			ok = b.PlaceGoat(move.To)
		case side == GoatSide:
			ok = b.MoveGoat(move.From, move.To)
		default:
			ok = b.MoveTiger(move.From, move.To)
		}
		require.True(t, ok, "Enumerated move %d->%d for %s should be accepted", move.From, move.To, side)

		applied++
		requireInvariants(t, b)
		side = side.Opponent()
	}
	require.Greater(t, applied, 0, "Playout should make at least one move")

	for i := 0; i < applied; i++ {
		require.True(t, b.Undo(), "History should hold %d moves", applied)
	}
	require.False(t, b.CanUndo())

	fresh := NewBoard()
	require.Equal(t, fresh.Cells, b.Cells, "Unwinding the full history should restore the starting cells")
	require.Equal(t, fresh.GoatsInHand, b.GoatsInHand)
	require.Equal(t, fresh.CapturedGoats, b.CapturedGoats)
}

func TestApplyRevert(t *testing.T) {
	t.Run("round-tripping every legal move on a mixed position", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(1))
		require.True(t, b.PlaceGoat(12))
		require.True(t, b.PlaceGoat(8))

		for _, side := range []Side{TigerSide, GoatSide} {
			cells := b.Cells
			hand := b.GoatsInHand
			captured := b.CapturedGoats

			for _, move := range b.AllMoves(side) {
				got := b.Apply(move, side)
				b.Revert(move, side, got)

				require.Equal(t, cells, b.Cells, "Revert of %d->%d for %s should restore the cells", move.From, move.To, side)
				require.Equal(t, hand, b.GoatsInHand)
				require.Equal(t, captured, b.CapturedGoats)
			}
		}
	})

	t.Run("leaving the history alone", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.PlaceGoat(1))

		got := b.Apply(Move{From: 0, To: 2}, TigerSide)
		require.Equal(t, 1, got, "Jump should report the captured intersection")
		b.Revert(Move{From: 0, To: 2}, TigerSide, got)

		require.True(t, b.CanUndo(), "Provisional moves should not grow the history")
		require.True(t, b.Undo(), "Only the placement should be recorded")
		require.False(t, b.CanUndo())
	})
}

func TestWinner(t *testing.T) {
	t.Run("fresh board is undecided", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, NoWinner, b.Winner())
		require.False(t, b.IsGameOver())
	})

	t.Run("five captures win for the tigers", func(t *testing.T) {
		b := NewBoard()
		b.CapturedGoats = CaptureThreshold

		require.Equal(t, TigersWin, b.Winner())
		require.True(t, b.IsGameOver())
	})

	t.Run("immobilized tigers lose", func(t *testing.T) {
		b := NewBoard()
		// Tigers on the top row, walled in by goats; jumps blocked too.
		b.Cells = [Cells]Piece{}
		b.Cells[0], b.Cells[1], b.Cells[2], b.Cells[3] = Tiger, Tiger, Tiger, Tiger
		for _, pos := range []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14} {
			b.Cells[pos] = Goat
		}

		require.Equal(t, GoatsWin, b.Winner())
		require.True(t, b.IsGameOver())
	})

	t.Run("captures take precedence over immobility", func(t *testing.T) {
		b := NewBoard()
		b.Cells = [Cells]Piece{}
		b.Cells[0], b.Cells[1], b.Cells[2], b.Cells[3] = Tiger, Tiger, Tiger, Tiger
		for _, pos := range []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14} {
			b.Cells[pos] = Goat
		}
		b.CapturedGoats = CaptureThreshold

		require.Equal(t, TigersWin, b.Winner(), "Capture threshold should be checked before mobility")
	})

	t.Run("capture threshold ignores the hand", func(t *testing.T) {
		b := NewBoard()
		b.CapturedGoats = CaptureThreshold - 1
		b.GoatsInHand = 0

		require.Equal(t, NoWinner, b.Winner())
	})
}
