package game

const (
	// Size is the board edge length; intersections are indexed 0..Cells-1,
	// row by row from the top left.
	Size  = 5
	Cells = Size * Size

	// GoatCount is how many goats the goat player starts with in hand.
	GoatCount = 20

	// CaptureThreshold is how many captured goats win the game for the tigers.
	CaptureThreshold = 5
)

// DiagonalEligible reports whether diagonal edges exist at pos. On the
// alquerque grid every other intersection carries diagonals: the four
// corners, the outer edge midpoints, the center and the four intersections
// diagonal to it.
func DiagonalEligible(pos int) bool {
	return pos >= 0 && pos < Cells && pos%2 == 0
}
