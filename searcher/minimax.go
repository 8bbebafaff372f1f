package searcher

import (
	"time"

	"baghchal/game"
)

const (
	// DefaultBudget is the wall-clock budget for one move search.
	DefaultBudget = 2 * time.Second

	// DefaultMaxDepth caps iterative deepening. On any position with real
	// branching the budget expires long before this depth is reached.
	DefaultMaxDepth = 64

	// infinity bounds every evaluation score.
	infinity = 1 << 30
)

type Option func(*Minimax)

// Minimax chooses moves by iterative-deepening minimax with alpha-beta
// pruning under a wall-clock budget. The tigers maximize the evaluation
// function, the goats minimize it.
type Minimax struct {
	budget   time.Duration
	maxDepth int
	evaluate game.Evaluate
}

func WithBudget(budget time.Duration) Option {
	return func(m *Minimax) {
		if budget > 0 {
			m.budget = budget
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		budget:   DefaultBudget,
		maxDepth: DefaultMaxDepth,
		evaluate: game.EvaluatePosition,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Budget returns the configured wall-clock budget.
func (m *Minimax) Budget() time.Duration { return m.budget }

// FindMove searches for the best move for side on b. The board is mutated
// and restored in place during the search and is back in its original state
// when FindMove returns. Reports false when side has no legal move.
//
// Depth passes run at 1, 2, 3, ... while budget remains; a pass interrupted
// by the deadline is discarded whole, so the returned move is always the
// best of the last fully completed depth. The very first legal move stands
// in as the answer for a budget too small to complete even depth one.
func (m *Minimax) FindMove(b *game.Board, side game.Side) (game.Move, bool) {
	moves := b.AllMoves(side)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	deadline := time.Now().Add(m.budget)
	best := moves[0]
	for depth := 1; depth <= m.maxDepth; depth++ {
		move, complete := m.searchRoot(b, side, moves, depth, deadline)
		if !complete {
			break
		}
		best = move
	}
	return best, true
}

// searchRoot runs one fixed-depth pass over the root candidates. It reports
// false as soon as the deadline fires, leaving the partial result to be
// discarded by the caller.
func (m *Minimax) searchRoot(b *game.Board, side game.Side, moves []game.Move, depth int, deadline time.Time) (game.Move, bool) {
	best := moves[0]
	bestValue := -infinity
	if side == game.GoatSide {
		bestValue = infinity
	}
	alpha, beta := -infinity, infinity

	for _, move := range moves {
		if time.Now().After(deadline) {
			return best, false
		}

		captured := b.Apply(move, side)
		value, complete := m.search(b, side.Opponent(), depth-1, alpha, beta, deadline)
		b.Revert(move, side, captured)
		if !complete {
			return best, false
		}

		if side == game.TigerSide {
			if value > bestValue {
				bestValue, best = value, move
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if value < bestValue {
				bestValue, best = value, move
			}
			if value < beta {
				beta = value
			}
		}
	}
	return best, true
}

func (m *Minimax) search(b *game.Board, side game.Side, depth, alpha, beta int, deadline time.Time) (int, bool) {
	if depth == 0 || b.IsGameOver() {
		return m.evaluate(b), true
	}
	moves := b.AllMoves(side)
	if len(moves) == 0 {
		return m.evaluate(b), true
	}

	best := -infinity
	if side == game.GoatSide {
		best = infinity
	}

	for _, move := range moves {
		if time.Now().After(deadline) {
			return m.evaluate(b), false
		}

		captured := b.Apply(move, side)
		value, complete := m.search(b, side.Opponent(), depth-1, alpha, beta, deadline)
		b.Revert(move, side, captured)
		if !complete {
			return best, false
		}

		if side == game.TigerSide {
			if value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if value < best {
				best = value
			}
			if value < beta {
				beta = value
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best, true
}
