package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"baghchal/game"
	"baghchal/searcher"
)

// Time limit bounds for AI moves, in whole seconds.
const (
	MinTimeLimit     = 1
	MaxTimeLimit     = 10
	DefaultTimeLimit = 2
)

// Game drives one Bagh-Chal game: it owns the board, validates and applies
// moves for either side and runs the search engine for computer turns. It is
// not safe for concurrent use; a search mutates and restores the board in
// place, so nothing may touch the game while an AI move runs. Turn
// alternation is the caller's concern.
type Game struct {
	id        string
	board     *game.Board
	searcher  *searcher.Minimax
	timeLimit int
}

// NewGame returns a fresh game in the fixed starting position with the
// default AI time limit.
func NewGame() *Game {
	return &Game{
		id:        uuid.NewString(),
		board:     game.NewBoard(),
		searcher:  searcher.NewMinimax(),
		timeLimit: DefaultTimeLimit,
	}
}

// ID returns the game's identifier, used in logs.
func (g *Game) ID() string { return g.id }

// Board exposes the underlying position, e.g. for rendering. Callers must
// not mutate it around a running AI move.
func (g *Game) Board() *game.Board { return g.board }

// LegalMovesFor returns the legal destinations for the piece on pos.
func (g *Game) LegalMovesFor(pos int) []int { return g.board.ValidMoves(pos) }

// AllLegalMoves returns every legal (from, to) pair for side.
func (g *Game) AllLegalMoves(side game.Side) []game.Move { return g.board.AllMoves(side) }

func (g *Game) PlaceGoat(pos int) bool      { return g.board.PlaceGoat(pos) }
func (g *Game) MoveGoat(from, to int) bool  { return g.board.MoveGoat(from, to) }
func (g *Game) MoveTiger(from, to int) bool { return g.board.MoveTiger(from, to) }

func (g *Game) Undo() bool    { return g.board.Undo() }
func (g *Game) CanUndo() bool { return g.board.CanUndo() }

func (g *Game) Winner() game.Winner { return g.board.Winner() }
func (g *Game) IsGameOver() bool    { return g.board.IsGameOver() }

// SetTimeLimit sets the AI search budget in whole seconds, clamped to
// [MinTimeLimit, MaxTimeLimit].
func (g *Game) SetTimeLimit(seconds int) {
	if seconds < MinTimeLimit {
		seconds = MinTimeLimit
	}
	if seconds > MaxTimeLimit {
		seconds = MaxTimeLimit
	}
	g.timeLimit = seconds
	g.searcher = searcher.NewMinimax(searcher.WithBudget(time.Duration(seconds) * time.Second))
}

// TimeLimit returns the current AI search budget in seconds.
func (g *Game) TimeLimit() int { return g.timeLimit }

// AIMoveTiger asks the search engine for a tiger move and applies it through
// the history-tracked path, so it is undoable like any human move. Reports
// false, with the board untouched, when the tigers have no legal move.
func (g *Game) AIMoveTiger() bool { return g.aiMove(game.TigerSide) }

// AIMoveGoat is the goat-side counterpart of AIMoveTiger.
func (g *Game) AIMoveGoat() bool { return g.aiMove(game.GoatSide) }

func (g *Game) aiMove(side game.Side) bool {
	start := time.Now()
	move, ok := g.searcher.FindMove(g.board, side)
	if !ok {
		log.Debug().Msgf("game %s: no legal %s move to search", g.id, side)
		return false
	}

	var applied bool
	switch {
	case side == game.GoatSide && move.IsPlacement():
		applied = g.board.PlaceGoat(move.To)
	case side == game.GoatSide:
		applied = g.board.MoveGoat(move.From, move.To)
	default:
		applied = g.board.MoveTiger(move.From, move.To)
	}
	if !applied {
		// The searcher restored the board and only returns enumerated
		// moves, so this indicates a generator/validator divergence.
		log.Error().Msgf("game %s: search move %d->%d for %s rejected", g.id, move.From, move.To, side)
		return false
	}

	log.Info().Msgf("game %s: %s play %d->%d in %v", g.id, side, move.From, move.To, time.Since(start))
	return true
}

// SelectPosition records a UI selection hint on the board; it has no rules
// effect. Off-board positions clear the selection.
func (g *Game) SelectPosition(pos int) {
	if pos < 0 || pos >= game.Cells {
		pos = -1
	}
	g.board.Selected = pos
}

// ClearSelection drops the selection hint.
func (g *Game) ClearSelection() { g.board.Selected = -1 }
