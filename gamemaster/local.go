package gamemaster

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"baghchal/game"
	"baghchal/searcher"
)

// MaxTurns caps a local game so that two passive players cannot loop
// forever.
const MaxTurns = 500

// Agent picks one move for its side on the given board, reporting false
// when it has none to play.
type Agent interface {
	FindMove(b *game.Board) (game.Move, bool)
}

// SearchAgent plays the move chosen by the minimax searcher.
type SearchAgent struct {
	side     game.Side
	searcher *searcher.Minimax
}

func NewSearchAgent(side game.Side, options ...searcher.Option) *SearchAgent {
	return &SearchAgent{side: side, searcher: searcher.NewMinimax(options...)}
}

func (a *SearchAgent) FindMove(b *game.Board) (game.Move, bool) {
	return a.searcher.FindMove(b, a.side)
}

// RandomAgent plays a uniformly random legal move; the baseline opponent
// for self-play runs.
type RandomAgent struct {
	side game.Side
}

func NewRandomAgent(side game.Side) *RandomAgent {
	return &RandomAgent{side: side}
}

func (a *RandomAgent) FindMove(b *game.Board) (game.Move, bool) {
	moves := b.AllMoves(a.side)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[rand.Intn(len(moves))], true
}

// Local runs one full game between a goat agent and a tiger agent on its
// own board.
type Local struct {
	ID     string
	Board  *game.Board
	Goats  Agent
	Tigers Agent
}

func NewLocal(goats, tigers Agent) *Local {
	return &Local{
		ID:     uuid.NewString(),
		Board:  game.NewBoard(),
		Goats:  goats,
		Tigers: tigers,
	}
}

// Run alternates goat and tiger turns, goats first, until a winner or
// MaxTurns moves. It errors when an agent cannot produce a move or produces
// one the rules reject.
func (l *Local) Run() (game.Winner, error) {
	log.Info().Msgf("game %s: goats to start", l.ID)

	for turn := 1; turn <= MaxTurns; turn++ {
		if w := l.Board.Winner(); w != game.NoWinner {
			log.Info().Msgf("game %s: over after %d moves, %s win", l.ID, turn-1, w)
			return w, nil
		}

		side, agent := game.GoatSide, l.Goats
		if turn%2 == 0 {
			side, agent = game.TigerSide, l.Tigers
		}
		if err := l.playTurn(side, agent); err != nil {
			return game.NoWinner, err
		}
	}

	log.Info().Msgf("game %s: stopped after %d moves with no winner", l.ID, MaxTurns)
	return l.Board.Winner(), nil
}

func (l *Local) playTurn(side game.Side, agent Agent) error {
	move, ok := agent.FindMove(l.Board)
	if !ok {
		return fmt.Errorf("%s have no move to play", side)
	}

	var applied bool
	switch {
	case side == game.GoatSide && move.IsPlacement():
		applied = l.Board.PlaceGoat(move.To)
	case side == game.GoatSide:
		applied = l.Board.MoveGoat(move.From, move.To)
	default:
		applied = l.Board.MoveTiger(move.From, move.To)
	}
	if !applied {
		return fmt.Errorf("illegal %s move %d->%d", side, move.From, move.To)
	}
	return nil
}
