package searcher

import (
	"errors"

	"isolation/game"
)

// ErrSearchTimeout aborts an in-flight search once the remaining time drops to the
// timeout threshold. It is returned by every pending recursive call and handled only
// by GetMove.
var ErrSearchTimeout = errors.New("search timeout")

// TimeLeft returns the milliseconds left in the current turn. It is queried, never
// driven: the search has no timer of its own.
type TimeLeft func() float64

type Searcher interface {
	// GetMove returns a legal move for the active player, or game.NoMove
	GetMove(board game.Board, timeLeft TimeLeft) game.Move
}
