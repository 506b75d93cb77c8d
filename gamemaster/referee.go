package gamemaster

import (
	"errors"
	"fmt"

	"isolation/game"

	"golang.org/x/exp/slices"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
)

// Update records a move and the board it produced
type Update struct {
	Player game.Player
	Move   game.Move
	Board  game.Board
}

// Referee owns the live board of a game and only lets legal moves through.
type Referee struct {
	board    game.Board
	history  []Update
	gameOver bool
	winner   game.Player
}

func NewReferee(board game.Board) *Referee {
	r := &Referee{board: board}
	r.checkGameOver()
	return r
}

func (r *Referee) Board() game.Board {
	return r.board
}

func (r *Referee) Play(move game.Move) error {
	if r.gameOver {
		return fmt.Errorf("%w: no moves allowed", ErrGameOver)
	}

	player := r.board.ActivePlayer()
	if !slices.Contains(r.board.LegalMoves(player), move) {
		return fmt.Errorf("%w: %s by %s", ErrIllegalMove, move, player)
	}

	r.board = r.board.Forecast(move)
	r.history = append(r.history, Update{Player: player, Move: move, Board: r.board})
	r.checkGameOver()
	return nil
}

// Forfeit ends the game in favor of the opponent of player.
func (r *Referee) Forfeit(player game.Player) error {
	if r.gameOver {
		return fmt.Errorf("%w: %s cannot forfeit", ErrGameOver, player)
	}
	r.gameOver = true
	r.winner = r.board.Opponent(player)
	return nil
}

func (r *Referee) checkGameOver() {
	if len(r.board.LegalMoves(r.board.ActivePlayer())) == 0 {
		r.gameOver = true
		r.winner = r.board.InactivePlayer()
	}
}

func (r *Referee) GameOver() bool {
	return r.gameOver
}

// Winner returns the winning player, false while the game is still on
func (r *Referee) Winner() (game.Player, bool) {
	return r.winner, r.gameOver
}

func (r *Referee) History() []Update {
	return slices.Clone(r.history)
}
