package game

import "fmt"

// Player identifies one of the two participants. The board resolves whose turn it is
// and who the opponent of a player is.
type Player string

// Move is a board coordinate a player moves to.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when the player to move has no legal moves. It is never forecast.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Board should be immutable - Forecast always returns a new board and leaves the receiver untouched
type Board interface {
	Width() int
	Height() int
	ActivePlayer() Player
	InactivePlayer() Player
	Opponent(player Player) Player
	// LegalMoves returns the moves available to player, in a stable order. Empty means no options.
	LegalMoves(player Player) []Move
	Forecast(move Move) Board
	IsWinner(player Player) bool
	IsLoser(player Player) bool
	// Location returns the player's position, false if the player has not been placed yet
	Location(player Player) (Move, bool)
}

// Evaluates the board to a utility for player, larger is better. Terminal boards
// evaluate to +Inf (won) or -Inf (lost).
type Evaluate func(board Board, player Player) float64
