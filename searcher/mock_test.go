package searcher

import (
	"isolation/game"
)

const (
	maxPlayer game.Player = "max"
	minPlayer game.Player = "min"
)

// mockBoard is a hand-built game tree. Scores are from the max player's perspective
// and the move to the i-th child is (depth, i).
type mockBoard struct {
	active    game.Player
	children  []*mockBoard
	moves     []game.Move
	score     float64
	forecasts *int
}

func leaf(score float64) *mockBoard {
	return &mockBoard{score: score}
}

func node(score float64, children ...*mockBoard) *mockBoard {
	return &mockBoard{score: score, children: children}
}

// tree wires players, moves, and a shared forecast counter through the nodes below root
func tree(root *mockBoard) *mockBoard {
	counter := 0
	var wire func(b *mockBoard, player game.Player, depth int)
	wire = func(b *mockBoard, player game.Player, depth int) {
		b.active = player
		b.forecasts = &counter
		b.moves = make([]game.Move, len(b.children))
		for i, child := range b.children {
			b.moves[i] = game.Move{Row: depth, Col: i}
			wire(child, opponentOf(player), depth+1)
		}
	}
	wire(root, maxPlayer, 0)
	return root
}

func opponentOf(player game.Player) game.Player {
	if player == maxPlayer {
		return minPlayer
	}
	return maxPlayer
}

func (b *mockBoard) Width() int                  { return 3 }
func (b *mockBoard) Height() int                 { return 3 }
func (b *mockBoard) ActivePlayer() game.Player   { return b.active }
func (b *mockBoard) InactivePlayer() game.Player { return opponentOf(b.active) }

func (b *mockBoard) Opponent(player game.Player) game.Player { return opponentOf(player) }

func (b *mockBoard) LegalMoves(player game.Player) []game.Move {
	if player != b.active {
		return nil
	}
	return b.moves
}

func (b *mockBoard) Forecast(move game.Move) game.Board {
	for i, m := range b.moves {
		if m == move {
			*b.forecasts++
			return b.children[i]
		}
	}
	panic("forecasting a move that is not legal: " + move.String())
}

func (b *mockBoard) IsWinner(player game.Player) bool { return false }
func (b *mockBoard) IsLoser(player game.Player) bool  { return false }

func (b *mockBoard) Location(player game.Player) (game.Move, bool) { return game.NoMove, false }

// scoreEval reads the mock score and counts evaluations
func scoreEval(count *int) game.Evaluate {
	return func(board game.Board, player game.Player) float64 {
		*count++
		return board.(*mockBoard).score
	}
}

// forever never trips the timeout
func forever() float64 { return 1e9 }

// countdown allows calls time checks before reporting no time left
func countdown(calls int) (TimeLeft, *int) {
	n := 0
	return func() float64 {
		n++
		if n > calls {
			return 0
		}
		return 1e9
	}, &n
}
