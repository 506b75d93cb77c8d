package player

import (
	"math"

	"isolation/game"
	"isolation/searcher"
)

// Greedy plays the move whose resulting board evaluates best, looking one ply ahead.
type Greedy struct {
	evaluate game.Evaluate
}

func NewGreedy(evaluate game.Evaluate) *Greedy {
	if evaluate == nil {
		evaluate = game.Improved
	}
	return &Greedy{evaluate: evaluate}
}

func (g *Greedy) GetMove(board game.Board, timeLeft searcher.TimeLeft) game.Move {
	player := board.ActivePlayer()
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.NoMove
	}

	bestMove := moves[0]
	bestScore := math.Inf(-1)
	for _, move := range moves {
		if score := g.evaluate(board.Forecast(move), player); score > bestScore {
			bestScore = score
			bestMove = move
		}
	}
	return bestMove
}
