package searcher

import (
	"math"

	"isolation/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta deepens an alpha-beta search from the configured depth until the time
// runs out, keeping the move of the last fully completed depth.
type AlphaBeta struct {
	config
	last SearchMetric
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options...)}
}

func (a *AlphaBeta) GetMove(board game.Board, timeLeft TimeLeft) game.Move {
	a.metrics.Start("alphabeta")
	defer func() { a.last = a.metrics.Complete() }()

	best := game.NoMove
	if len(board.LegalMoves(board.ActivePlayer())) == 0 {
		return best
	}

	s := newSearch(a.config, board, timeLeft)
	for depth := a.depth; ; depth++ {
		log.Debug().Int("depth", depth).Msg("alphabeta searching")

		s.horizon = false
		move, err := s.alphaBeta(board, depth, math.Inf(-1), math.Inf(1))
		if err != nil {
			a.metrics.TimedOut()
			log.Debug().Err(err).Int("depth", depth).Stringer("best", best).Msg("alphabeta timed out")
			return best
		}

		if move != game.NoMove {
			best = move
		}
		a.metrics.CompleteDepth(depth)
		log.Debug().Int("depth", depth).Stringer("move", move).Msg("alphabeta completed")

		if !s.horizon { // Every leaf was terminal, deeper searches see the same tree
			return best
		}
	}
}

// Search runs a single alpha-beta search to depth and returns the best root move, or
// ErrSearchTimeout.
func (a *AlphaBeta) Search(board game.Board, depth int, alpha, beta float64, timeLeft TimeLeft) (game.Move, error) {
	s := newSearch(a.config, board, timeLeft)
	return s.alphaBeta(board, depth, alpha, beta)
}

// LastMetric returns the metrics of the latest GetMove call, empty unless WithMetrics is set.
func (a *AlphaBeta) LastMetric() SearchMetric {
	return a.last
}

func (s *search) alphaBeta(board game.Board, depth int, alpha, beta float64) (game.Move, error) {
	if err := s.checkTime(); err != nil {
		return game.NoMove, err
	}

	moves := board.LegalMoves(board.ActivePlayer())
	if len(moves) == 0 {
		return game.NoMove, nil
	}

	// Starting from the first move keeps a legal answer when every move scores -Inf
	bestMove := moves[0]
	bestScore := math.Inf(-1)
	for _, move := range moves {
		score, err := s.abMinValue(board.Forecast(move), depth-1, alpha, beta)
		if err != nil {
			return game.NoMove, err
		}
		if score > bestScore {
			bestScore = score
			bestMove = move
			alpha = math.Max(alpha, score)
		}
	}
	return bestMove, nil
}

func (s *search) abMaxValue(board game.Board, depth int, alpha, beta float64) (float64, error) {
	if err := s.checkTime(); err != nil {
		return 0, err
	}

	moves, isLeaf := s.expand(board, depth)
	if isLeaf {
		return s.leaf(board), nil
	}

	bestScore := math.Inf(-1)
	for _, move := range moves {
		score, err := s.abMinValue(board.Forecast(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		if score > bestScore {
			if score >= beta {
				s.metrics.AddCutoff()
				return score, nil
			}
			bestScore = score
			alpha = math.Max(alpha, score)
		}
	}
	return bestScore, nil
}

func (s *search) abMinValue(board game.Board, depth int, alpha, beta float64) (float64, error) {
	if err := s.checkTime(); err != nil {
		return 0, err
	}

	moves, isLeaf := s.expand(board, depth)
	if isLeaf {
		return s.leaf(board), nil
	}

	bestScore := math.Inf(1)
	for _, move := range moves {
		score, err := s.abMaxValue(board.Forecast(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		if score < bestScore {
			if score <= alpha {
				s.metrics.AddCutoff()
				return score, nil
			}
			bestScore = score
			beta = math.Min(beta, score)
		}
	}
	return bestScore, nil
}
