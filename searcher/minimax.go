package searcher

import (
	"math"

	"isolation/game"

	"github.com/rs/zerolog/log"
)

// Minimax searches a fixed number of plies per move. A timeout loses the whole search.
type Minimax struct {
	config
	last SearchMetric
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options...)}
}

func (m *Minimax) GetMove(board game.Board, timeLeft TimeLeft) game.Move {
	m.metrics.Start("minimax")
	defer func() { m.last = m.metrics.Complete() }()

	if len(board.LegalMoves(board.ActivePlayer())) == 0 {
		return game.NoMove
	}

	s := newSearch(m.config, board, timeLeft)
	move, err := s.minimax(board, m.depth)
	if err != nil {
		m.metrics.TimedOut()
		log.Debug().Err(err).Int("depth", m.depth).Msg("minimax search aborted")
		return game.NoMove
	}
	m.metrics.CompleteDepth(m.depth)
	return move
}

// LastMetric returns the metrics of the latest GetMove call, empty unless WithMetrics is set.
func (m *Minimax) LastMetric() SearchMetric {
	return m.last
}

// minimax returns the best root move at depth. Ties go to the first move generated.
func (s *search) minimax(board game.Board, depth int) (game.Move, error) {
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
		score, err := s.minValue(board.Forecast(move), depth-1)
		if err != nil {
			return game.NoMove, err
		}
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}
	return bestMove, nil
}

func (s *search) maxValue(board game.Board, depth int) (float64, error) {
	if err := s.checkTime(); err != nil {
		return 0, err
	}

	moves, isLeaf := s.expand(board, depth)
	if isLeaf {
		return s.leaf(board), nil
	}

	bestScore := math.Inf(-1)
	for _, move := range moves {
		score, err := s.minValue(board.Forecast(move), depth-1)
		if err != nil {
			return 0, err
		}
		if score > bestScore {
			bestScore = score
		}
	}
	return bestScore, nil
}

func (s *search) minValue(board game.Board, depth int) (float64, error) {
	if err := s.checkTime(); err != nil {
		return 0, err
	}

	moves, isLeaf := s.expand(board, depth)
	if isLeaf {
		return s.leaf(board), nil
	}

	bestScore := math.Inf(1)
	for _, move := range moves {
		score, err := s.maxValue(board.Forecast(move), depth-1)
		if err != nil {
			return 0, err
		}
		if score < bestScore {
			bestScore = score
		}
	}
	return bestScore, nil
}
