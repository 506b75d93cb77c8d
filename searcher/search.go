package searcher

import "isolation/game"

// search holds the state of a single GetMove call. It is discarded when the call returns.
type search struct {
	player    game.Player // Root player, every leaf is evaluated from its perspective
	timeLeft  TimeLeft
	threshold float64
	evaluate  game.Evaluate
	metrics   MetricsCollector
	horizon   bool // Set when a leaf was cut by depth while moves remained
}

func newSearch(c config, board game.Board, timeLeft TimeLeft) *search {
	return &search{
		player:    board.ActivePlayer(),
		timeLeft:  timeLeft,
		threshold: c.timeout,
		evaluate:  c.evaluate,
		metrics:   c.metrics,
	}
}

// checkTime must run first in every recursive call
func (s *search) checkTime() error {
	if s.timeLeft() <= s.threshold {
		return ErrSearchTimeout
	}
	s.metrics.AddNode()
	return nil
}

// expand returns the moves of the player to move, and whether board is a leaf at depth
func (s *search) expand(board game.Board, depth int) ([]game.Move, bool) {
	moves := board.LegalMoves(board.ActivePlayer())
	if len(moves) == 0 {
		return nil, true
	}
	if depth <= 0 {
		s.horizon = true
		return moves, true
	}
	return moves, false
}

func (s *search) leaf(board game.Board) float64 {
	s.metrics.AddEvaluation()
	return s.evaluate(board, s.player)
}
