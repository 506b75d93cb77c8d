package player

import "isolation/searcher"

// Agent chooses a move for the active player of a board within the time reported by timeLeft.
type Agent interface {
	searcher.Searcher
}

// Metered agents report the metrics of their latest search
type Metered interface {
	LastMetric() searcher.SearchMetric
}

var (
	_ Agent   = (*searcher.Minimax)(nil)
	_ Agent   = (*searcher.AlphaBeta)(nil)
	_ Metered = (*searcher.Minimax)(nil)
	_ Metered = (*searcher.AlphaBeta)(nil)
	_ Agent   = (*Random)(nil)
	_ Agent   = (*Greedy)(nil)
)
