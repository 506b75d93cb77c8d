package game

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Largest noise drawn per axis by the edge-damped evaluator
const edgeNoise = 0.6

// Float64Source yields values in [0, 1). *rand.Rand from golang.org/x/exp/rand satisfies it.
type Float64Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// EdgeDamped is the edge-damped evaluator backed by the shared, goroutine-safe source.
var EdgeDamped = NewEdgeDamped(nil)

// terminal returns the utility of a won or lost board, ok is false otherwise.
func terminal(board Board, player Player) (score float64, ok bool) {
	if board.IsLoser(player) {
		return math.Inf(-1), true
	}
	if board.IsWinner(player) {
		return math.Inf(1), true
	}
	return 0, false
}

// mobility is the player's legal move count minus the opponent's
func mobility(board Board, player Player) float64 {
	own := len(board.LegalMoves(player))
	opp := len(board.LegalMoves(board.Opponent(player)))
	return float64(own - opp)
}

// NewEdgeDamped returns an evaluator that scales mobility by (1 - rx - ry), where rx
// and ry are drawn from [0, 0.6) when the player stands on a vertical or horizontal
// edge respectively. Noise is drawn on every call, so equal boards may score
// differently. A nil src uses the shared source.
func NewEdgeDamped(src Float64Source) Evaluate {
	if src == nil {
		src = globalSource{}
	}
	return func(board Board, player Player) float64 {
		if score, ok := terminal(board, player); ok {
			return score
		}

		score := mobility(board, player)
		loc, placed := board.Location(player)
		if !placed {
			return score
		}

		w, h := board.Width(), board.Height()
		rx, ry := 0.0, 0.0
		if loc.Col == 0 || loc.Col == w-1 {
			rx = src.Float64() * edgeNoise
		}
		if loc.Row == 0 || loc.Row == h-1 {
			ry = src.Float64() * edgeNoise
		}
		return score * (1 - rx - ry)
	}
}

// CenterWeighted scales mobility by 2 plus the normalized Manhattan distance
// of the player from the board center.
func CenterWeighted(board Board, player Player) float64 {
	if score, ok := terminal(board, player); ok {
		return score
	}

	score := mobility(board, player)
	loc, placed := board.Location(player)
	if !placed {
		return score
	}

	w, h := float64(board.Width())/2, float64(board.Height())/2
	ratio := (math.Abs(h-float64(loc.Row)) + math.Abs(w-float64(loc.Col))) / (w + h)
	return score * (2 + ratio)
}

// OpponentProximity rewards standing close to the opponent, except in a corner.
func OpponentProximity(board Board, player Player) float64 {
	if score, ok := terminal(board, player); ok {
		return score
	}

	score := mobility(board, player)
	own, placed := board.Location(player)
	if !placed || isCorner(board.Width(), board.Height(), own) {
		return score
	}
	opp, placed := board.Location(board.Opponent(player))
	if !placed {
		return score
	}

	dr, dc := float64(own.Row-opp.Row), float64(own.Col-opp.Col)
	w, h := float64(board.Width()), float64(board.Height())
	closeness := 1 - (dr*dr+dc*dc)/(w*w+h*h)
	return score * (1 + closeness)
}

func isCorner(width, height int, m Move) bool {
	onCol := m.Col == 0 || m.Col == width-1
	onRow := m.Row == 0 || m.Row == height-1
	return onCol && onRow
}

// Null scores every non-terminal board 0.
func Null(board Board, player Player) float64 {
	score, _ := terminal(board, player)
	return score
}

// OpenMoves counts the player's legal moves.
func OpenMoves(board Board, player Player) float64 {
	if score, ok := terminal(board, player); ok {
		return score
	}
	return float64(len(board.LegalMoves(player)))
}

// Improved is the plain mobility differential.
func Improved(board Board, player Player) float64 {
	if score, ok := terminal(board, player); ok {
		return score
	}
	return mobility(board, player)
}

// CenterDistance is the squared distance of the player from the board center.
func CenterDistance(board Board, player Player) float64 {
	if score, ok := terminal(board, player); ok {
		return score
	}
	loc, placed := board.Location(player)
	if !placed {
		return 0
	}
	w, h := float64(board.Width())/2, float64(board.Height())/2
	dr, dc := h-float64(loc.Row), w-float64(loc.Col)
	return dr*dr + dc*dc
}

var evaluators = map[string]Evaluate{
	"edge":            EdgeDamped,
	"center":          CenterWeighted,
	"proximity":       OpponentProximity,
	"improved":        Improved,
	"open":            OpenMoves,
	"center-distance": CenterDistance,
	"null":            Null,
}

// EvaluatorByName resolves an evaluator from its command line name.
func EvaluatorByName(name string) (Evaluate, error) {
	evaluate, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
	return evaluate, nil
}
