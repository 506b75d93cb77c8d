package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type constantSource float64

func (c constantSource) Float64() float64 { return float64(c) }

// p1 in the center with 8 moves, p2 in a corner with 2, p1 to move
func centerVsCorner() *Isolation {
	return NewIsolation("p1", "p2").
		Play(Move{Row: 3, Col: 3}).
		Play(Move{Row: 0, Col: 0})
}

// 9 wide, 5 high: p1 on the bottom row with 4 moves, p2 in a corner with 2, p1 to move
func bottomRowOnWideBoard() *Isolation {
	return NewIsolation("p1", "p2", WithSize(9, 5)).
		Play(Move{Row: 4, Col: 3}).
		Play(Move{Row: 0, Col: 0})
}

func TestEvaluatorsTerminal(t *testing.T) {
	lost := NewIsolation("p1", "p2", WithSize(3, 3)).
		Play(Move{Row: 1, Col: 1}).
		Play(Move{Row: 0, Col: 0})

	evaluators := map[string]Evaluate{
		"edge damped":        NewEdgeDamped(constantSource(0.5)),
		"center weighted":    CenterWeighted,
		"opponent proximity": OpponentProximity,
		"null":               Null,
		"open moves":         OpenMoves,
		"improved":           Improved,
		"center distance":    CenterDistance,
	}
	for name, evaluate := range evaluators {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, math.Inf(-1), evaluate(lost, "p1"), "Loser should score -Inf")
			require.Equal(t, math.Inf(1), evaluate(lost, "p2"), "Winner should score +Inf")
		})
	}
}

func TestEdgeDamped(t *testing.T) {
	b := centerVsCorner()

	t.Run("no noise off the edges", func(t *testing.T) {
		evaluate := NewEdgeDamped(constantSource(0.5))

		require.Equal(t, 6.0, evaluate(b, "p1"))
	})

	t.Run("damping in a corner", func(t *testing.T) {
		evaluate := NewEdgeDamped(constantSource(0.5))

		// -6 * (1 - 0.3 - 0.3)
		require.InDelta(t, -2.4, evaluate(b, "p2"), 1e-9)
	})

	t.Run("zero noise matches improved", func(t *testing.T) {
		evaluate := NewEdgeDamped(constantSource(0))

		require.Equal(t, Improved(b, "p2"), evaluate(b, "p2"))
	})

	t.Run("resampling on every call", func(t *testing.T) {
		evaluate := NewEdgeDamped(rand.New(rand.NewSource(1)))

		scores := map[float64]bool{}
		for i := 0; i < 20; i++ {
			score := evaluate(b, "p2")
			require.LessOrEqual(t, score, -6*(1-2*edgeNoise))
			require.GreaterOrEqual(t, score, -6.0)
			scores[score] = true
		}
		require.Greater(t, len(scores), 1, "Equal boards should not always score equally")
	})

	t.Run("fixed seed repeats the sequence", func(t *testing.T) {
		first := NewEdgeDamped(rand.New(rand.NewSource(42)))
		second := NewEdgeDamped(rand.New(rand.NewSource(42)))

		for i := 0; i < 5; i++ {
			require.Equal(t, first(b, "p2"), second(b, "p2"))
		}
	})

	t.Run("non-square board edges", func(t *testing.T) {
		evaluate := NewEdgeDamped(constantSource(0.5))
		b := bottomRowOnWideBoard()

		// Bottom row but no side column, so only ry applies: 2 * (1 - 0.3)
		require.InDelta(t, 1.4, evaluate(b, "p1"), 1e-9)
	})

	t.Run("unplaced player", func(t *testing.T) {
		evaluate := NewEdgeDamped(constantSource(0.5))
		start := NewIsolation("p1", "p2").Play(Move{Row: 0, Col: 0})

		// 49 - 1 open cells for p2 against 2 knight moves for p1
		require.Equal(t, 46.0, evaluate(start, "p2"))
	})
}

func TestCenterWeighted(t *testing.T) {
	b := centerVsCorner()

	// ratio = (0.5 + 0.5) / 7
	require.InDelta(t, 6*(2+1.0/7), CenterWeighted(b, "p1"), 1e-9)
	// ratio = (3.5 + 3.5) / 7
	require.InDelta(t, -6*3.0, CenterWeighted(b, "p2"), 1e-9)

	t.Run("non-square board", func(t *testing.T) {
		wide := bottomRowOnWideBoard()

		// ratio = (|2.5 - 4| + |4.5 - 3|) / (4.5 + 2.5)
		require.InDelta(t, 2*(2+3.0/7), CenterWeighted(wide, "p1"), 1e-9)
	})
}

func TestOpponentProximity(t *testing.T) {
	b := centerVsCorner()

	t.Run("scaling by closeness", func(t *testing.T) {
		// squared distance 18 of max 98
		require.InDelta(t, 6*(1+(1-18.0/98)), OpponentProximity(b, "p1"), 1e-9)
	})

	t.Run("plain differential in a corner", func(t *testing.T) {
		require.Equal(t, -6.0, OpponentProximity(b, "p2"))
	})

	t.Run("non-square board corners", func(t *testing.T) {
		wide := NewIsolation("p1", "p2", WithSize(9, 5)).
			Play(Move{Row: 4, Col: 8}).
			Play(Move{Row: 2, Col: 4})

		require.Equal(t, Improved(wide, "p1"), OpponentProximity(wide, "p1"))
	})
}

func TestBaselineEvaluators(t *testing.T) {
	b := centerVsCorner()

	require.Equal(t, 0.0, Null(b, "p1"))
	require.Equal(t, 8.0, OpenMoves(b, "p1"))
	require.Equal(t, 6.0, Improved(b, "p1"))
	require.Equal(t, 0.5, CenterDistance(b, "p1"))
	require.Equal(t, 24.5, CenterDistance(b, "p2"))
}

func TestEvaluatorByName(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		for _, name := range []string{"edge", "center", "proximity", "improved", "open", "center-distance", "null"} {
			evaluate, err := EvaluatorByName(name)
			require.NoError(t, err)
			require.NotNil(t, evaluate)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := EvaluatorByName("nope")
		require.Error(t, err)
	})
}
