package searcher

import (
	"math"
	"testing"

	"isolation/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// Depth one prefers the first move, depth two the second
func deepeningTree() *mockBoard {
	return tree(node(0,
		node(10, leaf(1), leaf(2)),
		node(0, leaf(7), leaf(8)),
	))
}

// randomTree builds a tree of the given height with 1 to 3 children per node and
// small integer scores, so equal scores are common
func randomTree(rng *rand.Rand, height int) *mockBoard {
	var build func(h int) *mockBoard
	build = func(h int) *mockBoard {
		b := leaf(float64(rng.Intn(21) - 10))
		if h == 0 {
			return b
		}
		n := 1 + rng.Intn(3)
		for i := 0; i < n; i++ {
			b.children = append(b.children, build(h-1))
		}
		return b
	}
	return tree(build(height))
}

func TestAlphaBetaGetMove(t *testing.T) {
	t.Run("no legal moves", func(t *testing.T) {
		evaluations := 0
		timeLeft, checks := countdown(100)
		a := NewAlphaBeta(WithEvaluationFn(scoreEval(&evaluations)))

		got := a.GetMove(tree(leaf(0)), timeLeft)

		require.Equal(t, game.NoMove, got, "Should return the no-move sentinel")
		require.Zero(t, evaluations, "Should not evaluate the board")
		require.Zero(t, *checks, "Should not enter the search")
	})

	t.Run("pruning the textbook tree", func(t *testing.T) {
		evaluations := 0
		a := NewAlphaBeta(WithDepth(2), WithEvaluationFn(scoreEval(&evaluations)), WithMetrics())

		got := a.GetMove(textbookTree(), forever)

		require.Equal(t, game.Move{Row: 0, Col: 0}, got, "Should pick the same move as minimax")
		require.Equal(t, 7, evaluations, "Should skip the leaves cut off by alpha")
		require.Equal(t, int64(2), a.LastMetric().Cutoffs)
	})

	t.Run("stopping once the tree is exhausted", func(t *testing.T) {
		evaluations := 0
		a := NewAlphaBeta(WithDepth(1), WithEvaluationFn(scoreEval(&evaluations)), WithMetrics())

		got := a.GetMove(deepeningTree(), forever)
		metric := a.LastMetric()

		require.Equal(t, game.Move{Row: 0, Col: 1}, got, "Should return the deepest completed result")
		require.Equal(t, 2, metric.Depth, "Should stop after the first depth reaching only terminal leaves")
		require.False(t, metric.TimedOut)
	})

	t.Run("keeping the last completed depth on timeout", func(t *testing.T) {
		for _, calls := range []int{3, 4, 5, 6} {
			evaluations := 0
			timeLeft, _ := countdown(calls)
			a := NewAlphaBeta(WithDepth(1), WithEvaluationFn(scoreEval(&evaluations)), WithMetrics())

			got := a.GetMove(deepeningTree(), timeLeft)

			require.Equal(t, game.Move{Row: 0, Col: 0}, got,
				"Should return the depth one move when depth two is cut short after %d checks", calls)
			require.Equal(t, 1, a.LastMetric().Depth)
			require.True(t, a.LastMetric().TimedOut)
		}
	})

	t.Run("timing out on the first check", func(t *testing.T) {
		evaluations := 0
		a := NewAlphaBeta(WithEvaluationFn(scoreEval(&evaluations)), WithMetrics())

		require.NotPanics(t, func() {
			got := a.GetMove(textbookTree(), func() float64 { return 1 })
			require.Equal(t, game.NoMove, got, "Should return the no-move sentinel")
		})
		require.Zero(t, evaluations)
		require.True(t, a.LastMetric().TimedOut)
		require.Zero(t, a.LastMetric().Depth)
	})

	t.Run("first of equal scores wins", func(t *testing.T) {
		evaluations := 0
		board := tree(node(0, leaf(1), leaf(5), leaf(5)))
		a := NewAlphaBeta(WithDepth(1), WithEvaluationFn(scoreEval(&evaluations)))

		got := a.GetMove(board, forever)

		require.Equal(t, game.Move{Row: 0, Col: 1}, got)
	})

	t.Run("all moves losing", func(t *testing.T) {
		evaluations := 0
		board := tree(node(0, leaf(math.Inf(-1)), leaf(math.Inf(-1))))
		a := NewAlphaBeta(WithEvaluationFn(scoreEval(&evaluations)))

		got := a.GetMove(board, forever)

		require.Equal(t, game.Move{Row: 0, Col: 0}, got, "Should still return a legal move")
	})
}

func TestAlphaBetaSearch(t *testing.T) {
	t.Run("matching minimax", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 50; i++ {
			board := randomTree(rng, 4)
			for depth := 1; depth <= 4; depth++ {
				var evaluations int
				m := NewMinimax(WithDepth(depth), WithEvaluationFn(scoreEval(&evaluations)))
				a := NewAlphaBeta(WithEvaluationFn(scoreEval(&evaluations)))

				want := m.GetMove(board, forever)
				got, err := a.Search(board, depth, math.Inf(-1), math.Inf(1), forever)

				require.NoError(t, err)
				require.Equal(t, want, got, "tree %d depth %d: pruning should not change the move", i, depth)
			}
		}
	})

	t.Run("returning the timeout", func(t *testing.T) {
		evaluations := 0
		timeLeft, _ := countdown(2)
		a := NewAlphaBeta(WithEvaluationFn(scoreEval(&evaluations)))

		got, err := a.Search(textbookTree(), 2, math.Inf(-1), math.Inf(1), timeLeft)

		require.ErrorIs(t, err, ErrSearchTimeout)
		require.Equal(t, game.NoMove, got)
	})

	t.Run("evaluating fewer leaves than minimax", func(t *testing.T) {
		var minimaxEvals, alphaBetaEvals int
		m := NewMinimax(WithDepth(2), WithEvaluationFn(scoreEval(&minimaxEvals)))
		a := NewAlphaBeta(WithEvaluationFn(scoreEval(&alphaBetaEvals)))

		m.GetMove(textbookTree(), forever)
		_, err := a.Search(textbookTree(), 2, math.Inf(-1), math.Inf(1), forever)

		require.NoError(t, err)
		require.Less(t, alphaBetaEvals, minimaxEvals)
	})
}
