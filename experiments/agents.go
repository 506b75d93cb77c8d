package experiments

import (
	"fmt"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/player"
	"isolation/searcher"
)

// Baselines are the fixed opponents every contender plays against
var Baselines = []metrics.AgentConfig{
	{ID: 1, Name: "Random", Strategy: "random"},
	{ID: 2, Name: "MM_Open", Strategy: "minimax", Depth: meta.SEARCH_DEPTH, Evaluator: "open"},
	{ID: 3, Name: "MM_Center", Strategy: "minimax", Depth: meta.SEARCH_DEPTH, Evaluator: "center-distance"},
	{ID: 4, Name: "MM_Improved", Strategy: "minimax", Depth: meta.SEARCH_DEPTH, Evaluator: "improved"},
	{ID: 5, Name: "AB_Open", Strategy: "alphabeta", Depth: 1, Evaluator: "open"},
	{ID: 6, Name: "AB_Center", Strategy: "alphabeta", Depth: 1, Evaluator: "center-distance"},
	{ID: 7, Name: "AB_Improved", Strategy: "alphabeta", Depth: 1, Evaluator: "improved"},
}

// Contenders are the agents under test, the first one being the reference heuristic
var Contenders = []metrics.AgentConfig{
	{ID: 8, Name: "AB_Improved", Strategy: "alphabeta", Depth: 1, Evaluator: "improved"},
	{ID: 9, Name: "AB_Custom", Strategy: "alphabeta", Depth: 1, Evaluator: "edge"},
	{ID: 10, Name: "AB_Custom_2", Strategy: "alphabeta", Depth: 1, Evaluator: "center"},
	{ID: 11, Name: "AB_Custom_3", Strategy: "alphabeta", Depth: 1, Evaluator: "proximity"},
}

// NewAgent builds the agent described by config. seed only drives random agents.
func NewAgent(config metrics.AgentConfig, seed uint64) (player.Agent, error) {
	var evaluate game.Evaluate
	if config.Evaluator != "" {
		var err error
		evaluate, err = game.EvaluatorByName(config.Evaluator)
		if err != nil {
			return nil, fmt.Errorf("agent %s: %w", config.Name, err)
		}
	}

	switch config.Strategy {
	case "random":
		return player.NewRandom(seed), nil
	case "greedy":
		return player.NewGreedy(evaluate), nil
	case "minimax":
		return searcher.NewMinimax(searchOptions(config, evaluate)...), nil
	case "alphabeta":
		return searcher.NewAlphaBeta(searchOptions(config, evaluate)...), nil
	default:
		return nil, fmt.Errorf("agent %s: unknown strategy %q", config.Name, config.Strategy)
	}
}

func searchOptions(config metrics.AgentConfig, evaluate game.Evaluate) []searcher.Option {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Timeout > 0 {
		options = append(options, searcher.WithTimeout(config.Timeout))
	}
	if evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	options = append(options, searcher.WithMetrics())
	return options
}
