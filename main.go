package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"time"

	"isolation/engine"
	"isolation/experiments"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/player"
	"isolation/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

func main() {
	mode := flag.String("mode", "tournament", "Either game or tournament")
	matches := flag.Int("matches", meta.NUM_MATCHES, "Matches per pairing, two games each")
	timeLimit := flag.Duration("time-limit", meta.TIME_LIMIT, "Time limit per move")
	depth := flag.Int("depth", searcher.DefaultDepth, "Search depth, the starting depth for alphabeta")
	timeout := flag.Float64("timeout", searcher.DefaultTimeout, "Milliseconds left when a search aborts")
	eval := flag.String("eval", "edge", "Evaluation function of the agent in game mode")
	strategy := flag.String("strategy", "alphabeta", "Search strategy of the agent in game mode")
	opponent := flag.String("opponent", "AB_Improved", "Baseline played against in game mode")
	width := flag.Int("width", game.DefaultWidth, "Board width")
	height := flag.Int("height", game.DefaultHeight, "Board height")
	out := flag.String("out", meta.OUTPUT_DIR, "Directory for tournament results, empty to skip writing")
	level := flag.String("log-level", "info", "Log level")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for openings and random agents")
	parallel := flag.Int("parallel", runtime.NumCPU(), "Games played at once in a tournament")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	switch *mode {
	case "game":
		config := metrics.AgentConfig{ID: 0, Name: "Agent", Strategy: *strategy, Depth: *depth, Evaluator: *eval, Timeout: *timeout}
		baseline, ok := lo.Find(experiments.Baselines, func(c metrics.AgentConfig) bool { return c.Name == *opponent })
		if !ok {
			log.Fatal().Str("opponent", *opponent).Msg("unknown baseline")
		}
		runGame(config, baseline, *timeLimit, *width, *height, *seed)
	case "tournament":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		tournament := experiments.NewTournament(
			experiments.WithMatches(*matches),
			experiments.WithTimeLimit(*timeLimit),
			experiments.WithBoardSize(*width, *height),
			experiments.WithSeed(*seed),
			experiments.WithParallelism(*parallel),
			experiments.WithOutput(*out),
		)
		if _, err := tournament.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("tournament failed")
		}
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

// runGame plays a single game from a random opening with config1 moving first
func runGame(config1, config2 metrics.AgentConfig, timeLimit time.Duration, width, height int, seed uint64) {
	agents := []player.Agent{}
	for i, config := range []metrics.AgentConfig{config1, config2} {
		agent, err := experiments.NewAgent(config, seed+uint64(i))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create agent")
		}
		agents = append(agents, agent)
	}

	players := []game.Player{game.Player(config1.Name), game.Player(config2.Name)}
	rng := rand.New(rand.NewSource(seed))
	board := experiments.RandomOpening(rng, players[0], players[1], game.WithSize(width, height))
	e := engine.LocalEngine(players, agents, board, timeLimit)

	gameMetric, moveMetrics := e.Run()

	for _, mm := range moveMetrics {
		log.Info().Int("step", mm.Step).Str("player", string(mm.Player)).Stringer("move", mm.Move).
			Int("depth", mm.Depth).Int64("nodes", mm.Nodes).Msg("move")
	}
	log.Info().Msgf("game over! winner: %s by %s after %d moves", gameMetric.Winner, gameMetric.Outcome, gameMetric.TotalMoves)
}
