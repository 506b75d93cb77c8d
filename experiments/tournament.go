package experiments

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/player"
	"isolation/utils"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var seats = []game.Player{"Player1", "Player2"}

type Option func(t *Tournament)

func WithContenders(configs ...metrics.AgentConfig) Option {
	return func(t *Tournament) {
		if len(configs) > 0 {
			t.contenders = configs
		}
	}
}

func WithOpponents(configs ...metrics.AgentConfig) Option {
	return func(t *Tournament) {
		if len(configs) > 0 {
			t.opponents = configs
		}
	}
}

// WithMatches sets the number of matches per pairing, each match being two games
func WithMatches(matches int) Option {
	return func(t *Tournament) {
		if matches > 0 {
			t.matches = matches
		}
	}
}

func WithTimeLimit(limit time.Duration) Option {
	return func(t *Tournament) {
		if limit > 0 {
			t.timeLimit = limit
		}
	}
}

func WithBoardSize(width, height int) Option {
	return func(t *Tournament) {
		t.boardOptions = append(t.boardOptions, game.WithSize(width, height))
	}
}

func WithSeed(seed uint64) Option {
	return func(t *Tournament) {
		t.seed = seed
	}
}

// WithParallelism caps the number of games played at once
func WithParallelism(games int) Option {
	return func(t *Tournament) {
		if games > 0 {
			t.parallelism = games
		}
	}
}

// WithOutput writes the results under dir once the tournament completes
func WithOutput(dir string) Option {
	return func(t *Tournament) {
		t.output = dir
	}
}

// Tournament plays every contender against every opponent in pairs of games
// from the same random opening, swapping seats between the two.
type Tournament struct {
	contenders   []metrics.AgentConfig
	opponents    []metrics.AgentConfig
	matches      int
	timeLimit    time.Duration
	boardOptions []game.BoardOption
	seed         uint64
	parallelism  int
	output       string
}

type Result struct {
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Standings []metrics.Standing
	Dir       string // Empty unless the results were written
}

func NewTournament(options ...Option) *Tournament {
	t := &Tournament{
		contenders:  Contenders,
		opponents:   Baselines,
		matches:     meta.NUM_MATCHES,
		timeLimit:   meta.TIME_LIMIT,
		seed:        uint64(time.Now().UnixNano()),
		parallelism: runtime.NumCPU(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

type fixture struct {
	match   int
	agents  [2]metrics.AgentConfig
	opening *game.Isolation
	seed    uint64
}

func (t *Tournament) fixtures() []fixture {
	rng := rand.New(rand.NewSource(t.seed))
	fixtures := []fixture{}
	for _, contender := range t.contenders {
		for _, opponent := range t.opponents {
			for m := 0; m < t.matches; m++ {
				opening := RandomOpening(rng, seats[0], seats[1], t.boardOptions...)
				fixtures = append(fixtures,
					fixture{match: m + 1, agents: [2]metrics.AgentConfig{contender, opponent}, opening: opening, seed: rng.Uint64()},
					fixture{match: m + 1, agents: [2]metrics.AgentConfig{opponent, contender}, opening: opening, seed: rng.Uint64()},
				)
			}
		}
	}
	return fixtures
}

// Run plays every game, stopping early if ctx is cancelled.
func (t *Tournament) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	fixtures := t.fixtures()
	games := make([]metrics.GameRecord, len(fixtures))
	moves := make([][]metrics.MoveRecord, len(fixtures))

	log.Info().Msgf("starting tournament of %d games between %d contenders and %d opponents...",
		len(fixtures), len(t.contenders), len(t.opponents))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.parallelism)
	for i, f := range fixtures {
		i, f := i, f // per-iteration copies; go.mod targets go 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, moveRecords, err := t.play(f)
			if err != nil {
				return err
			}
			games[i] = record
			moves[i] = moveRecords
			log.Info().Msgf("completed game %d of %d: %s vs %s, winner %d by %s",
				i+1, len(fixtures), f.agents[0].Name, f.agents[1].Name, record.Winner, record.Outcome)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("tournament aborted: %w", err)
	}

	result := Result{
		Games:     games,
		Moves:     lo.Flatten(moves),
		Standings: Standings(t.contenders, games),
	}
	for _, s := range result.Standings {
		log.Info().Msgf("%-12s %3d wins %3d losses (%.1f%%)", s.Agent.Name, s.Wins, s.Losses, 100*s.WinRate)
	}

	if t.output != "" {
		dir, err := t.write(result, start)
		if err != nil {
			return result, err
		}
		result.Dir = dir
	}
	return result, nil
}

func (t *Tournament) play(f fixture) (metrics.GameRecord, []metrics.MoveRecord, error) {
	agents := make([]player.Agent, 0, len(f.agents))
	for i, config := range f.agents {
		agent, err := NewAgent(config, f.seed+uint64(i))
		if err != nil {
			return metrics.GameRecord{}, nil, err
		}
		agents = append(agents, agent)
	}

	e := engine.LocalEngine(seats, agents, f.opening, t.timeLimit)
	gameMetric, moveMetrics := e.Run()

	record := metrics.GameRecord{
		Match:      f.match,
		Agent1:     f.agents[0].ID,
		Agent2:     f.agents[1].ID,
		Winner:     f.agents[utils.IndexOf(seats, gameMetric.Winner)].ID,
		GameMetric: gameMetric,
	}
	moveRecords := lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
		return metrics.MoveRecord{Game: gameMetric.ID, MoveMetric: mm}
	})
	return record, moveRecords, nil
}

func (t *Tournament) write(result Result, start time.Time) (string, error) {
	writer, err := metrics.NewWriter(t.output, "tournament")
	if err != nil {
		return "", fmt.Errorf("failed to create tournament writer: %w", err)
	}

	end := time.Now()
	setup := metrics.Setup{
		Contenders: t.contenders,
		Opponents:  t.opponents,
		NumMatches: t.matches,
		TimeLimit:  t.timeLimit,
		Seed:       t.seed,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	}
	if err := writer.WriteSetup(setup); err != nil {
		return "", err
	}
	configs := lo.UniqBy(lo.Flatten([][]metrics.AgentConfig{t.contenders, t.opponents}),
		func(c metrics.AgentConfig) int { return c.ID })
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", err
	}
	if err := writer.WriteStandings(result.Standings); err != nil {
		return "", err
	}

	log.Info().Str("dir", writer.Dir()).Msg("stored tournament results")
	return writer.Dir(), nil
}

// Standings tallies the games each contender played
func Standings(contenders []metrics.AgentConfig, games []metrics.GameRecord) []metrics.Standing {
	return lo.Map(contenders, func(c metrics.AgentConfig, _ int) metrics.Standing {
		played := lo.Filter(games, func(r metrics.GameRecord, _ int) bool {
			return r.Agent1 == c.ID || r.Agent2 == c.ID
		})
		wins := lo.CountBy(played, func(r metrics.GameRecord) bool { return r.Winner == c.ID })

		standing := metrics.Standing{Agent: c, Wins: wins, Losses: len(played) - wins}
		if len(played) > 0 {
			standing.WinRate = float64(wins) / float64(len(played))
		}
		return standing
	})
}

// RandomOpening places both players on random blank cells of a new board.
func RandomOpening(rng *rand.Rand, player1, player2 game.Player, options ...game.BoardOption) *game.Isolation {
	board := game.NewIsolation(player1, player2, options...)
	for i := 0; i < 2; i++ {
		moves := board.LegalMoves(board.ActivePlayer())
		board = board.Play(moves[rng.Intn(len(moves))])
	}
	return board
}
