package engine

import (
	"errors"
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/gamemaster"
	"isolation/player"
	"isolation/searcher"
	"isolation/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type localEngine struct {
	players   []game.Player
	agents    []player.Agent
	board     game.Board
	timeLimit time.Duration
}

// LocalEngine plays agents[i] as players[i] from board, giving each move timeLimit.
func LocalEngine(players []game.Player, agents []player.Agent, board game.Board, timeLimit time.Duration) Engine {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) != 2 {
		panic("need exactly two players")
	}
	for _, p := range players {
		if p != board.ActivePlayer() && p != board.InactivePlayer() {
			panic("player " + string(p) + " is not on the board")
		}
	}

	return &localEngine{
		players:   players,
		agents:    agents,
		board:     board,
		timeLimit: timeLimit,
	}
}

func (e *localEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:           uuid.New(),
		FirstPlayer:  e.board.ActivePlayer(),
		SecondPlayer: e.board.InactivePlayer(),
		Outcome:      metrics.Won,
		StartTime:    time.Now(),
	}
	logger := log.With().Str("game", gameMetric.ID.String()).Logger()
	logger.Info().Msgf("%s is starting", gameMetric.FirstPlayer)

	referee := gamemaster.NewReferee(e.board)
	var moveMetrics []metrics.MoveMetric
	for step := 1; !referee.GameOver(); step++ {
		board := referee.Board()
		current := board.ActivePlayer()
		agent := e.agents[utils.IndexOf(e.players, current)]

		timeLeft := searcher.TimeLeft(utils.Countdown(e.timeLimit))
		move := agent.GetMove(board, timeLeft)
		remaining := timeLeft()

		moveMetric := metrics.MoveMetric{
			Step:     step,
			Player:   current,
			Move:     move,
			TimeLeft: remaining,
		}
		if metered, ok := agent.(player.Metered); ok {
			moveMetric.SearchMetric = metered.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		outcome, err := e.judge(referee, move, remaining)
		if err != nil {
			gameMetric.Outcome = outcome
			logger.Warn().Err(err).Str("player", string(current)).Int("step", step).Msgf("%s forfeits by %s", current, outcome)
			if err := referee.Forfeit(current); err != nil {
				logger.Error().Err(err).Msg("failed to record forfeit")
			}
			break
		}
		logger.Debug().Str("player", string(current)).Stringer("move", move).Float64("time_left", remaining).Msg("move played")
	}

	winner, _ := referee.Winner()
	gameMetric.Winner = winner
	gameMetric.TotalMoves = len(referee.History())
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	logger.Info().Str("outcome", string(gameMetric.Outcome)).Int("moves", gameMetric.TotalMoves).Msgf("game over! winner: %s", winner)
	return gameMetric, moveMetrics
}

var (
	errTimeout = errors.New("returned after the time limit")
	errNoMove  = errors.New("returned no move while moves were available")
)

// judge plays move unless it forfeits the game, returning the forfeit outcome and cause
func (e *localEngine) judge(referee *gamemaster.Referee, move game.Move, remaining float64) (metrics.Outcome, error) {
	if remaining < 0 {
		return metrics.Timeout, errTimeout
	}
	if move == game.NoMove {
		return metrics.Forfeit, errNoMove
	}
	if err := referee.Play(move); err != nil {
		return metrics.IllegalMove, err
	}
	return metrics.Won, nil
}
