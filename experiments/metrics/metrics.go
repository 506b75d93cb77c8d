package metrics

import (
	"time"

	"isolation/game"
	"isolation/searcher"

	"github.com/google/uuid"
)

// Outcome tells how a game ended
type Outcome string

const (
	Won         Outcome = "won"          // Loser had no legal move
	Timeout     Outcome = "timeout"      // Loser returned after its time ran out
	IllegalMove Outcome = "illegal move" // Loser returned a move that was not legal
	Forfeit     Outcome = "forfeit"      // Loser returned no move while having legal moves
)

type AgentConfig struct {
	ID        int
	Name      string
	Strategy  string // minimax, alphabeta, greedy or random
	Depth     int
	Evaluator string  // Name accepted by game.EvaluatorByName
	Timeout   float64 // Milliseconds
}

type MoveMetric struct {
	Step     int
	Player   game.Player
	Move     game.Move
	TimeLeft float64 // Milliseconds left when the agent returned
	searcher.SearchMetric
}

type GameMetric struct {
	ID           uuid.UUID
	FirstPlayer  game.Player
	SecondPlayer game.Player
	Winner       game.Player
	Outcome      Outcome
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type GameRecord struct {
	Match  int
	Agent1 int // AgentConfig.ID of the first seat
	Agent2 int // AgentConfig.ID of the second seat
	Winner int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game uuid.UUID // GameMetric.ID
	MoveMetric
}

// Standing is a contender's record across a tournament
type Standing struct {
	Agent   AgentConfig
	Wins    int
	Losses  int
	WinRate float64
}
