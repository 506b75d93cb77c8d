package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

const (
	DefaultWidth  = 7
	DefaultHeight = 7
)

const (
	blank   = 0
	blocked = 1
)

// Knight L-shapes, in the order legal moves are generated
var directions = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

type BoardOption func(b *Isolation)

func WithSize(width, height int) BoardOption {
	return func(b *Isolation) {
		if width > 0 && height > 0 {
			b.width = width
			b.height = height
		}
	}
}

// Isolation is a two-player board where each player moves like a chess knight and
// every visited cell stays blocked. A player's first move may go to any blank cell.
// The active player without a legal move loses.
type Isolation struct {
	width     int
	height    int
	players   [2]Player // Players in seat order, players[0] moves first
	cells     []int8    // Cell states indexed by row*width+col
	locations [2]Move   // NoMove until placed
	active    int       // Seat of the player to move
	moveCount int
}

// NewIsolation returns an empty board with player1 to move.
func NewIsolation(player1, player2 Player, options ...BoardOption) *Isolation {
	if player1 == player2 {
		panic("players must be distinct")
	}
	b := &Isolation{ // Default values
		width:     DefaultWidth,
		height:    DefaultHeight,
		players:   [2]Player{player1, player2},
		locations: [2]Move{NoMove, NoMove},
	}
	for _, option := range options {
		option(b)
	}
	b.cells = make([]int8, b.width*b.height)
	return b
}

func (b *Isolation) Width() int  { return b.width }
func (b *Isolation) Height() int { return b.height }

func (b *Isolation) ActivePlayer() Player   { return b.players[b.active] }
func (b *Isolation) InactivePlayer() Player { return b.players[1-b.active] }

// MoveCount returns the number of moves applied since the empty board.
func (b *Isolation) MoveCount() int { return b.moveCount }

func (b *Isolation) seat(player Player) int {
	for i, p := range b.players {
		if p == player {
			return i
		}
	}
	return -1
}

func (b *Isolation) Opponent(player Player) Player {
	i := b.seat(player)
	if i < 0 {
		panic(fmt.Sprintf("unknown player %q", player))
	}
	return b.players[1-i]
}

func (b *Isolation) Location(player Player) (Move, bool) {
	i := b.seat(player)
	if i < 0 || b.locations[i] == NoMove {
		return NoMove, false
	}
	return b.locations[i], true
}

func (b *Isolation) inBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// IsBlank reports whether the cell is on the board and has never been visited.
func (b *Isolation) IsBlank(m Move) bool {
	return b.inBounds(m.Row, m.Col) && b.cells[m.Row*b.width+m.Col] == blank
}

// LegalMoves returns the moves of player in row-major order for a first placement,
// in knight direction order afterwards.
func (b *Isolation) LegalMoves(player Player) []Move {
	i := b.seat(player)
	if i < 0 {
		return nil
	}

	loc := b.locations[i]
	if loc == NoMove {
		moves := make([]Move, 0, len(b.cells))
		for idx, cell := range b.cells {
			if cell == blank {
				moves = append(moves, Move{Row: idx / b.width, Col: idx % b.width})
			}
		}
		return moves
	}

	moves := make([]Move, 0, len(directions))
	for _, d := range directions {
		m := Move{Row: loc.Row + d[0], Col: loc.Col + d[1]}
		if b.IsBlank(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

func (b *Isolation) IsWinner(player Player) bool {
	return player == b.InactivePlayer() && len(b.LegalMoves(b.ActivePlayer())) == 0
}

func (b *Isolation) IsLoser(player Player) bool {
	return player == b.ActivePlayer() && len(b.LegalMoves(player)) == 0
}

// Utility returns +Inf if player has won, -Inf if lost, and 0 otherwise.
func (b *Isolation) Utility(player Player) float64 {
	if b.IsWinner(player) {
		return math.Inf(1)
	}
	if b.IsLoser(player) {
		return math.Inf(-1)
	}
	return 0
}

func (b *Isolation) Copy() *Isolation {
	cells := make([]int8, len(b.cells))
	copy(cells, b.cells)
	return &Isolation{
		width:     b.width,
		height:    b.height,
		players:   b.players,
		cells:     cells,
		locations: b.locations,
		active:    b.active,
		moveCount: b.moveCount,
	}
}

// Forecast returns a new board with move applied for the active player. The move
// is not checked for legality.
func (b *Isolation) Forecast(move Move) Board {
	return b.Play(move)
}

// Play is Forecast with the concrete board type.
func (b *Isolation) Play(move Move) *Isolation {
	next := b.Copy()
	next.apply(move)
	return next
}

func (b *Isolation) apply(move Move) {
	b.cells[move.Row*b.width+move.Col] = blocked
	b.locations[b.active] = move
	b.active = 1 - b.active
	b.moveCount++
}

func (b *Isolation) Hash() uint64 {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.width))
	binary.Write(hasher, binary.LittleEndian, int64(b.height))
	binary.Write(hasher, binary.LittleEndian, int64(b.active))

	for _, loc := range b.locations {
		binary.Write(hasher, binary.LittleEndian, int64(loc.Row))
		binary.Write(hasher, binary.LittleEndian, int64(loc.Col))
	}

	hasher.Write(int8sToBytes(b.cells))

	return hasher.Sum64()
}

func int8sToBytes(cells []int8) []byte {
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = byte(c)
	}
	return out
}

// String renders the board with 1 and 2 for the players and - for blocked cells.
func (b *Isolation) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		sb.WriteString(" | ")
		for col := 0; col < b.width; col++ {
			m := Move{Row: row, Col: col}
			switch {
			case m == b.locations[0]:
				sb.WriteString("1")
			case m == b.locations[1]:
				sb.WriteString("2")
			case b.cells[row*b.width+col] == blocked:
				sb.WriteString("-")
			default:
				sb.WriteString(" ")
			}
			sb.WriteString(" | ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
