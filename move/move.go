// Package move defines the immutable result records produced by the move
// generator and consumed by the players.
package move

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cortado-games/tessera/board"
)

// MoveType is a type of move; a play or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypePass
)

// Move is a single legal play: the word as it reads on the board, where it
// starts, its direction, exactly which rack letters it consumes, and its
// score. Moves are produced by the generator and never mutated.
type Move struct {
	action    MoveType
	word      string
	start     board.Position
	dir       board.Direction
	tilesUsed []rune
	score     int
}

// NewPlay creates a scoring play. tilesUsed is the exact sub-multiset of
// the rack the play consumes; the slice is stored sorted so that equal
// plays compare equal.
func NewPlay(word string, start board.Position, dir board.Direction,
	tilesUsed []rune, score int) *Move {

	used := make([]rune, len(tilesUsed))
	copy(used, tilesUsed)
	sort.Slice(used, func(i, j int) bool { return used[i] < used[j] })
	return &Move{
		action:    MoveTypePlay,
		word:      word,
		start:     start,
		dir:       dir,
		tilesUsed: used,
		score:     score,
	}
}

// NewPass creates a pass.
func NewPass() *Move {
	return &Move{action: MoveTypePass}
}

// Action returns the move type.
func (m *Move) Action() MoveType {
	return m.action
}

// Word returns the word as it reads on the board, played-through tiles
// included.
func (m *Move) Word() string {
	return m.word
}

// Start returns the position of the word's first letter.
func (m *Move) Start() board.Position {
	return m.start
}

// Direction returns the play direction.
func (m *Move) Direction() board.Direction {
	return m.dir
}

// TilesUsed returns the rack letters the play consumes, alphabetized.
// Callers must not modify the returned slice.
func (m *Move) TilesUsed() []rune {
	return m.tilesUsed
}

// TilesPlayed returns the number of tiles the play takes from the rack.
func (m *Move) TilesPlayed() int {
	return len(m.tilesUsed)
}

// Score returns the play's point value.
func (m *Move) Score() int {
	return m.score
}

// BoardCoords returns the play's position in board-game notation, like 8H
// for a horizontal play or H8 for a vertical one.
func (m *Move) BoardCoords() string {
	return ToBoardGameCoords(m.start, m.dir.Vertical())
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	if m.action == MoveTypePass {
		return "(Pass)"
	}
	return fmt.Sprintf("%v %v %v", m.BoardCoords(), m.word, m.score)
}

// Equals reports whether two moves describe the same physical placement.
func (m *Move) Equals(o *Move) bool {
	if m.action != o.action {
		return false
	}
	if m.action == MoveTypePass {
		return true
	}
	if m.word != o.word || m.start != o.start || m.dir != o.dir || m.score != o.score {
		return false
	}
	if len(m.tilesUsed) != len(o.tilesUsed) {
		return false
	}
	for i := range m.tilesUsed {
		if m.tilesUsed[i] != o.tilesUsed[i] {
			return false
		}
	}
	return true
}

func (m *Move) String() string {
	if m.action == MoveTypePass {
		return "<action: pass>"
	}
	return fmt.Sprintf("<action: play word: %v at: %v dir: %v used: %v score: %v>",
		m.word, m.BoardCoords(), m.dir, string(m.tilesUsed), m.score)
}

// ToBoardGameCoords converts a position and orientation to a coordinate
// like 5F or G4. Vertical plays are column-letter first.
func ToBoardGameCoords(p board.Position, vertical bool) string {
	colCoords := string(rune('A' + p.Col))
	rowCoords := strconv.Itoa(p.Row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}
