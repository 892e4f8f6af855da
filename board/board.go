// Package board implements the 15x15 premium-square game board and its
// scoring rules.
package board

import (
	"fmt"
	"strings"

	"github.com/cortado-games/tessera/tiles"
)

// Dim is the board dimension. The board is square.
const Dim = 15

// emptySquare marks a square with no tile on it.
const emptySquare = rune(0)

// The premium-square layout, as multiplier tables: '3' in wordMultipliers
// is a triple word score, '2' in letterMultipliers a double letter score,
// and so on.
var (
	wordMultipliers = [Dim]string{
		"311111131111113",
		"121111111111121",
		"112111111111211",
		"111211111112111",
		"111121111121111",
		"111111111111111",
		"111111111111111",
		"311111121111113",
		"111111111111111",
		"111111111111111",
		"111121111121111",
		"111211111112111",
		"112111111111211",
		"121111111111121",
		"311111131111113",
	}

	letterMultipliers = [Dim]string{
		"111211111112111",
		"111113111311111",
		"111111212111111",
		"211111121111112",
		"111111111111111",
		"131113111311131",
		"112111212111211",
		"111211111112111",
		"112111212111211",
		"131113111311131",
		"111111111111111",
		"211111121111112",
		"111111212111111",
		"111113111311111",
		"111211111112111",
	}
)

// A square holds at most one tile plus its premium multipliers.
type square struct {
	letter           rune
	letterMultiplier int
	wordMultiplier   int
}

// A Board is the grid state. The move generator reads it; only game
// placement mutates it.
type Board struct {
	squares     [Dim][Dim]square
	tilesPlayed int
	dist        *tiles.LetterDistribution
}

// New returns an empty board scoring with the given letter distribution.
func New(dist *tiles.LetterDistribution) *Board {
	b := &Board{dist: dist}
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			b.squares[i][j] = square{
				letter:           emptySquare,
				letterMultiplier: int(letterMultipliers[i][j] - '0'),
				wordMultiplier:   int(wordMultipliers[i][j] - '0'),
			}
		}
	}
	return b
}

// InBounds returns whether the position is on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

// IsFilled returns whether the position is on the board and has a tile.
func (b *Board) IsFilled(p Position) bool {
	return b.InBounds(p) && b.squares[p.Row][p.Col].letter != emptySquare
}

// IsEmpty returns whether the position is on the board and has no tile.
func (b *Board) IsEmpty(p Position) bool {
	return b.InBounds(p) && b.squares[p.Row][p.Col].letter == emptySquare
}

// GetTile returns the letter at a filled position, or 0 for an empty or
// out-of-bounds one.
func (b *Board) GetTile(p Position) rune {
	if !b.InBounds(p) {
		return emptySquare
	}
	return b.squares[p.Row][p.Col].letter
}

// SetTile places a letter directly on a square, bypassing rack accounting.
// Tests and board setup use it; game play goes through PlaceWord.
func (b *Board) SetTile(p Position, letter rune) {
	if b.squares[p.Row][p.Col].letter == emptySquare && letter != emptySquare {
		b.tilesPlayed++
	}
	b.squares[p.Row][p.Col].letter = letter
}

// AllPositions enumerates every grid position, row-major.
func (b *Board) AllPositions() []Position {
	positions := make([]Position, 0, Dim*Dim)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			positions = append(positions, Position{i, j})
		}
	}
	return positions
}

// TilesPlayed returns the number of tiles on the board.
func (b *Board) TilesPlayed() int {
	return b.tilesPlayed
}

// IsBlank returns whether no tile has been played yet.
func (b *Board) IsBlank() bool {
	return b.tilesPlayed == 0
}

// Center returns the designated start square, the sole anchor of an empty
// board.
func (b *Board) Center() Position {
	return Position{Dim / 2, Dim / 2}
}

// Copy returns a full independent clone. Opponent-modeling players place
// hypothetical words on copies so the live board is never disturbed.
func (b *Board) Copy() *Board {
	n := &Board{tilesPlayed: b.tilesPlayed, dist: b.dist}
	n.squares = b.squares
	return n
}

// PlaceWord lays word down starting at start in the given direction,
// consuming rack tiles for every empty square covered. Existing tiles must
// match the word; anything else is an error and the board is left
// untouched.
func (b *Board) PlaceWord(word string, start Position, dir Direction, rack *tiles.Rack) error {
	// Validate before mutating.
	pos := start
	needed := []rune{}
	remaining := rack.Copy()
	for _, letter := range word {
		if !b.InBounds(pos) {
			return fmt.Errorf("word %q runs off the board at %v", word, pos)
		}
		if b.IsFilled(pos) {
			if b.GetTile(pos) != letter {
				return fmt.Errorf("square %v holds %q, word %q needs %q",
					pos, string(b.GetTile(pos)), word, string(letter))
			}
		} else {
			if !remaining.Has(letter) {
				return fmt.Errorf("letter %q not on rack %v", string(letter), rack)
			}
			remaining.Take(letter)
			needed = append(needed, letter)
		}
		pos = dir.After(pos)
	}
	if len(needed) == 0 {
		return fmt.Errorf("word %q places no new tiles", word)
	}

	pos = start
	for _, letter := range word {
		if b.IsEmpty(pos) {
			rack.Take(letter)
			b.squares[pos.Row][pos.Col].letter = letter
			b.tilesPlayed++
		}
		pos = dir.After(pos)
	}
	return nil
}

// crossRunScore sums the face values of the contiguous filled run starting
// one step from p and walking with step.
func (b *Board) crossRunScore(p Position, step func(Position) Position) (int, bool) {
	score := 0
	found := false
	for scan := step(p); b.IsFilled(scan); scan = step(scan) {
		score += b.dist.Score(b.GetTile(scan))
		found = true
	}
	return score, found
}

// CalculateScore returns the point value of placing word at start in the
// given direction, with the rack state prior to placement. Premium squares
// count only under newly placed tiles; every newly placed tile that has
// perpendicular neighbors also scores its full cross word; using all seven
// rack tiles earns the 50-point bonus.
func (b *Board) CalculateScore(word string, start Position, dir Direction, rack *tiles.Rack) int {
	mainScore := 0
	crossScore := 0
	wordMultiplier := 1
	tilesPlaced := 0

	pos := start
	for _, letter := range word {
		if !b.InBounds(pos) {
			break
		}
		sq := b.squares[pos.Row][pos.Col]
		if b.IsFilled(pos) {
			mainScore += b.dist.Score(sq.letter)
		} else {
			letterScore := b.dist.Score(letter) * sq.letterMultiplier
			mainScore += letterScore
			wordMultiplier *= sq.wordMultiplier
			tilesPlaced++

			beforeScore, beforeFound := b.crossRunScore(pos, dir.BeforeCross)
			afterScore, afterFound := b.crossRunScore(pos, dir.AfterCross)
			if beforeFound || afterFound {
				crossScore += (beforeScore + afterScore + letterScore) * sq.wordMultiplier
			}
		}
		pos = dir.After(pos)
	}

	score := mainScore*wordMultiplier + crossScore
	if tilesPlaced == tiles.RackSize {
		score += 50
	}
	return score
}

// String renders the board for terminal display.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for j := 0; j < Dim; j++ {
		sb.WriteString(fmt.Sprintf("%c ", 'A'+j))
	}
	sb.WriteString("\n")
	for i := 0; i < Dim; i++ {
		sb.WriteString(fmt.Sprintf("%2d ", i+1))
		for j := 0; j < Dim; j++ {
			sq := b.squares[i][j]
			switch {
			case sq.letter != emptySquare:
				sb.WriteString(strings.ToUpper(string(sq.letter)) + " ")
			case sq.wordMultiplier > 1:
				sb.WriteString(fmt.Sprintf("%d ", sq.wordMultiplier))
			case sq.letterMultiplier > 1:
				sb.WriteString("' ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
