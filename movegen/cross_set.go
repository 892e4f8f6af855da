package movegen

import (
	"github.com/cortado-games/tessera/tiles"
)

const (
	// TrivialCrossSet allows every possible letter. It is the state of
	// any square with no perpendicular neighbors.
	TrivialCrossSet = CrossSet(1<<tiles.NumLetters) - 1
)

// A CrossSet is a bit mask of letters that are allowed on a square. It is
// inherently directional: when generating moves ACROSS, the cross set of a
// square is determined by the tiles above and/or below it, and vice versa.
type CrossSet uint32

// Allowed returns whether the letter may be placed on this square.
func (c CrossSet) Allowed(letter rune) bool {
	return c&(1<<uint(letter-'a')) != 0
}

// Set marks a letter as allowed.
func (c *CrossSet) Set(letter rune) {
	*c |= 1 << uint(letter-'a')
}

// CrossSetFromLetters builds a cross set out of a list of legal letters.
func CrossSetFromLetters(letters []rune) CrossSet {
	c := CrossSet(0)
	for _, l := range letters {
		c.Set(l)
	}
	return c
}
