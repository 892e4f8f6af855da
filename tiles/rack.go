package tiles

import (
	"fmt"
	"strings"
)

// RackSize is the number of tiles a player holds between turns.
const RackSize = 7

// NumLetters is the size of the playable alphabet (a-z, no blanks).
const NumLetters = 26

// A Rack is a multiset of lowercase letters. It is mutated in place by the
// move generator during its search, and must always be restored to its
// original contents before the search returns.
type Rack struct {
	counts [NumLetters]int
	n      int
}

// NewRack returns an empty rack.
func NewRack() *Rack {
	return &Rack{}
}

// RackFromString builds a rack from a string of lowercase letters. Any
// token outside a-z (including the '?' wildcard, which this engine does
// not support) is a configuration error.
func RackFromString(letters string) (*Rack, error) {
	r := &Rack{}
	for _, c := range letters {
		if c < 'a' || c > 'z' {
			return nil, fmt.Errorf("rack has an illegal tile: %q", string(c))
		}
		r.counts[c-'a']++
		r.n++
	}
	return r, nil
}

// Has returns whether at least one of the given letter is on the rack.
func (r *Rack) Has(letter rune) bool {
	return r.counts[letter-'a'] > 0
}

// Count returns the number of copies of letter on the rack.
func (r *Rack) Count(letter rune) int {
	return r.counts[letter-'a']
}

// Take removes one copy of letter from the rack. It does not check that
// the letter is there; callers pair it with Has.
func (r *Rack) Take(letter rune) {
	r.counts[letter-'a']--
	r.n--
}

// Add puts one copy of letter back on the rack.
func (r *Rack) Add(letter rune) {
	r.counts[letter-'a']++
	r.n++
}

// Len returns the number of tiles on the rack.
func (r *Rack) Len() int {
	return r.n
}

// Empty returns whether the rack has no tiles.
func (r *Rack) Empty() bool {
	return r.n == 0
}

// Letters returns the rack's tiles in alphabetical order.
func (r *Rack) Letters() []rune {
	letters := make([]rune, 0, r.n)
	for i, ct := range r.counts {
		for j := 0; j < ct; j++ {
			letters = append(letters, rune('a'+i))
		}
	}
	return letters
}

// Copy returns an independent clone of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{n: r.n}
	n.counts = r.counts
	return n
}

// CopyFrom overwrites this rack's contents with other's.
func (r *Rack) CopyFrom(other *Rack) {
	r.counts = other.counts
	r.n = other.n
}

// Equals returns whether two racks hold the same multiset of letters.
func (r *Rack) Equals(other *Rack) bool {
	return r.counts == other.counts
}

// Diff returns the letters present in r but not in other, i.e. the
// multiset difference r - other. The generator uses it to compute which
// tiles a play consumed.
func (r *Rack) Diff(other *Rack) []rune {
	used := []rune{}
	for i := 0; i < NumLetters; i++ {
		for j := 0; j < r.counts[i]-other.counts[i]; j++ {
			used = append(used, rune('a'+i))
		}
	}
	return used
}

// Remove takes the given letters off the rack, erroring if any is not
// present.
func (r *Rack) Remove(letters []rune) error {
	for _, l := range letters {
		if !r.Has(l) {
			return fmt.Errorf("letter %q not on rack %v", string(l), r)
		}
		r.Take(l)
	}
	return nil
}

// ScoreOn returns the total point value of the tiles on this rack.
func (r *Rack) ScoreOn(dist *LetterDistribution) int {
	score := 0
	for i, ct := range r.counts {
		score += dist.Score(rune('a'+i)) * ct
	}
	return score
}

func (r *Rack) String() string {
	var sb strings.Builder
	for _, l := range r.Letters() {
		sb.WriteRune(l)
	}
	return sb.String()
}
