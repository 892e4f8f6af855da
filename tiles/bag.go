package tiles

import (
	"errors"
	"fmt"

	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles. Tiles are tracked as counts per letter and
// drawn uniformly at random.
type Bag struct {
	counts   [NumLetters]int
	numTiles int
	dist     *LetterDistribution
	rng      *frand.RNG
}

// NewBag returns a full bag for the given distribution, using the passed-in
// random source.
func NewBag(dist *LetterDistribution, rng *frand.RNG) *Bag {
	b := &Bag{dist: dist, rng: rng}
	for i := 0; i < NumLetters; i++ {
		ct := dist.Count(rune('a' + i))
		b.counts[i] = ct
		b.numTiles += ct
	}
	return b
}

// drawTileAt draws the tile "at" the given index, counting up through the
// per-letter counts.
func (b *Bag) drawTileAt(idx int) (rune, error) {
	if idx >= b.numTiles {
		return 0, errors.New("tile index out of range")
	}
	counter := 0
	for i := 0; i < NumLetters; i++ {
		counter += b.counts[i]
		if counter > idx {
			b.counts[i]--
			b.numTiles--
			return rune('a' + i), nil
		}
	}
	return 0, errors.New("bag accounting is inconsistent")
}

// Draw draws n tiles from the bag.
func (b *Bag) Draw(n int) ([]rune, error) {
	if n > b.numTiles {
		return nil, fmt.Errorf("tried to draw %v tiles, tile bag has %v", n, b.numTiles)
	}
	drawn := make([]rune, n)
	var err error
	for i := 0; i < n; i++ {
		drawn[i], err = b.drawTileAt(b.rng.Intn(b.numTiles))
		if err != nil {
			return nil, err
		}
	}
	return drawn, nil
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if
// there are fewer tiles than n, and even draw no tiles at all :o
func (b *Bag) DrawAtMost(n int) []rune {
	if n > b.numTiles {
		n = b.numTiles
	}
	drawn, _ := b.Draw(n)
	return drawn
}

// PutBack puts the given tiles back in the bag.
func (b *Bag) PutBack(letters []rune) {
	for _, l := range letters {
		b.counts[l-'a']++
	}
	b.numTiles += len(letters)
}

// RemoveTiles removes specific tiles from the bag, erroring if they are
// not all present. Used when dealing out simulated racks.
func (b *Bag) RemoveTiles(letters []rune) error {
	for _, l := range letters {
		if b.counts[l-'a'] == 0 {
			return fmt.Errorf("tile %q is not in the bag", string(l))
		}
		b.counts[l-'a']--
		b.numTiles--
	}
	return nil
}

// TilesRemaining returns the number of tiles left in the bag.
func (b *Bag) TilesRemaining() int {
	return b.numTiles
}

// Peek returns the remaining tiles without drawing them.
func (b *Bag) Peek() []rune {
	ret := make([]rune, 0, b.numTiles)
	for i, ct := range b.counts {
		for j := 0; j < ct; j++ {
			ret = append(ret, rune('a'+i))
		}
	}
	return ret
}

// Copy returns a deep copy of the bag sharing the same random source.
func (b *Bag) Copy() *Bag {
	n := &Bag{numTiles: b.numTiles, dist: b.dist, rng: b.rng}
	n.counts = b.counts
	return n
}
