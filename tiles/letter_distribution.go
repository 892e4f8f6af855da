package tiles

// LetterDistribution encodes the tile frequencies and point values for the
// relevant edition of the game.
type LetterDistribution struct {
	counts map[rune]int
	points map[rune]int
	vowels map[rune]bool
	total  int
}

// English returns the standard 98-tile English distribution (no blanks;
// this engine's racks are plain letter multisets).
func English() *LetterDistribution {
	counts := map[rune]int{
		'a': 9, 'b': 2, 'c': 2, 'd': 4, 'e': 12, 'f': 2, 'g': 3, 'h': 2,
		'i': 9, 'j': 1, 'k': 1, 'l': 4, 'm': 2, 'n': 6, 'o': 8, 'p': 2,
		'q': 1, 'r': 6, 's': 4, 't': 6, 'u': 4, 'v': 2, 'w': 2, 'x': 1,
		'y': 2, 'z': 1,
	}
	points := map[rune]int{
		'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1, 'f': 4, 'g': 2, 'h': 4,
		'i': 1, 'j': 8, 'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1, 'p': 3,
		'q': 10, 'r': 1, 's': 1, 't': 1, 'u': 1, 'v': 4, 'w': 4, 'x': 8,
		'y': 4, 'z': 10,
	}
	total := 0
	for _, ct := range counts {
		total += ct
	}
	return &LetterDistribution{
		counts: counts,
		points: points,
		vowels: map[rune]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true},
		total:  total,
	}
}

// Score returns the point value of a letter.
func (ld *LetterDistribution) Score(letter rune) int {
	return ld.points[letter]
}

// Count returns how many copies of a letter the full tile set contains.
func (ld *LetterDistribution) Count(letter rune) int {
	return ld.counts[letter]
}

// IsVowel returns whether the letter is a vowel.
func (ld *LetterDistribution) IsVowel(letter rune) bool {
	return ld.vowels[letter]
}

// NumTotalTiles is the size of the full tile set.
func (ld *LetterDistribution) NumTotalTiles() int {
	return ld.total
}
