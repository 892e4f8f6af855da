package player

import (
	"github.com/cortado-games/tessera/game"
	"github.com/cortado-games/tessera/move"
	"github.com/cortado-games/tessera/movegen"
	"github.com/cortado-games/tessera/tiles"
)

// unseenPool returns the tiles not visible to the player on turn: the full
// distribution minus the board's tiles, the player's own rack, and any
// extra tiles the caller is about to commit (the tiles of a candidate
// play). From the player's point of view these are the tiles the opponent
// could be holding.
func unseenPool(state *game.State, extraUsed []rune) []rune {
	var counts [tiles.NumLetters]int
	for i := 0; i < tiles.NumLetters; i++ {
		counts[i] = state.Distribution.Count(rune('a' + i))
	}
	take := func(l rune) {
		if counts[l-'a'] > 0 {
			counts[l-'a']--
		}
	}
	for _, pos := range state.Board.AllPositions() {
		if state.Board.IsFilled(pos) {
			take(state.Board.GetTile(pos))
		}
	}
	for _, l := range state.Rack.Letters() {
		take(l)
	}
	for _, l := range extraUsed {
		take(l)
	}
	pool := []rune{}
	for i, ct := range counts {
		for j := 0; j < ct; j++ {
			pool = append(pool, rune('a'+i))
		}
	}
	return pool
}

// rackFromLetters builds a rack out of specific letters.
func rackFromLetters(letters []rune) *tiles.Rack {
	r := tiles.NewRack()
	for _, l := range letters {
		r.Add(l)
	}
	return r
}

// bestReplyScore places a candidate play on a copy of the board and
// returns the best score the opponent could answer with, holding oppRack.
// Each call owns its generator and rack, so callers may run it from
// multiple goroutines against the same board and lexicon.
func bestReplyScore(state *game.State, candidate *move.Move, oppRack *tiles.Rack) (int, error) {
	testBoard := state.Board.Copy()
	placeRack := rackFromLetters(candidate.TilesUsed())
	if err := testBoard.PlaceWord(candidate.Word(), candidate.Start(),
		candidate.Direction(), placeRack); err != nil {
		return 0, err
	}
	gen := movegen.NewGenerator(testBoard, state.Lexicon)
	replies, err := gen.GenAll(oppRack)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, reply := range replies {
		if reply.Score() > best {
			best = reply.Score()
		}
	}
	return best, nil
}
