package player

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"lukechampine.com/frand"

	"github.com/cortado-games/tessera/board"
	"github.com/cortado-games/tessera/game"
	"github.com/cortado-games/tessera/lexicon"
	"github.com/cortado-games/tessera/move"
	"github.com/cortado-games/tessera/movegen"
	"github.com/cortado-games/tessera/tiles"
)

func mustRack(t *testing.T, letters string) *tiles.Rack {
	t.Helper()
	r, err := tiles.RackFromString(letters)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func seededRNG(b byte) *frand.RNG {
	key := make([]byte, 32)
	for i := range key {
		key[i] = b
	}
	return frand.NewCustom(key, 1024, 12)
}

func play(word string, row, col, score int, used string) *move.Move {
	return move.NewPlay(word, board.Position{Row: row, Col: col}, board.Across,
		[]rune(used), score)
}

// genState builds a real per-turn state by running the generator.
func genState(t *testing.T, words []string, rack string) *game.State {
	t.Helper()
	lex := lexicon.FromWords(words)
	dist := tiles.English()
	b := board.New(dist)
	r := mustRack(t, rack)
	gen := movegen.NewGenerator(b, lex)
	moves, err := gen.GenAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return &game.State{
		Board:        b,
		Rack:         r,
		Moves:        moves,
		Lexicon:      lex,
		Distribution: dist,
		BagCount:     dist.NumTotalTiles() - len(rack),
		Rng:          seededRNG(5),
	}
}

func containsMove(moves []*move.Move, m *move.Move) bool {
	for _, cand := range moves {
		if cand == m {
			return true
		}
	}
	return false
}

func TestGreedyPicksTopScore(t *testing.T) {
	is := is.New(t)
	p := NewGreedy("g")
	state := &game.State{Moves: []*move.Move{
		play("at", 7, 7, 5, "at"),
		play("cat", 7, 7, 20, "cat"),
		play("ta", 7, 7, 10, "ta"),
	}}
	is.Equal(p.ChooseMove(state).Word(), "cat")

	state.Moves = nil
	is.True(p.ChooseMove(state) == nil)
}

func TestTopByScore(t *testing.T) {
	is := is.New(t)
	moves := []*move.Move{
		play("at", 7, 7, 5, "at"),
		play("cat", 7, 7, 20, "cat"),
		play("ta", 7, 7, 10, "ta"),
	}
	top := topByScore(moves, 2)
	is.Equal(len(top), 2)
	is.Equal(top[0].Word(), "cat")
	is.Equal(top[1].Word(), "ta")
	// The caller's slice is untouched.
	is.Equal(moves[0].Word(), "at")
}

func TestConservativeThresholds(t *testing.T) {
	is := is.New(t)
	p := NewConservative("c")
	dist := tiles.English()
	state := &game.State{
		Board:        board.New(dist),
		Rack:         mustRack(t, "cat"),
		Distribution: dist,
	}

	// Below the minimum but positive: take the best on offer.
	state.Moves = []*move.Move{
		play("at", 7, 7, 3, "at"),
		play("ta", 7, 7, 5, "ta"),
	}
	is.Equal(p.ChooseMove(state).Word(), "ta")

	state.Moves = []*move.Move{play("at", 7, 7, 0, "at")}
	is.True(p.ChooseMove(state) == nil)

	state.Moves = nil
	is.True(p.ChooseMove(state) == nil)
}

func TestConservativeHoldsPowerTiles(t *testing.T) {
	// Equal scores, but one play burns the s on a cheap word and empties
	// the rack to boot.
	p := NewConservative("c")
	dist := tiles.English()
	state := &game.State{
		Board:        board.New(dist),
		Rack:         mustRack(t, "sat"),
		Distribution: dist,
		Moves: []*move.Move{
			play("sat", 7, 7, 10, "ast"),
			play("at", 7, 7, 10, "at"),
		},
	}
	chosen := p.ChooseMove(state)
	assert.Equal(t, "at", chosen.Word())
}

func TestExpectedRack(t *testing.T) {
	is := is.New(t)
	pool := []rune{'e', 'e', 'e', 'e', 'e', 'a', 'a', 'a', 'b'}
	rack := expectedRack(pool)
	is.Equal(rack.Len(), tiles.RackSize)
	is.Equal(rack.String(), "aaeeeee")
}

func TestUnseenPool(t *testing.T) {
	is := is.New(t)
	dist := tiles.English()
	state := &game.State{
		Board:        board.New(dist),
		Rack:         mustRack(t, "cat"),
		Distribution: dist,
	}
	pool := unseenPool(state, []rune{'z'})
	is.Equal(len(pool), dist.NumTotalTiles()-4)

	counts := map[rune]int{}
	for _, l := range pool {
		counts[l]++
	}
	is.Equal(counts['z'], 0)
	is.Equal(counts['c'], 1)
	is.Equal(counts['a'], 8)
}

func TestAdversarialChoosesFromCandidates(t *testing.T) {
	state := genState(t, []string{"cat", "at", "ta"}, "cat")
	assert.NotEmpty(t, state.Moves)

	p := NewAdversarial("a")
	chosen := p.ChooseMove(state)
	assert.NotNil(t, chosen)
	assert.True(t, containsMove(state.Moves, chosen))
}

func TestMonteCarloChoosesFromCandidates(t *testing.T) {
	state := genState(t, []string{"cat", "at", "ta"}, "cat")
	assert.NotEmpty(t, state.Moves)

	p := NewMonteCarlo("m", 2)
	chosen := p.ChooseMove(state)
	assert.NotNil(t, chosen)
	assert.True(t, containsMove(state.Moves, chosen))
}

func TestRegistry(t *testing.T) {
	is := is.New(t)
	for _, kind := range Kinds() {
		p, err := New(kind, kind)
		is.NoErr(err)
		is.Equal(p.Name(), kind)
	}
	_, err := New("perfect", "p")
	is.True(err != nil)
}
