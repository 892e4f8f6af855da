package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/cortado-games/tessera/board"
)

func TestBoardGameCoords(t *testing.T) {
	is := is.New(t)
	is.Equal(ToBoardGameCoords(board.Position{Row: 7, Col: 7}, false), "8H")
	is.Equal(ToBoardGameCoords(board.Position{Row: 7, Col: 7}, true), "H8")
	is.Equal(ToBoardGameCoords(board.Position{Row: 0, Col: 0}, false), "1A")
	is.Equal(ToBoardGameCoords(board.Position{Row: 14, Col: 14}, true), "O15")
}

func TestNewPlay(t *testing.T) {
	is := is.New(t)
	m := NewPlay("cat", board.Position{Row: 7, Col: 7}, board.Across, []rune{'t', 'c', 'a'}, 10)
	is.Equal(m.Action(), MoveTypePlay)
	is.Equal(m.Word(), "cat")
	is.Equal(m.Score(), 10)
	is.Equal(m.TilesPlayed(), 3)
	// Stored sorted so equal plays compare equal.
	is.Equal(m.TilesUsed(), []rune{'a', 'c', 't'})
	is.Equal(m.BoardCoords(), "8H")
	is.Equal(m.ShortDescription(), "8H cat 10")
}

func TestPass(t *testing.T) {
	is := is.New(t)
	p := NewPass()
	is.Equal(p.Action(), MoveTypePass)
	is.Equal(p.ShortDescription(), "(Pass)")
	is.True(p.Equals(NewPass()))
}

func TestEquals(t *testing.T) {
	is := is.New(t)
	a := NewPlay("cat", board.Position{Row: 7, Col: 7}, board.Across, []rune{'c', 'a', 't'}, 10)
	b := NewPlay("cat", board.Position{Row: 7, Col: 7}, board.Across, []rune{'t', 'a', 'c'}, 10)
	c := NewPlay("cat", board.Position{Row: 7, Col: 7}, board.Down, []rune{'c', 'a', 't'}, 10)
	d := NewPlay("cat", board.Position{Row: 7, Col: 7}, board.Across, []rune{'a', 't'}, 10)

	is.True(a.Equals(b))
	is.True(!a.Equals(c))
	is.True(!a.Equals(d))
	is.True(!a.Equals(NewPass()))
}
