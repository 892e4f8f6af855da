package tiles

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestRackFromString(t *testing.T) {
	is := is.New(t)
	r, err := RackFromString("aabct")
	is.NoErr(err)
	is.Equal(r.Len(), 5)
	is.Equal(r.Count('a'), 2)
	is.True(r.Has('c'))
	is.True(!r.Has('z'))
	is.Equal(r.String(), "aabct")

	_, err = RackFromString("ab?")
	is.True(err != nil)
	_, err = RackFromString("AB")
	is.True(err != nil)
}

func TestRackTakeAdd(t *testing.T) {
	is := is.New(t)
	r, _ := RackFromString("cat")
	r.Take('a')
	is.Equal(r.Len(), 2)
	is.True(!r.Has('a'))
	r.Add('a')
	is.Equal(r.Len(), 3)
	is.True(r.Has('a'))
}

func TestRackCopyAndEquals(t *testing.T) {
	is := is.New(t)
	r, _ := RackFromString("cat")
	c := r.Copy()
	is.True(r.Equals(c))
	c.Take('c')
	is.True(!r.Equals(c))

	other := NewRack()
	other.CopyFrom(r)
	is.True(other.Equals(r))
}

func TestRackDiff(t *testing.T) {
	before, _ := RackFromString("attac")
	after, _ := RackFromString("tc")
	assert.Equal(t, []rune{'a', 'a', 't'}, before.Diff(after))
	assert.Empty(t, before.Diff(before))
}

func TestRackRemove(t *testing.T) {
	is := is.New(t)
	r, _ := RackFromString("cat")
	is.NoErr(r.Remove([]rune{'c', 't'}))
	is.Equal(r.String(), "a")
	is.True(r.Remove([]rune{'z'}) != nil)
}

func TestRackScoreOn(t *testing.T) {
	dist := English()
	r, _ := RackFromString("quiz")
	// q10 u1 i1 z10
	assert.Equal(t, 22, r.ScoreOn(dist))
}

func TestLetterDistribution(t *testing.T) {
	is := is.New(t)
	dist := English()
	is.Equal(dist.NumTotalTiles(), 98)
	is.Equal(dist.Count('e'), 12)
	is.Equal(dist.Score('q'), 10)
	is.True(dist.IsVowel('a'))
	is.True(!dist.IsVowel('y'))
}
