package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestInsertAndLookup(t *testing.T) {
	is := is.New(t)
	lex := New("test")
	lex.Insert("cat")
	lex.Insert("cats")
	lex.Insert("cat")

	is.Equal(lex.WordCount(), 2)
	is.True(lex.HasWord("cat"))
	is.True(lex.HasWord("cats"))
	is.True(!lex.HasWord("ca"))
	is.True(!lex.HasWord("dog"))

	node := lex.Lookup("ca")
	is.True(node != nil)
	is.True(!node.IsWord)
	is.True(lex.Lookup("xyz") == nil)
	is.Equal(lex.Lookup(""), lex.Root())
}

func TestFromWords(t *testing.T) {
	lex := FromWords([]string{"no", "not", "ta"})
	assert.Equal(t, 3, lex.WordCount())
	assert.True(t, lex.HasWord("not"))
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "CAT\ndog\n\nRE-ENTRY\nbird\nhé\n"
	is.NoErr(os.WriteFile(path, []byte(content), 0o644))

	lex, err := Load(path)
	is.NoErr(err)
	is.Equal(lex.Name(), "words")
	is.Equal(lex.WordCount(), 3)
	is.True(lex.HasWord("cat"))
	is.True(lex.HasWord("dog"))
	is.True(lex.HasWord("bird"))
	is.True(!lex.HasWord("re-entry"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/words.txt")
	assert.Error(t, err)
}

func TestCrossSet(t *testing.T) {
	is := is.New(t)
	lex := FromWords([]string{"no", "not", "ta"})

	is.Equal(lex.CrossSet("no", ""), []rune{'t'})
	is.Equal(lex.CrossSet("n", ""), []rune{'o'})
	is.Equal(lex.CrossSet("", "o"), []rune{'n'})
	is.Equal(len(lex.CrossSet("zz", "zz")), 0)

	// No perpendicular constraint at all.
	is.Equal(len(lex.CrossSet("", "")), 26)

	// Memoized answers stay correct.
	is.Equal(lex.CrossSet("no", ""), []rune{'t'})
}
