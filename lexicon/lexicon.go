// Package lexicon implements the dictionary as a plain prefix trie. The
// move generator only needs prefix lookup and word-termination testing;
// we deliberately do not minimize the trie into a DAWG.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// A Node is a single trie node. The path from the root to a node spells a
// prefix; IsWord marks the prefixes that are complete dictionary words.
type Node struct {
	IsWord   bool
	Children map[rune]*Node
}

// NewNode returns an empty trie node.
func NewNode() *Node {
	return &Node{Children: make(map[rune]*Node)}
}

// A Lexicon is a word trie plus a memoized cross-check helper. The trie is
// never mutated after loading, so a single Lexicon may be shared read-only
// by any number of concurrently running generators.
type Lexicon struct {
	name    string
	root    *Node
	words   int
	ccCache *crossSetCache
}

// New returns an empty lexicon with the given name.
func New(name string) *Lexicon {
	return &Lexicon{
		name:    name,
		root:    NewNode(),
		ccCache: newCrossSetCache(),
	}
}

// FromWords builds a lexicon from an in-memory word list. Used mostly in
// tests.
func FromWords(words []string) *Lexicon {
	lex := New("inline")
	for _, w := range words {
		lex.Insert(w)
	}
	return lex
}

// Load reads a lexicon from a word-list file, one word per line. Words are
// lowercased; lines containing anything outside a-z are skipped.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon: %w", err)
	}
	defer f.Close()

	lex := New(strings.TrimSuffix(pathBase(path), ".txt"))
	scanner := bufio.NewScanner(f)
	skipped := 0
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if !allLowercase(word) {
			skipped++
			continue
		}
		lex.Insert(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}
	log.Info().Str("lexicon", lex.name).Int("words", lex.words).
		Int("skipped", skipped).Msg("loaded lexicon")
	return lex, nil
}

func pathBase(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func allLowercase(word string) bool {
	for _, c := range word {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// Insert adds a word to the trie.
func (lex *Lexicon) Insert(word string) {
	curr := lex.root
	for _, letter := range word {
		next, ok := curr.Children[letter]
		if !ok {
			next = NewNode()
			curr.Children[letter] = next
		}
		curr = next
	}
	if !curr.IsWord {
		curr.IsWord = true
		lex.words++
	}
}

// Root returns the empty-prefix node.
func (lex *Lexicon) Root() *Node {
	return lex.root
}

// Lookup returns the trie node for an exact prefix, or nil if the prefix
// is not reachable.
func (lex *Lexicon) Lookup(prefix string) *Node {
	curr := lex.root
	for _, letter := range prefix {
		next, ok := curr.Children[letter]
		if !ok {
			return nil
		}
		curr = next
	}
	return curr
}

// HasWord returns whether the word is in the lexicon.
func (lex *Lexicon) HasWord(word string) bool {
	node := lex.Lookup(word)
	return node != nil && node.IsWord
}

// Name returns the lexicon's name.
func (lex *Lexicon) Name() string {
	return lex.name
}

// WordCount returns the number of distinct words in the lexicon.
func (lex *Lexicon) WordCount() int {
	return lex.words
}
