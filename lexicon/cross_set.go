package lexicon

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2/simplelru"
)

// crossCacheSize bounds the memoized cross-set entries. Boards repeat the
// same perpendicular fragments constantly, so even a small cache hits
// nearly always.
const crossCacheSize = 8192

// crossSetCache memoizes CrossSet results keyed on the two perpendicular
// fragments. The mutex makes the cache safe to share between concurrently
// running generator instances.
type crossSetCache struct {
	mu    sync.Mutex
	cache *lru.LRU[string, []rune]
}

func newCrossSetCache() *crossSetCache {
	c, err := lru.NewLRU[string, []rune](crossCacheSize, nil)
	if err != nil {
		panic(err) // only possible with a non-positive size
	}
	return &crossSetCache{cache: c}
}

func (cc *crossSetCache) lookup(key string, fetch func() []rune) []rune {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if letters, ok := cc.cache.Get(key); ok {
		return letters
	}
	letters := fetch()
	cc.cache.Add(key, letters)
	return letters
}

// CrossSet returns the letters c such that before+c+after is a word. When
// both fragments are empty there is no perpendicular constraint and every
// letter is returned.
func (lex *Lexicon) CrossSet(before, after string) []rune {
	key := before + "|" + after
	return lex.ccCache.lookup(key, func() []rune {
		legal := make([]rune, 0, 26)
		if before == "" && after == "" {
			for c := 'a'; c <= 'z'; c++ {
				legal = append(legal, c)
			}
			return legal
		}
		for c := 'a'; c <= 'z'; c++ {
			if lex.HasWord(before + string(c) + after) {
				legal = append(legal, c)
			}
		}
		return legal
	})
}
