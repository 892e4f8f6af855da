// Package automatic runs unattended computer-vs-computer games: single
// matchups, full round-robin tournaments, and the data collection that
// goes with them.
package automatic

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/cortado-games/tessera/ai/player"
	"github.com/cortado-games/tessera/config"
	"github.com/cortado-games/tessera/game"
	"github.com/cortado-games/tessera/lexicon"
	"github.com/cortado-games/tessera/tiles"
)

var (
	GamesCounter *expvar.Int
	IsPlaying    *expvar.Int
)

func init() {
	GamesCounter = expvar.NewInt("gamesCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// A Matchup pairs two player kinds. A may equal B for a self-matchup.
type Matchup struct {
	A string
	B string
}

func (m Matchup) String() string {
	return m.A + " vs " + m.B
}

// Tournament plays every matchup among a set of player kinds, self-play
// included, a configured number of games each.
type Tournament struct {
	cfg      *config.Config
	lex      *lexicon.Lexicon
	dist     *tiles.LetterDistribution
	matchups []Matchup

	gamesPerMatchup int
	threads         int
	seedKey         []byte
}

// NewTournament builds a tournament over the given player kinds. Each
// kind plays itself and every other kind.
func NewTournament(cfg *config.Config, lex *lexicon.Lexicon,
	dist *tiles.LetterDistribution, kinds []string) (*Tournament, error) {

	if len(kinds) == 0 {
		return nil, errors.New("need at least one player kind")
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		if _, err := player.New(k, k); err != nil {
			return nil, err
		}
		if seen[k] {
			return nil, fmt.Errorf("duplicate player kind %v", k)
		}
		seen[k] = true
	}

	var matchups []Matchup
	for i, a := range kinds {
		matchups = append(matchups, Matchup{A: a, B: a})
		for _, b := range kinds[i+1:] {
			matchups = append(matchups, Matchup{A: a, B: b})
		}
	}

	return &Tournament{
		cfg:             cfg,
		lex:             lex,
		dist:            dist,
		matchups:        matchups,
		gamesPerMatchup: cfg.GamesPerMatchup,
		threads:         4,
		seedKey:         cfg.SeedKey(),
	}, nil
}

// SetGamesPerMatchup overrides the configured game count.
func (t *Tournament) SetGamesPerMatchup(n int) {
	t.gamesPerMatchup = n
}

// SetThreads sets how many games run concurrently.
func (t *Tournament) SetThreads(n int) {
	if n > 0 {
		t.threads = n
	}
}

// Matchups returns the pairings this tournament will play.
func (t *Tournament) Matchups() []Matchup {
	return t.matchups
}

type job struct {
	matchup Matchup
	index   int
}

// gameRNG derives the random source for one game. With no seed key it
// uses system entropy; otherwise each (matchup, index) pair gets its own
// reproducible stream.
func (t *Tournament) gameRNG(m Matchup, index int) *frand.RNG {
	if t.seedKey == nil {
		return frand.New()
	}
	label := fmt.Sprintf("%x/%v/%v/%v", t.seedKey, m.A, m.B, index)
	key := make([]byte, 0, 32)
	h := xxhash.Sum64String(label)
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			key = append(key, byte(h>>(8*j)))
		}
		h = xxhash.Sum64String(label + string(rune('a'+i)))
	}
	return frand.NewCustom(key, 1024, 12)
}

// playOne runs a single game of a matchup and reports the scores in
// matchup order, regardless of who went first.
func (t *Tournament) playOne(m Matchup, index int) (gameResult, error) {
	nameA, nameB := m.A, m.B
	if m.A == m.B {
		nameA, nameB = m.A+"-1", m.B+"-2"
	}
	pa, err := player.New(m.A, nameA)
	if err != nil {
		return gameResult{}, err
	}
	pb, err := player.New(m.B, nameB)
	if err != nil {
		return gameResult{}, err
	}

	rng := t.gameRNG(m, index)
	aFirst := rng.Intn(2) == 0

	first, second := pa, pb
	if !aFirst {
		first, second = pb, pa
	}
	g := game.New(t.lex, t.dist, first, second, rng)
	s1, s2, err := g.Play()
	if err != nil {
		return gameResult{}, fmt.Errorf("%v game %v: %w", m, index, err)
	}

	res := gameResult{
		GameID:  g.ID(),
		Matchup: m,
		Index:   index,
		Turns:   g.Turn(),
		ScoreA:  s1,
		ScoreB:  s2,
	}
	if !aFirst {
		res.ScoreA, res.ScoreB = s2, s1
	}
	return res, nil
}

// Run plays out the whole tournament and returns the standings. Games
// run on a pool of worker goroutines fed by a job channel; when
// outputFilename is non-empty every finished game is appended to it as a
// CSV row.
func (t *Tournament) Run(ctx context.Context, outputFilename string) (*Standings, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}

	var logfile *os.File
	logchan := make(chan string, 100)
	if outputFilename != "" {
		var err error
		logfile, err = os.Create(outputFilename)
		if err != nil {
			return nil, err
		}
	}

	total := len(t.matchups) * t.gamesPerMatchup
	log.Info().Int("games", total).Int("threads", t.threads).
		Msg("starting tournament")
	GamesCounter.Set(0)

	jobs := make(chan job, 100)
	results := make(chan gameResult, 100)
	errs := make(chan error, t.threads)

	var wg sync.WaitGroup
	wg.Add(t.threads)
	for i := 0; i < t.threads; i++ {
		go func() {
			defer wg.Done()
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			var failed bool
			for j := range jobs {
				res, err := t.playOne(j.matchup, j.index)
				if err != nil {
					// Report the first failure only; the buffer holds one
					// error per worker.
					if !failed {
						errs <- err
						failed = true
					}
					continue
				}
				results <- res
				GamesCounter.Add(1)
			}
		}()
	}

	go func() {
	feedLoop:
		for _, m := range t.matchups {
			for i := 0; i < t.gamesPerMatchup; i++ {
				select {
				case jobs <- job{matchup: m, index: i}:
				case <-ctx.Done():
					log.Info().Msg("got stop signal, exiting soon...")
					break feedLoop
				}
			}
		}
		close(jobs)
		wg.Wait()
		close(results)
		close(errs)
	}()

	var logwg sync.WaitGroup
	logwg.Add(1)
	go func() {
		defer logwg.Done()
		if logfile != nil {
			logfile.WriteString("gameID,playerA,playerB,scoreA,scoreB,turns\n")
		}
		for msg := range logchan {
			if logfile != nil {
				logfile.WriteString(msg)
			}
		}
		if logfile != nil {
			logfile.Close()
		}
	}()

	var all []gameResult
	for res := range results {
		all = append(all, res)
		logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v\n",
			res.GameID, res.Matchup.A, res.Matchup.B,
			res.ScoreA, res.ScoreB, res.Turns)
	}
	close(logchan)
	logwg.Wait()

	if err, ok := <-errs; ok {
		return nil, err
	}

	// Workers finish in arbitrary order; aggregate in a fixed one so a
	// seeded tournament produces identical standings every run.
	sort.Slice(all, func(i, j int) bool {
		if all[i].Matchup != all[j].Matchup {
			mi, mj := all[i].Matchup, all[j].Matchup
			if mi.A != mj.A {
				return mi.A < mj.A
			}
			return mi.B < mj.B
		}
		return all[i].Index < all[j].Index
	})

	standings := newStandings()
	for _, res := range all {
		standings.addGame(res)
	}
	log.Info().Int("games", len(all)).Msg("tournament finished")
	return standings, nil
}
