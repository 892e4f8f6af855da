package automatic

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/cortado-games/tessera/config"
	"github.com/cortado-games/tessera/lexicon"
	"github.com/cortado-games/tessera/tiles"
)

var testWords = []string{
	"aa", "ab", "ad", "ae", "ag", "ah", "ai", "al", "am", "an", "ar", "as",
	"at", "aw", "ax", "ay", "ba", "be", "bi", "bo", "by", "de", "do", "ed",
	"ef", "eh", "el", "em", "en", "er", "es", "et", "ex", "fa", "go", "ha",
	"he", "hi", "ho", "id", "if", "in", "is", "it", "jo", "ka", "la", "li",
	"lo", "ma", "me", "mi", "mu", "my", "na", "ne", "no", "nu", "od", "oe",
	"of", "oh", "oi", "om", "on", "op", "or", "os", "ow", "ox", "oy", "pa",
	"pe", "pi", "qi", "re", "sh", "si", "so", "ta", "ti", "to", "uh", "um",
	"un", "up", "us", "ut", "we", "wo", "xi", "xu", "ya", "ye", "yo", "za",
}

func testTournament(t *testing.T, kinds []string, games int) *Tournament {
	t.Helper()
	cfg := &config.Config{Seed: "tourney-test", GamesPerMatchup: games}
	tourney, err := NewTournament(cfg, lexicon.FromWords(testWords), tiles.English(), kinds)
	if err != nil {
		t.Fatal(err)
	}
	tourney.SetThreads(2)
	return tourney
}

func TestTournamentMatchups(t *testing.T) {
	is := is.New(t)
	tourney := testTournament(t, []string{"greedy", "conservative"}, 1)
	is.Equal(tourney.Matchups(), []Matchup{
		{A: "greedy", B: "greedy"},
		{A: "greedy", B: "conservative"},
		{A: "conservative", B: "conservative"},
	})
}

func TestTournamentValidation(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{GamesPerMatchup: 1}
	lex := lexicon.FromWords(testWords)
	dist := tiles.English()

	_, err := NewTournament(cfg, lex, dist, nil)
	is.True(err != nil)
	_, err = NewTournament(cfg, lex, dist, []string{"nosuchplayer"})
	is.True(err != nil)
	_, err = NewTournament(cfg, lex, dist, []string{"greedy", "greedy"})
	is.True(err != nil)
}

func TestTournamentSelfPlay(t *testing.T) {
	tourney := testTournament(t, []string{"greedy"}, 3)
	standings, err := tourney.Run(context.Background(), "")
	assert.NoError(t, err)

	results := standings.Results()
	assert.Equal(t, 3, results.Games)
	assert.Len(t, results.Players, 1)

	p := results.Players[0]
	assert.Equal(t, "greedy", p.Name)
	// Self-play counts both sides under the one aggregate.
	assert.Equal(t, 6, p.Games)
	assert.Equal(t, 6, p.Wins+p.Losses+p.Draws)
	assert.Equal(t, p.Wins, p.Losses)

	assert.Len(t, results.Matchups, 1)
	assert.Equal(t, 3, results.Matchups[0].Games)
}

func TestTournamentDeterministicWithSeed(t *testing.T) {
	first, err := testTournament(t, []string{"greedy"}, 2).Run(context.Background(), "")
	assert.NoError(t, err)
	second, err := testTournament(t, []string{"greedy"}, 2).Run(context.Background(), "")
	assert.NoError(t, err)

	assert.Equal(t, first.Results(), second.Results())
	assert.Equal(t, first.Scores("greedy"), second.Scores("greedy"))
}

func TestTournamentGameLog(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "games.csv")
	tourney := testTournament(t, []string{"greedy"}, 2)
	_, err := tourney.Run(context.Background(), path)
	is.NoErr(err)

	data, err := os.ReadFile(path)
	is.NoErr(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	is.Equal(lines[0], "gameID,playerA,playerB,scoreA,scoreB,turns")
	is.Equal(len(lines), 3)
}

func TestResultsYAML(t *testing.T) {
	tourney := testTournament(t, []string{"greedy"}, 1)
	standings, err := tourney.Run(context.Background(), "")
	assert.NoError(t, err)

	out, err := standings.Results().YAML()
	assert.NoError(t, err)
	assert.Contains(t, string(out), "name: greedy")
	assert.Contains(t, string(out), "mean-score:")
}

func TestScoreHistogram(t *testing.T) {
	is := is.New(t)
	tourney := testTournament(t, []string{"greedy"}, 2)
	standings, err := tourney.Run(context.Background(), "")
	is.NoErr(err)

	var sb strings.Builder
	is.NoErr(standings.ScoreHistogram(&sb, "greedy"))
	is.True(sb.String() != "")
	is.True(standings.ScoreHistogram(&sb, "nobody") != nil)
}
