package automatic

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"gopkg.in/yaml.v3"

	"github.com/cortado-games/tessera/stats"
)

type gameResult struct {
	GameID  string
	Matchup Matchup
	Index   int
	Turns   int
	ScoreA  int
	ScoreB  int
}

type playerAggregate struct {
	wins   int
	losses int
	draws  int
	scores stats.Statistic
	raw    []float64
}

type matchupRecord struct {
	aWins  int
	bWins  int
	draws  int
	aTotal int
	bTotal int
	games  int
}

// Standings accumulates per-player and per-matchup records over a run of
// games.
type Standings struct {
	players  map[string]*playerAggregate
	matchups map[Matchup]*matchupRecord
	games    int
}

func newStandings() *Standings {
	return &Standings{
		players:  map[string]*playerAggregate{},
		matchups: map[Matchup]*matchupRecord{},
	}
}

func (s *Standings) player(name string) *playerAggregate {
	p, ok := s.players[name]
	if !ok {
		p = &playerAggregate{}
		s.players[name] = p
	}
	return p
}

func (s *Standings) addGame(res gameResult) {
	s.games++

	pa := s.player(res.Matchup.A)
	pb := s.player(res.Matchup.B)
	pa.scores.Push(float64(res.ScoreA))
	pa.raw = append(pa.raw, float64(res.ScoreA))
	pb.scores.Push(float64(res.ScoreB))
	pb.raw = append(pb.raw, float64(res.ScoreB))

	rec, ok := s.matchups[res.Matchup]
	if !ok {
		rec = &matchupRecord{}
		s.matchups[res.Matchup] = rec
	}
	rec.games++
	rec.aTotal += res.ScoreA
	rec.bTotal += res.ScoreB

	switch {
	case res.ScoreA > res.ScoreB:
		pa.wins++
		pb.losses++
		rec.aWins++
	case res.ScoreB > res.ScoreA:
		pb.wins++
		pa.losses++
		rec.bWins++
	default:
		pa.draws++
		pb.draws++
		rec.draws++
	}
}

// PlayerResult is one player's line in the final standings.
type PlayerResult struct {
	Name          string  `yaml:"name"`
	Games         int     `yaml:"games"`
	Wins          int     `yaml:"wins"`
	Losses        int     `yaml:"losses"`
	Draws         int     `yaml:"draws"`
	WinRate       float64 `yaml:"win-rate"`
	MeanScore     float64 `yaml:"mean-score"`
	Stdev         float64 `yaml:"stdev"`
	StandardError float64 `yaml:"standard-error"`
	MinScore      float64 `yaml:"min-score"`
	MaxScore      float64 `yaml:"max-score"`
}

// MatchupResult is the head-to-head record of one pairing.
type MatchupResult struct {
	PlayerA    string  `yaml:"player-a"`
	PlayerB    string  `yaml:"player-b"`
	Games      int     `yaml:"games"`
	AWins      int     `yaml:"a-wins"`
	BWins      int     `yaml:"b-wins"`
	Draws      int     `yaml:"draws"`
	AMeanScore float64 `yaml:"a-mean-score"`
	BMeanScore float64 `yaml:"b-mean-score"`
}

// Results is the serializable summary of a finished tournament.
type Results struct {
	Games    int             `yaml:"games"`
	Players  []PlayerResult  `yaml:"players"`
	Matchups []MatchupResult `yaml:"matchups"`
}

// Results snapshots the standings, players sorted by win rate.
func (s *Standings) Results() *Results {
	r := &Results{Games: s.games}

	names := make([]string, 0, len(s.players))
	for name := range s.players {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := s.players[name]
		total := p.wins + p.losses + p.draws
		winRate := 0.0
		if total > 0 {
			winRate = (float64(p.wins) + 0.5*float64(p.draws)) / float64(total)
		}
		r.Players = append(r.Players, PlayerResult{
			Name:          name,
			Games:         total,
			Wins:          p.wins,
			Losses:        p.losses,
			Draws:         p.draws,
			WinRate:       winRate,
			MeanScore:     p.scores.Mean(),
			Stdev:         p.scores.Stdev(),
			StandardError: p.scores.StandardError(),
			MinScore:      p.scores.Min(),
			MaxScore:      p.scores.Max(),
		})
	}
	sort.SliceStable(r.Players, func(i, j int) bool {
		return r.Players[i].WinRate > r.Players[j].WinRate
	})

	pairs := make([]Matchup, 0, len(s.matchups))
	for m := range s.matchups {
		pairs = append(pairs, m)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	for _, m := range pairs {
		rec := s.matchups[m]
		r.Matchups = append(r.Matchups, MatchupResult{
			PlayerA:    m.A,
			PlayerB:    m.B,
			Games:      rec.games,
			AWins:      rec.aWins,
			BWins:      rec.bWins,
			Draws:      rec.draws,
			AMeanScore: float64(rec.aTotal) / float64(rec.games),
			BMeanScore: float64(rec.bTotal) / float64(rec.games),
		})
	}
	return r
}

// YAML serializes the results for archival.
func (r *Results) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// String renders the standings as a plain-text table.
func (r *Results) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v games played\n\n", r.Games)
	fmt.Fprintf(&sb, "%-14s %5s %5s %5s %5s %8s %8s %8s\n",
		"player", "games", "wins", "loss", "draws", "winrate", "mean", "stdev")
	for _, p := range r.Players {
		fmt.Fprintf(&sb, "%-14s %5d %5d %5d %5d %8.3f %8.2f %8.2f\n",
			p.Name, p.Games, p.Wins, p.Losses, p.Draws,
			p.WinRate, p.MeanScore, p.Stdev)
	}
	sb.WriteString("\n")
	for _, m := range r.Matchups {
		fmt.Fprintf(&sb, "%v vs %v: %v-%v-%v (means %.1f / %.1f)\n",
			m.PlayerA, m.PlayerB, m.AWins, m.BWins, m.Draws,
			m.AMeanScore, m.BMeanScore)
	}
	return sb.String()
}

// ScoreHistogram plots the distribution of one player's game scores.
func (s *Standings) ScoreHistogram(w io.Writer, name string) error {
	p, ok := s.players[name]
	if !ok {
		return fmt.Errorf("no games recorded for %v", name)
	}
	fmt.Fprintf(w, "scores for %v over %v games:\n", name, len(p.raw))
	if p.scores.Min() == p.scores.Max() {
		// A flat distribution breaks the bucketer.
		fmt.Fprintf(w, "every game scored %v\n", p.scores.Min())
		return nil
	}
	hist := histogram.Hist(9, p.raw)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

// Scores returns a copy of one player's raw game scores.
func (s *Standings) Scores(name string) []float64 {
	p, ok := s.players[name]
	if !ok {
		return nil
	}
	out := make([]float64, len(p.raw))
	copy(out, p.raw)
	return out
}
