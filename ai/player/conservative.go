package player

import (
	"math"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/cortado-games/tessera/board"
	"github.com/cortado-games/tessera/game"
	"github.com/cortado-games/tessera/move"
)

// Conservative prioritizes consistent scoring and rack management over
// maximum points: it keeps the rack balanced, holds power tiles for
// worthwhile spots, and avoids plays that open up the board.
type Conservative struct {
	name string
	// minAcceptableScore filters out dink plays entirely.
	minAcceptableScore int
	// powerTileThreshold is the minimum score to spend a power tile on.
	powerTileThreshold int
}

var _ game.Player = (*Conservative)(nil)

// idealVowelRatio is the vowel share a rack should hold for flexibility.
const idealVowelRatio = 0.4

var powerTiles = map[rune]bool{'s': true, 'z': true, 'q': true, 'j': true, 'x': true}

// flexValues rates how easy each tile is to play later; this is a
// playability rating, not the tile's point value.
var flexValues = map[rune]float64{
	'a': 3, 'b': 2, 'c': 2, 'd': 2, 'e': 3, 'f': 1, 'g': 2, 'h': 2,
	'i': 3, 'j': 1, 'k': 1, 'l': 2, 'm': 2, 'n': 2, 'o': 3, 'p': 2,
	'q': 1, 'r': 2, 's': 4, 't': 2, 'u': 3, 'v': 1, 'w': 1, 'x': 1,
	'y': 2, 'z': 1,
}

func NewConservative(name string) *Conservative {
	return &Conservative{
		name:               name,
		minAcceptableScore: 8,
		powerTileThreshold: 20,
	}
}

func (p *Conservative) Name() string {
	return p.name
}

// rackBalance scores how well-balanced a rack is for future plays, from 0
// to 1.
func (p *Conservative) rackBalance(rack []rune) float64 {
	if len(rack) == 0 {
		return 0.0
	}
	vowels := 0
	counts := map[rune]int{}
	for _, l := range rack {
		if l == 'a' || l == 'e' || l == 'i' || l == 'o' || l == 'u' {
			vowels++
		}
		counts[l]++
	}
	ratio := float64(vowels) / float64(len(rack))
	ratioScore := 1.0 - math.Abs(ratio-idealVowelRatio)

	duplicationPenalty := 0.0
	for _, ct := range counts {
		duplicationPenalty += float64(ct-1) * 0.1
	}
	return math.Max(0.0, ratioScore-duplicationPenalty)
}

// leaveQuality rates the tiles that would remain after a play.
func (p *Conservative) leaveQuality(remaining []rune) float64 {
	quality := p.rackBalance(remaining)
	for _, l := range remaining {
		quality += flexValues[l] * 0.1
	}
	for _, l := range remaining {
		if powerTiles[l] {
			quality -= 0.15
		}
	}
	return quality
}

// shouldUsePowerTile decides whether spending a power tile on this play is
// worth it. An s is allowed at a discount since it pluralizes.
func (p *Conservative) shouldUsePowerTile(m *move.Move) bool {
	usesPower := false
	usesS := false
	for _, l := range m.TilesUsed() {
		if powerTiles[l] {
			usesPower = true
		}
		if l == 's' {
			usesS = true
		}
	}
	if !usesPower {
		return true
	}
	if usesS && float64(m.Score()) >= float64(p.powerTileThreshold)*0.75 {
		return true
	}
	return m.Score() >= p.powerTileThreshold
}

// evaluate scores a move on raw points, leave quality, power-tile
// discipline, and board openness.
func (p *Conservative) evaluate(m *move.Move, state *game.State) float64 {
	evaluation := float64(m.Score()) * 0.5

	remaining := state.Rack.Copy()
	for _, l := range m.TilesUsed() {
		remaining.Take(l)
	}
	evaluation += p.leaveQuality(remaining.Letters()) * 15

	if !p.shouldUsePowerTile(m) {
		evaluation *= 0.5
	}

	// Opening an adjacent row invites a comeback.
	start := m.Start()
	if start.Row > 0 && state.Board.IsEmpty(board.Position{Row: start.Row - 1, Col: start.Col}) {
		evaluation *= 0.8
	}
	if start.Row < board.Dim-1 && state.Board.IsEmpty(board.Position{Row: start.Row + 1, Col: start.Col}) {
		evaluation *= 0.8
	}
	return evaluation
}

func (p *Conservative) ChooseMove(state *game.State) *move.Move {
	if len(state.Moves) == 0 {
		return nil
	}

	viable := lo.Filter(state.Moves, func(m *move.Move, _ int) bool {
		return m.Score() >= p.minAcceptableScore
	})
	if len(viable) == 0 {
		// Nothing meets the threshold; take the best on offer if it
		// scores at all.
		best := lo.MaxBy(state.Moves, func(a, b *move.Move) bool {
			return a.Score() > b.Score()
		})
		if best.Score() > 0 {
			return best
		}
		return nil
	}

	chosen := viable[0]
	bestEval := math.Inf(-1)
	for _, m := range viable {
		if eval := p.evaluate(m, state); eval > bestEval {
			bestEval = eval
			chosen = m
		}
	}
	log.Debug().Str("player", p.name).Str("play", chosen.ShortDescription()).
		Float64("eval", bestEval).
		Float64("balance", p.rackBalance(state.Rack.Letters())).
		Msg("conservative decision")
	return chosen
}
