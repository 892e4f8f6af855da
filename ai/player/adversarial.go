package player

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/cortado-games/tessera/game"
	"github.com/cortado-games/tessera/move"
	"github.com/cortado-games/tessera/tiles"
)

// Adversarial looks one reply ahead: for each of its strongest candidate
// plays it assumes the opponent holds the most plentiful unseen tiles and
// answers with their best possible play, then maximizes its own score
// minus that reply. It is deterministic, unlike the Monte Carlo player.
type Adversarial struct {
	name string
	// topK bounds how many candidates get the expensive lookahead.
	topK int
}

var _ game.Player = (*Adversarial)(nil)

func NewAdversarial(name string) *Adversarial {
	return &Adversarial{name: name, topK: 10}
}

func (p *Adversarial) Name() string {
	return p.name
}

// expectedRack builds the most probable opponent rack: the letters with
// the highest remaining counts in the unseen pool, ties broken
// alphabetically.
func expectedRack(pool []rune) *tiles.Rack {
	counts := map[rune]int{}
	for _, l := range pool {
		counts[l]++
	}
	letters := make([]rune, 0, len(counts))
	for l := range counts {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool {
		if counts[letters[i]] != counts[letters[j]] {
			return counts[letters[i]] > counts[letters[j]]
		}
		return letters[i] < letters[j]
	})

	rack := tiles.NewRack()
	for _, l := range letters {
		ct := counts[l]
		for j := 0; j < ct && rack.Len() < tiles.RackSize; j++ {
			rack.Add(l)
		}
		if rack.Len() == tiles.RackSize {
			break
		}
	}
	return rack
}

func (p *Adversarial) ChooseMove(state *game.State) *move.Move {
	if len(state.Moves) == 0 {
		return nil
	}
	candidates := topByScore(state.Moves, p.topK)

	var chosen *move.Move
	bestNet := 0
	for _, cand := range candidates {
		oppRack := expectedRack(unseenPool(state, cand.TilesUsed()))
		replyScore, err := bestReplyScore(state, cand, oppRack)
		if err != nil {
			log.Error().Err(err).Str("play", cand.ShortDescription()).
				Msg("lookahead failed, skipping candidate")
			continue
		}
		net := cand.Score() - replyScore
		if chosen == nil || net > bestNet {
			chosen = cand
			bestNet = net
		}
	}
	if chosen == nil {
		// Every lookahead failed somehow; fall back to raw score.
		return candidates[0]
	}
	log.Debug().Str("player", p.name).Str("play", chosen.ShortDescription()).
		Int("net", bestNet).Msg("adversarial decision")
	return chosen
}
