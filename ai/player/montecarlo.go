package player

import (
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/cortado-games/tessera/game"
	"github.com/cortado-games/tessera/move"
	"github.com/cortado-games/tessera/stats"
)

// MonteCarlo evaluates its candidate plays two plies deep: for each
// candidate it samples plausible opponent racks from the unseen tile pool,
// generates the opponent's best reply against each, and keeps the
// candidate with the highest mean net score. The per-candidate simulations
// are independent (each owns its board copy, rack, and generator), so they
// run concurrently.
type MonteCarlo struct {
	name    string
	numSims int
	// topK bounds how many candidates are simmed at all.
	topK int
}

var _ game.Player = (*MonteCarlo)(nil)

func NewMonteCarlo(name string, numSims int) *MonteCarlo {
	return &MonteCarlo{name: name, numSims: numSims, topK: 12}
}

func (p *MonteCarlo) Name() string {
	return p.name
}

// sampleRack draws up to seven tiles uniformly without replacement from
// the pool.
func sampleRack(pool []rune, rng *frand.RNG) []rune {
	n := len(pool)
	take := 7
	if take > n {
		take = n
	}
	perm := rng.Perm(n)
	rack := make([]rune, take)
	for i := 0; i < take; i++ {
		rack[i] = pool[perm[i]]
	}
	return rack
}

// simRNG derives an independent deterministic random source from the
// game's source, so candidate goroutines never share one.
func simRNG(rng *frand.RNG) *frand.RNG {
	if rng == nil {
		return frand.New()
	}
	key := make([]byte, 32)
	rng.Read(key)
	return frand.NewCustom(key, 1024, 12)
}

func (p *MonteCarlo) ChooseMove(state *game.State) *move.Move {
	if len(state.Moves) == 0 {
		return nil
	}
	candidates := topByScore(state.Moves, p.topK)
	netScores := make([]stats.Statistic, len(candidates))

	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for i, cand := range candidates {
		i, cand := i, cand
		rng := simRNG(state.Rng)
		g.Go(func() error {
			pool := unseenPool(state, cand.TilesUsed())
			for sim := 0; sim < p.numSims; sim++ {
				oppRack := rackFromLetters(sampleRack(pool, rng))
				replyScore, err := bestReplyScore(state, cand, oppRack)
				if err != nil {
					return err
				}
				netScores[i].Push(float64(cand.Score() - replyScore))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("simulation failed, falling back to top score")
		return candidates[0]
	}

	best := 0
	for i := range candidates {
		if netScores[i].Mean() > netScores[best].Mean() {
			best = i
		}
	}
	log.Debug().Str("player", p.name).
		Str("play", candidates[best].ShortDescription()).
		Float64("net", netScores[best].Mean()).
		Float64("stderr", netScores[best].StandardError()).
		Int("sims", p.numSims).
		Msg("montecarlo decision")
	return candidates[best]
}
