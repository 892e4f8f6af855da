package player

import (
	"fmt"
	"strings"

	"github.com/cortado-games/tessera/game"
)

// DefaultMonteCarloSims is the simulation count used when a player is
// constructed by name.
const DefaultMonteCarloSims = 5

// New constructs a player from a kind string ("greedy", "conservative",
// "adversarial", "montecarlo"), as used by the shell and the tournament
// runner.
func New(kind, name string) (game.Player, error) {
	switch strings.ToLower(kind) {
	case "greedy":
		return NewGreedy(name), nil
	case "conservative":
		return NewConservative(name), nil
	case "adversarial":
		return NewAdversarial(name), nil
	case "montecarlo", "mc":
		return NewMonteCarlo(name, DefaultMonteCarloSims), nil
	}
	return nil, fmt.Errorf("unknown player kind %q", kind)
}

// Kinds lists the player kinds New accepts.
func Kinds() []string {
	return []string{"greedy", "conservative", "adversarial", "montecarlo"}
}
