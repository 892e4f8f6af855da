// Package player implements the automated players. They all consume the
// move list the generator produces; none of them search the board
// themselves.
package player

import (
	"sort"

	"github.com/samber/lo"

	"github.com/cortado-games/tessera/game"
	"github.com/cortado-games/tessera/move"
)

// Greedy plays the highest-scoring move every turn.
type Greedy struct {
	name string
}

var _ game.Player = (*Greedy)(nil)

func NewGreedy(name string) *Greedy {
	return &Greedy{name: name}
}

func (p *Greedy) Name() string {
	return p.name
}

func (p *Greedy) ChooseMove(state *game.State) *move.Move {
	if len(state.Moves) == 0 {
		return nil
	}
	return lo.MaxBy(state.Moves, func(a, b *move.Move) bool {
		return a.Score() > b.Score()
	})
}

// topByScore returns up to n moves, highest score first, without
// disturbing the caller's slice.
func topByScore(moves []*move.Move, n int) []*move.Move {
	sorted := make([]*move.Move, len(moves))
	copy(sorted, moves)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score() > sorted[j].Score()
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
