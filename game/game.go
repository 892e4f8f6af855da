// Package game contains the logic for actual gameplay: racks, the bag,
// the turn loop, and the end-of-game conditions.
package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/cortado-games/tessera/board"
	"github.com/cortado-games/tessera/lexicon"
	"github.com/cortado-games/tessera/move"
	"github.com/cortado-games/tessera/movegen"
	"github.com/cortado-games/tessera/tiles"
)

// MaxScorelessTurns ends the game when neither player can (or will) score.
const MaxScorelessTurns = 6

// A Player chooses a move from the generated list each turn. Returning nil
// or a pass move passes the turn.
type Player interface {
	Name() string
	ChooseMove(state *State) *move.Move
}

// State is the per-turn view handed to a player: the board, a copy of the
// player's own rack, the full legal move list, and the shared references
// the opponent-modeling players need. The board and lexicon are read-only;
// players that simulate placements must work on Board.Copy().
type State struct {
	Board        *board.Board
	Rack         *tiles.Rack
	Moves        []*move.Move
	Lexicon      *lexicon.Lexicon
	Distribution *tiles.LetterDistribution
	BagCount     int
	Rng          *frand.RNG
}

type playerState struct {
	Player
	rack   *tiles.Rack
	points int
}

// Game encapsulates the components of one game between two players.
type Game struct {
	id      string
	board   *board.Board
	bag     *tiles.Bag
	lex     *lexicon.Lexicon
	dist    *tiles.LetterDistribution
	gen     *movegen.Generator
	rng     *frand.RNG
	players [2]*playerState

	onturn         int
	turn           int
	scorelessTurns int
	playing        bool
}

// New creates a game between two players. The random source drives the
// bag and is handed to players that sample.
func New(lex *lexicon.Lexicon, dist *tiles.LetterDistribution, p1, p2 Player, rng *frand.RNG) *Game {
	b := board.New(dist)
	return &Game{
		id:    uuid.NewString(),
		board: b,
		bag:   tiles.NewBag(dist, rng),
		lex:   lex,
		dist:  dist,
		gen:   movegen.NewGenerator(b, lex),
		rng:   rng,
		players: [2]*playerState{
			{Player: p1, rack: tiles.NewRack()},
			{Player: p2, rack: tiles.NewRack()},
		},
	}
}

// StartGame deals out the first racks.
func (g *Game) StartGame() error {
	for i := range g.players {
		drawn, err := g.bag.Draw(tiles.RackSize)
		if err != nil {
			return err
		}
		for _, l := range drawn {
			g.players[i].rack.Add(l)
		}
	}
	g.onturn = 0
	g.turn = 0
	g.scorelessTurns = 0
	g.playing = true
	return nil
}

// PlayTurn generates the move list for the player on turn, asks them to
// choose, and applies the result.
func (g *Game) PlayTurn() error {
	ps := g.players[g.onturn]
	plays, err := g.gen.GenAll(ps.rack)
	if err != nil {
		return fmt.Errorf("generating moves for %v: %w", ps.Name(), err)
	}

	var chosen *move.Move
	if len(plays) > 0 {
		state := &State{
			Board:        g.board,
			Rack:         ps.rack.Copy(),
			Moves:        plays,
			Lexicon:      g.lex,
			Distribution: g.dist,
			BagCount:     g.bag.TilesRemaining(),
			Rng:          g.rng,
		}
		chosen = ps.ChooseMove(state)
	}

	if chosen == nil || chosen.Action() == move.MoveTypePass {
		log.Debug().Int("turn", g.turn).Str("player", ps.Name()).Msg("passed")
		g.scorelessTurns++
	} else {
		if err := g.board.PlaceWord(chosen.Word(), chosen.Start(), chosen.Direction(), ps.rack); err != nil {
			return fmt.Errorf("%v played an unplaceable move %v: %w", ps.Name(), chosen, err)
		}
		ps.points += chosen.Score()
		for _, l := range g.bag.DrawAtMost(chosen.TilesPlayed()) {
			ps.rack.Add(l)
		}
		g.scorelessTurns = 0
		log.Debug().Int("turn", g.turn).Str("player", ps.Name()).
			Str("play", chosen.ShortDescription()).Int("total", ps.points).
			Msg("played")
		if ps.rack.Empty() && g.bag.TilesRemaining() == 0 {
			g.playOut(g.onturn)
		}
	}

	if g.scorelessTurns >= MaxScorelessTurns {
		log.Debug().Str("gid", g.id).Msgf("game ended after %v scoreless turns", MaxScorelessTurns)
		g.deductRacks()
		g.playing = false
	}
	g.turn++
	g.onturn = (g.onturn + 1) % len(g.players)
	return nil
}

// playOut ends the game when a player empties their rack with an empty
// bag: the opponent's leftover tiles transfer to the player going out.
func (g *Game) playOut(winner int) {
	opp := g.players[(winner+1)%len(g.players)]
	leftover := opp.rack.ScoreOn(g.dist)
	g.players[winner].points += leftover
	opp.points -= leftover
	g.playing = false
}

// deductRacks subtracts each player's remaining rack value, for games that
// end by scoreless turns.
func (g *Game) deductRacks() {
	for _, ps := range g.players {
		ps.points -= ps.rack.ScoreOn(g.dist)
	}
}

// Play runs the game to completion and returns the final scores in player
// order.
func (g *Game) Play() (int, int, error) {
	if err := g.StartGame(); err != nil {
		return 0, 0, err
	}
	for g.playing {
		if err := g.PlayTurn(); err != nil {
			return 0, 0, err
		}
	}
	log.Debug().Str("gid", g.id).Msgf("final score: %v %v - %v %v",
		g.players[0].Name(), g.players[0].points,
		g.players[1].Name(), g.players[1].points)
	return g.players[0].points, g.players[1].points, nil
}

// ID returns the game's unique identifier.
func (g *Game) ID() string {
	return g.id
}

// Board returns the live board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Playing returns whether the game is still in progress.
func (g *Game) Playing() bool {
	return g.playing
}

// Turn returns the number of turns played so far.
func (g *Game) Turn() int {
	return g.turn
}

// PointsFor returns the score of player idx (0 or 1).
func (g *Game) PointsFor(idx int) int {
	return g.players[idx].points
}

// RackFor returns a copy of player idx's rack.
func (g *Game) RackFor(idx int) *tiles.Rack {
	return g.players[idx].rack.Copy()
}
