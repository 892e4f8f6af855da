// Package movegen enumerates every legal word placement on the current
// board given a rack and a lexicon. It is an anchor-based, trie-driven
// search in the style of Appel and Jacobson: per direction it computes the
// cross-check table and the anchor set, then runs a backtracking
// backward/forward extension from each anchor.
package movegen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cortado-games/tessera/board"
	"github.com/cortado-games/tessera/lexicon"
	"github.com/cortado-games/tessera/move"
	"github.com/cortado-games/tessera/tiles"
)

// Generator generates moves for a fixed board and lexicon. It owns a
// working rack and per-direction cross-check table for the duration of a
// GenAll call and only ever reads the board and lexicon, so any number of
// Generator instances may run concurrently against shared ones.
//
// A Generator is not safe for concurrent use itself; opponent-modeling
// callers create one per simulation.
type Generator struct {
	board *board.Board
	lex   *lexicon.Lexicon

	// rack is the live rack, destructively consumed and restored during
	// the search; refRack is the untouched copy used to compute which
	// tiles a play consumed.
	rack    *tiles.Rack
	refRack *tiles.Rack

	dir         board.Direction
	anchorList  []board.Position
	anchorSet   map[board.Position]bool
	crossChecks map[board.Position]CrossSet

	plays []*move.Move
}

// NewGenerator creates a Generator for the given board and lexicon.
func NewGenerator(b *board.Board, lex *lexicon.Lexicon) *Generator {
	return &Generator{board: b, lex: lex}
}

// GenAll finds every legal placement for the rack and returns the plays
// with their scores. Order is the search's discovery order; callers must
// sort by whatever criterion they care about.
//
// The rack is mutated during the search but is guaranteed to hold its
// original tiles again by the time GenAll returns.
func (g *Generator) GenAll(rack *tiles.Rack) ([]*move.Move, error) {
	if rack == nil {
		return nil, errors.New("cannot generate moves without a rack")
	}
	if rack.Len() > tiles.RackSize {
		return nil, fmt.Errorf("rack has %v tiles, maximum is %v", rack.Len(), tiles.RackSize)
	}
	g.rack = rack
	g.refRack = rack.Copy()
	g.plays = []*move.Move{}

	for _, dir := range board.Directions {
		g.dir = dir
		g.findAnchors()
		g.computeCrossChecks()
		for _, anchor := range g.anchorList {
			g.genFromAnchor(anchor)
		}
	}
	return g.plays, nil
}

// findAnchors collects the empty squares with at least one filled
// axis-adjacent neighbor. Adjacency is interpreted relative to the current
// direction's transform pairs, so the set is recomputed per pass. An empty
// board degenerates to no anchors at all; the center square is designated
// the sole anchor so the first move is generatable.
func (g *Generator) findAnchors() {
	g.anchorList = g.anchorList[:0]
	g.anchorSet = make(map[board.Position]bool)
	if g.board.IsBlank() {
		center := g.board.Center()
		g.anchorList = append(g.anchorList, center)
		g.anchorSet[center] = true
		return
	}
	for _, pos := range g.board.AllPositions() {
		if !g.board.IsEmpty(pos) {
			continue
		}
		if g.board.IsFilled(g.dir.Before(pos)) ||
			g.board.IsFilled(g.dir.After(pos)) ||
			g.board.IsFilled(g.dir.BeforeCross(pos)) ||
			g.board.IsFilled(g.dir.AfterCross(pos)) {
			g.anchorList = append(g.anchorList, pos)
			g.anchorSet[pos] = true
		}
	}
}

// computeCrossChecks builds the table of letters legal on every empty
// square given the perpendicular words they would complete. A square with
// no perpendicular neighbors gets the trivial set.
func (g *Generator) computeCrossChecks() {
	g.crossChecks = make(map[board.Position]CrossSet)
	for _, pos := range g.board.AllPositions() {
		if g.board.IsFilled(pos) {
			continue
		}
		// The perpendicular-before run is accumulated closest letter
		// first, so prepend to keep reading order.
		runBefore := ""
		for scan := g.dir.BeforeCross(pos); g.board.IsFilled(scan); scan = g.dir.BeforeCross(scan) {
			runBefore = string(g.board.GetTile(scan)) + runBefore
		}
		runAfter := ""
		for scan := g.dir.AfterCross(pos); g.board.IsFilled(scan); scan = g.dir.AfterCross(scan) {
			runAfter = runAfter + string(g.board.GetTile(scan))
		}
		if runBefore == "" && runAfter == "" {
			g.crossChecks[pos] = TrivialCrossSet
			continue
		}
		g.crossChecks[pos] = CrossSetFromLetters(g.lex.CrossSet(runBefore, runAfter))
	}
}

// genFromAnchor starts the extension search at one anchor. If tiles sit
// immediately before the anchor they form a fixed prefix every word from
// this anchor must extend; otherwise the search may grow a prefix of its
// own out of the rack, bounded by the run of empty non-anchor squares
// behind the anchor.
func (g *Generator) genFromAnchor(anchor board.Position) {
	if g.board.IsFilled(g.dir.Before(anchor)) {
		scan := g.dir.Before(anchor)
		prefix := string(g.board.GetTile(scan))
		for g.board.IsFilled(g.dir.Before(scan)) {
			scan = g.dir.Before(scan)
			prefix = string(g.board.GetTile(scan)) + prefix
		}
		node := g.lex.Lookup(prefix)
		if node == nil {
			// The tiles on the board are not a valid prefix of any
			// word (a phony stayed, or the word has no extensions).
			// Skip this anchor entirely.
			return
		}
		g.extendAfter(prefix, node, anchor, false)
		return
	}
	limit := 0
	for scan := anchor; g.board.IsEmpty(g.dir.Before(scan)) && !g.anchorSet[g.dir.Before(scan)]; scan = g.dir.Before(scan) {
		limit++
	}
	g.beforePart("", g.lex.Root(), anchor, limit)
}

// beforePart grows a prefix leftward (upward, for down plays) one rack
// letter at a time, up to limit squares before the anchor. At every depth,
// including the empty prefix, it attempts to extend forward through the
// anchor.
func (g *Generator) beforePart(partial string, node *lexicon.Node, anchor board.Position, limit int) {
	g.extendAfter(partial, node, anchor, false)
	if limit <= 0 {
		return
	}
	for _, letter := range sortedEdges(node) {
		if !g.rack.Has(letter) {
			continue
		}
		g.rack.Take(letter)
		g.beforePart(partial+string(letter), node.Children[letter], anchor, limit-1)
		g.rack.Add(letter)
	}
}

// extendAfter grows the word rightward (downward) through pos. Board tiles
// are traversed for free; empty squares consume a rack letter that must
// be a trie edge and pass the square's cross-check. A play is recorded
// when the word ends at an empty or off-board square, spells a complete
// word, and has traversed at least one anchor.
func (g *Generator) extendAfter(partial string, node *lexicon.Node, pos board.Position, anchorPassed bool) {
	if !g.board.IsFilled(pos) && node.IsWord && anchorPassed {
		g.recordPlay(partial, g.dir.Before(pos))
	}
	if !g.board.InBounds(pos) {
		return
	}
	if g.board.IsEmpty(pos) {
		crossCheck := g.crossChecks[pos]
		for _, letter := range sortedEdges(node) {
			if !g.rack.Has(letter) || !crossCheck.Allowed(letter) {
				continue
			}
			g.rack.Take(letter)
			g.extendAfter(partial+string(letter), node.Children[letter], g.dir.After(pos), true)
			g.rack.Add(letter)
		}
		return
	}
	existing := g.board.GetTile(pos)
	if child, ok := node.Children[existing]; ok {
		g.extendAfter(partial+string(existing), child, g.dir.After(pos), true)
	}
}

// recordPlay reconstructs the placement's start square, scores it, and
// appends the play. lastPos is the square of the word's final letter.
func (g *Generator) recordPlay(word string, lastPos board.Position) {
	start := lastPos
	for i := 1; i < len(word); i++ {
		start = g.dir.Before(start)
	}
	score := g.board.CalculateScore(word, start, g.dir, g.rack.Copy())
	used := g.refRack.Diff(g.rack)
	g.plays = append(g.plays, move.NewPlay(word, start, g.dir, used, score))
}

// sortedEdges returns a node's outgoing edge letters in alphabetical
// order, so generation is reproducible run to run.
func sortedEdges(node *lexicon.Node) []rune {
	letters := make([]rune, 0, len(node.Children))
	for l := range node.Children {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
