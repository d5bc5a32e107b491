package search

import (
	"fmt"

	"github.com/elitelau/frog-leap-problem/pkg/board"
	"github.com/elitelau/frog-leap-problem/pkg/searchtree"
)

// State is a board together with the search-tree node it is attached to.
type State struct {
	Board board.Board
	Node  searchtree.NodeID
}

// rule is one of the four legal move shapes: a mover of kind at gap+offset
// may swap with the gap.
type rule struct {
	kind   board.Kind
	offset int
}

// rules are tried in this order; the order fixes the BFS tie-breaking and
// must not change.
var rules = [...]rule{
	{kind: board.LeftMover, offset: -1},  // left-mover steps right
	{kind: board.LeftMover, offset: -2},  // left-mover jumps right
	{kind: board.RightMover, offset: +1}, // right-mover steps left
	{kind: board.RightMover, offset: +2}, // right-mover jumps left
}

// Successors returns every board reachable from b by one legal move, in
// generation order. It does not touch any search tree, so calling it twice
// on the same board yields equal results.
//
// Left-movers are only ever looked for to the left of the gap and
// right-movers to its right, so no piece can move backward.
func Successors(b board.Board) []board.Board {
	g := b.Gap()
	if g < 0 {
		return nil
	}

	out := make([]board.Board, 0, len(rules))
	for _, r := range rules {
		src := g + r.offset
		if k, ok := b.KindAt(src); ok && k == r.kind {
			out = append(out, b.Swap(src, g))
		}
	}
	return out
}

// Expand generates the successors of cur and attaches each one under cur's
// node, incrementing its live-child counter once per successor. Expand must
// be called at most once per state.
func Expand(arena *searchtree.Arena, cur State) ([]State, error) {
	boards := Successors(cur.Board)
	if len(boards) == 0 {
		return nil, nil
	}

	next := make([]State, len(boards))
	for i, b := range boards {
		id, err := arena.Attach(cur.Node, b)
		if err != nil {
			return nil, fmt.Errorf("expand %v: %w", cur.Board, err)
		}
		next[i] = State{Board: b, Node: id}
	}
	return next, nil
}
