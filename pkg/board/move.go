package board

import (
	"fmt"

	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
)

// Move records a single frog leaping into the gap.
type Move struct {
	Frog Entity // the piece that moved
	From int    // position the frog left (and the gap now occupies)
	To   int    // position the gap held before the move
}

// Distance is 1 for a step and 2 for a jump over another piece.
func (m Move) Distance() int {
	if m.To > m.From {
		return m.To - m.From
	}
	return m.From - m.To
}

// String renders the move annotation, e.g. "frog L3[2] leaps to gap[3]".
func (m Move) String() string {
	return fmt.Sprintf("frog %s[%d] leaps to gap[%d]", m.Frog.Token(), m.From, m.To)
}

// DeriveMove reconstructs the move that turns prev into next.
//
// Exactly two positions must differ: one held the gap in prev and the other
// held a frog, and next must hold them exchanged. Anything else means the
// boards are not parent and child in a consistent search tree and an
// INVARIANT_VIOLATION error is returned.
func DeriveMove(prev, next Board) (Move, error) {
	from, to, diff := -1, -1, 0
	for i := range prev {
		if prev[i] == next[i] {
			continue
		}
		diff++
		if prev.At(i).Kind == Gap {
			to = i
		} else {
			from = i
		}
	}

	if diff != 2 || from < 0 || to < 0 {
		return Move{}, apperr.New(apperr.ErrCodeInvariant,
			"boards %q -> %q differ in %d positions, want one frog and the gap", prev, next, diff)
	}
	if next[to] != prev[from] || next[from] != prev[to] {
		return Move{}, apperr.New(apperr.ErrCodeInvariant,
			"boards %q -> %q are not related by a single swap", prev, next)
	}

	return Move{Frog: prev.At(from), From: from, To: to}, nil
}
