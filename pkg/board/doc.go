// Package board models the seven-position frog puzzle.
//
// Three left-movers (L1 L2 L3), three right-movers (R3 R2 R1) and one gap
// (G0) share a row of seven positions. Left-movers only ever advance to the
// right and right-movers only to the left, either by stepping into an
// adjacent gap or by jumping over one piece into it.
//
// # Entities and boards
//
// The six frogs and the gap are fixed [Entity] values held in [Pool]. A
// [Board] stores, for every position, the index of the pool entity standing
// there. Boards are plain arrays, so copying a board never copies entities
// and entity identity is simply the pool index.
//
//	b := board.Initial()       // L1 L2 L3 G0 R3 R2 R1
//	next := b.Swap(2, b.Gap()) // L3 steps into the gap
//	fmt.Println(next)          // L1 L2 G0 L3 R3 R2 R1
//
// # Goal
//
// The puzzle is solved when the kinds read RRRGLLL ([Target]), whatever
// order the labels end up in. [Board.IsGoal] compares [Board.Pattern]
// against it.
//
// # Moves
//
// [DeriveMove] recovers the [Move] between two consecutive boards of a
// solution path and reports an INVARIANT_VIOLATION error when the boards are
// not related by a single frog/gap exchange.
package board
