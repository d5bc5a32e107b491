// Package search solves the frog puzzle by exhaustive breadth-first search.
//
// # Transitions
//
// [Successors] lists the boards reachable by one move, always in the same
// order: left-mover step, left-mover jump, right-mover step, right-mover
// jump. It is a pure function of the board. [Expand] additionally attaches
// each successor to the search tree under the expanded state's node.
//
// # Driver
//
// [Run] keeps a first-in-first-out frontier seeded with the initial board.
// Each iteration removes the front state and expands it:
//   - successors are appended to the frontier, and every successor that is
//     a goal is reported at once through the OnSolution callback;
//   - a state without successors is a dead end and is pruned from the tree,
//     together with every ancestor left childless ([searchtree.Arena.Prune]).
//
// The search does not stop at the first goal. It runs until the frontier is
// empty and so reports every solution path, in breadth-first order.
//
//	res, err := search.Run(ctx, search.WithOnSolution(func(s solution.Solution) error {
//	    return solution.WriteText(os.Stdout, s)
//	}))
//
// # Statistics
//
// [Result.Stats] records how many states were expanded and generated, how
// many dead ends were met and how many tree nodes were reclaimed. Once the
// frontier is exhausted every node, the root included, has been reclaimed.
package search
