// Package searchtree stores the breadth-first search tree as an arena of
// nodes addressed by integer handles.
//
// Every node records its board, its parent handle and a counter of children
// that have been attached but not yet pruned. When the search meets a dead
// end it calls [Arena.Prune], which frees the node and walks upward,
// decrementing each ancestor's counter and freeing every ancestor that is
// left without children. Freed slots are recycled by later attachments.
//
// A handle carries the generation of its slot. Releasing a slot bumps the
// generation, so a handle kept past [Arena.Prune] fails with [ErrFreedNode]
// even after the slot holds a new node. [Arena.Verify] audits the counter
// invariant at any moment.
//
//	a := searchtree.New(64)
//	root := a.NewRoot(board.Initial())
//	child, _ := a.Attach(root, next)
//	a.Prune(child) // frees child, then root once its counter drops to 0
package searchtree
