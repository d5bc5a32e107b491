package searchtree

import (
	"errors"
	"fmt"

	"github.com/elitelau/frog-leap-problem/pkg/board"
)

var (
	// ErrFreedNode is returned when a handle refers to a slot that has been
	// reclaimed. Handles are invalidated by Prune; a stale handle is a bug in
	// the caller.
	ErrFreedNode = errors.New("search tree node has been reclaimed")

	// ErrInvalidHandle is returned for handles outside the arena.
	ErrInvalidHandle = errors.New("invalid search tree handle")
)

// NodeID addresses a slot in the arena. The low 32 bits hold the slot
// index, the high 32 bits the slot generation at allocation time, so a
// handle kept past Prune no longer matches once its slot is reused.
type NodeID int64

// None is the parent of the root.
const None NodeID = -1

func makeID(index int, gen uint32) NodeID {
	return NodeID(int64(gen)<<32 | int64(uint32(index)))
}

func (id NodeID) index() int  { return int(uint32(id)) }
func (id NodeID) gen() uint32 { return uint32(uint64(id) >> 32) }

// node is one arena slot.
type node struct {
	state  board.Board
	parent NodeID
	// children counts successors attached under this node that have not been
	// pruned yet.
	children int
	depth    int
	free     bool
	// gen is bumped every time the slot is released.
	gen uint32
}

// Arena owns every search-tree node. Slots of pruned nodes go on a free list
// and are reused by later Attach calls; reuse bumps the slot generation, so
// handles to the pruned node report ErrFreedNode.
//
// The zero value is an empty arena ready for NewRoot.
// Arena is not safe for concurrent use.
type Arena struct {
	nodes    []node
	freeList []int

	live      int
	peakLive  int
	allocated int
	reclaimed int
}

// New returns an arena with room for capacity nodes before growing.
func New(capacity int) *Arena {
	return &Arena{nodes: make([]node, 0, capacity)}
}

// NewRoot allocates a parentless node holding state.
func (a *Arena) NewRoot(state board.Board) NodeID {
	return a.alloc(state, None, 0)
}

// Attach allocates a child of parent holding state and increments the
// parent's live-child counter.
func (a *Arena) Attach(parent NodeID, state board.Board) (NodeID, error) {
	p, err := a.get(parent)
	if err != nil {
		return None, fmt.Errorf("attach under %d: %w", parent, err)
	}
	p.children++
	return a.alloc(state, parent, p.depth+1), nil
}

func (a *Arena) alloc(state board.Board, parent NodeID, depth int) NodeID {
	n := node{state: state, parent: parent, depth: depth}

	var idx int
	if k := len(a.freeList); k > 0 {
		idx = a.freeList[k-1]
		a.freeList = a.freeList[:k-1]
		n.gen = a.nodes[idx].gen
		a.nodes[idx] = n
	} else {
		idx = len(a.nodes)
		a.nodes = append(a.nodes, n)
	}

	a.allocated++
	a.live++
	if a.live > a.peakLive {
		a.peakLive = a.live
	}
	return makeID(idx, n.gen)
}

// Prune reclaims a dead-end node and every ancestor left childless by it.
//
// The node itself is freed unconditionally. Then, walking upward, each
// ancestor's counter is decremented; an ancestor whose counter reaches zero
// is freed too and the walk continues with its parent. The walk stops at the
// first ancestor that still has live children, or after the root is freed.
//
// Prune returns the number of nodes reclaimed (at least 1).
func (a *Arena) Prune(id NodeID) (int, error) {
	if _, err := a.get(id); err != nil {
		return 0, fmt.Errorf("prune %d: %w", id, err)
	}

	reclaimed := 0
	for cur := id; cur != None; {
		parent := a.nodes[cur.index()].parent
		a.release(cur)
		reclaimed++

		if parent == None {
			break
		}
		p := &a.nodes[parent.index()]
		p.children--
		if p.children > 0 {
			break
		}
		cur = parent
	}
	return reclaimed, nil
}

func (a *Arena) release(id NodeID) {
	idx := id.index()
	a.nodes[idx] = node{parent: None, free: true, gen: a.nodes[idx].gen + 1}
	a.freeList = append(a.freeList, idx)
	a.live--
	a.reclaimed++
}

func (a *Arena) get(id NodeID) (*node, error) {
	if id == None || id.index() >= len(a.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, id)
	}
	n := &a.nodes[id.index()]
	if n.free || n.gen != id.gen() {
		return nil, fmt.Errorf("%w: %d", ErrFreedNode, id)
	}
	return n, nil
}

// State returns the board held by id.
func (a *Arena) State(id NodeID) (board.Board, error) {
	n, err := a.get(id)
	if err != nil {
		return board.Board{}, err
	}
	return n.state, nil
}

// Parent returns the parent of id, or None for the root.
func (a *Arena) Parent(id NodeID) (NodeID, error) {
	n, err := a.get(id)
	if err != nil {
		return None, err
	}
	return n.parent, nil
}

// Children returns the live-child counter of id.
func (a *Arena) Children(id NodeID) (int, error) {
	n, err := a.get(id)
	if err != nil {
		return 0, err
	}
	return n.children, nil
}

// Depth returns the number of moves between the root and id.
func (a *Arena) Depth(id NodeID) (int, error) {
	n, err := a.get(id)
	if err != nil {
		return 0, err
	}
	return n.depth, nil
}

// Alive reports whether id refers to an allocated, unpruned node.
func (a *Arena) Alive(id NodeID) bool {
	_, err := a.get(id)
	return err == nil
}

// Path returns the boards from the root down to id, inclusive.
func (a *Arena) Path(id NodeID) ([]board.Board, error) {
	n, err := a.get(id)
	if err != nil {
		return nil, fmt.Errorf("path to %d: %w", id, err)
	}

	path := make([]board.Board, n.depth+1)
	for i, cur := n.depth, id; cur != None; i-- {
		c, err := a.get(cur)
		if err != nil {
			return nil, fmt.Errorf("path to %d: ancestor %d: %w", id, cur, err)
		}
		if i < 0 {
			return nil, fmt.Errorf("path to %d: depth mismatch at ancestor %d", id, cur)
		}
		path[i] = c.state
		cur = c.parent
	}
	return path, nil
}

// Stats summarizes arena usage.
type Stats struct {
	Live      int // nodes currently allocated
	PeakLive  int // maximum of Live over the arena's lifetime
	Allocated int // total Attach/NewRoot calls
	Reclaimed int // total nodes freed by Prune
	Slots     int // backing slots, live or free
}

// Stats returns a snapshot of the arena counters.
func (a *Arena) Stats() Stats {
	return Stats{
		Live:      a.live,
		PeakLive:  a.peakLive,
		Allocated: a.allocated,
		Reclaimed: a.reclaimed,
		Slots:     len(a.nodes),
	}
}

// Verify recomputes the number of live children of every live node and
// checks it against the stored counter. It also checks that no live node
// points at a freed parent.
func (a *Arena) Verify() error {
	counts := make([]int, len(a.nodes))
	live := 0
	for i := range a.nodes {
		n := &a.nodes[i]
		if n.free {
			continue
		}
		live++
		if n.parent == None {
			continue
		}
		if _, err := a.get(n.parent); err != nil {
			return fmt.Errorf("node %d: parent %d: %w", i, n.parent, err)
		}
		counts[n.parent.index()]++
	}

	for i := range a.nodes {
		n := &a.nodes[i]
		if n.free {
			continue
		}
		if counts[i] != n.children {
			return fmt.Errorf("node %d: counter %d, live children %d", i, n.children, counts[i])
		}
	}
	if live != a.live {
		return fmt.Errorf("live count %d, found %d live slots", a.live, live)
	}
	return nil
}
