package search

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/elitelau/frog-leap-problem/pkg/board"
	"github.com/elitelau/frog-leap-problem/pkg/observability"
	"github.com/elitelau/frog-leap-problem/pkg/searchtree"
	"github.com/elitelau/frog-leap-problem/pkg/solution"
)

// defaultCapacity covers the whole reachable tree of the seven-position
// puzzle without the arena growing.
const defaultCapacity = 128

// Option configures a search run.
type Option func(*Options)

// Options holds the callbacks and tuning knobs of a run.
type Options struct {
	// OnSolution is called synchronously for every goal, in discovery order,
	// before the driver moves on. A returned error aborts the run.
	OnSolution func(solution.Solution) error

	// Logger receives debug output. Defaults to log.Default().
	Logger *log.Logger

	// Capacity preallocates arena slots.
	Capacity int
}

// DefaultOptions returns options with a no-op solution callback.
func DefaultOptions() Options {
	return Options{
		OnSolution: func(solution.Solution) error { return nil },
		Logger:     log.Default(),
		Capacity:   defaultCapacity,
	}
}

// WithOnSolution registers the callback invoked for each goal.
func WithOnSolution(fn func(solution.Solution) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSolution = fn
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCapacity preallocates n arena slots. Values <= 0 are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// Stats counts what happened during a run.
type Stats struct {
	Expanded     int           `json:"expanded"`      // states removed from the frontier
	Generated    int           `json:"generated"`     // successors attached to the tree
	DeadEnds     int           `json:"dead_ends"`     // expanded states without successors
	Reclaimed    int           `json:"reclaimed"`     // tree nodes freed by pruning
	PeakLive     int           `json:"peak_live"`     // most tree nodes alive at once
	PeakFrontier int           `json:"peak_frontier"` // longest frontier
	MaxDepth     int           `json:"max_depth"`     // deepest state generated
	Solutions    int           `json:"solutions"`
	Duration     time.Duration `json:"duration"`
}

// Result is the outcome of a run.
type Result struct {
	RunID     string              `json:"run_id"`
	Solutions []solution.Solution `json:"-"`
	Stats     Stats               `json:"stats"`

	arena *searchtree.Arena
}

// Tree returns the counters of the search tree as left by the run.
func (r *Result) Tree() searchtree.Stats {
	return r.arena.Stats()
}

// VerifyTree audits the live-child counters of the remaining tree.
func (r *Result) VerifyTree() error {
	return r.arena.Verify()
}

// driver holds the mutable state of one run.
type driver struct {
	ctx      context.Context
	opts     Options
	arena    *searchtree.Arena
	frontier []State
	res      *Result
}

// Run performs an exhaustive breadth-first search from the initial board.
//
// Every successor that satisfies the goal test is reported through
// OnSolution immediately and still enqueued; the run only ends when the
// frontier is empty. Dead ends are pruned from the tree as soon as they are
// expanded.
//
// The context is checked between frontier items, never inside a pruning
// walk. On cancellation the partial result is returned with ctx.Err().
// An INVARIANT_VIOLATION error from solution reconstruction aborts the run.
func Run(ctx context.Context, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &driver{
		ctx:   ctx,
		opts:  o,
		arena: searchtree.New(o.Capacity),
		res:   &Result{RunID: uuid.NewString()},
	}
	d.res.arena = d.arena

	hooks := observability.Search()
	hooks.OnSearchStart(ctx, d.res.RunID)
	start := time.Now()

	err := d.loop()

	d.res.Stats.Duration = time.Since(start)
	d.res.Stats.PeakLive = d.arena.Stats().PeakLive
	d.res.Stats.Reclaimed = d.arena.Stats().Reclaimed
	hooks.OnSearchComplete(ctx, d.res.RunID, d.res.summary(), d.res.Stats.Duration, err)

	return d.res, err
}

func (d *driver) loop() error {
	initial := board.Initial()
	d.frontier = append(make([]State, 0, d.opts.Capacity), State{
		Board: initial,
		Node:  d.arena.NewRoot(initial),
	})
	d.res.Stats.PeakFrontier = 1

	for len(d.frontier) > 0 {
		if err := d.ctx.Err(); err != nil {
			return err
		}

		cur := d.frontier[0]
		d.frontier = d.frontier[1:]
		d.res.Stats.Expanded++

		if err := d.step(cur); err != nil {
			return err
		}
	}
	return nil
}

// step expands one frontier state: enqueue and report its successors, or
// prune it when it has none.
func (d *driver) step(cur State) error {
	next, err := Expand(d.arena, cur)
	if err != nil {
		return err
	}
	depth, err := d.arena.Depth(cur.Node)
	if err != nil {
		return fmt.Errorf("depth of %v: %w", cur.Board, err)
	}

	if len(next) == 0 {
		return d.prune(cur, depth)
	}

	d.res.Stats.Generated += len(next)
	d.res.Stats.MaxDepth = max(d.res.Stats.MaxDepth, depth+1)
	for _, s := range next {
		d.frontier = append(d.frontier, s)
		if s.Board.IsGoal() {
			if err := d.report(s); err != nil {
				return err
			}
		}
	}
	d.res.Stats.PeakFrontier = max(d.res.Stats.PeakFrontier, len(d.frontier))

	observability.Search().OnExpand(d.ctx, depth, len(next), len(d.frontier))
	return nil
}

func (d *driver) prune(cur State, depth int) error {
	n, err := d.arena.Prune(cur.Node)
	if err != nil {
		return fmt.Errorf("prune %v: %w", cur.Board, err)
	}
	d.res.Stats.DeadEnds++
	d.opts.Logger.Debug("dead end", "board", cur.Board.String(), "depth", depth, "reclaimed", n)
	observability.Search().OnPrune(d.ctx, depth, n)
	return nil
}

// report rebuilds the root-to-goal path of s and hands it to OnSolution.
func (d *driver) report(s State) error {
	path, err := d.arena.Path(s.Node)
	if err != nil {
		return fmt.Errorf("solution path: %w", err)
	}
	sol, err := solution.New(len(d.res.Solutions)+1, path)
	if err != nil {
		return err
	}

	d.res.Solutions = append(d.res.Solutions, sol)
	d.res.Stats.Solutions++
	d.opts.Logger.Debug("solution found", "index", sol.Index, "moves", sol.Moves())
	observability.Search().OnSolution(d.ctx, sol.Index, sol.Moves())

	return d.opts.OnSolution(sol)
}

func (r *Result) summary() observability.SearchSummary {
	return observability.SearchSummary{
		Expanded:  r.Stats.Expanded,
		Generated: r.Stats.Generated,
		DeadEnds:  r.Stats.DeadEnds,
		Reclaimed: r.Stats.Reclaimed,
		Solutions: r.Stats.Solutions,
	}
}

// Shortest returns the solutions with the fewest moves, in discovery order.
func (r *Result) Shortest() []solution.Solution {
	best := -1
	var out []solution.Solution
	for _, s := range r.Solutions {
		switch {
		case best < 0 || s.Moves() < best:
			best = s.Moves()
			out = []solution.Solution{s}
		case s.Moves() == best:
			out = append(out, s)
		}
	}
	return out
}
