// Package pkg provides the libraries behind frogleap, a solver for the
// six-frog leap puzzle.
//
// # Overview
//
// Three left-moving frogs (L1 L2 L3) sit left of a single gap (G0) and three
// right-moving frogs (R3 R2 R1) sit right of it. A frog moves toward the far
// side by stepping into the adjacent gap or by jumping over one frog into
// it. The puzzle is solved when every right-mover is left of the gap and
// every left-mover right of it: RRRGLLL.
//
// The data flow:
//
//	[board] initial board
//	     ↓
//	[search] breadth-first search, dead ends pruned from the [searchtree]
//	     ↓
//	[solution] root-to-goal paths
//	     ↓
//	text, JSON ([io]), DOT/SVG/PDF/PNG ([render]), cached by [cache]
//
// # Quick Start
//
//	res, err := search.Run(ctx, search.WithOnSolution(func(s solution.Solution) error {
//	    return solution.WriteText(os.Stdout, s)
//	}))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Stats.DeadEnds, "dead ends")
//
// # Main Packages
//
// ## Puzzle
//
// [board] - Entities, the seven-position board, goal test and move
// derivation.
//
// [searchtree] - Arena-backed search tree with live-child counters. Pruning
// a dead end reclaims it and every ancestor left without children.
//
// [search] - Successor generation and the exhaustive breadth-first driver.
//
// [solution] - Solution paths and their text format.
//
// ## Output
//
// [io] - JSON export and import of solution sets.
//
// [render] - Graphviz DOT generation, SVG layout and PDF/PNG conversion.
//
// ## Infrastructure
//
// [cache] - Artifact cache with file, Redis and null backends.
//
// [config] - TOML configuration file.
//
// [errors] - Coded errors shared by the CLI and the HTTP API.
//
// [observability] - Hooks for search, cache and HTTP events.
//
// [buildinfo] - Version information.
//
// [board]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/board
// [searchtree]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/searchtree
// [search]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/search
// [solution]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/solution
// [io]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/io
// [render]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/render
// [cache]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/cache
// [config]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/config
// [errors]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/errors
// [observability]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/elitelau/frog-leap-problem/pkg/buildinfo
package pkg
