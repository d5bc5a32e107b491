package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
	pkgio "github.com/elitelau/frog-leap-problem/pkg/io"
	"github.com/elitelau/frog-leap-problem/pkg/search"
	"github.com/elitelau/frog-leap-problem/pkg/solution"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var solveFormats = []string{formatText, formatJSON}

type solveOpts struct {
	format   string // text or json
	output   string // file path; empty means stdout
	stats    bool   // print search statistics to stderr
	shortest bool   // keep only the solutions with the fewest moves
}

func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print every solution path",
		Long: `Run the breadth-first search to exhaustion and print every path from
the initial board to a goal board.

Text output streams each solution as soon as it is found. JSON output also
carries the run identifier and search statistics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print search statistics to stderr")
	cmd.Flags().BoolVar(&opts.shortest, "shortest", false, "only print the solutions with the fewest moves")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, opts solveOpts) error {
	format, err := apperr.ValidateFormat(opts.format, solveFormats)
	if err != nil {
		return err
	}

	w := c.Out
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.output, err)
		}
		defer f.Close()
		w = f
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	searchOpts := []search.Option{search.WithLogger(logger)}
	if format == formatText && !opts.shortest {
		searchOpts = append(searchOpts, search.WithOnSolution(func(s solution.Solution) error {
			return solution.WriteText(w, s)
		}))
	}

	res, err := search.Run(ctx, searchOpts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Found %d solutions", res.Stats.Solutions))

	if err := writeSolutions(w, res, format, opts.shortest); err != nil {
		return err
	}
	if opts.stats {
		printSearchStats(res)
	}
	if opts.output != "" {
		printSuccess("Wrote %d solutions", len(res.Solutions))
		printFile(opts.output)
	}
	return nil
}

// writeSolutions writes whatever was not already streamed during the search.
func writeSolutions(w io.Writer, res *search.Result, format string, shortest bool) error {
	if shortest {
		res.Solutions = res.Shortest()
	}
	switch {
	case format == formatJSON:
		return pkgio.WriteJSON(res, w)
	case shortest:
		return solution.WriteAll(w, res.Solutions)
	}
	return nil
}

func printSearchStats(res *search.Result) {
	s := res.Stats
	printKeyValue("run", res.RunID)
	printKeyValue("solutions", StyleNumber.Render(fmt.Sprint(s.Solutions)))
	printKeyValue("expanded", fmt.Sprint(s.Expanded))
	printKeyValue("generated", fmt.Sprint(s.Generated))
	printKeyValue("dead ends", fmt.Sprint(s.DeadEnds))
	printKeyValue("reclaimed", fmt.Sprint(s.Reclaimed))
	printKeyValue("peak live", fmt.Sprint(s.PeakLive))
	printKeyValue("peak frontier", fmt.Sprint(s.PeakFrontier))
	printKeyValue("max depth", fmt.Sprint(s.MaxDepth))
	printKeyValue("took", s.Duration.String())
}
