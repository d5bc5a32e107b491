package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/elitelau/frog-leap-problem/pkg/cache"
	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
	pkgio "github.com/elitelau/frog-leap-problem/pkg/io"
	"github.com/elitelau/frog-leap-problem/pkg/render"
	"github.com/elitelau/frog-leap-problem/pkg/search"
	"github.com/elitelau/frog-leap-problem/pkg/solution"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
)

var renderFormats = []string{formatDOT, formatSVG, formatPDF, formatPNG}

type renderOpts struct {
	format   string  // dot, svg, pdf or png
	output   string  // file path; empty means stdout (text formats only)
	input    string  // JSON solution set from `solve -f json`; empty runs the search
	index    int     // 1-based solution to draw; 0 draws all
	detailed bool    // label nodes with pattern and depth
	scale    float64 // png scale factor
	noCache  bool
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG, scale: 2}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw solution paths as a Graphviz diagram",
		Long: `Draw the solution paths as one directed graph of boards and moves.

SVG output is cached by the digest of its DOT source. PDF and PNG are
converted from SVG with rsvg-convert and must be written to a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("detailed") {
				opts.detailed = c.cfg.Render.Detailed
			}
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, pdf, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout for dot and svg)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "render solutions from a JSON file written by solve -f json")
	cmd.Flags().IntVarP(&opts.index, "solution", "n", 0, "only draw solution n (1-based)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show kind pattern and depth on every board")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "png scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	format, err := apperr.ValidateFormat(opts.format, renderFormats)
	if err != nil {
		return err
	}
	if opts.output == "" && (format == formatPDF || format == formatPNG) {
		return apperr.New(apperr.ErrCodeInvalidInput, "%s output needs --output", format)
	}

	sols, err := c.loadSolutions(ctx, opts.input)
	if err != nil {
		return err
	}
	if opts.index != 0 {
		i, err := apperr.ValidateSolutionIndex(opts.index, len(sols))
		if err != nil {
			return err
		}
		sols = sols[i : i+1]
	}

	dot := render.ToDOT(sols, render.Options{Detailed: opts.detailed})
	data := []byte(dot)

	if format != formatDOT {
		store, err := c.openCache(ctx, formatSVG, opts.noCache)
		if err != nil {
			return err
		}
		defer store.Close()

		svg, cached, err := renderSVGCached(ctx, store, dot, c.cfg.Cache.TTL.Duration)
		if err != nil {
			return err
		}
		printArtifact(formatSVG, len(svg), cached)
		data = svg
	}

	switch format {
	case formatPDF:
		data, err = render.ToPDF(ctx, data)
	case formatPNG:
		data, err = render.ToPNG(ctx, data, opts.scale)
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Rendered %d solution paths", len(sols))
	printFile(opts.output)
	return nil
}

// loadSolutions reads an exported solution set, or runs the search when
// path is empty.
func (c *CLI) loadSolutions(ctx context.Context, path string) ([]solution.Solution, error) {
	logger := loggerFromContext(ctx)
	if path != "" {
		doc, err := pkgio.ImportJSON(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded solutions", "file", path, "run", doc.RunID, "count", len(doc.Solutions))
		return doc.Solutions, nil
	}

	res, err := search.Run(ctx, search.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return res.Solutions, nil
}

// renderSVGCached returns the SVG for dot from store, laying it out and
// storing it on a miss.
func renderSVGCached(ctx context.Context, store cache.Cache, dot string, ttl time.Duration) ([]byte, bool, error) {
	key := cache.RenderKey(formatSVG, cache.Hash([]byte(dot)))

	if svg, ok, err := store.Get(ctx, key); err != nil {
		loggerFromContext(ctx).Warn("cache read failed", "err", err)
	} else if ok {
		return svg, true, nil
	}

	spinner := newSpinnerWithContext(ctx, "Laying out diagram...")
	spinner.Start()
	svg, err := render.RenderSVG(ctx, dot)
	spinner.Stop()
	if err != nil {
		return nil, false, err
	}

	if err := store.Set(ctx, key, svg, ttl); err != nil {
		loggerFromContext(ctx).Warn("cache write failed", "err", err)
	}
	return svg, false, nil
}
