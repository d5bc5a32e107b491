// Package render draws solution paths as Graphviz diagrams.
//
// [ToDOT] merges the boards of every solution into one directed graph: each
// distinct board is a node and each move an edge labelled with the frog and
// its positions. Boards shared by several solutions (the initial board, and
// usually the goal) appear once. [RenderSVG] lays the graph out with the
// embedded Graphviz library.
//
//	dot := render.ToDOT(res.Solutions, render.Options{})
//	svg, err := render.RenderSVG(ctx, dot)
//
// [ToPDF] and [ToPNG] convert SVG with the external rsvg-convert tool (from
// librsvg) and fail with UNSUPPORTED when it is not installed.
package render
