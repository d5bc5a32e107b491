package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/elitelau/frog-leap-problem/pkg/board"
	"github.com/elitelau/frog-leap-problem/pkg/solution"
)

// Options configures DOT generation.
type Options struct {
	// Detailed adds the kind pattern and depth under each board.
	Detailed bool
}

type edgeKey struct{ from, to string }

// ToDOT converts solution paths to Graphviz DOT. Nodes and edges are emitted
// in first-seen order, so equal input always yields equal output.
func ToDOT(sols []solution.Solution, opts Options) string {
	var nodes []string
	depth := map[string]int{}
	kind := map[string]string{}
	var edges []edgeKey
	labels := map[edgeKey]string{}
	seenEdge := map[edgeKey]bool{}

	for _, s := range sols {
		for i, st := range s.Steps {
			id := st.Board.String()
			if _, ok := depth[id]; !ok {
				nodes = append(nodes, id)
				depth[id] = i
				kind[id] = nodeKind(st.Board, i)
			}
			if st.Move == nil || i == 0 {
				continue
			}
			e := edgeKey{from: s.Steps[i-1].Board.String(), to: id}
			if !seenEdge[e] {
				seenEdge[e] = true
				edges = append(edges, e)
				labels[e] = fmt.Sprintf("%s %d→%d", st.Move.Frog.Token(), st.Move.From, st.Move.To)
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("\n")

	for _, id := range nodes {
		attrs := []string{fmt.Sprintf("label=%q", nodeLabel(id, depth[id], opts.Detailed))}
		switch kind[id] {
		case "start":
			attrs = append(attrs, "penwidth=2")
		case "goal":
			attrs = append(attrs, "fillcolor=palegreen")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.from, e.to, labels[e])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeKind(b board.Board, step int) string {
	switch {
	case step == 0:
		return "start"
	case b.IsGoal():
		return "goal"
	default:
		return ""
	}
}

func nodeLabel(id string, depth int, detailed bool) string {
	if !detailed {
		return id
	}
	b, err := board.Parse(id)
	if err != nil {
		return id
	}
	return fmt.Sprintf("%s\n%s  depth %d", id, b.Pattern(), depth)
}
