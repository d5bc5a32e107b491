package render

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/elitelau/frog-leap-problem/pkg/search"
	"github.com/elitelau/frog-leap-problem/pkg/solution"
)

func solutions(t *testing.T) []solution.Solution {
	t.Helper()
	res, err := search.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return res.Solutions
}

func TestToDOT(t *testing.T) {
	sols := solutions(t)
	dot := ToDOT(sols, Options{})

	if !strings.HasPrefix(dot, "digraph G {\n") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a digraph:\n%s", dot)
	}

	edges := strings.Count(dot, " -> ")
	if edges != 30 {
		t.Errorf("got %d edges, want 30 (two disjoint 15-move paths)", edges)
	}

	start := `"L1 L2 L3 G0 R3 R2 R1" [label="L1 L2 L3 G0 R3 R2 R1", penwidth=2];`
	if strings.Count(dot, start) != 1 {
		t.Errorf("initial board should be declared once with a bold border:\n%s", dot)
	}
	if !strings.Contains(dot, `"L1 L2 L3 G0 R3 R2 R1" -> "L1 L2 G0 L3 R3 R2 R1" [label="L3 2→3"];`) {
		t.Error("missing first move of solution 1")
	}
	if !strings.Contains(dot, `"L1 L2 L3 G0 R3 R2 R1" -> "L1 L2 L3 R3 G0 R2 R1" [label="R3 4→3"];`) {
		t.Error("missing first move of solution 2")
	}
	if !strings.Contains(dot, "fillcolor=palegreen") {
		t.Error("goal boards should be highlighted")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	sols := solutions(t)
	if ToDOT(sols, Options{}) != ToDOT(sols, Options{}) {
		t.Error("ToDOT should be deterministic")
	}
}

func TestToDOTSharedBoards(t *testing.T) {
	sols := solutions(t)
	one := ToDOT(sols[:1], Options{})
	dup := ToDOT([]solution.Solution{sols[0], sols[0]}, Options{})
	if one != dup {
		t.Error("repeating a path should not add nodes or edges")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(solutions(t)[:1], Options{Detailed: true})
	if !strings.Contains(dot, `label="L1 L2 L3 G0 R3 R2 R1\nLLLGRRR  depth 0"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
	if !strings.Contains(dot, `RRRGLLL  depth 15`) {
		t.Error("goal label should show pattern and depth 15")
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, Options{})
	if strings.Contains(dot, "->") || strings.Contains(dot, "label=") {
		t.Errorf("empty input should produce an empty graph:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites root tag",
			in:   `<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`,
		},
		{
			name: "no viewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "zero size",
			in:   `<svg viewBox="0 0 0 0"></svg>`,
			want: `<svg viewBox="0 0 0 0"></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("normalizeViewBox() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestToPDFRequiresRsvg(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err == nil {
		t.Skip("rsvg-convert installed")
	}
	if _, err := ToPDF(context.Background(), []byte("<svg/>")); err == nil {
		t.Error("ToPDF should fail without rsvg-convert")
	}
}
