package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/elitelau/frog-leap-problem/pkg/search"
	"github.com/elitelau/frog-leap-problem/pkg/solution"
)

type document struct {
	RunID     string       `json:"run_id,omitempty"`
	Stats     search.Stats `json:"stats"`
	Solutions []solutionJS `json:"solutions"`
}

type solutionJS struct {
	Index int      `json:"index"`
	Moves int      `json:"moves"`
	Steps []stepJS `json:"steps"`
}

type stepJS struct {
	Board string  `json:"board"`
	Move  *moveJS `json:"move,omitempty"`
}

type moveJS struct {
	Frog string `json:"frog"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

// WriteJSON encodes the run identity, statistics and every solution of res.
func WriteJSON(res *search.Result, w io.Writer) error {
	out := document{
		RunID:     res.RunID,
		Stats:     res.Stats,
		Solutions: make([]solutionJS, len(res.Solutions)),
	}
	for i, s := range res.Solutions {
		out.Solutions[i] = encodeSolution(s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteSolutionJSON encodes a single solution.
func WriteSolutionJSON(s solution.Solution, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(encodeSolution(s)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes res to a JSON file at path.
func ExportJSON(res *search.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(res, f)
}

func encodeSolution(s solution.Solution) solutionJS {
	out := solutionJS{
		Index: s.Index,
		Moves: s.Moves(),
		Steps: make([]stepJS, len(s.Steps)),
	}
	for i, st := range s.Steps {
		js := stepJS{Board: st.Board.String()}
		if st.Move != nil {
			js.Move = &moveJS{Frog: st.Move.Frog.Token(), From: st.Move.From, To: st.Move.To}
		}
		out.Steps[i] = js
	}
	return out
}
