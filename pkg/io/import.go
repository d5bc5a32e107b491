package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/elitelau/frog-leap-problem/pkg/board"
	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
	"github.com/elitelau/frog-leap-problem/pkg/search"
	"github.com/elitelau/frog-leap-problem/pkg/solution"
)

// Document is a decoded solution set.
type Document struct {
	RunID     string
	Stats     search.Stats
	Solutions []solution.Solution
}

// ReadJSON decodes a solution set written by [WriteJSON].
//
// Every solution is rebuilt with [solution.New]: a path must start at the
// initial board, end at a goal and change by one frog/gap exchange per step.
// Malformed JSON, unknown tokens and foreign start boards are INVALID_INPUT;
// inconsistent paths are INVARIANT_VIOLATION. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "decode")
	}

	doc := &Document{
		RunID:     data.RunID,
		Stats:     data.Stats,
		Solutions: make([]solution.Solution, 0, len(data.Solutions)),
	}
	for i, sj := range data.Solutions {
		path := make([]board.Board, len(sj.Steps))
		for j, st := range sj.Steps {
			b, err := board.Parse(st.Board)
			if err != nil {
				return nil, fmt.Errorf("solution %d step %d: %w", i+1, j, err)
			}
			path[j] = b
		}
		if len(path) > 0 && path[0] != board.Initial() {
			return nil, apperr.New(apperr.ErrCodeInvalidInput,
				"solution %d starts at %q, not the initial board", i+1, path[0])
		}

		index := sj.Index
		if index == 0 {
			index = i + 1
		}
		s, err := solution.New(index, path)
		if err != nil {
			return nil, fmt.Errorf("solution %d: %w", index, err)
		}
		doc.Solutions = append(doc.Solutions, s)
	}
	return doc, nil
}

// ImportJSON reads a solution set from the JSON file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
