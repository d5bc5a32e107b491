// Package solution reconstructs and prints solution paths.
//
// A [Solution] is the ordered list of boards from the initial arrangement to
// a goal, each step after the first annotated with the [board.Move] that
// produced it. [WriteText] renders the block printed by the solver:
//
//	solution path is:
//	L1 L2 L3 G0 R3 R2 R1
//	L1 L2 G0 L3 R3 R2 R1 (frog L3[2] leaps to gap[3])
//	...
package solution

import (
	"bufio"
	"fmt"
	"io"

	"github.com/elitelau/frog-leap-problem/pkg/board"
	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
)

// Header opens every printed solution block.
const Header = "solution path is:"

// Step is one board on a solution path. Move is nil for the first step.
type Step struct {
	Board board.Board
	Move  *board.Move
}

// Line renders the step as printed: the board tokens, followed for every
// step but the first by the parenthesized move.
func (s Step) Line() string {
	if s.Move == nil {
		return s.Board.String()
	}
	return fmt.Sprintf("%s (%s)", s.Board, s.Move)
}

// Solution is a start-to-goal path found by the search.
type Solution struct {
	// Index is the 1-based discovery order of the solution.
	Index int
	Steps []Step
}

// New builds a solution from a root-to-goal path of boards, deriving the
// move between every pair of consecutive boards.
//
// An error with code INVARIANT_VIOLATION is returned when two consecutive
// boards are not related by exactly one frog/gap exchange, or when the path
// does not end at a goal.
func New(index int, path []board.Board) (Solution, error) {
	if len(path) == 0 {
		return Solution{}, apperr.New(apperr.ErrCodeInvariant, "solution %d: empty path", index)
	}
	if last := path[len(path)-1]; !last.IsGoal() {
		return Solution{}, apperr.New(apperr.ErrCodeInvariant, "solution %d: path ends at %q, not a goal", index, last)
	}

	steps := make([]Step, len(path))
	steps[0] = Step{Board: path[0]}
	for i := 1; i < len(path); i++ {
		m, err := board.DeriveMove(path[i-1], path[i])
		if err != nil {
			return Solution{}, apperr.Wrap(apperr.ErrCodeInvariant, err, "solution %d: step %d", index, i)
		}
		steps[i] = Step{Board: path[i], Move: &m}
	}
	return Solution{Index: index, Steps: steps}, nil
}

// Moves returns the number of moves on the path.
func (s Solution) Moves() int {
	if len(s.Steps) == 0 {
		return 0
	}
	return len(s.Steps) - 1
}

// Start returns the first board of the path.
func (s Solution) Start() board.Board { return s.Steps[0].Board }

// Goal returns the last board of the path.
func (s Solution) Goal() board.Board { return s.Steps[len(s.Steps)-1].Board }

// Lines returns the printed lines of the solution without the header.
func (s Solution) Lines() []string {
	lines := make([]string, len(s.Steps))
	for i, st := range s.Steps {
		lines[i] = st.Line()
	}
	return lines
}

// WriteText writes the header line followed by one line per step.
func WriteText(w io.Writer, s Solution) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	for _, line := range s.Lines() {
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}

// WriteAll writes every solution with WriteText, in order.
func WriteAll(w io.Writer, sols []Solution) error {
	for _, s := range sols {
		if err := WriteText(w, s); err != nil {
			return err
		}
	}
	return nil
}
