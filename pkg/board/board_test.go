package board

import (
	"reflect"
	"strings"
	"testing"

	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
)

func TestInitial(t *testing.T) {
	b := Initial()

	if got, want := b.String(), "L1 L2 L3 G0 R3 R2 R1"; got != want {
		t.Errorf("Initial().String() = %q, want %q", got, want)
	}
	if got, want := b.Pattern(), "LLLGRRR"; got != want {
		t.Errorf("Initial().Pattern() = %q, want %q", got, want)
	}
	if got := b.Gap(); got != GapIndex {
		t.Errorf("Initial().Gap() = %d, want %d", got, GapIndex)
	}
	if !b.Valid() {
		t.Error("Initial() should be a valid board")
	}
	if b.IsGoal() {
		t.Error("Initial() should not be a goal")
	}
}

func TestSwapCopiesBoard(t *testing.T) {
	b := Initial()
	next := b.Swap(2, 3)

	if got, want := next.String(), "L1 L2 G0 L3 R3 R2 R1"; got != want {
		t.Errorf("Swap(2, 3) = %q, want %q", got, want)
	}
	if got, want := b.String(), "L1 L2 L3 G0 R3 R2 R1"; got != want {
		t.Errorf("Swap modified the receiver: %q", got)
	}
	// Entities are shared, never copied.
	if next.At(3) != Pool[2] {
		t.Errorf("next.At(3) = %v, want pool entity %v", next.At(3), Pool[2])
	}
}

func TestIsGoal(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{name: "mirrored labels", board: Board{6, 5, 4, 3, 0, 1, 2}, want: true},
		{name: "any label order", board: Board{4, 5, 6, 3, 2, 1, 0}, want: true},
		{name: "gap off center", board: Board{6, 5, 3, 4, 0, 1, 2}, want: false},
		{name: "initial", board: Initial(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsGoal(); got != tt.want {
				t.Errorf("%v.IsGoal() = %v, want %v", tt.board, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{name: "initial", board: Initial(), want: true},
		{name: "duplicate entity", board: Board{0, 0, 2, 3, 4, 5, 6}, want: false},
		{name: "out of pool", board: Board{0, 1, 2, 3, 4, 5, 7}, want: false},
		{name: "permutation", board: Board{6, 0, 5, 3, 1, 4, 2}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindAt(t *testing.T) {
	b := Initial()
	if k, ok := b.KindAt(0); !ok || k != LeftMover {
		t.Errorf("KindAt(0) = %v, %v; want LeftMover, true", k, ok)
	}
	if _, ok := b.KindAt(-1); ok {
		t.Error("KindAt(-1) should be out of bounds")
	}
	if _, ok := b.KindAt(Size); ok {
		t.Errorf("KindAt(%d) should be out of bounds", Size)
	}
}

func TestTokens(t *testing.T) {
	want := []string{"L1", "L2", "L3", "G0", "R3", "R2", "R1"}
	if got := Initial().Tokens(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %v, want %v", got, want)
	}
}

func TestKindString(t *testing.T) {
	if got := RightMover.String(); got != "right-mover" {
		t.Errorf("RightMover.String() = %q", got)
	}
	if got := Kind(9).Code(); got != '?' {
		t.Errorf("Kind(9).Code() = %q, want '?'", got)
	}
}

func TestDeriveMove(t *testing.T) {
	start := Initial()

	tests := []struct {
		name     string
		next     Board
		want     string
		distance int
	}{
		{name: "left step", next: start.Swap(2, 3), want: "frog L3[2] leaps to gap[3]", distance: 1},
		{name: "left jump", next: start.Swap(1, 3), want: "frog L2[1] leaps to gap[3]", distance: 2},
		{name: "right step", next: start.Swap(4, 3), want: "frog R3[4] leaps to gap[3]", distance: 1},
		{name: "right jump", next: start.Swap(5, 3), want: "frog R2[5] leaps to gap[3]", distance: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DeriveMove(start, tt.next)
			if err != nil {
				t.Fatalf("DeriveMove() error: %v", err)
			}
			if got := m.String(); got != tt.want {
				t.Errorf("DeriveMove() = %q, want %q", got, tt.want)
			}
			if got := m.Distance(); got != tt.distance {
				t.Errorf("Distance() = %d, want %d", got, tt.distance)
			}
		})
	}
}

func TestDeriveMoveInvariantViolation(t *testing.T) {
	start := Initial()

	tests := []struct {
		name string
		next Board
	}{
		{name: "identical", next: start},
		{name: "two frogs swapped", next: start.Swap(0, 1)},
		{name: "two moves", next: start.Swap(2, 3).Swap(4, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveMove(start, tt.next)
			if !apperr.Is(err, apperr.ErrCodeInvariant) {
				t.Errorf("DeriveMove() error = %v, want %s", err, apperr.ErrCodeInvariant)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Board
		wantErr bool
	}{
		{name: "initial", in: "L1 L2 L3 G0 R3 R2 R1", want: Initial()},
		{name: "extra whitespace", in: "  R3 R2 R1\tG0 L1  L2 L3 ", want: Board{4, 5, 6, 3, 0, 1, 2}},
		{name: "too few", in: "L1 L2 L3 G0", wantErr: true},
		{name: "unknown token", in: "L1 L2 L4 G0 R3 R2 R1", wantErr: true},
		{name: "repeated", in: "L1 L1 L3 G0 R3 R2 R1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !apperr.Is(err, apperr.ErrCodeInvalidInput) {
					t.Errorf("Parse(%q) error = %v, want %s", tt.in, err, apperr.ErrCodeInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String() != strings.Join(strings.Fields(tt.in), " ") {
				t.Errorf("Parse(%q).String() = %q", tt.in, got.String())
			}
		})
	}
}
