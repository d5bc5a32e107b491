package board

import (
	"fmt"
	"strings"

	apperr "github.com/elitelau/frog-leap-problem/pkg/errors"
)

// Size is the number of positions on the board.
const Size = 7

// GapIndex is the position of the gap both in the initial arrangement and in
// the goal arrangement.
const GapIndex = 3

// Target is the kind pattern of the goal arrangement, one code per position.
const Target = "RRRGLLL"

// Kind classifies a piece by the direction it may travel.
type Kind uint8

const (
	// LeftMover starts on the left and only ever advances rightward.
	LeftMover Kind = iota
	// RightMover starts on the right and only ever advances leftward.
	RightMover
	// Gap is the single empty position pieces move into.
	Gap
)

var kindCodes = [...]byte{
	LeftMover:  'L',
	RightMover: 'R',
	Gap:        'G',
}

var kindNames = [...]string{
	LeftMover:  "left-mover",
	RightMover: "right-mover",
	Gap:        "gap",
}

// Code returns the single-character code used in board tokens and in the
// goal pattern.
func (k Kind) Code() byte {
	if int(k) < len(kindCodes) {
		return kindCodes[k]
	}
	return '?'
}

// String returns a human readable kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Entity is an immutable piece: a kind plus a label distinguishing pieces of
// the same kind. The gap carries label 0.
type Entity struct {
	Kind  Kind
	Label int
}

// Token returns the two-character representation, e.g. "L1" or "G0".
func (e Entity) Token() string {
	return fmt.Sprintf("%c%d", e.Kind.Code(), e.Label)
}

// Pool holds every entity on the board. Boards refer to pool entries by
// index, so entity identity is the index itself.
var Pool = [Size]Entity{
	{Kind: LeftMover, Label: 1},
	{Kind: LeftMover, Label: 2},
	{Kind: LeftMover, Label: 3},
	{Kind: Gap, Label: 0},
	{Kind: RightMover, Label: 3},
	{Kind: RightMover, Label: 2},
	{Kind: RightMover, Label: 1},
}

// Board is an arrangement of pool entities, one index per position.
// Boards are values: assigning a Board copies its positions but never the
// entities they refer to.
type Board [Size]uint8

// Initial returns the starting arrangement L1 L2 L3 G0 R3 R2 R1.
func Initial() Board {
	var b Board
	for i := range b {
		b[i] = uint8(i)
	}
	return b
}

// At returns the entity at position i.
func (b Board) At(i int) Entity {
	return Pool[b[i]]
}

// KindAt returns the kind of the entity at position i, or false when i is
// out of bounds.
func (b Board) KindAt(i int) (Kind, bool) {
	if i < 0 || i >= Size {
		return 0, false
	}
	return Pool[b[i]].Kind, true
}

// Gap returns the index of the gap, or -1 if the board has none.
func (b Board) Gap() int {
	for i, id := range b {
		if Pool[id].Kind == Gap {
			return i
		}
	}
	return -1
}

// Swap returns a copy of b with positions i and j exchanged.
func (b Board) Swap(i, j int) Board {
	b[i], b[j] = b[j], b[i]
	return b
}

// Pattern renders the kind code of every position, e.g. "LLLGRRR".
func (b Board) Pattern() string {
	var sb strings.Builder
	sb.Grow(Size)
	for _, id := range b {
		sb.WriteByte(Pool[id].Kind.Code())
	}
	return sb.String()
}

// IsGoal reports whether the kinds read RRRGLLL.
func (b Board) IsGoal() bool {
	return b.Pattern() == Target
}

// Tokens returns the per-position entity tokens.
func (b Board) Tokens() []string {
	tokens := make([]string, Size)
	for i, id := range b {
		tokens[i] = Pool[id].Token()
	}
	return tokens
}

// String returns the space separated tokens, e.g. "L1 L2 L3 G0 R3 R2 R1".
func (b Board) String() string {
	return strings.Join(b.Tokens(), " ")
}

// Valid reports whether b is a permutation of the pool: every entity appears
// exactly once, so the board holds three movers of each kind and one gap.
func (b Board) Valid() bool {
	var seen [Size]bool
	for _, id := range b {
		if int(id) >= Size || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// Parse reads a board written by [Board.String]. Tokens may be separated by
// any run of whitespace. The result must be a permutation of the pool.
func Parse(s string) (Board, error) {
	var b Board
	fields := strings.Fields(s)
	if len(fields) != Size {
		return b, apperr.New(apperr.ErrCodeInvalidInput, "board %q: want %d tokens, got %d", s, Size, len(fields))
	}
	for i, tok := range fields {
		id, ok := tokenIndex(tok)
		if !ok {
			return b, apperr.New(apperr.ErrCodeInvalidInput, "board %q: unknown token %q", s, tok)
		}
		b[i] = id
	}
	if !b.Valid() {
		return b, apperr.New(apperr.ErrCodeInvalidInput, "board %q: repeated entity", s)
	}
	return b, nil
}

func tokenIndex(tok string) (uint8, bool) {
	for i, e := range Pool {
		if e.Token() == tok {
			return uint8(i), true
		}
	}
	return 0, false
}
