package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elitelau/frog-leap-problem/pkg/search"
	"github.com/elitelau/frog-leap-problem/pkg/solution"
)

func testSolutions(t *testing.T) []solution.Solution {
	t.Helper()
	res, err := search.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return res.Solutions
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m BrowseModel, keys ...tea.KeyMsg) BrowseModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(BrowseModel)
	}
	return m
}

func TestBrowseNavigation(t *testing.T) {
	sols := testSolutions(t)

	tests := []struct {
		name     string
		start    int
		keys     []tea.KeyMsg
		solution int
		step     int
	}{
		{"forward", 0, []tea.KeyMsg{runes("l"), {Type: tea.KeyRight}, runes(" ")}, 0, 3},
		{"back stops at zero", 0, []tea.KeyMsg{runes("l"), runes("h"), runes("h")}, 0, 0},
		{"last step", 0, []tea.KeyMsg{{Type: tea.KeyEnd}}, 0, 15},
		{"forward stops at goal", 0, []tea.KeyMsg{runes("G"), runes("j")}, 0, 15},
		{"first step", 0, []tea.KeyMsg{runes("G"), runes("g")}, 0, 0},
		{"next solution resets step", 0, []tea.KeyMsg{runes("l"), {Type: tea.KeyTab}}, 1, 0},
		{"next wraps", 1, []tea.KeyMsg{runes("n")}, 0, 0},
		{"previous wraps", 0, []tea.KeyMsg{{Type: tea.KeyShiftTab}}, 1, 0},
		{"previous", 1, []tea.KeyMsg{runes("p")}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewBrowseModel(sols, tt.start), tt.keys...)
			if m.Current != tt.solution || m.Step != tt.step {
				t.Errorf("at solution %d step %d, want solution %d step %d", m.Current, m.Step, tt.solution, tt.step)
			}
		})
	}
}

func TestBrowseScroll(t *testing.T) {
	m := NewBrowseModel(testSolutions(t), 0)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(BrowseModel)
	if m.Height != 3 {
		t.Fatalf("Height = %d, want 3", m.Height)
	}

	m = press(m, runes("G"))
	if m.Offset != 13 {
		t.Errorf("Offset at last step = %d, want 13", m.Offset)
	}
	m = press(m, runes("g"))
	if m.Offset != 0 {
		t.Errorf("Offset at first step = %d, want 0", m.Offset)
	}
}

func TestBrowseView(t *testing.T) {
	m := NewBrowseModel(testSolutions(t), 0)

	view := m.View()
	for _, want := range []string{"Solution 1/2", "15 moves", "initial board", "[step 0/15]", "L1 L2 L3 G0 R3 R2 R1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}

	m = press(m, runes("n"), runes("l"))
	view = m.View()
	for _, want := range []string{"Solution 2/2", "R3[4] leaps to gap[3]", "[step 1/15]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}
}

func TestBrowseQuit(t *testing.T) {
	m := NewBrowseModel(testSolutions(t), 0)

	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}

	if _, cmd := m.Update(runes("x")); cmd != nil {
		t.Error("unbound key should not produce a command")
	}
}
