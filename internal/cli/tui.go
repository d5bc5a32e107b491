package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/elitelau/frog-leap-problem/pkg/board"
	"github.com/elitelau/frog-leap-problem/pkg/solution"
)

var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

	cellStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	cellLeftStyle  = cellStyle.Foreground(colorGreen).Bold(true)
	cellRightStyle = cellStyle.Foreground(colorYellow).Bold(true)
	cellGapStyle   = cellStyle.Foreground(colorDim)
)

// =============================================================================
// BrowseModel - Step through solution paths
// =============================================================================

// BrowseModel is the bubbletea model of the solution stepper.
type BrowseModel struct {
	Solutions []solution.Solution
	Current   int // solution being shown
	Step      int // step within the current solution
	Height    int // visible table rows
	Offset    int // first visible table row
}

// NewBrowseModel starts at step 0 of solution start (0-based).
func NewBrowseModel(sols []solution.Solution, start int) BrowseModel {
	return BrowseModel{Solutions: sols, Current: start, Height: 8}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) steps() []solution.Step {
	return m.Solutions[m.Current].Steps
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		last := len(m.steps()) - 1
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", " ", "down", "j":
			if m.Step < last {
				m.Step++
			}
		case "left", "h", "up", "k":
			if m.Step > 0 {
				m.Step--
			}
		case "home", "g":
			m.Step = 0
		case "end", "G":
			m.Step = last
		case "tab", "n":
			m.Current = (m.Current + 1) % len(m.Solutions)
			m.Step = 0
		case "shift+tab", "p":
			m.Current = (m.Current + len(m.Solutions) - 1) % len(m.Solutions)
			m.Step = 0
		}
		m.scroll()
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-14, 3)
		m.scroll()
	}
	return m, nil
}

// scroll keeps the current step inside the visible table window.
func (m *BrowseModel) scroll() {
	if m.Step < m.Offset {
		m.Offset = m.Step
	}
	if m.Step >= m.Offset+m.Height {
		m.Offset = m.Step - m.Height + 1
	}
}

func (m BrowseModel) View() string {
	var b strings.Builder
	sol := m.Solutions[m.Current]
	st := sol.Steps[m.Step]

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Solution %d/%d", m.Current+1, len(m.Solutions))))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d moves", sol.Moves())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ step  tab next solution  g/G first/last  q quit"))
	b.WriteString("\n\n")

	b.WriteString(renderBoard(st))
	b.WriteString("\n")
	if st.Move != nil {
		b.WriteString(StyleValue.Render(st.Move.String()))
	} else {
		b.WriteString(StyleDim.Render("initial board"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.stepTable())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [step %d/%d]", m.Step, sol.Moves())))

	return b.String()
}

func (m BrowseModel) stepTable() string {
	steps := m.steps()
	end := min(m.Offset+m.Height, len(steps))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		move := "—"
		if mv := steps[i].Move; mv != nil {
			move = fmt.Sprintf("%s %d→%d", mv.Frog.Token(), mv.From, mv.To)
		}
		rows = append(rows, []string{strconv.Itoa(i), steps[i].Board.String(), move})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Board", "Move").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Step {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})
	return t.Render()
}

// renderBoard draws one bordered cell per position, highlighting the two
// cells touched by the step's move.
func renderBoard(st solution.Step) string {
	cells := make([]string, board.Size)
	for i := range board.Size {
		e := st.Board.At(i)
		var style lipgloss.Style
		switch e.Kind {
		case board.LeftMover:
			style = cellLeftStyle
		case board.RightMover:
			style = cellRightStyle
		default:
			style = cellGapStyle
		}
		if st.Move != nil && (i == st.Move.From || i == st.Move.To) {
			style = style.BorderForeground(colorCyan)
		}
		cells[i] = style.Render(e.Token())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
