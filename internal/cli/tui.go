package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/cosmos/pkg/catalog"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LevelListModel - Interactive catalog browser
// =============================================================================

// LevelListModel is the bubbletea model for browsing the structural levels.
// The highlighted level is previewed below the list; enter selects it.
type LevelListModel struct {
	Snapshots []catalog.Snapshot
	Cursor    int
	Selected  *catalog.Snapshot
	// Expanded shows every tree of the highlighted level in the preview.
	Expanded bool
}

// NewLevelListModel creates a browser over the given snapshots.
func NewLevelListModel(snaps []catalog.Snapshot) LevelListModel {
	return LevelListModel{Snapshots: snaps}
}

func (m LevelListModel) Init() tea.Cmd {
	return nil
}

func (m LevelListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch s := key.String(); s {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Snapshots)-1 {
			m.Cursor++
		}
	case "home", "g":
		m.Cursor = 0
	case "end", "G":
		m.Cursor = max(len(m.Snapshots)-1, 0)
	case " ", "tab":
		m.Expanded = !m.Expanded
	case "enter":
		if len(m.Snapshots) == 0 {
			return m, nil
		}
		m.Selected = &m.Snapshots[m.Cursor]
		return m, tea.Quit
	default:
		// Digits jump straight to a level.
		if n, err := strconv.Atoi(s); err == nil {
			for i, snap := range m.Snapshots {
				if snap.Level == n {
					m.Cursor = i
				}
			}
		}
	}
	return m, nil
}

func (m LevelListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Structural Levels"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  0-5 jump  space trees  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Snapshots))
	for i, s := range m.Snapshots {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, strconv.Itoa(s.Level), s.Name, strconv.Itoa(s.Terms), s.Simplex.Name, s.Concurrency.Name}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("", "Lvl", "Name", "Terms", "Polytope", "Concurrency").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(m.Snapshots) > 0 {
		b.WriteString(m.preview(m.Snapshots[m.Cursor]))
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Snapshots))))

	return b.String()
}

func (m LevelListModel) preview(s catalog.Snapshot) string {
	var b strings.Builder
	line := func(key, value string) {
		b.WriteString("  " + listDimStyle.Render(fmt.Sprintf("%-11s", key)) + " " + listNormalStyle.Render(value) + "\n")
	}
	row := make([]string, len(s.PascalRow))
	for i, c := range s.PascalRow {
		row[i] = c.String()
	}
	line("Pascal", strings.Join(row, " ")+"  (sum "+s.PascalSum.String()+")")
	line("Nested", s.NestedExpression)
	line("Catalan", s.Catalan.String())
	line("Surfaces", strconv.Itoa(s.SurfaceCount))
	line("Matula", fmt.Sprint(s.MatulaNumbers))
	if m.Expanded {
		for i, code := range s.MatulaNumbers {
			b.WriteString("    " + StyleNumber.Render(fmt.Sprintf("%4d", code)) + " " + listDimStyle.Render(iconArrow) + " " + quoteEmpty(s.Trees[i:i+1])[0] + "\n")
		}
	}
	line("Properties", strings.Join(s.Properties, ", "))
	b.WriteString("\n")
	return b.String()
}
