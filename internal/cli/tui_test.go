package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cosmos/pkg/catalog"
)

func testSnapshots(t *testing.T) []catalog.Snapshot {
	t.Helper()
	var snaps []catalog.Snapshot
	for level := catalog.MinLevel; level <= catalog.MaxLevel; level++ {
		s, err := catalog.Analyze(level)
		if err != nil {
			t.Fatalf("Analyze(%d): %v", level, err)
		}
		snaps = append(snaps, s)
	}
	return snaps
}

func press(m LevelListModel, keys ...string) (LevelListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(LevelListModel)
	}
	return m, cmd
}

func TestLevelListNavigation(t *testing.T) {
	m := NewLevelListModel(testSnapshots(t))

	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"up at top stays", []string{"up"}, 0},
		{"down", []string{"down", "down"}, 2},
		{"vim keys", []string{"j", "j", "k"}, 1},
		{"clamped at bottom", []string{"G", "down"}, 5},
		{"jump to level", []string{"4"}, 4},
		{"home", []string{"3", "g"}, 0},
		{"unknown digit ignored", []string{"2", "9"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := press(m, tt.keys...)
			if got.Cursor != tt.want {
				t.Errorf("cursor = %d, want %d", got.Cursor, tt.want)
			}
		})
	}
}

func TestLevelListSelect(t *testing.T) {
	m := NewLevelListModel(testSnapshots(t))

	got, cmd := press(m, "3", "enter")
	if got.Selected == nil || got.Selected.Level != 3 {
		t.Fatalf("selected = %+v, want level 3", got.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit")
	}

	got, cmd = press(m, "esc")
	if got.Selected != nil {
		t.Error("esc should not select")
	}
	if cmd == nil {
		t.Error("esc should quit")
	}
}

func TestLevelListEmpty(t *testing.T) {
	m := NewLevelListModel(nil)
	got, cmd := press(m, "enter", "G")
	if got.Selected != nil || cmd != nil || got.Cursor != 0 {
		t.Errorf("empty list: selected=%v cursor=%d", got.Selected, got.Cursor)
	}
	_ = got.View()
}

func TestLevelListView(t *testing.T) {
	m := NewLevelListModel(testSnapshots(t))
	m, _ = press(m, "4")

	view := m.View()
	for _, want := range []string{"Structural Levels", "Tetrahedron (Creative Process)", "1 4 6 4 1", "[5/6]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "(((())))") {
		t.Error("trees should be hidden until expanded")
	}

	m, _ = press(m, "tab")
	if !m.Expanded {
		t.Fatal("tab should expand the preview")
	}
	if !strings.Contains(m.View(), "(((())))") {
		t.Error("expanded view should list the level's trees")
	}
}
