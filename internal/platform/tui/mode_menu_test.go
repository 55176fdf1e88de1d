package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestModeModelSelect(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"default is classic", []tea.KeyMsg{{Type: tea.KeyEnter}}, t2048.ID},
		{"down selects full", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, t2048.IDFull},
		{"cursor stops at last", []tea.KeyMsg{runeKey('j'), runeKey('j'), runeKey('j'), {Type: tea.KeyEnter}}, t2048.IDFull},
		{"up from top stays", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, t2048.ID},
		{"quit selects nothing", []tea.KeyMsg{runeKey('q')}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewModeModel(80, 24)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			if got := m.(ModeModel).Selected(); got != tt.want {
				t.Errorf("Selected() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModeModelView(t *testing.T) {
	view := NewModeModel(80, 24).View()

	for _, want := range []string{"2 0 4 8", "> Classic", "Full compaction", "select"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
