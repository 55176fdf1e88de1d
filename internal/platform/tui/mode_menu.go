package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// modeOption is one entry of the mode selector.
type modeOption struct {
	gameID string
	label  string
	detail string
}

var modeOptions = []modeOption{
	{t2048.ID, "Classic", "one collapse pass per move"},
	{t2048.IDFull, "Full compaction", "tiles slide all the way, merge once"},
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	menuDetailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ModeModel lets users choose the compaction mode before playing.
type ModeModel struct {
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	selected string
	quitting bool
}

// NewModeModel creates a new mode selection model.
func NewModeModel(width, height int) ModeModel {
	return ModeModel{
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(modeOptions)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selected = modeOptions[m.cursor].gameID
		return m, tea.Quit
	}
	return m, nil
}

// View renders the mode list.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("2 0 4 8"), "2 0 4 8", m.width))
	b.WriteString("\n\n")

	for i, opt := range modeOptions {
		line := "  " + opt.label
		styled := line
		if i == m.cursor {
			line = "> " + opt.label
			styled = menuActiveStyle.Render(line)
		}
		b.WriteString(centerText(styled, line, m.width))
		b.WriteString("\n")
		b.WriteString(centerText(menuDetailStyle.Render(opt.detail), opt.detail, m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen game ID, or "" if nothing was chosen.
func (m ModeModel) Selected() string {
	return m.selected
}

// centerText pads styled so that its plain form sits centered in width.
func centerText(styled, plain string, width int) string {
	n := len([]rune(plain))
	if n >= width {
		return styled
	}
	return strings.Repeat(" ", (width-n)/2) + styled
}

// RunModeSelector runs the mode selection and returns the chosen game ID.
// An empty ID means the user quit.
func RunModeSelector(cfg core.RuntimeConfig) (string, error) {
	model := NewModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(ModeModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
