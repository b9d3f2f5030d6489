package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// difficultyChoice is one row of the difficulty picker.
type difficultyChoice struct {
	preset config.DifficultyPreset
	label  string
	detail string
}

var difficultyChoices = []difficultyChoice{
	{config.DifficultyEasy, "Easy", "five lives, fewer enemy bolts"},
	{config.DifficultyNormal, "Normal", "the configured wave"},
	{config.DifficultyHard, "Hard", "two lives, faster march"},
	{config.DifficultyFixed, "Fixed", "config values, no scaling"},
}

// DifficultyModel lets the player pick a difficulty preset before a wave.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *config.DifficultyPreset
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a picker for the named game. The cursor starts
// on Normal.
func NewDifficultyModel(title string, width, height int) DifficultyModel {
	return DifficultyModel{
		title:     title,
		cursor:    1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyChoices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		preset := difficultyChoices[m.cursor].preset
		m.selected = &preset
		return m, tea.Quit
	}
	return m, nil
}

// View renders the picker.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText(strings.ToUpper(m.title), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, c := range difficultyChoices {
		line := fmt.Sprintf("  %-8s %s", c.label, c.detail)
		if i == m.cursor {
			b.WriteString(menuCursor.Render(centerText(">"+line[1:], m.width)))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDim.Render(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// RunDifficultySelector asks for a difficulty. It returns nil when the
// player backs out or quits.
func RunDifficultySelector(title string, cfg core.RuntimeConfig) (*config.DifficultyPreset, error) {
	p := tea.NewProgram(
		NewDifficultyModel(title, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
