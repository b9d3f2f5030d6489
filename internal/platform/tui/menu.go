package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// MenuItem is one playable mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // 0 when nothing is recorded
	Played int
}

// MenuModel lets the player pick a mode or open the scoreboard.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper
	help   help.Model

	selected       *MenuItem
	openScoreboard bool
	quitting       bool
	embedded       bool // a parent model reads the result; never tea.Quit on select
}

// NewMenuModel lists every registered mode. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if st, ok := stats[g.ID]; ok {
			item.Best, item.Played = st.HighScore, st.GamesCount
		}
		items = append(items, item)
	}

	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper(), help: h}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		if n == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, m.exit()
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, m.exit()
	}
	return m, nil
}

func (m MenuModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var menuBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 2)

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		marker, style := "  ", lipgloss.NewStyle()
		if i == m.cursor {
			marker, style = "> ", menuCursor
		}
		line := fmt.Sprintf("%s%-24s", marker, item.Title)
		if item.Best > 0 {
			line += menuDim.Render(fmt.Sprintf("best %d  played %d", item.Best, item.Played))
		}
		rows = append(rows, style.Render(line))
	}
	if len(rows) == 0 {
		rows = append(rows, menuDim.Render("no modes registered"))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S P A C E   I N V A D E R S"), w))
	b.WriteString("\n\n")
	for _, line := range strings.Split(menuBox.Render(strings.Join(rows, "\n")), "\n") {
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys.Menu), w))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem { return m.selected }

func (m MenuModel) IsQuitting() bool           { return m.quitting }
func (m MenuModel) WantsScoreboard() bool      { return m.openScoreboard }
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText left-pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what a standalone menu run ended with.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu full screen until the player picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		res.WantsScoreboard = true
	case m.quitting || m.selected == nil:
		res.Quit = true
	default:
		res.GameID = m.selected.GameID
	}
	return res, nil
}
