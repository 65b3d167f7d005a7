package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/crazytype/internal/config"
	"github.com/vovakirdan/crazytype/internal/core"
	"github.com/vovakirdan/crazytype/internal/games/crazytype"
)

// menuItemKind tells what selecting a menu row does.
type menuItemKind int

const (
	menuItemPlay menuItemKind = iota
	menuItemHotseat
	menuItemDifficulty
	menuItemScores
	menuItemQuit
)

// MenuItem is one row of the mode menu.
type MenuItem struct {
	kind      menuItemKind
	label     string
	selection Selection
}

var presetCycle = []config.DifficultyPreset{
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
	config.DifficultyEasy,
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	hotseat        bool
	preset         config.DifficultyPreset
	quitting       bool
	selected       *Selection // Set when user picks a mode
	openScoreboard bool       // True if user asked for the scoreboard
}

// NewMenuModel creates the mode menu. Timer lengths come from the game
// config; a broken config falls back to the defaults.
func NewMenuModel(svc Services, cfg core.RuntimeConfig) MenuModel {
	gameCfg, err := config.Load(svc.ConfigPath)
	if err != nil {
		gameCfg = config.DefaultCrazyTypeConfig()
	}

	items := make([]MenuItem, 0, len(gameCfg.Gameplay.TimerModes)+5)
	for _, secs := range gameCfg.Gameplay.TimerModes {
		items = append(items, MenuItem{
			kind:      menuItemPlay,
			label:     fmt.Sprintf("Timer %ds", secs),
			selection: Selection{GameID: crazytype.IDTimer, TimerLength: secs},
		})
	}
	items = append(items,
		MenuItem{kind: menuItemPlay, label: "Endless", selection: Selection{GameID: crazytype.IDEndless}},
		MenuItem{kind: menuItemHotseat},
		MenuItem{kind: menuItemDifficulty},
		MenuItem{kind: menuItemScores, label: "High scores"},
		MenuItem{kind: menuItemQuit, label: "Quit"},
	)

	preset := svc.Preset
	if preset == "" {
		preset = config.DifficultyNormal
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hotseat:   gameCfg.Hotseat.Enabled,
		preset:    preset,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		return m.activate()
	}

	return m, nil
}

// adjust changes the value of a toggle row under the cursor.
func (m *MenuModel) adjust(delta int) {
	switch m.items[m.cursor].kind {
	case menuItemHotseat:
		m.hotseat = !m.hotseat
	case menuItemDifficulty:
		m.preset = cyclePreset(m.preset, delta)
	}
}

// activate runs the row under the cursor.
func (m MenuModel) activate() (tea.Model, tea.Cmd) {
	item := m.items[m.cursor]
	switch item.kind {
	case menuItemPlay:
		sel := item.selection
		sel.Hotseat = m.hotseat
		sel.Preset = m.preset
		m.selected = &sel
		return m, tea.Quit
	case menuItemHotseat, menuItemDifficulty:
		m.adjust(1)
	case menuItemScores:
		m.openScoreboard = true
		return m, tea.Quit
	case menuItemQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func cyclePreset(p config.DifficultyPreset, delta int) config.DifficultyPreset {
	idx := 0
	for i, c := range presetCycle {
		if c == p {
			idx = i
			break
		}
	}
	n := len(presetCycle)
	return presetCycle[((idx+delta)%n+n)%n]
}

// label returns the text shown for item, including toggle values.
func (m MenuModel) label(item MenuItem) string {
	switch item.kind {
	case menuItemHotseat:
		state := "off"
		if m.hotseat {
			state = "on"
		}
		return "Hot-seat: " + state
	case menuItemDifficulty:
		return "Difficulty: " + string(m.preset)
	default:
		return item.label
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("C R A Z Y T Y P E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Type the falling words before they land", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + m.label(item)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + m.label(item))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked session, or nil if none.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// truncate cuts s to at most width cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}
