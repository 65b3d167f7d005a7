package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crazytype/internal/registry"
	"github.com/vovakirdan/crazytype/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the mode sidebar
	sidebarWidth       = 24  // Width of the mode sidebar
	maxRuns            = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the best stored runs per game mode.
type ScoreboardModel struct {
	modes       []registry.GameInfo
	modeCursor  int
	store       *storage.Store
	runs        []storage.Run
	records     map[string]int
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		modes:       registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.modes) > 0 {
		m.loadRuns(m.modes[0].ID)
	}
	return m
}

// createTable builds the runs table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "WPM", Width: 5},
		{Title: "Acc", Width: 5},
		{Title: "Streak", Width: 7},
		{Title: "Lvl", Width: 4},
		{Title: "Date", Width: 13},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width
	}
	if extra := tableWidth - used - len(columns)*2; extra > columns[len(columns)-1].Width {
		columns[len(columns)-1].Width = min(extra, 20)
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the top runs and personal records for gameID.
func (m *ScoreboardModel) loadRuns(gameID string) {
	m.runs, m.records, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.runs, m.loadErr = m.store.TopRuns(gameID, maxRuns)
		if m.loadErr == nil {
			m.records, m.loadErr = m.store.Records(gameID)
		}
	}
	m.updateTableRows()
}

// updateTableRows copies the loaded runs into the table.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows, ranked in the given order.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.WPM),
			fmt.Sprintf("%d%%", r.Accuracy),
			fmt.Sprintf("%d", r.LongestStreak),
			fmt.Sprintf("%d", r.Level),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.cycleMode(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.cycleMode(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// cycleMode moves the mode cursor by delta and reloads runs.
func (m *ScoreboardModel) cycleMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.modeCursor = (m.modeCursor + delta + len(m.modes)) % len(m.modes)
	m.loadRuns(m.modes[m.modeCursor].ID)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.modes[m.modeCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.recordsLine(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// recordsLine summarizes the personal records of the current mode.
func (m ScoreboardModel) recordsLine() string {
	if m.loadErr != nil {
		return "scores unavailable: " + m.loadErr.Error()
	}
	return fmt.Sprintf("Best score %d  Longest streak %d",
		m.records[storage.RecordHighScore], m.records[storage.RecordLongestStreak])
}

// renderWideLayout renders the mode sidebar next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Modes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for i, g := range m.modes {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.modeCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + g.Title))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders mode tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.modeCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + g.Title + " ")
		}
	}
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.modes) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.modes[m.modeCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a session to set a score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen on its own.
// Returns true if user wants to go back, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
