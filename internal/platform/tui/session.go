package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crazytype/internal/core"
)

// sessionScreen is the screen a SessionModel is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: menu -> game or scoreboard -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	services   Services
	config     core.RuntimeConfig
	current    sessionScreen
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(svc Services, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		services: svc,
		config:   cfg,
		menu:     NewMenuModel(svc, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.current == screenGame && m.gameModel != nil:
		return m.updateGame(msg)
	case m.current == screenScores && m.scoreboard != nil:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.services.Store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.current = screenScores
		return m, sb.Init()
	}

	if sel := m.menu.Selected(); sel != nil {
		game, err := m.services.NewGame(*sel)
		if err != nil {
			// Shouldn't happen since the menu only offers registered modes
			m.services.logger().Error("cannot create game", "game", sel.GameID, "error", err)
			m.menu = NewMenuModel(m.services, m.config)
			return m, nil
		}

		m.config = m.menu.Config()
		gameModel := NewGameModel(game, m.services, m.config)
		m.gameModel = &gameModel
		m.current = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu drops the current screen and shows a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.gameModel = nil
	m.scoreboard = nil
	m.current = screenMenu
	m.menu = NewMenuModel(m.services, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.current == screenGame && m.gameModel != nil:
		return m.gameModel.View()
	case m.current == screenScores && m.scoreboard != nil:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(svc Services, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(svc, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
