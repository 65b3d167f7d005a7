package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crazytype/internal/core"
	"github.com/vovakirdan/crazytype/internal/registry"
)

// statusTicks is how long a status message stays on screen.
const statusTicks = 180

// GameModel is the Bubble Tea model running one game. Standalone models
// quit on Back; inside a SessionModel Back returns to the menu.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	services   Services
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	status     string
	statusLeft int
	standalone bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, svc Services, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		services:   svc,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game maps its field onto whatever screen it gets, so a
		// resize never restarts the session.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	k := m.keyMapper.ApplyGameKey(msg, m.gameState, &m.inputFrame)
	if k.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch k.Action {
	case core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionExport:
		if m.gameState.GameOver {
			m.exportSummary()
		}
	}

	return m, nil
}

// handleTick runs one simulation frame using the wall-clock delta since
// the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if !m.lastTick.IsZero() && now.Sub(m.lastTick) < m.config.TickInterval()/2 {
		// A second tick loop is running, let this one die out.
		return m, nil
	}

	m.inputFrame.Delta = frameDelta(m.lastTick, now)
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if m.statusLeft > 0 {
		m.statusLeft--
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the final score once per game over.
func (m *GameModel) saveScore() {
	if m.services.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.services.Store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.services.logger().Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// exportSummary writes the game-over summary as JSON.
func (m *GameModel) exportSummary() {
	path, err := exportSummary(m.game, m.services.ExportDir(), time.Now())
	if err != nil {
		m.services.logger().Warn("export failed", "error", err)
		m.setStatus("Export failed: " + err.Error())
		return
	}
	m.services.logger().Info("summary exported", "path", path)
	m.setStatus("Exported to " + path)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.services.ScreenshotDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("Screenshot failed: " + err.Error())
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("Screenshot failed: " + err.Error())
		return
	}
	m.setStatus("Screenshot saved to " + path)
}

func (m *GameModel) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.statusLeft > 0 && m.screen.Height() > 0 {
		y := m.screen.Height() - 1
		m.screen.DrawTextColored(1, y, truncate(m.status, m.screen.Width()-2), core.ColorCyan)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the player quits or backs out.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, svc, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
