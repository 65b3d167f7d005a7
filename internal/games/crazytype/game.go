package crazytype

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/crazytype/internal/config"
	"github.com/vovakirdan/crazytype/internal/core"
	"github.com/vovakirdan/crazytype/internal/registry"
	"github.com/vovakirdan/crazytype/internal/wordlist"
)

// Registry IDs.
const (
	IDTimer   = "crazytype"
	IDEndless = "crazytype_endless"
)

const hudHeight = 2

// Options configures a Game. Set them with Configure before Reset.
type Options struct {
	ConfigPath  string
	Preset      config.DifficultyPreset
	TimerLength int // seconds; 0 picks the first configured timer mode
	Hotseat     bool
	Words       []string // nil uses the built-in list
	Records     Records
	Sink        EventSink
}

// Game adapts Engine to the registry.Game interface: it turns input frames
// into keystrokes and elapsed time, and draws snapshots onto a core.Screen.
type Game struct {
	mode       Mode
	opts       Options
	settings   Settings
	timerModes []int
	configErr  error

	engine *Engine
	tick   uint64
	tickDt float64
	seed   int64

	debug     bool
	lastDelta float64
}

// New creates a timer mode game.
func New() *Game {
	return &Game{mode: ModeTimer}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register(IDTimer, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDTimer
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "CrazyType (Endless)"
	}
	return "CrazyType"
}

// Configure replaces the game options. Takes effect on the next Reset.
func (g *Game) Configure(opts Options) {
	g.opts = opts
}

// ConfigErr returns the error from loading the game config, if any.
// The game falls back to the built-in defaults in that case.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Engine exposes the underlying engine, nil before Reset.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Summary returns the summary of the last finished session.
func (g *Game) Summary() (Summary, bool) {
	if g.engine == nil {
		return Summary{}, false
	}
	return g.engine.Summary()
}

// TimerLength returns the session length used in timer mode.
func (g *Game) TimerLength() int {
	if g.opts.TimerLength > 0 {
		return g.opts.TimerLength
	}
	if len(g.timerModes) > 0 {
		return g.timerModes[0]
	}
	return 60
}

// Reset builds a fresh engine. The session starts on the first Confirm.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.seed = cfg.Seed
	g.tickDt = cfg.TickInterval().Seconds()
	g.lastDelta = 0

	gameCfg, err := config.Load(g.opts.ConfigPath)
	g.configErr = err
	if err != nil {
		gameCfg = config.DefaultCrazyTypeConfig()
	}
	if g.opts.Preset != "" {
		config.ApplyPreset(&gameCfg, g.opts.Preset)
	}
	if g.opts.Hotseat {
		gameCfg.Hotseat.Enabled = true
	}
	g.settings = SettingsFromConfig(gameCfg)
	g.timerModes = gameCfg.Gameplay.TimerModes

	opts := []Option{WithSeed(cfg.Seed), WithEventSink(g.opts.Sink)}
	if g.opts.Records != nil {
		opts = append(opts, WithRecords(g.opts.Records))
	}
	g.engine = NewEngine(g.settings, wordlist.NewSource(g.opts.Words, cfg.Seed), opts...)
}

func (g *Game) start() {
	g.engine.Start(g.mode, g.TimerLength())
}

// Step applies one frame of input and advances the engine by the frame
// delta, or by one nominal tick when the delta is unset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	switch g.engine.Phase() {
	case PhaseIdle:
		if in.Has(core.ActionConfirm) {
			g.start()
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.start()
		}
	default:
		switch {
		case in.Has(core.ActionRestart):
			g.start()
		case in.Has(core.ActionPause):
			g.engine.TogglePause()
		}
	}

	dt := g.tickDt
	if in.Delta > 0 {
		dt = in.Delta.Seconds()
	}
	g.lastDelta = dt

	if g.engine.Phase() == PhaseRunning {
		for _, r := range in.Keys {
			g.engine.ProcessKeystroke(r)
		}
		g.engine.Advance(dt)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	phase := g.engine.Phase()
	return core.GameState{
		Score:    g.engine.Snapshot().Score,
		GameOver: phase == PhaseGameOver,
		Paused:   phase == PhasePaused,
		Started:  phase != PhaseIdle,
	}
}

// Render draws the HUD, the falling words and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()

	g.renderHUD(dst, snap)
	g.renderField(dst, snap)
	if g.debug {
		g.renderDebug(dst, snap)
	}

	switch snap.Phase {
	case PhaseIdle:
		g.renderOverlay(dst, []string{
			g.Title(),
			"Type the falling words before they land",
			g.modeLine(),
			"Enter to start  Esc to pause  Ctrl+C to quit",
		})
	case PhasePaused:
		g.renderOverlay(dst, []string{"Paused", "Esc to continue"})
	case PhaseGameOver:
		if s, ok := g.engine.Summary(); ok {
			g.renderOverlay(dst, summaryLines(s))
		}
	}
}

func (g *Game) modeLine() string {
	if g.mode == ModeEndless {
		return fmt.Sprintf("Endless: survive with %d lives", g.settings.MaxLives)
	}
	return fmt.Sprintf("Timer: %d seconds, %d lives", g.TimerLength(), g.settings.MaxLives)
}

// renderHUD draws the status bar and separator.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += runewidth.StringWidth(text)
	}

	put(fmt.Sprintf("Score %d  x%d  Acc %d%%  WPM %d  Lvl %d  ",
		snap.Score, snap.Streak, snap.Accuracy, snap.WPM, snap.Level), core.ColorDefault)

	lives := ""
	for i := range snap.MaxLives {
		if i < snap.Lives {
			lives += "♥"
		} else {
			lives += "·"
		}
	}
	put(lives+"  ", core.ColorRed)

	if snap.Mode == ModeTimer {
		put(fmt.Sprintf("%2ds  ", int(snap.TimeLeft+0.999)), core.ColorCyan)
	} else {
		put(formatClock(snap.Elapsed)+"  ", core.ColorCyan)
	}
	put(fmt.Sprintf("Best %d  ", snap.HighScore), core.ColorGray)

	for _, p := range snap.PowerUps {
		c := core.ColorMagenta
		if p.Kind == PowerUpSlow {
			c = core.ColorBlue
		}
		put(fmt.Sprintf("[%s %ds] ", p.Kind, int(p.Remaining+0.999)), c)
	}
	if snap.Hotseat {
		put(fmt.Sprintf("P%d", snap.ActivePlayer), core.ColorYellow)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderField maps playfield units onto the rows between the HUD and the
// danger line.
func (g *Game) renderField(dst *core.Screen, snap Snapshot) {
	w, h := dst.Width(), dst.Height()
	rows := h - hudHeight - 1
	if rows < 1 || w < 1 {
		return
	}

	for x := range w {
		dst.SetColored(x, h-1, '▔', core.ColorRed)
	}

	span := g.settings.bottom() - g.settings.SpawnY
	for _, word := range snap.Words {
		frac := 0.0
		if span > 0 {
			frac = core.ClampF((word.Y-g.settings.SpawnY)/span, 0, 1)
		}
		row := hudHeight + int(frac*float64(rows-1))

		typed := []rune(word.Text)[:word.Progress]
		rest := []rune(word.Text)[word.Progress:]
		width := runewidth.StringWidth(word.Text)

		col := 0
		if g.settings.FieldWidth > 0 {
			col = int(word.X / g.settings.FieldWidth * float64(w))
		}
		if col+width > w {
			col = w - width
		}
		if col < 0 {
			col = 0
		}

		dst.DrawTextColored(col, row, string(typed), core.ColorGreen)
		dst.DrawTextColored(col+runewidth.StringWidth(string(typed)), row, string(rest), tierColor(word.Tier))
	}
}

func tierColor(tier string) core.Color {
	switch tier {
	case "medium":
		return core.ColorYellow
	case "hard":
		return core.ColorOrange
	default:
		return core.ColorBrightWhite
	}
}

func (g *Game) renderDebug(dst *core.Screen, snap Snapshot) {
	lines := []string{
		fmt.Sprintf("dt %.1fms", g.lastDelta*1000),
		fmt.Sprintf("spawn %.0fms", snap.SpawnInterval),
		fmt.Sprintf("words %d", snap.ActiveWordCount()),
		fmt.Sprintf("level %d", snap.Level),
		fmt.Sprintf("streak %d", snap.Streak),
		fmt.Sprintf("seed %d", g.seed),
	}
	y := dst.Height() - 1 - len(lines)
	for i, line := range lines {
		dst.DrawTextColored(1, y+i, line, core.ColorGray)
	}
}

// renderOverlay draws a centered box containing lines.
func (g *Game) renderOverlay(dst *core.Screen, lines []string) {
	maxW := 0
	for _, l := range lines {
		maxW = max(maxW, runewidth.StringWidth(l))
	}
	boxW := maxW + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorYellow
		}
		dst.DrawTextCenteredColored(boxY+1+i, l, c)
	}
}

func summaryLines(s Summary) []string {
	title := "GAME OVER"
	if s.Reason == ReasonTimer {
		title = "TIME'S UP"
	}

	lines := []string{
		title,
		fmt.Sprintf("Score %d   Accuracy %d%%   WPM %d", s.Score, s.Accuracy, s.WPM),
		fmt.Sprintf("Longest streak %d   Level %d   Words %d", s.LongestStreak, s.Level, s.WordsTyped),
	}
	if s.NewHighScore {
		lines = append(lines, "New high score!")
	} else {
		lines = append(lines, fmt.Sprintf("High score %d", s.HighScore))
	}
	for _, p := range s.Players {
		lines = append(lines, fmt.Sprintf("P%d  score %d  accuracy %d%%", p.Player, p.Score, tallyAccuracy(p)))
	}
	return append(lines, "R restart  E export  B menu  Q quit")
}

func tallyAccuracy(p PlayerTally) int {
	if p.Typed == 0 {
		return 100
	}
	return int(float64(p.Correct)/float64(p.Typed)*100 + 0.5)
}

func formatClock(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
