package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/microgames/internal/core"
	"github.com/vovakirdan/microgames/internal/registry"
	"github.com/vovakirdan/microgames/internal/storage"
)

// ScoreFeed receives every score that was written to the store.
type ScoreFeed interface {
	PublishScore(gameID string, score, best int)
}

// EventSink receives the events produced by each simulation step.
type EventSink interface {
	Play(events []core.Event)
}

// Services are the optional collaborators of a play session.
// Any field may be nil.
type Services struct {
	Store  *storage.Store
	Feed   ScoreFeed
	Sound  EventSink
	APIURL string // base URL checked by the menu banner

	// Logger receives storage and file errors. The terminal belongs to the
	// game, so local commands point it at a buffer flushed on exit.
	Logger *log.Logger
}

var discardLogger = log.New(io.Discard)

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return discardLogger
	}
	return s.Logger
}

// scoreKeeper is shared by copies of a GameModel so the OnScore callback
// armed in the game survives Bubble Tea's value receivers.
type scoreKeeper struct {
	gameID string
	svc    Services
	best   int
	runs   int
	err    error
}

func newScoreKeeper(gameID string, svc Services) *scoreKeeper {
	k := &scoreKeeper{gameID: gameID, svc: svc}
	if svc.Store != nil {
		best, err := svc.Store.HighScore(gameID)
		if err != nil {
			svc.logger().Warn("cannot load best score", "game", gameID, "error", err)
		}
		k.best = best
	}
	return k
}

// record handles the final score of a run. Zero scores are not stored.
func (k *scoreKeeper) record(final int) {
	k.runs++
	if final <= 0 {
		return
	}
	if k.svc.Store != nil {
		if _, err := k.svc.Store.SaveScore(k.gameID, final); err != nil {
			// The run still counts; only the stored score is lost
			k.svc.logger().Error("cannot save score", "game", k.gameID, "score", final, "error", err)
			k.err = err
			return
		}
	}
	k.best = max(k.best, final)
	if k.svc.Feed != nil {
		k.svc.Feed.PublishScore(k.gameID, final, k.best)
	}
}

// GameModel is the Bubble Tea model for running one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	scores     *scoreKeeper
	loopID     uint64
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The game's final score is saved to
// svc.Store and published to svc.Feed.
func NewGameModel(game registry.Game, svc Services, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	scores := newScoreKeeper(game.ID(), svc)
	cfg.OnScore = scores.record

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:        svc,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		scores:     scores,
		loopID:     nextLoopID(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.loopID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		// Games map the world onto the screen at render time, so a resize
		// keeps the run going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.loopID {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && m.canLeave() {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// canLeave reports whether Back is honoured: only outside active play.
func (m GameModel) canLeave() bool {
	p := m.game.State().Phase
	return p == core.PhasePaused || p == core.PhaseReady || p.Terminal()
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.At = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.svc.Sound != nil && len(result.Events) > 0 {
		m.svc.Sound.Play(result.Events)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.loopID, m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	logger := m.svc.logger()
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("cannot save screenshot", "game", m.game.ID(), "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot save screenshot", "game", m.game.ID(), "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("cannot save screenshot", "game", m.game.ID(), "error", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
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

// State returns the state reported by the last step.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Best returns the best score known for the game, including this session.
func (m GameModel) Best() int {
	return m.scores.best
}

// Run plays a single game in the terminal. Back or Q exits.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, svc, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	if err != nil {
		return err
	}
	if model.scores.err != nil {
		return fmt.Errorf("tui: score not saved: %w", model.scores.err)
	}
	return nil
}
