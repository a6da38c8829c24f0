package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// GameModel is the Bubble Tea model for a 2048 session.
// The engine only advances on key presses, so no tick loop runs.
type GameModel struct {
	game       *t2048.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	best       int
	flashID    int
	scoreSaved bool // Whether the current game has been recorded
	embedded   bool // Back returns to a menu instead of pausing
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The store may be nil.
func NewGameModel(store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}

	m := GameModel{
		game:      t2048.New(),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:  NewScreenRenderer(opts.Renderer),
		store:     store,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		best, err := store.HighScore()
		if err != nil {
			opts.logger().Warn("could not load high score", "error", err)
		}
		m.best = best
	}

	m.game.SetPalette(opts.Palette)
	m.game.Reset(cfg)
	m.game.SetBest(m.best)
	return m
}

// newEmbeddedGameModel creates a game model that hands control back to a menu.
func newEmbeddedGameModel(store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	m := NewGameModel(store, cfg, opts)
	m.embedded = true
	return m
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case FlashClearMsg:
		if msg.ID == m.flashID {
			m.game.SetMessage("")
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.recordAbandoned()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone, core.ActionConfirm:
		return m, nil

	case core.ActionBack:
		if m.embedded {
			m.recordAbandoned()
			m.backToMenu = true
			return m, nil
		}
		action = core.ActionPause

	case core.ActionRestart:
		m.restart()
		return m, nil

	case core.ActionShare:
		return m, m.share()
	}

	result := m.game.Step(core.NewInputFrame(action))
	if result.State.GameOver && !m.scoreSaved {
		return m, m.recordResult()
	}
	return m, nil
}

// restart records the running game and starts a fresh board.
func (m *GameModel) restart() {
	m.recordAbandoned()

	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.game.SetBest(m.best)
	m.scoreSaved = false
}

// share copies the share text once the game has ended.
func (m *GameModel) share() tea.Cmd {
	if !m.game.Status().Terminal() {
		return nil
	}

	text := m.game.ShareText(m.opts.ShareTitle, m.opts.ShareURL)
	if m.opts.Sharer == nil {
		return m.flash(text)
	}

	m.opts.Sharer.Copy(text)
	return m.flash("Copied: " + text)
}

// recordResult saves a finished game once and updates the best score.
func (m *GameModel) recordResult() tea.Cmd {
	outcome := storage.OutcomeLost
	if m.game.Status() == engine.StatusWon {
		outcome = storage.OutcomeWon
	}

	saveErr := m.save(outcome)
	score := m.game.State().Score

	if score > m.best {
		m.best = score
		m.game.SetBest(score)
		if saveErr == nil {
			return m.flash("New best score!")
		}
	}
	if saveErr != nil {
		return m.flash("Could not save score")
	}
	return nil
}

// recordAbandoned saves an unfinished game that has at least one move.
func (m *GameModel) recordAbandoned() {
	if m.scoreSaved || m.game.Moves() == 0 || m.game.Status().Terminal() {
		return
	}
	//nolint:errcheck // Best-effort save, the session is ending
	m.save(storage.OutcomeAbandoned)
}

// save writes the current game to the store.
func (m *GameModel) save(outcome string) error {
	m.scoreSaved = true
	if m.store == nil {
		return nil
	}

	board := m.game.Board()
	_, err := m.store.SaveScore(storage.Record{
		Score:   m.game.State().Score,
		MaxTile: engine.MaxTile(board),
		Outcome: outcome,
		Moves:   m.game.Moves(),
		Player:  m.opts.Player,
	})
	if err != nil {
		m.opts.logger().Warn("could not save score", "error", err, "outcome", outcome)
		return err
	}

	m.opts.logger().Debug("score saved", "score", m.game.State().Score, "outcome", outcome, "player", m.opts.Player)
	return nil
}

// flash shows a status message that clears itself.
func (m *GameModel) flash(msg string) tea.Cmd {
	m.flashID++
	m.game.SetMessage(msg)
	return flashCmd(m.flashID, flashDuration)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// Game returns the underlying session.
func (m GameModel) Game() *t2048.Game {
	return m.game
}

// Best returns the best known score.
func (m GameModel) Best() int {
	return m.best
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone game program.
func Run(store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
