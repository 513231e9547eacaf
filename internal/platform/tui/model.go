package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/huehunt/internal/config"
	"github.com/vovakirdan/huehunt/internal/core"
	"github.com/vovakirdan/huehunt/internal/game"
)

// Options are the per-program dependencies of a Model.
type Options struct {
	Renderer *lipgloss.Renderer // Per-session renderer for SSH, nil for local
	Logger   *log.Logger        // Nil discards logs
	User     string             // Shown in log lines, empty for local play
}

// Model is the Bubble Tea model for a Hue Hunt session.
type Model struct {
	session  *game.Session
	display  config.DisplayConfig
	shakeFor time.Duration
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	renderer *lipgloss.Renderer
	logger   *log.Logger
	cursor   int            // Tile under keyboard focus
	shakes   map[int]uint64 // Tile -> token of its latest shake
	shakeSeq uint64
	quitting bool
}

// NewModel creates a new Bubble Tea model around a game session.
func NewModel(session *game.Session, cfg config.Config, rc core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.User != "" {
		logger = logger.With("user", opts.User)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		session:  session,
		display:  cfg.Display,
		shakeFor: cfg.Feedback.ShakeDuration,
		keys:     DefaultKeyMap(),
		help:     h,
		screen:   core.NewScreen(rc.ScreenW, rc.ScreenH),
		renderer: renderer,
		logger:   logger,
		shakes:   make(map[int]uint64),
	}
}

// Init implements tea.Model. The session starts on the start screen and
// the countdown only runs once a game is started.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case ClockTickMsg:
		return m.handleTick(msg)

	case shakeDoneMsg:
		if m.shakes[msg.Tile] == msg.Token {
			delete(m.shakes, msg.Tile)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.session.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Select):
		p, ok := m.session.State().(game.Playing)
		if !ok {
			return m.startGame()
		}
		if _, visible := m.board(p.GridSize()); !visible {
			return m, nil
		}
		return m.pick(m.cursor)
	}

	p, ok := m.session.State().(game.Playing)
	if !ok {
		return m, nil
	}
	size := p.GridSize()
	row, col := m.cursor/size, m.cursor%size

	switch {
	case key.Matches(msg, m.keys.Up):
		row = core.Clamp(row-1, 0, size-1)
	case key.Matches(msg, m.keys.Down):
		row = core.Clamp(row+1, 0, size-1)
	case key.Matches(msg, m.keys.Left):
		col = core.Clamp(col-1, 0, size-1)
	case key.Matches(msg, m.keys.Right):
		col = core.Clamp(col+1, 0, size-1)
	}
	m.cursor = row*size + col

	return m, nil
}

// handleMouse maps a left click to a tile pick. Outside play any click
// starts a new game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	p, ok := m.session.State().(game.Playing)
	if !ok {
		return m.startGame()
	}

	board, visible := m.board(p.GridSize())
	if !visible {
		return m, nil
	}
	tile, ok := board.TileAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = tile
	return m.pick(tile)
}

// boardArea returns the size of the screen above the help footer.
func (m Model) boardArea() (int, int) {
	helpLines := lipgloss.Height(m.help.View(m.keys))
	return m.screen.Width(), core.Max(0, m.screen.Height()-helpLines)
}

// board lays out a grid in the board area and reports whether all of it is
// visible. Hidden boards take no picks.
func (m Model) board(size int) (boardLayout, bool) {
	w, h := m.boardArea()
	b := newBoardLayout(m.display, size, w)
	return b, b.Fits(w, h)
}

// startGame begins a new game and arms its countdown.
func (m Model) startGame() (tea.Model, tea.Cmd) {
	id := m.session.StartGame()
	m.cursor = 0
	clear(m.shakes)

	m.logger.Info("game started", "clock", uint64(id))
	return m, clockCmd(id)
}

// pick forwards a tile pick to the session and starts the miss shake.
func (m Model) pick(tile int) (tea.Model, tea.Cmd) {
	fb := m.session.HandleClick(tile)

	switch fb.Kind {
	case game.FeedbackCorrect:
		snap := m.session.Snapshot()
		m.logger.Debug("correct pick", "tile", tile, "level", snap.Level, "time_left", snap.TimeLeft)
		// The new round has a fresh grid
		clear(m.shakes)
		m.cursor = core.Clamp(m.cursor, 0, snap.GridSize*snap.GridSize-1)
		return m, nil

	case game.FeedbackMiss:
		snap := m.session.Snapshot()
		m.logger.Debug("missed pick", "tile", tile, "level", snap.Level, "time_left", snap.TimeLeft)
		m.shakeSeq++
		m.shakes[fb.Tile] = m.shakeSeq
		return m, shakeCmd(fb.Tile, m.shakeSeq, m.shakeFor)
	}

	return m, nil
}

// handleTick advances the countdown and re-arms it while the game runs.
func (m Model) handleTick(msg ClockTickMsg) (tea.Model, tea.Cmd) {
	wasPlaying := m.session.Phase() == game.PhasePlaying

	if m.session.Tick(msg.ID) {
		return m, clockCmd(msg.ID)
	}

	if over, ok := m.session.State().(game.GameOver); ok && wasPlaying {
		clear(m.shakes)
		m.logger.Info("game over",
			"score", over.Stats.Score,
			"level", over.Stats.Level,
			"duration", over.Stats.Duration().Round(time.Second),
		)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	canvas := core.NewScreen(m.boardArea())
	m.draw(canvas)

	return RenderScreen(canvas, m.renderer) + "\n" + m.help.View(m.keys)
}

// Run starts a local Bubble Tea program for the session.
func Run(session *game.Session, cfg config.Config, rc core.RuntimeConfig, opts Options) error {
	model := NewModel(session, cfg, rc, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Tiles are picked by click
	)

	_, err := p.Run()
	session.Close()
	return err
}
