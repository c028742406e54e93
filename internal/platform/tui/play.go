package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorslide/internal/core"
	"github.com/vovakirdan/colorslide/internal/registry"
	"github.com/vovakirdan/colorslide/internal/session"
	"github.com/vovakirdan/colorslide/internal/storage"
)

// Board placement on the terminal: two HUD lines and a blank line above it.
const (
	boardTop  = 3
	boardLeft = 2
)

// PlayModel is the Bubble Tea model for one board.
type PlayModel struct {
	env       Env
	pack      string
	session   *session.Session
	keyMapper *KeyMapper
	help      help.Model
	theme     Theme
	screen    *core.Screen
	layout    BoardLayout

	dragging     bool
	dragX, dragY int

	best       *storage.Run
	lastRunID  string
	lastErr    error
	quitting   bool
	backToMenu bool
}

// NewPlayModel creates a play model for the session's current level.
func NewPlayModel(env Env, pack string, sess *session.Session) PlayModel {
	m := PlayModel{
		env:       env,
		pack:      pack,
		session:   sess,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		theme:     DefaultTheme(),
	}
	m.help.Width = env.Config.ScreenW
	m.relayout()
	m.loadBest()
	return m
}

// relayout sizes the board for the current level.
func (m *PlayModel) relayout() {
	size := m.session.Level().Size()
	m.layout = NewBoardLayout(size, m.env.Config.CellWidthFor(size), boardLeft, boardTop)
	if m.screen == nil {
		m.screen = core.NewScreen(m.layout.Width(), m.layout.Height())
		return
	}
	m.screen.Resize(m.layout.Width(), m.layout.Height())
}

// loadBest fetches the record for the current level.
func (m *PlayModel) loadBest() {
	m.best = nil
	if m.env.Store == nil {
		return
	}
	best, err := m.env.Store.Best(m.pack, m.session.Level().ID())
	if err != nil {
		m.env.logger().Warn("could not load best run", "level", m.session.Level().ID(), "error", err)
		return
	}
	m.best = best
}

// Init starts the HUD clock refresh.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.env.Config.TickRate)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.env.Config.ScreenW = msg.Width
		m.env.Config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m, tickCmd(m.env.Config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.apply(action)
	return m, nil
}

// handleMouse turns a press-drag-release on the board into a move.
func (m PlayModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if m.layout.Contains(msg.X, msg.Y) {
			m.dragging = true
			m.dragX, m.dragY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		action := core.Swipe(msg.X-m.dragX, msg.Y-m.dragY, m.env.Config.SwipeThreshold)
		if action.IsMove() {
			m.apply(action)
		}
	}
	return m, nil
}

// apply performs a semantic action on the session.
func (m *PlayModel) apply(action core.Action) {
	if action != core.ActionNone {
		m.lastErr = nil
	}
	switch {
	case action.IsMove():
		m.move(action)
	case action == core.ActionRestart:
		m.session.Reset()
		m.lastRunID = ""
	case action == core.ActionPause:
		m.session.TogglePause()
	case action == core.ActionNext:
		if m.session.Solved() && m.session.Next() {
			m.lastRunID = ""
			m.relayout()
			m.loadBest()
		}
	case action == core.ActionBack:
		m.backToMenu = true
	}
}

// move forwards one direction to the session and records a finished run.
func (m *PlayModel) move(action core.Action) {
	res, err := m.session.Move(directionFor(action))
	if err != nil {
		m.lastErr = err
		return
	}
	if res.JustSolved {
		m.saveRun()
	}
}

// saveRun stores the completed level.
func (m *PlayModel) saveRun() {
	if m.env.Store == nil {
		return
	}
	id, err := m.env.Store.SaveRun(storage.Run{
		Pack:    m.pack,
		LevelID: m.session.Level().ID(),
		Player:  m.env.Player,
		Moves:   m.session.Moves(),
		Elapsed: m.session.Elapsed(),
	})
	if err != nil {
		m.lastErr = err
		m.env.logger().Error("could not save run", "error", err)
		return
	}
	m.lastRunID = id
	m.env.logger().Info("level solved",
		"pack", m.pack,
		"level", m.session.Level().ID(),
		"player", m.env.Player,
		"moves", m.session.Moves(),
		"elapsed", session.FormatElapsed(m.session.Elapsed()),
	)
	m.loadBest()
}

// View renders the HUD, the board and the help bar.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	pad := lipgloss.NewStyle().PaddingLeft(boardLeft)
	b.WriteString(pad.Render(m.boardView()))
	b.WriteString("\n\n")

	if status := m.statusView(); status != "" {
		b.WriteString(pad.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(pad.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// headerView renders the two HUD lines.
func (m PlayModel) headerView() string {
	t := m.theme
	sep := t.HUDSeparator.Render("  │  ")
	lvl := m.session.Level()

	title := t.HUDTitle.Render(fmt.Sprintf("Level %d/%d", m.session.Index()+1, m.session.LevelCount())) +
		sep + t.HUDValue.Render(lvl.Name()) +
		sep + t.HUDLabel.Render(registry.Title(m.pack))

	stats := t.HUDLabel.Render("Moves: ") + t.HUDValue.Render(fmt.Sprintf("%d", m.session.Moves())) +
		sep + t.HUDLabel.Render("Time: ") + t.HUDValue.Render(session.FormatElapsed(m.session.Elapsed()))
	if m.best != nil {
		stats += sep + t.HUDLabel.Render("Best: ") +
			t.HUDValue.Render(fmt.Sprintf("%d moves %s", m.best.Moves, session.FormatElapsed(m.best.Elapsed)))
	}

	return strings.Repeat(" ", boardLeft) + title + "\n" + strings.Repeat(" ", boardLeft) + stats
}

// boardView draws the board into the screen buffer.
func (m PlayModel) boardView() string {
	m.screen.Clear()
	DrawBoard(m.screen, m.layout, m.session.Level(), m.session.Engine().Tokens())

	switch {
	case m.session.Solved():
		DrawOverlay(m.screen, core.ColorGreen, "SOLVED", fmt.Sprintf("%d moves", m.session.Moves()))
	case m.session.Paused():
		DrawOverlay(m.screen, core.ColorYellow, "PAUSED")
	}
	return RenderScreen(m.screen)
}

// statusView renders the line under the board.
func (m PlayModel) statusView() string {
	t := m.theme
	switch {
	case m.lastErr != nil:
		return t.Error.Render(m.lastErr.Error())
	case m.session.Solved():
		msg := fmt.Sprintf("Solved in %d moves, %s.", m.session.Moves(), session.FormatElapsed(m.session.Elapsed()))
		if m.lastRunID != "" && m.best != nil && m.best.ID == m.lastRunID {
			msg += " New best!"
		}
		if m.session.HasNext() {
			msg += " Press n for the next level."
		} else {
			msg += " All levels complete!"
		}
		return t.HUDSolved.Render(msg)
	case m.session.Paused():
		return t.HUDPaused.Render("Paused. Press p to resume.")
	}
	return ""
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// Session returns the underlying play session.
func (m PlayModel) Session() *session.Session {
	return m.session
}
