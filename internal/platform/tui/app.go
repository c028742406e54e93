package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorslide/internal/core"
	"github.com/vovakirdan/colorslide/internal/registry"
	"github.com/vovakirdan/colorslide/internal/session"
	"github.com/vovakirdan/colorslide/internal/storage"
)

// Env is what every screen shares: storage, logging, layout settings and
// the name runs are recorded under. Store and Logger may be nil.
type Env struct {
	Store  *storage.Store
	Logger *log.Logger
	Config core.RuntimeConfig
	Player string
}

// logger returns the configured logger or one that discards.
func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// StartOptions selects what the app shows first.
type StartOptions struct {
	Pack  string // Pack shown in the picker or played directly
	Level int    // 0-based level index
	Play  bool   // Skip the picker and open Level straight away
}

type appScreen int

const (
	screenPicker appScreen = iota
	screenPlay
	screenRecords
)

// AppModel manages the full flow: picker -> board -> picker, and the
// records screen. It is the top-level model for local and SSH sessions.
type AppModel struct {
	env      Env
	screen   appScreen
	picker   PickerModel
	play     *PlayModel
	records  *RecordsModel
	quitting bool
}

// NewAppModel creates the app model.
func NewAppModel(env Env, opts StartOptions) AppModel {
	m := AppModel{
		env:    env,
		picker: NewPickerModel(env, opts.Pack, opts.Level),
	}
	if opts.Play {
		m.startPlay(m.picker.Pack(), m.picker.Cursor())
	}
	return m
}

// startPlay opens a board on levels[index] of the picker's pack.
func (m *AppModel) startPlay(pack string, index int) {
	sess, err := session.New(m.picker.Levels(), index, session.WithLogger(m.env.Logger))
	if err != nil {
		m.env.logger().Warn("cannot start session", "pack", pack, "error", err)
		return
	}
	play := NewPlayModel(m.env, pack, sess)
	m.play = &play
	m.screen = screenPlay
}

// Init initializes the first screen.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenPlay && m.play != nil {
		return m.play.Init()
	}
	return m.picker.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.env.Config.ScreenW = wsm.Width
		m.env.Config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenRecords:
		return m.updateRecords(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates when the picker is shown.
func (m AppModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if p, ok := newPicker.(PickerModel); ok {
		m.picker = p
	}

	switch {
	case m.picker.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.picker.Selected():
		m.picker.selected = false
		m.startPlay(m.picker.Pack(), m.picker.Cursor())
		if m.play != nil {
			return m, m.play.Init()
		}

	case m.picker.WantsRecords():
		m.picker.wantRecords = false
		rec := NewRecordsModel(m.env, m.picker.Pack(), m.picker.Levels(), m.picker.Cursor())
		m.records = &rec
		m.screen = screenRecords
		return m, rec.Init()
	}

	return m, cmd
}

// updatePlay handles updates when a board is shown.
func (m AppModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPlay, cmd := m.play.Update(msg)
	if p, ok := newPlay.(PlayModel); ok {
		m.play = &p
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.play.BackToMenu() {
		pack, index := m.play.pack, m.play.Session().Index()
		m.play = nil
		m.picker = NewPickerModel(m.env, pack, index)
		m.screen = screenPicker
		return m, m.picker.Init()
	}

	return m, cmd
}

// updateRecords handles updates when the records screen is shown.
func (m AppModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newRec, cmd := m.records.Update(msg)
	if r, ok := newRec.(RecordsModel); ok {
		m.records = &r
	}

	if m.records.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.records.IsGoingBack() {
		m.picker = NewPickerModel(m.env, m.records.pack, m.records.levelCursor)
		m.records = nil
		m.screen = screenPicker
		return m, m.picker.Init()
	}

	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenRecords:
		return m.records.View()
	}
	return m.picker.View()
}

// Run starts the Bubble Tea program in the local terminal.
func Run(env Env, opts StartOptions) error {
	if opts.Pack != "" && !registry.Exists(opts.Pack) {
		return fmt.Errorf("%w %q", registry.ErrUnknownPack, opts.Pack)
	}

	p := tea.NewProgram(
		NewAppModel(env, opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags become swipes
	)

	_, err := p.Run()
	return err
}
