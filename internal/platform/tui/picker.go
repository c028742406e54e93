package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorslide/internal/puzzle"
	"github.com/vovakirdan/colorslide/internal/registry"
	"github.com/vovakirdan/colorslide/internal/session"
	"github.com/vovakirdan/colorslide/internal/storage"
)

// PickerModel is the Bubble Tea model for the level picker.
type PickerModel struct {
	env       Env
	packs     []registry.PackInfo
	packIdx   int
	levels    []*puzzle.Level
	stats     map[string]storage.LevelStats
	loadErr   error
	cursor    int
	keyMapper *KeyMapper
	theme     Theme

	quitting    bool
	selected    bool
	wantRecords bool
}

// NewPickerModel creates a level picker positioned on pack and level index.
// An unknown pack falls back to the first registered one.
func NewPickerModel(env Env, pack string, cursor int) PickerModel {
	m := PickerModel{
		env:       env,
		packs:     registry.List(),
		keyMapper: NewKeyMapper(),
		theme:     DefaultTheme(),
	}
	for i, p := range m.packs {
		if p.ID == pack {
			m.packIdx = i
		}
	}
	m.loadPack()
	if cursor >= 0 && cursor < len(m.levels) {
		m.cursor = cursor
	}
	return m
}

// loadPack loads the levels and stats of the current pack.
func (m *PickerModel) loadPack() {
	m.levels, m.stats, m.loadErr = nil, nil, nil
	m.cursor = 0
	if len(m.packs) == 0 {
		return
	}

	id := m.packs[m.packIdx].ID
	lvls, err := registry.Load(id)
	if err != nil {
		m.loadErr = err
		m.env.logger().Warn("could not load pack", "pack", id, "error", err)
		return
	}
	m.levels = lvls

	if m.env.Store == nil {
		return
	}
	stats, err := m.env.Store.LevelStats(id)
	if err != nil {
		m.env.logger().Warn("could not load level stats", "pack", id, "error", err)
		return
	}
	m.stats = make(map[string]storage.LevelStats, len(stats))
	for _, st := range stats {
		m.stats[st.LevelID] = st
	}
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.env.Config.ScreenW = msg.Width
		m.env.Config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case MenuActionPrevPack:
		if len(m.packs) > 1 {
			m.packIdx = (m.packIdx + len(m.packs) - 1) % len(m.packs)
			m.loadPack()
		}

	case MenuActionNextPack:
		if len(m.packs) > 1 {
			m.packIdx = (m.packIdx + 1) % len(m.packs)
			m.loadPack()
		}

	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = true
		}

	case MenuActionRecords:
		if len(m.levels) > 0 {
			m.wantRecords = true
		}
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(t.MenuTitle.Render("C O L O R S L I D E"))
	b.WriteString("\n")

	if len(m.packs) == 0 {
		b.WriteString(t.Error.Render("No level packs registered."))
		return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	}

	pack := m.packs[m.packIdx]
	packLine := pack.Title
	if len(m.packs) > 1 {
		packLine = "◀ " + packLine + " ▶"
	}
	b.WriteString(t.MenuPack.Render(packLine))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(t.Error.Render(m.loadErr.Error()))
		b.WriteString("\n")
	}

	for i, lvl := range m.levels {
		line := fmt.Sprintf("%2d. %-16s %2d×%-2d", i+1, lvl.Name(), lvl.Size(), lvl.Size())
		if st, ok := m.stats[lvl.ID()]; ok {
			line += t.MenuDescription.Render(fmt.Sprintf("   best %d moves, %s", st.BestMoves, session.FormatElapsed(st.BestElapsed)))
		}
		if i == m.cursor {
			b.WriteString(t.MenuItemActive.Render("> " + line))
		} else {
			b.WriteString(t.MenuItemNormal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.MenuDescription.Render("↑/↓ level  ←/→ pack  enter play  t records  q quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Selected reports whether a level was chosen.
func (m PickerModel) Selected() bool {
	return m.selected
}

// WantsRecords reports whether the records screen was requested.
func (m PickerModel) WantsRecords() bool {
	return m.wantRecords
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// Pack returns the ID of the displayed pack.
func (m PickerModel) Pack() string {
	if len(m.packs) == 0 {
		return ""
	}
	return m.packs[m.packIdx].ID
}

// Levels returns the levels of the displayed pack.
func (m PickerModel) Levels() []*puzzle.Level {
	return m.levels
}

// Cursor returns the highlighted level index.
func (m PickerModel) Cursor() int {
	return m.cursor
}
