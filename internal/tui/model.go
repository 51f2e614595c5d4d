// Package tui is the terminal front-end of Chronos: an analog dial with one
// marker per hour, a note editor per hour, and a save action.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/chronos/internal/clock"
	"github.com/aretw0/chronos/pkg/core"
)

const (
	// DefaultTickInterval is the redraw interval of the dial.
	DefaultTickInterval = 100 * time.Millisecond
	// SecuredNoticeDuration is how long the save confirmation stays visible.
	SecuredNoticeDuration = 2 * time.Second

	editorPlaceholder = "Commit the essence of this temporal anchor to memory..."
)

// tickMsg drives the redraw loop.
type tickMsg time.Time

// securedFadeMsg clears the save confirmation.
type securedFadeMsg struct{}

// Model is the bubbletea model of the clock.
type Model struct {
	ctx    context.Context
	store  *core.Store
	keys   KeyMap
	styles Styles
	help   help.Model
	tick   time.Duration

	face     clock.Face
	selected int // Hour of day, 0-23.

	editing bool
	editor  textarea.Model

	secured bool

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithTickInterval sets the redraw interval.
func WithTickInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.tick = d
		}
	}
}

// WithContext sets the context passed to store operations.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// New creates a Model reading and writing notes through store. The current
// hour starts selected.
func New(store *core.Store, opts ...Option) Model {
	editor := textarea.New()
	editor.Placeholder = editorPlaceholder
	editor.CharLimit = 0
	editor.ShowLineNumbers = false

	m := Model{
		ctx:    context.Background(),
		store:  store,
		keys:   DefaultKeyMap,
		styles: DefaultStyles(),
		help:   help.New(),
		tick:   DefaultTickInterval,
		editor: editor,
		width:  80,
		height: 40,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.face = clock.Sample(store.Now())
	m.selected = m.face.Time.Hour()
	m.resizeEditor()
	return m
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return m.scheduleTick()
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.face = clock.Sample(m.store.Now())
		return m, m.scheduleTick()

	case securedFadeMsg:
		m.secured = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeEditor()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateDial(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateDial(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		cmd := m.secure()
		return m, cmd

	case key.Matches(msg, m.keys.Next):
		m.selected = m.half() + (m.selected%12+1)%12

	case key.Matches(msg, m.keys.Prev):
		m.selected = m.half() + (m.selected%12+11)%12

	case key.Matches(msg, m.keys.ToggleHalf):
		m.selected = (m.selected + 12) % 24

	case key.Matches(msg, m.keys.Now):
		m.selected = m.store.Now().Hour()

	case key.Matches(msg, m.keys.Open):
		cmd := m.openEditor()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		m.editing = false
		m.editor.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		cmd := m.secure()
		return m, cmd
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.recordNote(after)
	}
	return m, cmd
}

// recordNote stores content under today's key for the selected hour. The
// key is rebuilt on every keystroke, so an edit crossing midnight lands on
// the new day.
func (m Model) recordNote(content string) {
	k, err := m.store.KeyForHour(m.selected)
	if err != nil {
		return
	}
	m.store.Put(m.ctx, k, content)
}

func (m *Model) openEditor() tea.Cmd {
	m.editing = true
	m.editor.Reset()
	if note, ok := m.store.Get(m.selectedKey()); ok {
		m.editor.SetValue(note.Content)
	}
	return m.editor.Focus()
}

// secure persists the store and shows the confirmation for a fixed time.
// The fade is not cancelled by later edits or saves.
func (m *Model) secure() tea.Cmd {
	m.store.Save(m.ctx)
	m.secured = true
	return tea.Tick(SecuredNoticeDuration, func(time.Time) tea.Msg {
		return securedFadeMsg{}
	})
}

func (m Model) half() int {
	if m.selected >= 12 {
		return 12
	}
	return 0
}

func (m Model) selectedKey() string {
	k, _ := m.store.KeyForHour(m.selected)
	return k
}

func (m *Model) resizeEditor() {
	w := m.width - 8
	if w < 20 {
		w = 20
	}
	h := m.height / 3
	if h < 3 {
		h = 3
	}
	m.editor.SetWidth(w)
	m.editor.SetHeight(h)
}

// Selected returns the selected hour of day.
func (m Model) Selected() int {
	return m.selected
}

// Editing reports whether the note editor is open.
func (m Model) Editing() bool {
	return m.editing
}

// Secured reports whether the save confirmation is visible.
func (m Model) Secured() bool {
	return m.secured
}
