package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"menucascade/internal/command"
	"menucascade/internal/selection"
	"menucascade/internal/theme"
	"menucascade/internal/widget"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

const statusTTL = 5 * time.Second

// StatusMsg surfaces a one-line message in the status row. Menu item
// actions return it to report what they did.
type StatusMsg struct {
	Text string
}

// Model implements the Bubble Tea model for a cascading menu bar.
type Model struct {
	bar *widget.Bar
	mgr *selection.Manager
	bus *command.Bus

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	statusMsg    string
	statusExpire time.Time

	trail       []string
	unsubscribe func()

	filterCursor      cursor.Model
	filterCursorDirty bool
	lastFilter        string

	handlers map[reflect.Type]msgHandler
}

// NewModel wires a laid-out bar, its selection manager and command bus
// into a Bubble Tea model. Non-zero width/height pin the layout instead
// of tracking terminal resizes.
func NewModel(bar *widget.Bar, mgr *selection.Manager, bus *command.Bus, width, height int, showFooter bool) *Model {
	m := &Model{
		bar:        bar,
		mgr:        mgr,
		bus:        bus,
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	if m.width > 0 && m.height > 0 {
		bar.SetSize(m.width, m.height)
	}
	m.unsubscribe = mgr.AddListener(func() {
		m.trail = trailLabels(mgr.SelectedPath())
	})
	c := cursor.New()
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(StatusMsg{}):         m.handleStatusMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.bar.SetSize(m.width, m.height)
	return nil
}

func (m *Model) handleStatusMsg(msg tea.Msg) tea.Cmd {
	status, ok := msg.(StatusMsg)
	if !ok || status.Text == "" {
		return nil
	}
	m.statusMsg = status.Text
	m.statusExpire = time.Now().Add(statusTTL)
	return nil
}

func (m *Model) currentStatus() string {
	if m.statusMsg != "" && !m.statusExpire.IsZero() && time.Now().After(m.statusExpire) {
		m.statusMsg = ""
		m.statusExpire = time.Time{}
	}
	return m.statusMsg
}

// drainBus turns activations queued during routing into Bubble Tea
// commands. The queue is filled synchronously inside the same Update
// call, so draining right after dispatch sees everything.
func (m *Model) drainBus() tea.Cmd {
	cmds := m.bus.Drain()
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// innermostOpenMenu returns the deepest open menu on the selected path.
func (m *Model) innermostOpenMenu() *widget.Menu {
	var found *widget.Menu
	for _, el := range m.mgr.SelectedPath() {
		if menu, ok := el.(*widget.Menu); ok && menu.Open() {
			found = menu
		}
	}
	return found
}

// noteFilterChange flags the cursor for a blink reset whenever routing
// changed the active type-ahead query.
func (m *Model) noteFilterChange() {
	current := ""
	if menu := m.innermostOpenMenu(); menu != nil {
		current = menu.Filter()
	}
	if current != m.lastFilter {
		m.lastFilter = current
		m.filterCursorDirty = true
	}
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func trailLabels(path []selection.Element) []string {
	out := make([]string, 0, len(path))
	for _, el := range path {
		switch v := el.(type) {
		case *widget.Menu:
			out = append(out, v.Title())
		case *widget.Item:
			out = append(out, v.Label())
		}
	}
	return out
}
