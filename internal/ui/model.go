package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgdawber/kubetui/internal/logging/events"
	"github.com/mgdawber/kubetui/internal/theme"
	uistate "github.com/mgdawber/kubetui/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Main menu entries in display order; the indices drive dispatch.
const (
	commandChooseContext = iota
	commandChooseNamespace
	commandPods
	commandCopyPod
)

func mainMenuCommands() []string {
	return []string{"Choose Context", "Choose Namespace", "Pods", "Copy Pod"}
}

// Model is the session state: the active screen, the four selection
// lists, the current selections, and the last message/output text. It
// is owned by the Bubble Tea update loop and mutated only there; View
// reads it once per frame.
type Model struct {
	screen  Screen
	backend Backend

	commands   *uistate.List
	namespaces *uistate.List
	contexts   *uistate.List
	// pods backs both the exec and copy pickers; the active screen
	// decides what Enter means. Repopulated each time either picker is
	// entered.
	pods *uistate.List

	selectedNamespace string
	selectedContext   string
	selectedPod       string
	defaultNamespace  string

	input   textinput.Model
	message string
	output  string

	// lastPreviewed is the debounce marker for the main-menu preview;
	// -1 means nothing has been previewed yet.
	lastPreviewed int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the session state on the main menu. The selected
// context is seeded from the backend's current-context query;
// absence is not an error.
func NewModel(backend Backend, width, height int, showFooter bool, defaultNamespace string) *Model {
	if defaultNamespace == "" {
		defaultNamespace = "default"
	}
	input := textinput.New()
	input.Placeholder = "new pod name"
	input.CharLimit = 253 // kubernetes resource name limit
	m := &Model{
		screen:           ScreenMainMenu,
		backend:          backend,
		commands:         uistate.NewList(mainMenuCommands()...),
		namespaces:       uistate.NewList(),
		contexts:         uistate.NewList(),
		pods:             uistate.NewList(),
		defaultNamespace: defaultNamespace,
		input:            input,
		lastPreviewed:    -1,
		showFooter:       showFooter,
	}
	if backend != nil {
		if ctx, ok := backend.CurrentContext(); ok {
			m.selectedContext = ctx
		}
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
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

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	return nil
}

func (m *Model) setScreen(next Screen) {
	if next == m.screen {
		return
	}
	events.UI.ScreenChange(m.screen.String(), next.String())
	m.screen = next
}

// currentNamespace falls back to the configured default while no
// namespace has been picked.
func (m *Model) currentNamespace() string {
	if m.selectedNamespace != "" {
		return m.selectedNamespace
	}
	return m.defaultNamespace
}
