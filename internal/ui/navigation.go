package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgdawber/kubetui/internal/logging"
	"github.com/mgdawber/kubetui/internal/logging/events"
	uistate "github.com/mgdawber/kubetui/internal/ui/state"
)

const emptyPodNameMessage = "Please enter a new pod name"

// moveCursor applies Up/Down (and the j/k aliases) to the given list.
// It reports whether the key was a navigation key.
func (m *Model) moveCursor(list *uistate.List, msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		list.MoveUp()
	case "down", "j":
		list.MoveDown()
	default:
		return false
	}
	events.UI.MenuCursor(m.screen.String(), list.Cursor())
	return true
}

func isSelectKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", "right":
		return true
	}
	return false
}

func (m *Model) handleMainMenuKey(msg tea.KeyMsg) tea.Cmd {
	if m.moveCursor(m.commands, msg) {
		m.refreshPreview()
		return nil
	}
	if isSelectKey(msg) {
		m.dispatchCommand()
	}
	return nil
}

// dispatchCommand loads the listing for the highlighted main-menu entry
// and enters its picker. A load failure escalates to the message screen
// instead.
func (m *Model) dispatchCommand() {
	command, ok := m.commands.Select()
	if !ok {
		return
	}
	events.UI.MenuEnter(m.screen.String(), command)
	switch m.commands.Cursor() {
	case commandChooseContext:
		m.enterContextPicker()
	case commandChooseNamespace:
		m.enterNamespacePicker()
	case commandPods:
		m.enterPodPicker(ScreenExecPodPicker)
	case commandCopyPod:
		m.enterPodPicker(ScreenCopyPodPicker)
	}
}

func (m *Model) enterContextPicker() {
	contexts, err := m.backend.Contexts()
	if err != nil {
		m.fail("Error loading contexts", err)
		return
	}
	m.contexts.Replace(contexts)
	m.setScreen(ScreenContextPicker)
}

func (m *Model) enterNamespacePicker() {
	namespaces, err := m.backend.Namespaces()
	if err != nil {
		m.fail("Error loading namespaces", err)
		return
	}
	m.namespaces.Replace(namespaces)
	m.setScreen(ScreenNamespacePicker)
}

func (m *Model) enterPodPicker(picker Screen) {
	pods, err := m.backend.Pods(m.currentNamespace())
	if err != nil {
		m.fail("Error loading pods", err)
		return
	}
	m.pods.Replace(pods)
	m.setScreen(picker)
}

func (m *Model) handleNamespacePickerKey(msg tea.KeyMsg) tea.Cmd {
	if m.moveCursor(m.namespaces, msg) {
		return nil
	}
	switch {
	case isSelectKey(msg):
		if namespace, ok := m.namespaces.Select(); ok {
			m.selectedNamespace = namespace
			m.setScreen(ScreenMainMenu)
		}
	case msg.String() == "esc":
		m.setScreen(ScreenMainMenu)
	}
	return nil
}

func (m *Model) handleContextPickerKey(msg tea.KeyMsg) tea.Cmd {
	if m.moveCursor(m.contexts, msg) {
		return nil
	}
	switch {
	case isSelectKey(msg):
		context, ok := m.contexts.Select()
		if !ok {
			return nil
		}
		if err := m.backend.SwitchContext(context); err != nil {
			m.fail("Error switching context", err)
			return nil
		}
		m.selectedContext = context
		m.setScreen(ScreenMainMenu)
	case msg.String() == "esc":
		m.setScreen(ScreenMainMenu)
	}
	return nil
}

func (m *Model) handleExecPodPickerKey(msg tea.KeyMsg) tea.Cmd {
	if m.moveCursor(m.pods, msg) {
		return nil
	}
	switch {
	case isSelectKey(msg):
		pod, ok := m.pods.Select()
		if !ok {
			return nil
		}
		out, err := m.backend.Exec(m.currentNamespace(), pod)
		if err != nil {
			m.fail("Error exec into pod", err)
			return nil
		}
		m.output = out
		m.setScreen(ScreenOutput)
	case msg.String() == "esc":
		m.setScreen(ScreenMainMenu)
	}
	return nil
}

func (m *Model) handleCopyPodPickerKey(msg tea.KeyMsg) tea.Cmd {
	if m.moveCursor(m.pods, msg) {
		return nil
	}
	switch {
	case isSelectKey(msg):
		if pod, ok := m.pods.Select(); ok {
			m.selectedPod = pod
			m.input.SetValue("")
			m.input.Focus()
			m.setScreen(ScreenCopyPodNameInput)
		}
	case msg.String() == "esc":
		m.setScreen(ScreenMainMenu)
	}
	return nil
}

// submitCopyPod validates the entered name, runs the copy, and clears
// the pending pod selection whatever the outcome.
func (m *Model) submitCopyPod() {
	name := m.input.Value()
	if name == "" {
		m.message = emptyPodNameMessage
		m.setScreen(ScreenMessage)
		return
	}
	if m.selectedPod == "" {
		return
	}
	pod := m.selectedPod
	out, err := m.backend.CopyPod(m.currentNamespace(), pod, name)
	m.selectedPod = ""
	m.input.SetValue("")
	if err != nil {
		m.fail("Error copying pod", err)
		return
	}
	events.Action.Success(fmt.Sprintf("copied pod %s to %s", pod, name))
	m.output = out
	m.setScreen(ScreenOutput)
}

// fail converts a backend error into a blocking message screen. The
// error text is preserved verbatim behind a short static label.
func (m *Model) fail(label string, err error) {
	logging.Error(err)
	events.Action.Error(err)
	m.message = fmt.Sprintf("%s: %v", label, err)
	m.setScreen(ScreenMessage)
}
