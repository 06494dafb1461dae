package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes key presses. The quit chord is intercepted before
// any screen-specific handling, so it works from every screen and can
// never be typed into the pod-name input.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	}
	switch m.screen {
	case ScreenMainMenu:
		return m.handleMainMenuKey(keyMsg)
	case ScreenNamespacePicker:
		return m.handleNamespacePickerKey(keyMsg)
	case ScreenContextPicker:
		return m.handleContextPickerKey(keyMsg)
	case ScreenExecPodPicker:
		return m.handleExecPodPickerKey(keyMsg)
	case ScreenCopyPodPicker:
		return m.handleCopyPodPickerKey(keyMsg)
	case ScreenCopyPodNameInput:
		return m.handleNameInputKey(keyMsg)
	case ScreenMessage, ScreenOutput:
		// Any remaining key returns to the main menu.
		m.setScreen(ScreenMainMenu)
	}
	return nil
}

// handleNameInputKey owns free-text entry for the new pod name. Enter
// submits, Escape backs out to the pod picker; everything else is
// delegated to the text input component.
func (m *Model) handleNameInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.submitCopyPod()
		return nil
	case "esc":
		m.setScreen(ScreenCopyPodPicker)
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}
