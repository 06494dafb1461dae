package ui

import (
	"fmt"

	"github.com/mgdawber/kubetui/internal/logging/events"
)

// refreshPreview runs after every Up/Down on the main menu. When the
// highlighted index changed it clears the inline output and, for the
// Pods entry, loads a fresh pod listing into it. Repeat visits to the
// same index are debounced so navigation does not re-issue the call.
//
// Preview failures are non-fatal: they render as plain text in the
// preview pane and never escalate to the message screen.
func (m *Model) refreshPreview() {
	index := m.commands.Cursor()
	if index < 0 || index == m.lastPreviewed {
		events.UI.PreviewSkip(index)
		return
	}
	m.output = ""
	if index == commandPods {
		namespace := m.currentNamespace()
		events.UI.PreviewRefresh(index, namespace)
		out, err := m.backend.PreviewPods(namespace)
		if err != nil {
			m.output = fmt.Sprintf("Error listing pods: %v", err)
		} else {
			m.output = out
		}
	}
	m.lastPreviewed = index
}
