package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	uistate "github.com/mgdawber/kubetui/internal/ui/state"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// commandColumnFraction fixes the 30/70 split: commands on the
	// left, the active panel on the right.
	commandColumnFraction = 0.3
)

var panelBorderColor = lipgloss.Color("240")

// View renders the whole frame: header, command column, the panel for
// the active screen, and the key-hint footer.
func (m *Model) View() string {
	width, height := m.frameSize()
	header := m.renderHeader(width)
	footer := ""
	if m.showFooter {
		footer = m.renderFooter(width)
	}
	bodyHeight := height - lipgloss.Height(header)
	if footer != "" {
		bodyHeight -= lipgloss.Height(footer)
	}
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	commandWidth := int(float64(width) * commandColumnFraction)
	if commandWidth < 20 {
		commandWidth = 20
	}
	panelWidth := width - commandWidth
	if panelWidth < 20 {
		panelWidth = 20
	}
	left := m.renderPanel("Commands", m.renderList(m.commands, commandWidth-2, bodyHeight-3), commandWidth, bodyHeight)
	right := m.renderActivePanel(panelWidth, bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	sections := []string{header, body}
	if footer != "" {
		sections = append(sections, footer)
	}
	return strings.Join(sections, "\n")
}

func (m *Model) frameSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) renderHeader(width int) string {
	context := m.selectedContext
	if context == "" {
		context = "None"
	}
	text := fmt.Sprintf(" Context: %s | Namespace: %s ", context, m.currentNamespace())
	return styles.Header.Render(truncate.String(text, uint(clampMin(width, 1))))
}

// renderActivePanel picks the right-hand panel for the active screen.
// The switch is exhaustive over Screen so a new screen cannot be added
// without deciding what it renders.
func (m *Model) renderActivePanel(width, height int) string {
	innerWidth := width - 2
	innerHeight := height - 3
	switch m.screen {
	case ScreenMainMenu:
		if m.commands.Cursor() == commandPods && m.output != "" {
			return m.renderPanel("Pods Preview", m.wrapOutput(m.output, innerWidth, innerHeight), width, height)
		}
		return m.renderPanel("Welcome", "", width, height)
	case ScreenNamespacePicker:
		return m.renderPanel("Select Namespace", m.renderList(m.namespaces, innerWidth, innerHeight), width, height)
	case ScreenContextPicker:
		return m.renderPanel("Select Context", m.renderList(m.contexts, innerWidth, innerHeight), width, height)
	case ScreenExecPodPicker:
		return m.renderPanel("Select Pod to Exec", m.renderList(m.pods, innerWidth, innerHeight), width, height)
	case ScreenCopyPodPicker:
		return m.renderPanel("Select Pod to Copy", m.renderList(m.pods, innerWidth, innerHeight), width, height)
	case ScreenCopyPodNameInput:
		return m.renderPanel("New Pod Name", m.renderNameInput(innerWidth), width, height)
	case ScreenOutput:
		return m.renderPanel("Output", m.wrapOutput(m.output, innerWidth, innerHeight), width, height)
	case ScreenMessage:
		return m.renderPanel("Message", styles.Error.Render(wordwrap.String(m.message, clampMin(innerWidth, 1))), width, height)
	}
	return m.renderPanel("Welcome", "", width, height)
}

func (m *Model) renderNameInput(width int) string {
	source := m.selectedPod
	if source == "" {
		source = "None"
	}
	lines := []string{
		styles.Info.Render(truncate.String(fmt.Sprintf("Copying pod: %s", source), uint(clampMin(width, 1)))),
		styles.InputLabel.Render("Enter new pod name:"),
		m.input.View(),
	}
	return strings.Join(lines, "\n")
}

// renderList draws the entries with the cursor row highlighted, keeping
// the cursor inside the visible window when the list overflows.
func (m *Model) renderList(list *uistate.List, width, height int) string {
	items := list.Items()
	if len(items) == 0 {
		return styles.Info.Render("(no entries)")
	}
	cursor := list.Cursor()
	start := 0
	end := len(items)
	if height > 0 && len(items) > height {
		start = cursor - height + 1
		if start < 0 {
			start = 0
		}
		if start+height > len(items) {
			start = len(items) - height
		}
		end = start + height
	}
	labelWidth := clampMin(width-2, 1)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := truncate.String(items[i], uint(labelWidth))
		if i == cursor {
			lines = append(lines, styles.Indicator.Render("▶ ")+styles.SelectedItem.Render(label))
			continue
		}
		lines = append(lines, "  "+styles.Item.Render(label))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) wrapOutput(text string, width, height int) string {
	wrapped := wordwrap.String(strings.TrimRight(text, "\n"), clampMin(width, 1))
	lines := strings.Split(wrapped, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return styles.Output.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderPanel(title, body string, width, height int) string {
	innerWidth := clampMin(width-2, 1)
	content := styles.PanelTitle.Render(truncate.String(title, uint(innerWidth)))
	if body != "" {
		content += "\n" + body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(panelBorderColor).
		Width(innerWidth).
		Height(clampMin(height-2, 1)).
		Render(content)
}

func (m *Model) renderFooter(width int) string {
	var hints string
	switch m.screen {
	case ScreenMainMenu:
		hints = "[↑/↓ or j/k] Navigate  [Enter/→] Select  [q] Quit"
	case ScreenNamespacePicker, ScreenContextPicker, ScreenExecPodPicker, ScreenCopyPodPicker:
		hints = "[↑/↓ or j/k] Navigate  [Enter/→] Select  [Esc] Back  [q] Quit"
	case ScreenCopyPodNameInput:
		hints = "[Enter] Submit  [Esc] Back  [q] Quit"
	case ScreenMessage, ScreenOutput:
		hints = "Press any key to return to main menu, or [q] Quit"
	}
	return styles.Footer.Render(truncate.String(" "+hints, uint(clampMin(width, 1))))
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
