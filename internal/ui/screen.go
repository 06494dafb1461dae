package ui

// Screen identifies the active interaction mode. Exactly one screen is
// active at a time; it routes both input handling and rendering.
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenNamespacePicker
	ScreenContextPicker
	ScreenExecPodPicker
	ScreenCopyPodPicker
	ScreenCopyPodNameInput
	ScreenMessage
	ScreenOutput
)

func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "main-menu"
	case ScreenNamespacePicker:
		return "namespace-picker"
	case ScreenContextPicker:
		return "context-picker"
	case ScreenExecPodPicker:
		return "exec-pod-picker"
	case ScreenCopyPodPicker:
		return "copy-pod-picker"
	case ScreenCopyPodNameInput:
		return "copy-pod-name-input"
	case ScreenMessage:
		return "message"
	case ScreenOutput:
		return "output"
	}
	return "unknown"
}
