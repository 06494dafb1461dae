// Package ui contains the Bubble Tea program that powers the kubectl
// navigator. The package separates the session state (Model) from the
// logic that mutates it, so each concern can be tested on its own.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry (key presses, window
//     resizes).
//   - Key handling (internal/ui/input.go) intercepts the global quit
//     chord first and then routes by the active Screen, so each screen's
//     transitions live in one focused handler
//     (internal/ui/navigation.go).
//   - Cursor mechanics live in internal/ui/state.List: Up saturates at
//     the first entry, Down wraps past the last one.
//   - The main-menu preview (internal/ui/preview.go) is debounced on
//     the highlighted index; its failures render inline and never
//     block the session.
//
// Backend interactions:
//   - All cluster reads and writes go through the Backend interface,
//     implemented by internal/kube against the kubectl CLI. Calls run
//     synchronously inside Update: the session blocks until kubectl
//     returns, and errors are converted into the message screen rather
//     than propagated.
//
// Rendering:
//   - View (internal/ui/view.go) is a read-only projection of the
//     session state, drawn once per frame after input processing
//     completes.
package ui
