package ui

// Backend is the cluster control boundary the UI drives. kube.Client is
// the production implementation; tests substitute fakes.
//
// Calls block the event loop for their duration: one input event is
// fully processed, including any backend call, before the next frame
// renders.
type Backend interface {
	// CurrentContext is best-effort; failures read as "no context".
	CurrentContext() (string, bool)
	Contexts() ([]string, error)
	SwitchContext(name string) error
	Namespaces() ([]string, error)
	Pods(namespace string) ([]string, error)
	// PreviewPods returns display text for success and command failure
	// alike; the error return covers launch failures only.
	PreviewPods(namespace string) (string, error)
	Exec(namespace, pod string) (string, error)
	CopyPod(namespace, pod, newName string) (string, error)
}
