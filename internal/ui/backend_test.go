package ui

import "errors"

var errNotFound = errors.New("executable file not found in $PATH")

// fakeBackend implements Backend with canned responses and records the
// calls the model makes.
type fakeBackend struct {
	currentContext string
	contexts       []string
	namespaces     []string
	pods           []string
	preview        string
	execOut        string
	copyOut        string

	contextsErr   error
	namespacesErr error
	podsErr       error
	switchErr     error
	previewErr    error
	execErr       error
	copyErr       error

	previewCalls int
	copyCalls    int
	execCalls    int
	switched     []string
	podsQueries  []string
	execTargets  []string
	copyRequests [][3]string
}

func (f *fakeBackend) CurrentContext() (string, bool) {
	return f.currentContext, f.currentContext != ""
}

func (f *fakeBackend) Contexts() ([]string, error) {
	if f.contextsErr != nil {
		return nil, f.contextsErr
	}
	return f.contexts, nil
}

func (f *fakeBackend) SwitchContext(name string) error {
	if f.switchErr != nil {
		return f.switchErr
	}
	f.switched = append(f.switched, name)
	return nil
}

func (f *fakeBackend) Namespaces() ([]string, error) {
	if f.namespacesErr != nil {
		return nil, f.namespacesErr
	}
	return f.namespaces, nil
}

func (f *fakeBackend) Pods(namespace string) ([]string, error) {
	f.podsQueries = append(f.podsQueries, namespace)
	if f.podsErr != nil {
		return nil, f.podsErr
	}
	return f.pods, nil
}

func (f *fakeBackend) PreviewPods(namespace string) (string, error) {
	f.previewCalls++
	if f.previewErr != nil {
		return "", f.previewErr
	}
	return f.preview, nil
}

func (f *fakeBackend) Exec(namespace, pod string) (string, error) {
	f.execCalls++
	f.execTargets = append(f.execTargets, pod)
	if f.execErr != nil {
		return "", f.execErr
	}
	return f.execOut, nil
}

func (f *fakeBackend) CopyPod(namespace, pod, newName string) (string, error) {
	f.copyCalls++
	f.copyRequests = append(f.copyRequests, [3]string{namespace, pod, newName})
	if f.copyErr != nil {
		return "", f.copyErr
	}
	return f.copyOut, nil
}

func newTestModel(backend Backend) *Model {
	return NewModel(backend, 0, 0, true, "")
}
