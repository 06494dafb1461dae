package kube

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fakeRunner struct {
	result   Result
	launch   error
	lastName string
	lastArgs []string
}

func (f *fakeRunner) Run(name string, args ...string) (Result, error) {
	f.lastName = name
	f.lastArgs = args
	if f.launch != nil {
		return Result{}, f.launch
	}
	return f.result, nil
}

func newTestClient(r Runner) *Client {
	return NewClientWithRunner("kubectl", "worker", r)
}

func TestCurrentContextTrimsOutput(t *testing.T) {
	runner := &fakeRunner{result: Result{Stdout: "minikube\n", ExitOK: true}}
	ctx, ok := newTestClient(runner).CurrentContext()
	if !ok || ctx != "minikube" {
		t.Fatalf("expected minikube, got %q (ok=%v)", ctx, ok)
	}
	want := []string{"config", "current-context"}
	if !reflect.DeepEqual(runner.lastArgs, want) {
		t.Fatalf("unexpected args %v", runner.lastArgs)
	}
}

func TestCurrentContextFailureIsNotAnError(t *testing.T) {
	for name, runner := range map[string]*fakeRunner{
		"launch failure": {launch: errors.New("no such file")},
		"non-zero exit":  {result: Result{Stderr: "no config", ExitOK: false}},
		"empty output":   {result: Result{Stdout: "\n", ExitOK: true}},
	} {
		if ctx, ok := newTestClient(runner).CurrentContext(); ok {
			t.Fatalf("%s: expected no context, got %q", name, ctx)
		}
	}
}

func TestContextsSplitsLines(t *testing.T) {
	runner := &fakeRunner{result: Result{Stdout: "minikube\nprod\n\nstaging\n", ExitOK: true}}
	got, err := newTestClient(runner).Contexts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"minikube", "prod", "staging"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestContextsNonZeroExit(t *testing.T) {
	runner := &fakeRunner{result: Result{Stderr: "boom", ExitOK: false}}
	_, err := newTestClient(runner).Contexts()
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected CommandError, got %T", err)
	}
	if cmdErr.Error() != "Failed to load contexts" {
		t.Fatalf("unexpected message %q", cmdErr.Error())
	}
}

func TestNamespacesParsesJSONPathOutput(t *testing.T) {
	runner := &fakeRunner{result: Result{Stdout: "'default kube-system kube-public'", ExitOK: true}}
	got, err := newTestClient(runner).Namespaces()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"default", "kube-system", "kube-public"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNamespacesCarriesStderr(t *testing.T) {
	runner := &fakeRunner{result: Result{Stderr: "forbidden\n", ExitOK: false}}
	_, err := newTestClient(runner).Namespaces()
	if err == nil || err.Error() != "Failed to get namespaces: forbidden" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestPodsTargetsNamespace(t *testing.T) {
	runner := &fakeRunner{result: Result{Stdout: "web-1 web-2", ExitOK: true}}
	got, err := newTestClient(runner).Pods("staging")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"web-1", "web-2"}) {
		t.Fatalf("unexpected pods %v", got)
	}
	want := []string{"get", "pods", "-n", "staging", nameJSONPath}
	if !reflect.DeepEqual(runner.lastArgs, want) {
		t.Fatalf("unexpected args %v", runner.lastArgs)
	}
}

func TestLaunchFailureMapsToUnavailableError(t *testing.T) {
	runner := &fakeRunner{launch: errors.New("exec: \"kubectl\": executable file not found")}
	_, err := newTestClient(runner).Pods("default")
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %T", err)
	}
	if !strings.Contains(err.Error(), "kubectl unavailable") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestPreviewPodsCapturesFailureAsText(t *testing.T) {
	runner := &fakeRunner{result: Result{Stderr: "No resources found in default namespace.\n", ExitOK: false}}
	out, err := newTestClient(runner).PreviewPods("default")
	if err != nil {
		t.Fatalf("expected no error for non-zero exit, got %v", err)
	}
	if !strings.Contains(out, "No resources found") {
		t.Fatalf("expected stderr as display text, got %q", out)
	}
}

func TestSwitchContextSuccess(t *testing.T) {
	runner := &fakeRunner{result: Result{ExitOK: true}}
	if err := newTestClient(runner).SwitchContext("prod"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"config", "use-context", "prod"}
	if !reflect.DeepEqual(runner.lastArgs, want) {
		t.Fatalf("unexpected args %v", runner.lastArgs)
	}
}

func TestExecBuildsInteractiveInvocation(t *testing.T) {
	runner := &fakeRunner{result: Result{Stdout: "done\n", ExitOK: true}}
	out, err := newTestClient(runner).Exec("default", "web-1")
	if err != nil || out != "done\n" {
		t.Fatalf("unexpected result %q, %v", out, err)
	}
	want := []string{"exec", "-it", "-n", "default", "web-1", "--", "bash"}
	if !reflect.DeepEqual(runner.lastArgs, want) {
		t.Fatalf("unexpected args %v", runner.lastArgs)
	}
}

func TestCopyPodUsesConfiguredContainer(t *testing.T) {
	runner := &fakeRunner{result: Result{ExitOK: true}}
	client := NewClientWithRunner("kubectl", "sidecar", runner)
	if _, err := client.CopyPod("default", "web-1", "web-1-copy"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"debug", "-it", "-n", "default", "web-1",
		"--copy-to", "web-1-copy", "--container=sidecar", "--", "bash",
	}
	if !reflect.DeepEqual(runner.lastArgs, want) {
		t.Fatalf("unexpected args %v", runner.lastArgs)
	}
}

func TestClientDefaults(t *testing.T) {
	c := NewClient("", "")
	if c.binary != DefaultBinary {
		t.Fatalf("expected default binary, got %q", c.binary)
	}
	if c.copyContainer != DefaultCopyContainer {
		t.Fatalf("expected default container, got %q", c.copyContainer)
	}
}
