// Package kube wraps the kubectl command line client. All cluster reads
// and writes the UI performs go through Client, which shells out to
// kubectl and parses stdout/stderr. The Runner seam keeps the package
// testable without a cluster.
package kube

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/mgdawber/kubetui/internal/logging/events"
)

const (
	// DefaultBinary is used when no kubectl path is configured.
	DefaultBinary = "kubectl"
	// DefaultCopyContainer is the container targeted by pod copies.
	DefaultCopyContainer = "worker"

	nameJSONPath = "-o=jsonpath={.items[*].metadata.name}"
)

// Result captures a completed kubectl invocation.
type Result struct {
	Stdout string
	Stderr string
	ExitOK bool
}

// Runner executes a command and reports its outcome. The returned error
// is non-nil only when the process could not be started; a non-zero
// exit is reported through Result.ExitOK instead.
type Runner interface {
	Run(name string, args ...string) (Result, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitOK: err == nil}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Result{}, err
	}
	return res, nil
}

// Client invokes kubectl on behalf of the UI.
type Client struct {
	binary        string
	copyContainer string
	runner        Runner
}

// NewClient builds a Client around the given kubectl binary and pod-copy
// container name. Empty values fall back to the defaults.
func NewClient(binary, copyContainer string) *Client {
	return NewClientWithRunner(binary, copyContainer, execRunner{})
}

// NewClientWithRunner allows tests to substitute the process runner.
func NewClientWithRunner(binary, copyContainer string, runner Runner) *Client {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	if strings.TrimSpace(copyContainer) == "" {
		copyContainer = DefaultCopyContainer
	}
	return &Client{binary: binary, copyContainer: copyContainer, runner: runner}
}

func (c *Client) run(args ...string) (Result, error) {
	events.Kube.Command(c.binary, args)
	res, err := c.runner.Run(c.binary, args...)
	if err != nil {
		events.Kube.Result(args, false)
		return Result{}, &UnavailableError{Binary: c.binary, Err: err}
	}
	events.Kube.Result(args, res.ExitOK)
	return res, nil
}

// CurrentContext returns the active kubeconfig context. The lookup is
// best-effort: any failure reads as "no context".
func (c *Client) CurrentContext() (string, bool) {
	res, err := c.run("config", "current-context")
	if err != nil || !res.ExitOK {
		return "", false
	}
	ctx := strings.TrimSpace(res.Stdout)
	return ctx, ctx != ""
}

// Contexts lists the kubeconfig context names, one per line of output.
func (c *Client) Contexts() ([]string, error) {
	res, err := c.run("config", "get-contexts", "-o=name")
	if err != nil {
		return nil, err
	}
	if !res.ExitOK {
		return nil, &CommandError{Reason: "Failed to load contexts"}
	}
	return splitLines(res.Stdout), nil
}

// SwitchContext makes the named context current.
func (c *Client) SwitchContext(name string) error {
	res, err := c.run("config", "use-context", name)
	if err != nil {
		return err
	}
	if !res.ExitOK {
		return &CommandError{Reason: "Failed to switch context"}
	}
	return nil
}

// Namespaces lists the cluster's namespace names.
func (c *Client) Namespaces() ([]string, error) {
	res, err := c.run("get", "namespaces", nameJSONPath)
	if err != nil {
		return nil, err
	}
	if !res.ExitOK {
		return nil, &CommandError{Reason: "Failed to get namespaces", Stderr: res.Stderr}
	}
	return splitNames(res.Stdout), nil
}

// Pods lists the pod names in the given namespace.
func (c *Client) Pods(namespace string) ([]string, error) {
	res, err := c.run("get", "pods", "-n", namespace, nameJSONPath)
	if err != nil {
		return nil, err
	}
	if !res.ExitOK {
		return nil, &CommandError{Reason: "Failed to get pods", Stderr: res.Stderr}
	}
	return splitNames(res.Stdout), nil
}

// PreviewPods returns the human-readable pod table for the namespace.
// Success and failure text are both display text; the error return is
// reserved for launch failures.
func (c *Client) PreviewPods(namespace string) (string, error) {
	res, err := c.run("get", "pods", "-n", namespace)
	if err != nil {
		return "", err
	}
	if !res.ExitOK {
		return res.Stderr, nil
	}
	return res.Stdout, nil
}

// Exec runs a shell in the pod and captures whatever the command
// produced. Non-zero exits surface as display text, not errors.
func (c *Client) Exec(namespace, pod string) (string, error) {
	res, err := c.run("exec", "-it", "-n", namespace, pod, "--", "bash")
	if err != nil {
		return "", err
	}
	if !res.ExitOK {
		return res.Stderr, nil
	}
	return res.Stdout, nil
}

// CopyPod clones a pod via kubectl debug, attaching a shell to the
// configured container in the copy.
func (c *Client) CopyPod(namespace, pod, newName string) (string, error) {
	res, err := c.run(
		"debug", "-it", "-n", namespace, pod,
		"--copy-to", newName,
		"--container="+c.copyContainer,
		"--", "bash",
	)
	if err != nil {
		return "", err
	}
	if !res.ExitOK {
		return res.Stderr, nil
	}
	return res.Stdout, nil
}

// splitNames handles jsonpath name output: a single whitespace-joined
// line, possibly wrapped in quotes depending on the kubectl version.
func splitNames(out string) []string {
	return strings.Fields(strings.Trim(strings.TrimSpace(out), "'"))
}

func splitLines(out string) []string {
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}
