package kube

import (
	"fmt"
	"strings"
)

// UnavailableError reports that the kubectl binary could not be
// launched at all (missing binary, permission failure).
type UnavailableError struct {
	Binary string
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Binary, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// CommandError reports a kubectl invocation that ran but exited
// non-zero. Stderr is preserved verbatim so operators keep the
// diagnostic detail.
type CommandError struct {
	Reason string
	Stderr string
}

func (e *CommandError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, stderr)
}
