package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// RequireShell skips the test when no POSIX shell is available to run
// stub binaries.
func RequireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skipf("sh not available: %v", err)
	}
}

// StubKubectl writes an executable shell script that stands in for the
// kubectl binary and returns its path. The script body receives the
// kubectl arguments as "$@" and decides what to print and how to exit.
func StubKubectl(t *testing.T, body string) string {
	t.Helper()
	RequireShell(t)
	path := filepath.Join(t.TempDir(), "kubectl")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write kubectl stub: %v", err)
	}
	return path
}
