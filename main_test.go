package main

import (
	"testing"

	"github.com/mgdawber/kubetui/internal/config"
)

func TestProbeTTYCoversStandardDescriptors(t *testing.T) {
	probes := probeTTY()
	if len(probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"-namespace", "staging"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload := startupTracePayload(cfg)
	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map, got %T", payload["flags"])
	}
	if flags["namespace"] != "staging" {
		t.Fatalf("expected namespace flag in payload, got %v", flags["namespace"])
	}
	if _, ok := payload["tty"]; !ok {
		t.Fatalf("expected tty probes in payload")
	}
}
