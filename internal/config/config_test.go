package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Kubectl != "kubectl" {
		t.Fatalf("expected default kubectl binary, got %q", cfg.App.Kubectl)
	}
	if cfg.App.Namespace != "default" {
		t.Fatalf("expected default namespace, got %q", cfg.App.Namespace)
	}
	if cfg.App.CopyContainer != "worker" {
		t.Fatalf("expected worker container, got %q", cfg.App.CopyContainer)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected tracing disabled by default")
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	environ := []string{
		"KUBETUI_KUBECTL=/usr/local/bin/kubectl",
		"KUBETUI_NAMESPACE=staging",
		"KUBETUI_TRACE=1",
		"KUBETUI_WIDTH=120",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Kubectl != "/usr/local/bin/kubectl" {
		t.Fatalf("expected env kubectl path, got %q", cfg.App.Kubectl)
	}
	if cfg.App.Namespace != "staging" {
		t.Fatalf("expected env namespace, got %q", cfg.App.Namespace)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected tracing enabled via env")
	}
	if cfg.App.Width != 120 {
		t.Fatalf("expected width 120, got %d", cfg.App.Width)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	environ := []string{"KUBETUI_NAMESPACE=staging"}
	cfg, err := LoadArgs([]string{"-namespace", "prod"}, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Namespace != "prod" {
		t.Fatalf("expected flag to win over env, got %q", cfg.App.Namespace)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestValidateRejectsBlankValues(t *testing.T) {
	cfg, err := LoadArgs([]string{"-kubectl", "  "}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error for blank kubectl path")
	}
	cfg, err = LoadArgs([]string{"-namespace", ""}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error for blank namespace")
	}
}
