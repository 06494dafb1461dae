package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mgdawber/kubetui/internal/kube"
	"github.com/mgdawber/kubetui/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Kubectl       string
	Namespace     string
	CopyContainer string
	Width         int
	Height        int
	ShowFooter    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client := kube.NewClient(cfg.Kubectl, cfg.CopyContainer)
	model := ui.NewModel(client, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Namespace)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
