package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kinow/cylc-ui/internal/tui/browser"
	"github.com/kinow/cylc-ui/pkg/service"
)

func NewTuiCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [snapshot]",
		Short: "Browse a workflow snapshot interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := loadSnapshot(args)
			if err != nil {
				return err
			}

			tr, err := (*svc).BuildTree(workflow)
			if err != nil {
				return fmt.Errorf("build tree: %w", err)
			}

			p := tea.NewProgram(browser.New(tr), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run browser: %w", err)
			}
			return nil
		},
	}

	return cmd
}
