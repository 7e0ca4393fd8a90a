package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kinow/cylc-ui/internal/render"
	"github.com/kinow/cylc-ui/pkg/models"
	"github.com/kinow/cylc-ui/pkg/service"
)

// loadSnapshot reads the workflow snapshot at path, or the built-in mock
// snapshot when no path is given.
func loadSnapshot(args []string) (*models.Workflow, error) {
	if len(args) == 0 {
		return service.NewMockProvider().Workflow(), nil
	}
	return service.ParseWorkflow(args[0])
}

func NewTreeCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [snapshot]",
		Short: "Render a workflow snapshot as a tree",
		Long: `Render a workflow snapshot as a tree.

The snapshot is a JSON or YAML file with the workflow's cycle points,
family proxies and task proxies. Without an argument the built-in mock
snapshot is rendered.

Examples:
  cylc-ui tree                # render the mock workflow
  cylc-ui tree one.json       # render a snapshot file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := loadSnapshot(args)
			if err != nil {
				return err
			}

			tr, err := (*svc).BuildTree(workflow)
			if err != nil {
				return fmt.Errorf("build tree: %w", err)
			}

			cmd.Print(render.Tree(tr))
			return nil
		},
	}

	return cmd
}
