package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kinow/cylc-ui/pkg/service"
	"github.com/kinow/cylc-ui/pkg/tree"
)

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <snapshot>",
		Short: "Check that a snapshot has the structure population needs",
		Long: `Check that a snapshot has the structure population needs.

A snapshot is valid when it parses and carries the cyclePoints,
familyProxies and taskProxies collections. Elements are not inspected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := service.ParseWorkflow(args[0])
			if err != nil {
				return err
			}

			if !tree.IsValid(workflow) {
				return fmt.Errorf("%s: %w", args[0], tree.ErrInvalidInput)
			}

			cmd.Printf("%s: valid (%d cycle points, %d families, %d tasks)\n",
				args[0],
				len(workflow.CyclePoints),
				len(workflow.FamilyProxies),
				len(workflow.TaskProxies))
			return nil
		},
	}

	return cmd
}
