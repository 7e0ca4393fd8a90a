package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kinow/cylc-ui/pkg/models"
	"github.com/kinow/cylc-ui/pkg/service"
)

func NewWorkflowsCmd(svc **service.Service) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "workflows",
		Short:   "List indexed workflows",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := (*svc).ListWorkflows()
			if err != nil {
				return fmt.Errorf("list workflows: %w", err)
			}

			if jsonOutput {
				data, err := json.MarshalIndent(summaries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal workflows: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			if len(summaries) == 0 {
				cmd.Println("No workflows indexed yet. Run 'cylc-ui tree <snapshot>' first.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tTASKS\tFAILED\tRUNNING\tINDEXED")
			for _, summary := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
					summary.ID,
					summary.Status,
					summary.TaskCount,
					summary.StateTotals[models.StateFailed],
					summary.StateTotals[models.StateRunning],
					summary.IndexedAt.Format("2006-01-02 15:04"),
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output workflows as JSON")

	return cmd
}
