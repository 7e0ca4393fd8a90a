package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kinow/cylc-ui/pkg/index"
	"github.com/kinow/cylc-ui/pkg/service"
)

func NewSearchCmd(svc **service.Service) *cobra.Command {
	var (
		workflowID string
		state      string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search indexed tasks by name or cycle point",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			tasks, err := (*svc).SearchTasks(query, &index.Options{
				WorkflowID: workflowID,
				State:      state,
				Limit:      limit,
			})
			if err != nil {
				return fmt.Errorf("search tasks: %w", err)
			}

			if len(tasks) == 0 {
				cmd.Println("No tasks found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TASK\tCYCLE\tSTATE\tLATEST MESSAGE")
			for _, task := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					task.Name, task.CyclePoint, task.State, task.LatestMessage)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&workflowID, "workflow", "w", "", "Restrict to one workflow id")
	cmd.Flags().StringVarP(&state, "state", "s", "", "Restrict to one task state")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum results")

	return cmd
}
