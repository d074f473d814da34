package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSolvedCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solved",
		Short: "Inspect or edit the solved set",
	}

	cmd.AddCommand(newSolvedListCmd(app), newSolvedMarkCmd(app))

	return cmd
}

func newSolvedListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List solved problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := app.catalog.ListSolved(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range ids {
				if _, err := fmt.Fprintln(out, id); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(out, "solved: %d\n", len(ids))
			return err
		},
	}
}

func newSolvedMarkCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mark <slug>...",
		Short: "Mark problems as solved without submitting",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.catalog.MarkSolved(cmd.Context(), args)
		},
	}
}
