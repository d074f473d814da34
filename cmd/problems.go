package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProblemsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "Manage the local problem list",
	}

	cmd.AddCommand(newProblemsListCmd(app), newProblemsAddCmd(app))

	return cmd
}

func newProblemsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List problems in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := app.catalog.ListProblems(cmd.Context())
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no problems yet; add some with `lcs problems add <slug>`")
				return err
			}

			for _, id := range ids {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newProblemsAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <slug-or-title>...",
		Short: "Add problems to the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := app.catalog.AddProblems(cmd.Context(), args)
			for _, id := range added {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", id)
			}
			if skipped := len(args) - len(added); skipped > 0 && err == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d already present\n", skipped)
			}

			return err
		},
	}
}
