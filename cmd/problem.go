package cmd

import (
	"fmt"
	"strconv"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/spf13/cobra"
)

func newProblemCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problem",
		Short: "Look up a single problem",
	}

	cmd.AddCommand(newProblemNameCmd(app))

	return cmd
}

func newProblemNameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name <number>",
		Short: "Resolve a problem number to its slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil || number < domain.MinDailyChallenge || number > domain.MaxDailyChallenge {
				return fmt.Errorf("problem number must be between %d and %d, got %q", domain.MinDailyChallenge, domain.MaxDailyChallenge, args[0])
			}

			gen, err := app.generator(cmd.Context())
			if err != nil {
				return err
			}

			id, err := gen.ResolveNameFromNumber(cmd.Context(), number)
			if err != nil {
				return fmt.Errorf("resolve problem %d: %w", number, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
}
