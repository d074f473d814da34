package cmd

import (
	"github.com/leetcoder-bot/leetcoder/internal/adapters/audit"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	return buildRootCmd(app, err)
}

func buildRootCmd(app *app, wireErr error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lcs",
		Short:         "LeetCode solver (lcs): generate, submit and track solutions",
		Long:          "lcs works through your LeetCode problem list: it asks Gemini for a solution, submits it in a real browser session, reads the verdict and records what got solved.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if wireErr != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return wireErr
		}
		return rootCmd
	}

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", app.settings.Verbose, "Debug logging on stderr")
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger, err := audit.NewLogger(verbose)
		if err != nil {
			return err
		}
		app.logger = logger
		app.verbose = verbose
		return nil
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSolveCmd(app),
		newProblemsCmd(app),
		newSolvedCmd(app),
		newProblemCmd(app),
		newAuthCmd(app),
		newBrowserCmd(app),
	)

	return rootCmd
}
