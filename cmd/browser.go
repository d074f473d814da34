package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBrowserCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browser",
		Short: "Manage the browser profile used for submissions",
	}

	cmd.AddCommand(newBrowserLoginCmd(app))

	return cmd
}

func newBrowserLoginCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Open LeetCode and wait until you are signed in",
		Long:  "Opens a visible Chrome window on the LeetCode login page using the tool's own profile. Sign in there; the session is kept for later solve runs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			settings := app.settings
			settings.Headless = false
			driver := app.newBrowser(settings, app.logger)
			defer func() {
				if err := driver.Close(); err != nil {
					app.logger.Warn("close browser", zap.Error(err))
				}
			}()

			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Waiting for you to sign in to LeetCode in the browser window...")
			if err := driver.Login(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return fmt.Errorf("login aborted")
				}
				return fmt.Errorf("browser login: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Signed in. Profile saved to %s\n", settings.ProfileDir)
			return err
		},
	}
}
