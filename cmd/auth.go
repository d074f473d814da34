package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the Gemini API key",
	}

	cmd.AddCommand(newAuthSetKeyCmd(app), newAuthCheckCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetKeyCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set-key",
		Short: "Store the Gemini API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("api key is empty")
			}
			if err := app.secretStore.Put(cmd.Context(), domain.GeminiAPIKeySecret, value); err != nil {
				return fmt.Errorf("store gemini api key: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Gemini API key saved")
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "API key value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newAuthCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the Gemini API key with a test request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := app.generator(cmd.Context())
			if err != nil {
				return err
			}

			err = runCheck(cmd.Context(), cmd.ErrOrStderr(), "Testing Gemini API key", func(ctx context.Context) error {
				return gen.Ping(ctx)
			})
			if err != nil {
				if hint := domain.Hint(err); hint != "" {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), hint)
				}
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Gemini API key is valid")
			return err
		},
	}
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored Gemini API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.secretStore.Delete(cmd.Context(), domain.GeminiAPIKeySecret)
		},
	}
}
