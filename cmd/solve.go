package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/leetcoder-bot/leetcoder/internal/adapters/audit"
	"github.com/leetcoder-bot/leetcoder/internal/adapters/render/progress"
	tomlrepo "github.com/leetcoder-bot/leetcoder/internal/adapters/repo/toml"
	"github.com/leetcoder-bot/leetcoder/internal/application"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type solveOptions struct {
	count          int
	language       string
	daily          int
	skipSolved     bool
	skipPremium    bool
	maxAttempts    int
	seed           uint64
	plain          bool
	headless       bool
	jsonOutput     bool
	strictVerdicts bool
}

func newSolveCmd(app *app) *cobra.Command {
	opts := solveOptions{
		count:          5,
		language:       string(app.settings.Language),
		skipSolved:     app.settings.SkipSolved,
		skipPremium:    app.settings.SkipPremium,
		maxAttempts:    app.settings.MaxAttempts,
		headless:       app.settings.Headless,
		strictVerdicts: app.settings.StrictVerdicts,
	}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run a solving session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = uint64(time.Now().UnixNano())
			}
			return runSolve(cmd, app, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, fmt.Sprintf("Problems to solve (%d-%d)", domain.MinTargetCount, domain.MaxTargetCount))
	cmd.Flags().StringVarP(&opts.language, "language", "l", opts.language, "Solution language")
	cmd.Flags().IntVar(&opts.daily, "daily", 0, "Daily challenge problem number to solve first (0 = none)")
	cmd.Flags().BoolVar(&opts.skipSolved, "skip-solved", opts.skipSolved, "Skip problems LeetCode already shows as solved")
	cmd.Flags().BoolVar(&opts.skipPremium, "skip-premium", opts.skipPremium, "Skip premium-locked problems")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", opts.maxAttempts, "Generation attempts per problem")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for the problem order (default: time based)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print one line per progress event instead of the live view")
	cmd.Flags().BoolVar(&opts.headless, "headless", opts.headless, "Run Chrome without a window")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the session result as JSON")
	cmd.Flags().BoolVar(&opts.strictVerdicts, "strict-verdicts", opts.strictVerdicts, "Record unreadable verdicts as rejected")

	return cmd
}

func runSolve(cmd *cobra.Command, app *app, opts solveOptions) error {
	lang, err := domain.ParseLanguage(opts.language)
	if err != nil {
		return err
	}

	sessionCfg := domain.SessionConfig{
		TargetCount:    opts.count,
		Language:       lang,
		DailyChallenge: opts.daily,
		SkipSolved:     opts.skipSolved,
		SkipPremium:    opts.skipPremium,
		MaxAttempts:    opts.maxAttempts,
		StrictVerdicts: opts.strictVerdicts,
	}
	if err := sessionCfg.WithDefaults().Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	stop := application.NewStopSignal()
	signals := make(chan os.Signal, 2)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go watchInterrupts(ctx, signals, stop, cancel, cmd.ErrOrStderr())

	catalog, err := tomlrepo.NewRepository(app.cfg, tomlrepo.WithOrdering(domain.SeededShuffle{Seed: opts.seed}))
	if err != nil {
		return fmt.Errorf("wire problem repository: %w", err)
	}

	generator, err := app.generator(ctx)
	if err != nil {
		return err
	}

	settings := app.settings
	settings.Headless = opts.headless
	driver := app.newBrowser(settings, app.logger)
	defer func() {
		if err := driver.Close(); err != nil {
			app.logger.Warn("close browser", zap.Error(err))
		}
	}()

	logPath := filepath.Join(settings.DataDir, "logs", time.Now().Format("20060102-150405")+".log")
	auditLogger, err := audit.NewFileLogger(logPath, app.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = auditLogger.Sync() }()

	sink, closeSink := progressSink(ctx, cmd.ErrOrStderr(), opts, sessionCfg.TargetCount)
	result, runErr := app.orchestrator.Run(ctx, sessionCfg, application.Collaborators{
		Catalog:   catalog,
		Generator: generator,
		Driver:    driver,
		Solutions: catalog,
		Progress:  sink,
		Audit:     audit.NewSink(auditLogger),
	}, stop)
	if err := closeSink(); err != nil {
		app.logger.Warn("close progress view", zap.Error(err))
	}

	if runErr != nil {
		if hint := domain.Hint(runErr); hint != "" {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), hint)
		}
		return runErr
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if _, err := fmt.Fprintln(out, progress.FormatSummary(result, sessionCfg.TargetCount)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "detailed log: %s\n", logPath)
	return err
}

// progressSink picks the live view for terminals and plain lines otherwise.
// JSON output keeps the progress stream plain so stdout stays parseable.
func progressSink(ctx context.Context, out io.Writer, opts solveOptions, target int) (ports.ProgressSink, func() error) {
	if opts.plain || opts.jsonOutput || !isTerminal(out) {
		return progress.NewLineSink(out), func() error { return nil }
	}

	sink := progress.NewTeaSink(ctx, out, target)
	return sink, sink.Close
}

// watchInterrupts stops the session after the current problem on the first
// signal and cancels it on the second.
func watchInterrupts(ctx context.Context, signals <-chan os.Signal, stop *application.StopSignal, cancel context.CancelFunc, out io.Writer) {
	select {
	case <-ctx.Done():
		return
	case <-signals:
		stop.Stop()
		_, _ = fmt.Fprintln(out, "Stopping after the current problem. Press Ctrl+C again to abort.")
	}

	select {
	case <-ctx.Done():
	case <-signals:
		cancel()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
