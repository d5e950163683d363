package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oyurisousa/validador-censo-sub000/pkg/cli"
	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
	"github.com/oyurisousa/validador-censo-sub000/pkg/history"
	"github.com/oyurisousa/validador-censo-sub000/pkg/inbox"
	"github.com/oyurisousa/validador-censo-sub000/pkg/telemetry/health"
)

// Inbox outcomes reported to the metrics collector.
const (
	inboxValid   = "valid"
	inboxInvalid = "invalid"
	inboxFailed  = "failed"
)

var watchFlags struct {
	dir           string
	outputDir     string
	schemaVersion string
	scanExisting  bool
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Validate files dropped into a directory",
	Long: `Watch a directory and validate every matching file that is created or
rewritten. Each file gets a <name>.report.json next to it (or in
--output-dir) and, when history.enabled is set, a recorded run.

When telemetry.metrics.enabled is set, the metrics listener also serves
/healthz, /readyz and /version.

SIGHUP re-reads the configuration file. Changes to the validation section
apply to the next file; changes elsewhere need a restart and are ignored.

Examples:
  # Watch the configured inbox
  censo watch

  # Watch a specific directory and validate what is already there
  censo watch --dir /srv/inbox --scan-existing`,
	RunE: watchInbox,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.dir, "dir", "", "directory to watch (uses config if not specified)")
	watchCmd.Flags().StringVar(&watchFlags.outputDir, "output-dir", "", "directory for reports (uses config if not specified)")
	watchCmd.Flags().StringVar(&watchFlags.schemaVersion, "schema-version", "", "layout year (uses config if not specified)")
	watchCmd.Flags().BoolVar(&watchFlags.scanExisting, "scan-existing", false, "validate files already in the directory")
}

func watchInbox(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	handler, watcher, err := a.inboxService(ctx)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	if addr, err := a.tel.Serve(); err != nil {
		return cli.NewCommandError("watch", err)
	} else if addr != "" {
		a.logger.Info("telemetry listener started", "addr", addr, "metrics_path", a.cfg.Telemetry.Metrics.Path)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Watching %s (Ctrl+C to stop, SIGHUP reloads validation settings)\n", a.inboxConfig().Dir)
	go a.reloadOnSignal(ctx, cli.ReloadSignals(ctx))

	if err := watcher.Watch(ctx, handler); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}

// inboxConfig is the configured inbox with the watch flags applied. The
// published configuration is left untouched so reloads compare against
// the file.
func (a *app) inboxConfig() config.InboxConfig {
	ic := a.cfg.Inbox
	if watchFlags.dir != "" {
		ic.Dir = watchFlags.dir
	}
	if watchFlags.outputDir != "" {
		ic.OutputDir = watchFlags.outputDir
	}
	return ic
}

// reloadOnSignal reloads the validation settings on every signal until
// ctx is done. A failed reload keeps the running settings.
func (a *app) reloadOnSignal(ctx context.Context, signals <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-signals:
			if err := a.reload(ctx); err != nil {
				a.logger.Warn("configuration reload rejected", "error", err)
			}
		}
	}
}

// reload re-reads the configuration and hands the inbox processor a
// validator built from the new validation section.
func (a *app) reload(ctx context.Context) error {
	cfg, err := config.ReloadConfig(cfgFile, applyFlags)
	if err != nil {
		return err
	}
	a.cfg = cfg
	v, err := a.validator(ctx)
	if err != nil {
		return err
	}
	version := a.schemaVersion(watchFlags.schemaVersion)
	if a.processor != nil {
		a.processor.Reconfigure(v, version)
	}
	a.logger.Info("configuration reloaded",
		"schema_version", version,
		"workers", cfg.Validation.Workers,
		"school_policy", cfg.Validation.MultipleSchoolPolicy,
	)
	return nil
}

// inboxService wires the watcher, processor, history scheduler and health
// checks from the configuration and the watch flags.
func (a *app) inboxService(ctx context.Context) (inbox.Handler, *inbox.Watcher, error) {
	ic := a.inboxConfig()
	if err := os.MkdirAll(ic.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create inbox %s: %w", ic.Dir, err)
	}
	if ic.OutputDir != "" {
		if err := os.MkdirAll(ic.OutputDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create output dir %s: %w", ic.OutputDir, err)
		}
	}

	v, err := a.validator(ctx)
	if err != nil {
		return nil, nil, err
	}

	var store history.Store
	if a.cfg.History.Enabled {
		if store, err = a.historyStore(); err != nil {
			return nil, nil, err
		}
		scheduler := history.NewScheduler(a.pruner(store))
		if err := scheduler.Start(ctx); err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, func() error { scheduler.Stop(); return nil })
	}

	a.tel.Health().RegisterCheck("inbox", health.DirCheck(ic.Dir))

	a.processor = inbox.NewProcessor(v, store, ic.OutputDir, a.schemaVersion(watchFlags.schemaVersion)).
		WithLogger(a.logger.With("component", "inbox.processor")).
		WithTracer(a.tel.Tracer().Tracer())

	watcher, err := inbox.NewWatcher(&inbox.Config{
		Dir:          ic.Dir,
		Extensions:   ic.Extensions,
		Debounce:     ic.Debounce,
		ScanExisting: watchFlags.scanExisting,
	}, a.logger.With("component", "inbox.watcher"))
	if err != nil {
		return nil, nil, err
	}
	a.closers = append(a.closers, watcher.Stop)

	metrics := a.tel.Metrics()
	handler := func(ctx context.Context, path string) error {
		run, err := a.processor.Process(ctx, path)
		switch {
		case err != nil && run == nil:
			metrics.RecordInboxFile(inboxFailed)
		case run.Valid:
			metrics.RecordInboxFile(inboxValid)
		default:
			metrics.RecordInboxFile(inboxInvalid)
		}
		return err
	}
	return handler, watcher, nil
}
