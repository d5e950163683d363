package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/harvest"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/validator"
	"github.com/oyurisousa/validador-censo-sub000/pkg/cli"
	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
	"github.com/oyurisousa/validador-censo-sub000/pkg/history"
	"github.com/oyurisousa/validador-censo-sub000/pkg/inbox"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference/gitseed"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference/sqlite"
	"github.com/oyurisousa/validador-censo-sub000/pkg/telemetry"
	"github.com/oyurisousa/validador-censo-sub000/pkg/telemetry/health"
)

// app holds what every command needs: the configuration, telemetry and
// lazily opened stores. close releases whatever was opened.
type app struct {
	cfg    *config.Config
	tel    *telemetry.Telemetry
	logger *slog.Logger

	refStore *sqlite.Store
	cache    *reference.CachedLookup
	lookup   reference.Lookup
	history  history.Store

	processor *inbox.Processor

	closers []func() error
}

// newApp loads configuration and starts telemetry. Logs go to the command's
// stderr so reports on stdout stay machine readable.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("config", err.Error())
	}
	applyFlags(cfg)
	config.SetConfig(cfg)

	tel, err := telemetry.New(&cfg.Telemetry, telemetry.BuildInfo{
		Version:   Version,
		Commit:    GitCommit,
		BuildDate: BuildDate,
	}, cmd.ErrOrStderr())
	if err != nil {
		return nil, cli.NewConfigError("telemetry", err.Error())
	}

	a := &app{cfg: cfg, tel: tel, logger: tel.Logger().Slog()}
	a.closers = append(a.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return tel.Shutdown(ctx)
	})
	return a, nil
}

// applyFlags applies global flags that override the configuration file.
func applyFlags(cfg *config.Config) {
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
}

// close runs the closers in reverse order of registration.
func (a *app) close() {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	if err := errors.Join(errs...); err != nil {
		a.logger.Warn("shutdown incomplete", "error", err)
	}
}

// referenceStore opens the sqlite reference store.
func (a *app) referenceStore() (*sqlite.Store, error) {
	if a.refStore != nil {
		return a.refStore, nil
	}
	if err := ensureParentDir(a.cfg.Reference.SQLitePath); err != nil {
		return nil, err
	}
	store, err := sqlite.NewWithConfig(sqlite.Config{DBPath: a.cfg.Reference.SQLitePath})
	if err != nil {
		return nil, fmt.Errorf("open reference store: %w", err)
	}
	a.refStore = store
	a.closers = append(a.closers, store.Close)
	return store, nil
}

// referenceLookup builds the configured backend, applies the seed file and
// puts the instrumented cache in front of it.
func (a *app) referenceLookup(ctx context.Context) (reference.Lookup, error) {
	if a.lookup != nil {
		return a.lookup, nil
	}
	rc := a.cfg.Reference

	var (
		backend  reference.Lookup
		importer reference.Importer
	)
	switch rc.Backend {
	case "sqlite":
		store, err := a.referenceStore()
		if err != nil {
			return nil, err
		}
		a.tel.Health().RegisterCheck("reference", health.PingCheck(store))
		backend, importer = store, store
	default:
		store := reference.NewDefaultMemoryStore()
		backend, importer = store, store
	}

	if rc.SeedFile != "" || rc.Git.Repository != "" {
		seed, origin, err := a.loadSeed(ctx, rc.SeedFile)
		if err != nil {
			return nil, err
		}
		counts, err := seed.Apply(ctx, importer)
		if err != nil {
			return nil, err
		}
		a.logger.Info("reference seed applied", "source", origin, "tables", len(counts))
	}

	lookup := reference.Instrument(backend, a.tel.Metrics())
	if rc.CacheSize > 0 {
		a.cache = reference.NewCachedLookup(lookup, rc.CacheTTL, rc.CacheSize)
		a.closers = append(a.closers, func() error { a.cache.Close(); return nil })
		a.tel.Metrics().ObserveCache("reference", a.cache)
		lookup = a.cache
	}
	if rc.LookupTimeout > 0 {
		lookup = withTimeout(lookup, rc.LookupTimeout)
	}
	a.lookup = lookup
	return lookup, nil
}

// loadSeed reads the seed from file, or from the configured Git repository
// when file is empty. origin describes where it came from.
func (a *app) loadSeed(ctx context.Context, file string) (*reference.Seed, string, error) {
	if file != "" {
		seed, err := reference.LoadSeedFile(file)
		return seed, file, err
	}
	gc := a.cfg.Reference.Git
	if gc.Repository == "" {
		return nil, "", fmt.Errorf("no seed file given and reference.git.repository is not set")
	}
	src, err := gitseed.New(gc)
	if err != nil {
		return nil, "", err
	}
	fetched, err := src.Fetch(ctx)
	if err != nil {
		return nil, "", err
	}
	origin := fmt.Sprintf("%s@%s:%s", gc.Repository, fetched.Commit[:12], gc.Path)
	a.logger.Debug("reference seed fetched", "repository", gc.Repository, "commit", fetched.Commit, "author", fetched.Author)
	return fetched.Seed, origin, nil
}

// withTimeout bounds every lookup by d.
func withTimeout(next reference.Lookup, d time.Duration) reference.Lookup {
	return reference.LookupFunc(func(ctx context.Context, table reference.Table, code string) (bool, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next.IsValidCode(ctx, table, code)
	})
}

// historyStore opens the history database.
func (a *app) historyStore() (history.Store, error) {
	if a.history != nil {
		return a.history, nil
	}
	sc := history.DefaultSQLiteConfig()
	sc.Path = a.cfg.History.SQLitePath
	if err := ensureParentDir(sc.Path); err != nil {
		return nil, err
	}
	store, err := history.NewSQLiteStore(sc)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	a.history = store
	a.closers = append(a.closers, store.Close)
	a.tel.Health().RegisterCheck("history", health.PingCheck(store))
	return store, nil
}

// pruner builds the retention pruner reporting to the metrics collector.
func (a *app) pruner(store history.Store) *history.Pruner {
	return history.NewPruner(store, history.RetentionConfig{
		RetentionDays: a.cfg.History.RetentionDays,
		PruneSchedule: a.cfg.History.PruneSchedule,
	}).WithObserver(a.tel.Metrics())
}

// validator builds the engine from the validation settings.
func (a *app) validator(ctx context.Context) (*validator.Validator, error) {
	vc := a.cfg.Validation
	policy, err := harvest.ParseSchoolPolicy(vc.MultipleSchoolPolicy)
	if err != nil {
		return nil, cli.NewConfigError("validation.multiple_school_policy", err.Error())
	}
	lookup, err := a.referenceLookup(ctx)
	if err != nil {
		return nil, err
	}

	v := validator.New().
		WithLookup(lookup).
		WithMaxFileSize(vc.MaxFileSize).
		WithSchoolPolicy(policy).
		WithReferenceYear(vc.ReferenceYear).
		WithObserver(a.tel.Metrics()).
		WithTracer(a.tel.Tracer().Tracer()).
		WithLogger(a.logger.With("component", "censo.validator"))
	if vc.Workers > 0 {
		v = v.WithWorkers(vc.Workers)
	}
	return v, nil
}

// schemaVersion picks the flag value over the configured default.
func (a *app) schemaVersion(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.Validation.SchemaVersion
}

func ensureParentDir(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	return nil
}
