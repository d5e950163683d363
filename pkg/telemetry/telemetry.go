package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
	"github.com/oyurisousa/validador-censo-sub000/pkg/telemetry/health"
	"github.com/oyurisousa/validador-censo-sub000/pkg/telemetry/logging"
	"github.com/oyurisousa/validador-censo-sub000/pkg/telemetry/metrics"
	"github.com/oyurisousa/validador-censo-sub000/pkg/telemetry/tracing"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// Telemetry bundles the logger, metrics collector, tracer and health
// checker of one process.
type Telemetry struct {
	cfg     *config.TelemetryConfig
	build   BuildInfo
	logger  *logging.Logger
	metrics *metrics.Collector
	tracer  *tracing.Tracer
	health  *health.Checker

	server *http.Server
}

// New builds every telemetry component from cfg and installs the logger
// as the slog default. Logs are written to w (stderr when nil).
func New(cfg *config.TelemetryConfig, build BuildInfo, w io.Writer) (*Telemetry, error) {
	logger, err := logging.New(logging.FromConfig(cfg.Logging, w))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	slog.SetDefault(logger.Slog())

	tracer, err := tracing.New(&cfg.Tracing, build.Version)
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}

	return &Telemetry{
		cfg:     cfg,
		build:   build,
		logger:  logger,
		metrics: metrics.NewCollector(&cfg.Metrics, nil),
		tracer:  tracer,
		health:  health.New(2 * time.Second),
	}, nil
}

// Logger returns the process logger.
func (t *Telemetry) Logger() *logging.Logger { return t.logger }

// Metrics returns the metrics collector.
func (t *Telemetry) Metrics() *metrics.Collector { return t.metrics }

// Tracer returns the tracer.
func (t *Telemetry) Tracer() *tracing.Tracer { return t.tracer }

// Health returns the readiness checker.
func (t *Telemetry) Health() *health.Checker { return t.health }

// Handler serves the metrics endpoint and the health endpoints.
func (t *Telemetry) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(t.cfg.Metrics.Path, t.metrics.Handler())
	health.Register(mux, t.health, t.build.Version, t.build.Commit, t.build.BuildDate)
	return mux
}

// Serve starts the telemetry HTTP listener when metrics are enabled. It
// returns the bound address, or "" when nothing was started.
func (t *Telemetry) Serve() (string, error) {
	if !t.cfg.Metrics.Enabled {
		return "", nil
	}
	ln, err := net.Listen("tcp", t.cfg.Metrics.ListenAddress)
	if err != nil {
		return "", fmt.Errorf("listen on %s: %w", t.cfg.Metrics.ListenAddress, err)
	}
	t.server = &http.Server{
		Handler:           t.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := t.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("telemetry server stopped", "error", err)
		}
	}()
	return ln.Addr().String(), nil
}

// Shutdown stops the HTTP listener and flushes pending spans.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.server != nil {
		errs = append(errs, t.server.Shutdown(ctx))
	}
	errs = append(errs, t.tracer.Shutdown(ctx))
	return errors.Join(errs...)
}
