package inbox

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/validator"
	"github.com/oyurisousa/validador-censo-sub000/pkg/history"
	"github.com/oyurisousa/validador-censo-sub000/pkg/telemetry/logging"
	"github.com/oyurisousa/validador-censo-sub000/pkg/telemetry/tracing"
)

// ReportSuffix is appended to a file's base name to form its report name.
const ReportSuffix = ".report.json"

// FileValidator validates one file's content. *validator.Validator
// implements it.
type FileValidator interface {
	ValidateFile(ctx context.Context, content []byte, fileName, schemaVersion string) *validator.Result
}

// Report is what gets written next to (or instead of) a dropped file.
type Report struct {
	RunID       string `json:"runId"`
	TraceParent string `json:"traceparent,omitempty"`
	*validator.Result
}

// Processor validates a file, writes its JSON report and records the run.
type Processor struct {
	mu            sync.RWMutex
	validator     FileValidator
	schemaVersion string

	store     history.Store
	outputDir string
	now       func() time.Time
	tracer        trace.Tracer
	logger        *slog.Logger
}

// NewProcessor creates a processor. A nil store skips history; an empty
// outputDir writes reports next to the input file.
func NewProcessor(v FileValidator, store history.Store, outputDir, schemaVersion string) *Processor {
	return &Processor{
		validator:     v,
		store:         store,
		outputDir:     outputDir,
		schemaVersion: schemaVersion,
		now:           time.Now,
		tracer:        otel.Tracer("github.com/oyurisousa/validador-censo-sub000/pkg/inbox"),
		logger:        slog.Default().With("component", "inbox.processor"),
	}
}

// WithLogger sets the logger.
func (p *Processor) WithLogger(logger *slog.Logger) *Processor {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// WithTracer replaces the global OpenTelemetry tracer.
func (p *Processor) WithTracer(t trace.Tracer) *Processor {
	if t != nil {
		p.tracer = t
	}
	return p
}

// Reconfigure swaps the validator and schema version used for files
// processed from now on. Files already in flight finish with the old ones.
func (p *Processor) Reconfigure(v FileValidator, schemaVersion string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.validator = v
	p.schemaVersion = schemaVersion
}

// SchemaVersion returns the layout year applied to new files.
func (p *Processor) SchemaVersion() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.schemaVersion
}

func (p *Processor) current() (FileValidator, string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.validator, p.schemaVersion
}

// ReportPath returns where the report for path is written.
func (p *Processor) ReportPath(path string) string {
	dir := p.outputDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(dir, base+ReportSuffix)
}

// Process validates the file at path. The report is written atomically so
// a reader never sees a partial file.
func (p *Processor) Process(ctx context.Context, path string) (*history.Run, error) {
	name := filepath.Base(path)
	v, version := p.current()
	ctx = logging.WithSchemaVersion(logging.WithFileName(ctx, name), version)
	ctx, span := p.tracer.Start(ctx, "inbox.process",
		tracing.NewAttributeBuilder().WithFile(name, version).Build())
	defer span.End()

	run, err := p.process(ctx, v, path, name, version)
	tracing.SetError(span, err)
	if run != nil {
		span.SetAttributes(tracing.NewAttributeBuilder().WithRun(run.ID).Attributes()...)
	}
	return run, err
}

func (p *Processor) process(ctx context.Context, v FileValidator, path, name, version string) (*history.Run, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	res := v.ValidateFile(ctx, content, name, version)
	run := history.NewRun(res, p.now())
	ctx = logging.WithRunID(ctx, run.ID)

	report := Report{RunID: run.ID, TraceParent: tracing.TraceParent(ctx), Result: res}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	out := p.ReportPath(path)
	if err := writeAtomic(out, data); err != nil {
		return nil, err
	}

	if p.store != nil {
		if err := p.store.Record(ctx, run); err != nil {
			return run, fmt.Errorf("record run: %w", err)
		}
	}

	p.logger.InfoContext(ctx, "inbox file validated",
		"valid", run.Valid,
		"errors", run.Errors,
		"warnings", run.Warnings,
		"report", out,
	)
	return run, nil
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*")
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close report: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}
