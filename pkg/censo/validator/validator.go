package validator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/crossref"
	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/harvest"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/rules"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

const tracerName = "github.com/oyurisousa/validador-censo-sub000/pkg/censo/validator"

// Observer receives one call per validated file and one per diagnostic.
// The metrics collector implements it.
type Observer interface {
	RecordValidation(phase string, valid bool, records int, duration time.Duration)
	RecordDiagnostic(rule, severity string)
}

// Validator is the validation orchestrator. It is safe for concurrent use;
// every call works on its own contexts and accumulator.
type Validator struct {
	lookup        reference.Lookup
	workers       int
	maxFileSize   int
	policy        harvest.SchoolPolicy
	referenceYear int
	seeds         map[crossref.BondKind][]string
	observer      Observer
	tracer        trace.Tracer
	logger        *slog.Logger
	now           func() time.Time
}

// New creates a validator with one worker per CPU and no reference lookups.
func New() *Validator {
	return &Validator{
		workers: runtime.GOMAXPROCS(0),
		policy:  harvest.LastWins,
		seeds:   make(map[crossref.BondKind][]string),
		tracer:  otel.Tracer(tracerName),
		logger:  slog.Default().With("component", "censo.validator"),
		now:     time.Now,
	}
}

// WithLookup sets the reference-table lookup used by the record rules.
func (v *Validator) WithLookup(l reference.Lookup) *Validator {
	v.lookup = l
	return v
}

// WithWorkers sets how many lines are evaluated in parallel. Values below
// one mean one.
func (v *Validator) WithWorkers(n int) *Validator {
	if n < 1 {
		n = 1
	}
	v.workers = n
	return v
}

// WithMaxFileSize rejects inputs larger than n bytes. Zero means no limit.
func (v *Validator) WithMaxFileSize(n int) *Validator {
	v.maxFileSize = n
	return v
}

// WithSchoolPolicy sets which School record wins when a file has several.
func (v *Validator) WithSchoolPolicy(p harvest.SchoolPolicy) *Validator {
	if p != "" {
		v.policy = p
	}
	return v
}

// WithReferenceYear overrides the census year derived from the schema version.
func (v *Validator) WithReferenceYear(year int) *Validator {
	v.referenceYear = year
	return v
}

// WithExistingBonds marks bonds as already declared before the file, so a
// repeat inside the file is reported as a duplicate.
func (v *Validator) WithExistingBonds(kind crossref.BondKind, keys ...string) *Validator {
	v.seeds[kind] = append(v.seeds[kind], keys...)
	return v
}

// WithObserver sets the metrics observer.
func (v *Validator) WithObserver(o Observer) *Validator {
	v.observer = o
	return v
}

// WithTracer replaces the global OpenTelemetry tracer.
func (v *Validator) WithTracer(t trace.Tracer) *Validator {
	if t != nil {
		v.tracer = t
	}
	return v
}

// WithLogger sets the logger.
func (v *Validator) WithLogger(logger *slog.Logger) *Validator {
	if logger != nil {
		v.logger = logger
	}
	return v
}

// WithClock replaces time.Now for timing and date checks.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	if now != nil {
		v.now = now
	}
	return v
}

// ValidateFile validates the raw bytes of a census file.
func (v *Validator) ValidateFile(ctx context.Context, content []byte, fileName, schemaVersion string) *Result {
	start := v.now()
	ctx, span := v.tracer.Start(ctx, "censo.validate_file", trace.WithAttributes(
		attribute.String("censo.file_name", fileName),
		attribute.Int("censo.size_bytes", len(content)),
	))
	defer span.End()

	meta := newMetadata(fileName, schemaVersion)
	meta.SizeBytes = len(content)

	year, err := layout.ParseSchemaVersion(schemaVersion)
	if err != nil {
		return v.fatal(ctx, span, start, meta, censoErrors.RuleUnsupportedSchemaVersion, "%v", err)
	}
	if v.maxFileSize > 0 && len(content) > v.maxFileSize {
		return v.fatal(ctx, span, start, meta, censoErrors.RuleFileTooLarge,
			"file has %d bytes, the limit is %d", len(content), v.maxFileSize)
	}

	dec, err := record.Decode(content)
	meta.SHA256 = dec.SHA256
	meta.Encoding = string(dec.Encoding)
	if err != nil {
		if errors.Is(err, record.ErrUnreadable) {
			return v.fatal(ctx, span, start, meta, censoErrors.RuleUnreadableFile, "the file is not a text file")
		}
		return v.fatal(ctx, span, start, meta, censoErrors.RuleUnreadableFile, "the file cannot be read: %v", err)
	}

	lines, stats := record.Split(dec.Text)
	meta.TotalLines = stats.TotalLines
	meta.BlankLines = stats.BlankLines

	var pre []censoErrors.ValidationError
	if dec.Encoding == record.EncodingLatin1 {
		pre = append(pre, censoErrors.FileLevel(censoErrors.RuleLatin1Encoding, censoErrors.SeverityInfo,
			"the file is not valid UTF-8 and was read as ISO-8859-1"))
	}
	return v.run(ctx, span, start, year, lines, meta, pre)
}

// ValidateRecords validates lines the caller already split. Line numbers
// follow slice positions, starting at one.
func (v *Validator) ValidateRecords(ctx context.Context, lines []string, fileName, schemaVersion string) *Result {
	start := v.now()
	ctx, span := v.tracer.Start(ctx, "censo.validate_records", trace.WithAttributes(
		attribute.String("censo.file_name", fileName),
		attribute.Int("censo.lines", len(lines)),
	))
	defer span.End()

	joined := strings.Join(lines, "\n")
	sum := sha256.Sum256([]byte(joined))
	meta := newMetadata(fileName, schemaVersion)
	meta.SizeBytes = len(joined)
	meta.SHA256 = hex.EncodeToString(sum[:])
	meta.Encoding = string(record.EncodingUTF8)

	year, err := layout.ParseSchemaVersion(schemaVersion)
	if err != nil {
		return v.fatal(ctx, span, start, meta, censoErrors.RuleUnsupportedSchemaVersion, "%v", err)
	}

	parsed, stats := record.SplitLines(lines)
	meta.TotalLines = stats.TotalLines
	meta.BlankLines = stats.BlankLines
	return v.run(ctx, span, start, year, parsed, meta, nil)
}

func newMetadata(fileName, schemaVersion string) FileMetadata {
	if schemaVersion == "" {
		schemaVersion = layout.DefaultSchemaVersion
	}
	return FileMetadata{
		FileName:      fileName,
		SchemaVersion: schemaVersion,
		RecordCounts:  make(map[string]int),
	}
}

// run drives the passes: structure, context build, record rules and
// cross-reference, in that order. The context build completes before the
// first cross-reference check.
func (v *Validator) run(ctx context.Context, span trace.Span, start time.Time, year int, lines []record.ParsedLine, meta FileMetadata, pre []censoErrors.ValidationError) *Result {
	if len(lines) == 0 {
		return v.fatal(ctx, span, start, meta, censoErrors.RuleEmptyFile, "the file has no records")
	}
	if v.referenceYear != 0 {
		year = v.referenceYear
	}
	for _, l := range lines {
		meta.RecordCounts[countKey(l)]++
	}

	all := censoErrors.NewErrorList()
	all.Append(pre...)

	hctx, hspan := v.tracer.Start(ctx, "censo.harvest")
	view := harvest.NewBuilder().WithSchoolPolicy(v.policy).WithLogger(v.logger).Build(hctx, lines)
	hspan.SetAttributes(
		attribute.Int("censo.persons", len(view.Persons)),
		attribute.Int("censo.classes", len(view.Classes)),
	)
	hspan.End()

	st := checkStructure(lines, view)
	meta.Phase = st.phase
	all.Append(st.diagnostics...)
	all.Append(view.Diagnostics...)

	evaluator := rules.NewEvaluator().
		WithLookup(v.lookup).
		WithReferenceYear(year).
		WithClock(v.now).
		WithLogger(v.logger)
	perLine, processed := v.evaluate(ctx, evaluator, lines, st.skip)
	for _, errs := range perLine {
		all.Append(errs...)
	}

	all.Append(v.resolve(ctx, year, lines, st.skip, view)...)
	all.Sort()

	return v.assemble(ctx, span, start, meta, all.Errors, len(lines), processed)
}

// evaluate runs the record rules of every line on a pool of workers. Each
// worker writes only the slots of the lines it took, so results keep line
// order without locking.
func (v *Validator) evaluate(ctx context.Context, e *rules.Evaluator, lines []record.ParsedLine, skip map[int]bool) ([][]censoErrors.ValidationError, int) {
	ctx, span := v.tracer.Start(ctx, "censo.record_rules")
	defer span.End()

	out := make([][]censoErrors.ValidationError, len(lines))
	jobs := make(chan int)
	var processed atomic.Int64

	workers := v.workers
	if workers > len(lines) {
		workers = len(lines)
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				l := lines[i]
				out[i] = v.safely(ctx, l, "record_rules", func() []censoErrors.ValidationError {
					return e.Validate(ctx, l.Type, l.Fields, l.LineNumber)
				})
				processed.Add(1)
			}
		}()
	}
	for i := range lines {
		if !skip[i] {
			jobs <- i
		}
	}
	close(jobs)
	wg.Wait()

	span.SetAttributes(attribute.Int64("censo.processed", processed.Load()))
	return out, int(processed.Load())
}

// resolve is the cross-reference pass. It runs on one goroutine, in line
// order, so the bond accumulator has a single writer.
func (v *Validator) resolve(ctx context.Context, year int, lines []record.ParsedLine, skip map[int]bool, view *harvest.Contexts) []censoErrors.ValidationError {
	ctx, span := v.tracer.Start(ctx, "censo.crossref")
	defer span.End()

	cross := crossref.NewValidator().WithReferenceYear(year).WithLogger(v.logger)
	acc := crossref.NewBondAccumulator()
	for kind, keys := range v.seeds {
		acc.Seed(kind, keys...)
	}

	var out []censoErrors.ValidationError
	for i, l := range lines {
		if skip[i] || l.Type == layout.Unrecognized {
			continue
		}
		out = append(out, v.safely(ctx, l, "crossref", func() []censoErrors.ValidationError {
			return cross.Validate(ctx, l.Type, l.Fields, l.LineNumber, view, acc)
		})...)
	}
	return append(out, cross.FileChecks(view)...)
}

// safely runs fn and turns a panic into a line_processing_error for the line.
func (v *Validator) safely(ctx context.Context, l record.ParsedLine, stage string, fn func() []censoErrors.ValidationError) (out []censoErrors.ValidationError) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.ErrorContext(ctx, "line processing failed",
				"line", l.LineNumber,
				"record_type", l.Code,
				"stage", stage,
				"panic", r,
			)
			out = []censoErrors.ValidationError{
				censoErrors.Structural(l.LineNumber, l.Code, censoErrors.RuleLineProcessingError, censoErrors.SeverityError,
					"internal error while checking the line (%s): %v", stage, r),
			}
		}
	}()
	return fn()
}

func (v *Validator) fatal(ctx context.Context, span trace.Span, start time.Time, meta FileMetadata, rule, format string, args ...any) *Result {
	d := censoErrors.FileLevel(rule, censoErrors.SeverityError, format, args...)
	span.SetStatus(codes.Error, d.Message)
	return v.assemble(ctx, span, start, meta, []censoErrors.ValidationError{d}, 0, 0)
}

func (v *Validator) assemble(ctx context.Context, span trace.Span, start time.Time, meta FileMetadata, all []censoErrors.ValidationError, total, processed int) *Result {
	errs, warnings := partition(all)
	elapsed := v.now().Sub(start)

	res := &Result{
		IsValid:          len(errs) == 0,
		Errors:           errs,
		Warnings:         warnings,
		TotalRecords:     total,
		ProcessedRecords: processed,
		ProcessingTimeMs: elapsed.Milliseconds(),
		FileMetadata:     meta,
	}

	span.SetAttributes(
		attribute.Bool("censo.valid", res.IsValid),
		attribute.Int("censo.errors", len(errs)),
		attribute.Int("censo.warnings", len(warnings)),
	)
	if v.observer != nil {
		v.observer.RecordValidation(string(meta.Phase), res.IsValid, total, elapsed)
		for _, d := range all {
			v.observer.RecordDiagnostic(d.RuleName, string(d.Severity))
		}
	}
	v.logger.InfoContext(ctx, "file validated",
		"file_name", meta.FileName,
		"phase", string(meta.Phase),
		"valid", res.IsValid,
		"records", total,
		"errors", len(errs),
		"warnings", len(warnings),
		"duration_ms", res.ProcessingTimeMs,
	)
	return res
}

func countKey(l record.ParsedLine) string {
	if l.Type == layout.Unrecognized {
		return "unrecognized"
	}
	return l.Type.Code()
}
