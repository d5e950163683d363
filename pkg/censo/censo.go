// Package censo validates Educacenso school census files.
//
// The two entry points mirror how files reach the engine:
//
//	res := censo.ValidateFile(ctx, content, "escola.txt", "2025")
//	res := censo.ValidateRecords(ctx, lines, "escola.txt", "2025")
//
// Both always return a Result; problems with the input are diagnostics, not
// Go errors. Options tune the run, for example to plug in reference tables:
//
//	res := censo.ValidateFile(ctx, content, name, "",
//		censo.WithLookup(store),
//		censo.WithExistingBonds(crossref.ManagerBonds, "DIR001"),
//	)
package censo

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/crossref"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/harvest"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/validator"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

// Result is the outcome of one validation run.
type Result = validator.Result

// FileMetadata describes the validated input.
type FileMetadata = validator.FileMetadata

// Option configures a validation run.
type Option func(*validator.Validator)

// WithLookup sets the reference-table lookup. Without one, reference code
// checks are skipped.
func WithLookup(l reference.Lookup) Option {
	return func(v *validator.Validator) { v.WithLookup(l) }
}

// WithWorkers bounds the number of goroutines evaluating record rules.
func WithWorkers(n int) Option {
	return func(v *validator.Validator) { v.WithWorkers(n) }
}

// WithMaxFileSize rejects inputs larger than n bytes. Zero means no limit.
func WithMaxFileSize(n int) Option {
	return func(v *validator.Validator) { v.WithMaxFileSize(n) }
}

// WithSchoolPolicy chooses which School record wins when a file has several.
func WithSchoolPolicy(p harvest.SchoolPolicy) Option {
	return func(v *validator.Validator) { v.WithSchoolPolicy(p) }
}

// WithReferenceYear overrides the census year derived from the schema
// version.
func WithReferenceYear(year int) Option {
	return func(v *validator.Validator) { v.WithReferenceYear(year) }
}

// WithExistingBonds declares bonds already registered before this file, so
// that declaring them again is reported as a duplicate.
func WithExistingBonds(kind crossref.BondKind, keys ...string) Option {
	return func(v *validator.Validator) { v.WithExistingBonds(kind, keys...) }
}

// WithObserver reports run outcomes to a metrics sink.
func WithObserver(o validator.Observer) Option {
	return func(v *validator.Validator) { v.WithObserver(o) }
}

// WithTracer sets the tracer for validation spans.
func WithTracer(t trace.Tracer) Option {
	return func(v *validator.Validator) { v.WithTracer(t) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(v *validator.Validator) { v.WithLogger(l) }
}

// New builds a reusable validator from options.
func New(opts ...Option) *validator.Validator {
	v := validator.New()
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateFile validates the raw bytes of a census file. An empty
// schemaVersion selects the current layout.
func ValidateFile(ctx context.Context, content []byte, fileName, schemaVersion string, opts ...Option) *Result {
	return New(opts...).ValidateFile(ctx, content, fileName, schemaVersion)
}

// ValidateRecords validates lines that were already split. Line numbers
// start at one.
func ValidateRecords(ctx context.Context, lines []string, fileName, schemaVersion string, opts ...Option) *Result {
	return New(opts...).ValidateRecords(ctx, lines, fileName, schemaVersion)
}
