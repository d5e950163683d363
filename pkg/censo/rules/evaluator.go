package rules

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/field"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

// Evaluator is the record rule evaluator: field count, every field rule of
// the schema, then the business predicates of the record type.
type Evaluator struct {
	lookup        reference.Lookup
	referenceYear int
	now           func() time.Time
	logger        *slog.Logger
}

// NewEvaluator creates an evaluator without reference lookups.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		now:    time.Now,
		logger: slog.Default().With("component", "censo.rules"),
	}
}

// WithLookup sets the reference-table lookup used by code checks.
func (e *Evaluator) WithLookup(l reference.Lookup) *Evaluator {
	e.lookup = l
	return e
}

// WithReferenceYear sets the census year that school-year dates must fall in.
// Zero disables those checks.
func (e *Evaluator) WithReferenceYear(year int) *Evaluator {
	e.referenceYear = year
	return e
}

// WithClock replaces time.Now for date checks.
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	e.now = now
	return e
}

// WithLogger sets the logger.
func (e *Evaluator) WithLogger(logger *slog.Logger) *Evaluator {
	if logger != nil {
		e.logger = logger
	}
	return e
}

// Validate evaluates one record. A wrong field count yields a single
// invalid_field_count diagnostic and skips the remaining checks, since
// positions can no longer be trusted.
func (e *Evaluator) Validate(ctx context.Context, rt layout.RecordType, fields []string, lineNumber int) []censoErrors.ValidationError {
	schema, ok := layout.SchemaFor(rt)
	if !ok {
		code := ""
		if len(fields) > 0 {
			code = strings.TrimSpace(fields[0])
		}
		return []censoErrors.ValidationError{
			censoErrors.Structural(lineNumber, code, censoErrors.RuleInvalidRecordType, censoErrors.SeverityError,
				"unknown record type %q", code),
		}
	}

	if len(fields) != schema.FieldCount() {
		return []censoErrors.ValidationError{
			censoErrors.Structural(lineNumber, rt.Code(), censoErrors.RuleInvalidFieldCount, censoErrors.SeverityError,
				"record %s must have %d fields, found %d", rt.Code(), schema.FieldCount(), len(fields)),
		}
	}

	out := censoErrors.NewErrorList()
	fb := censoErrors.NewBuilder(lineNumber, rt, censoErrors.CategoryField, fields)
	bb := fb.WithCategory(censoErrors.CategoryBusiness)

	for _, r := range schema.Fields {
		raw := fields[r.Index()]
		out.Append(field.Validate(fb, r, raw)...)

		if r.When != nil && !r.OptionalOtherwise && strings.TrimSpace(raw) != "" && !r.When.Holds(fields) {
			out.Add(bb.Field(r.Position, censoErrors.RuleConditionalNotAllowed,
				"%s must be empty unless %s", r.Description, r.When))
		}
	}

	rec, ok := record.New(record.ParsedLine{LineNumber: lineNumber, Type: rt, Fields: fields})
	if !ok {
		return out.Errors
	}
	c := &checker{ctx: ctx, e: e, schema: schema, b: bb, base: baseOf(rec), out: out}
	if err := rec.Accept(c); err != nil {
		e.logger.Warn("business rules aborted", "line", lineNumber, "record_type", rt.Code(), "error", err)
	}
	return out.Errors
}

func baseOf(r record.Record) record.Base {
	return record.Base{Line: r.LineNumber(), Fields: r.Values()}
}

// checker runs the business predicates of one record. It implements
// record.Visitor; each Visit method is the rule set of one record type.
type checker struct {
	ctx    context.Context
	e      *Evaluator
	schema *layout.Schema
	b      censoErrors.Builder
	base   record.Base
	out    *censoErrors.ErrorList
}

func (c *checker) get(p int) string { return c.base.Get(p) }
func (c *checker) set(p int) bool   { return c.base.IsSet(p) }
func (c *checker) one(p int) bool   { return c.base.IsOne(p) }

func (c *checker) fail(p int, rule, format string, args ...any) {
	c.out.Add(c.b.Field(p, rule, format, args...))
}

func (c *checker) warn(p int, rule, format string, args ...any) {
	c.out.Add(c.b.FieldWarning(p, rule, format, args...))
}

func (c *checker) failRecord(rule, format string, args ...any) {
	c.out.Add(c.b.Record(rule, format, args...))
}

func (c *checker) desc(p int) string {
	if r, ok := c.schema.Field(p); ok {
		return r.Description
	}
	return ""
}

// lookup checks a set field against a reference table. A missing table is
// skipped silently; any other lookup failure is a warning, never a reason to
// reject the file.
func (c *checker) lookup(table reference.Table, p int) {
	if c.e.lookup == nil || !c.set(p) {
		return
	}
	code := c.get(p)
	ok, err := c.e.lookup.IsValidCode(c.ctx, table, code)
	switch {
	case errors.Is(err, reference.ErrTableNotLoaded):
		return
	case err != nil:
		c.e.logger.Warn("reference lookup failed", "table", table.String(), "line", c.b.Line, "error", err)
		c.warn(p, censoErrors.RuleReferenceLookupFailed, "could not check %s %q against the %s table: %v", c.desc(p), code, table, err)
	case !ok:
		c.fail(p, censoErrors.RuleInvalidReferenceCode, "%s %q is not in the %s table", c.desc(p), code, table)
	}
}
