package crossref

import (
	"context"
	"log/slog"
	"time"

	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/harvest"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
)

// Validator is the cross-reference validator. It resolves the codes a
// record carries against the harvested contexts and applies the rules whose
// outcome depends on the referenced school, person or class.
type Validator struct {
	referenceYear int
	logger        *slog.Logger
}

// NewValidator creates a validator with no reference year.
func NewValidator() *Validator {
	return &Validator{
		logger: slog.Default().With("component", "censo.crossref"),
	}
}

// WithReferenceYear sets the census year. It fixes the reference date used
// for age checks; zero disables them.
func (v *Validator) WithReferenceYear(year int) *Validator {
	v.referenceYear = year
	return v
}

// WithLogger sets the logger.
func (v *Validator) WithLogger(logger *slog.Logger) *Validator {
	if logger != nil {
		v.logger = logger
	}
	return v
}

// ReferenceDate returns the census reference date of year: the last
// Wednesday of May.
func ReferenceDate(year int) time.Time {
	d := time.Date(year, time.May, 31, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// Validate checks one line against the contexts. view must be complete
// before the first call; acc is updated in place and must see the lines in
// file order. Lines with the wrong field count are left to the structural
// checks.
func (v *Validator) Validate(ctx context.Context, rt layout.RecordType, fields []string, lineNumber int, view *harvest.Contexts, acc *BondAccumulator) []censoErrors.ValidationError {
	if view == nil || len(fields) != layout.FieldCount(rt) {
		return nil
	}
	rec, ok := record.New(record.ParsedLine{LineNumber: lineNumber, Type: rt, Fields: fields})
	if !ok {
		return nil
	}
	if acc == nil {
		acc = NewBondAccumulator()
	}

	schema, _ := layout.SchemaFor(rt)
	c := &checker{
		ctx:    ctx,
		v:      v,
		view:   view,
		acc:    acc,
		schema: schema,
		b:      censoErrors.NewBuilder(lineNumber, rt, censoErrors.CategoryCrossRef, fields),
		base:   record.Base{Line: lineNumber, Fields: fields},
		out:    censoErrors.NewErrorList(),
	}
	if err := rec.Accept(c); err != nil {
		v.logger.WarnContext(ctx, "cross-reference checks aborted", "line", lineNumber, "record_type", rt.Code(), "error", err)
	}
	return c.out.Errors
}

// FileChecks returns the diagnostics that concern the file as a whole once
// every line has been resolved.
func (v *Validator) FileChecks(view *harvest.Contexts) []censoErrors.ValidationError {
	if view == nil || view.School == nil {
		return nil
	}
	var out []censoErrors.ValidationError
	if view.School.Active() && !view.HasDirector {
		d := censoErrors.FileLevel(censoErrors.RuleDirectorMissing, censoErrors.SeverityWarning,
			"active school %s has no manager bond with the director role", view.School.Code)
		d.Category = censoErrors.CategoryCrossRef
		out = append(out, d)
	}
	return out
}

// checker resolves one record. Each Visit method is the rule set of one
// record type.
type checker struct {
	ctx    context.Context
	v      *Validator
	view   *harvest.Contexts
	acc    *BondAccumulator
	schema *layout.Schema
	b      censoErrors.Builder
	base   record.Base
	out    *censoErrors.ErrorList
}

func (c *checker) get(p int) string { return c.base.Get(p) }
func (c *checker) set(p int) bool   { return c.base.IsSet(p) }

func (c *checker) fail(p int, rule, format string, args ...any) {
	c.out.Add(c.b.Field(p, rule, format, args...))
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

func (c *checker) anyOne(positions ...int) bool {
	for _, p := range positions {
		if c.base.IsOne(p) {
			return true
		}
	}
	return false
}

func (c *checker) anySet(positions ...int) (int, bool) {
	for _, p := range positions {
		if c.set(p) {
			return p, true
		}
	}
	return 0, false
}

// school checks the school code at p against the harvested School record.
// Nothing is reported when the file has no School record; that is a
// structural error already.
func (c *checker) school(p int) {
	s := c.view.School
	if s == nil {
		return
	}
	if code := c.get(p); code != s.Code {
		c.fail(p, censoErrors.RuleSchoolCodeMismatch,
			"school code %s does not match the school record (%s)", code, s.Code)
	}
}

// person resolves the person code at codePos and checks the INEP id at
// inepPos against it.
func (c *checker) person(codePos, inepPos int) (*harvest.PersonContext, bool) {
	code := c.get(codePos)
	p, ok := c.view.Person(code)
	if !ok {
		c.fail(codePos, censoErrors.RulePersonNotFound, "no person record with code %s", code)
		return nil, false
	}
	if inep := c.get(inepPos); inep != "" && p.INEPID != "" && inep != p.INEPID {
		c.fail(inepPos, censoErrors.RulePersonINEPMismatch,
			"INEP id %s differs from %s on the person record (line %d)", inep, p.INEPID, p.Line)
	}
	return p, true
}

// class resolves the class code at codePos and checks the class INEP code
// at inepPos against it.
func (c *checker) class(codePos, inepPos int) (*harvest.ClassContext, bool) {
	code := c.get(codePos)
	cl, ok := c.view.Class(code)
	if !ok {
		c.fail(codePos, censoErrors.RuleClassNotFound, "no class record with code %s", code)
		return nil, false
	}
	if inep := c.get(inepPos); inep != "" && cl.INEPCode != "" && inep != cl.INEPCode {
		c.fail(inepPos, censoErrors.RuleClassINEPMismatch,
			"class INEP code %s differs from %s on the class record (line %d)", inep, cl.INEPCode, cl.Line)
	}
	return cl, true
}

// duplicate observes key in the accumulator and reports a repeat at p.
func (c *checker) duplicate(kind BondKind, key string, p int, rule, what string) bool {
	first, dup := c.acc.Observe(kind, key, c.b.Line)
	if !dup {
		return false
	}
	if first > 0 {
		c.fail(p, rule, "%s is already declared on line %d", what, first)
	} else {
		c.fail(p, rule, "%s is already declared", what)
	}
	return true
}

func (c *checker) VisitFileEnd(*record.FileEnd) error { return nil }
