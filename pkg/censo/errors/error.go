package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
)

// Severity grades a diagnostic. Only SeverityError affects validity.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Category says which stage of the engine produced a diagnostic.
type Category string

const (
	CategoryStructural Category = "structural" // file and line shape
	CategoryField      Category = "field"      // one field against its schema rule
	CategoryBusiness   Category = "business"   // multi-field predicates inside one record
	CategoryCrossRef   Category = "crossref"   // resolution against harvested contexts
)

// ValidationError is one diagnostic. Values are created once and never mutated.
type ValidationError struct {
	LineNumber    int      `json:"lineNumber"`
	RecordType    string   `json:"recordType,omitempty"`
	FieldName     string   `json:"fieldName,omitempty"`
	FieldPosition int      `json:"fieldPosition,omitempty"`
	FieldValue    string   `json:"fieldValue,omitempty"`
	RuleName      string   `json:"ruleName"`
	Message       string   `json:"errorMessage"`
	Severity      Severity `json:"severity"`
	Category      Category `json:"category"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	var sb strings.Builder
	if e.LineNumber > 0 {
		fmt.Fprintf(&sb, "line %d", e.LineNumber)
	} else {
		sb.WriteString("file")
	}
	if e.RecordType != "" {
		fmt.Fprintf(&sb, " [%s]", e.RecordType)
	}
	if e.FieldName != "" {
		if e.FieldPosition > 0 {
			fmt.Fprintf(&sb, " %s(#%d)", e.FieldName, e.FieldPosition)
		} else {
			fmt.Fprintf(&sb, " %s", e.FieldName)
		}
	}
	fmt.Fprintf(&sb, ": %s: %s (%s)", e.Severity, e.Message, e.RuleName)
	return sb.String()
}

// IsError reports whether the diagnostic has error severity.
func (e ValidationError) IsError() bool { return e.Severity == SeverityError }

// ErrorList accumulates diagnostics for one line or one file. Validators add
// to it and never stop at the first problem.
type ErrorList struct {
	Errors []ValidationError
}

// NewErrorList creates an empty list.
func NewErrorList() *ErrorList {
	return &ErrorList{Errors: make([]ValidationError, 0)}
}

// Add appends a diagnostic.
func (el *ErrorList) Add(err ValidationError) {
	el.Errors = append(el.Errors, err)
}

// Append appends several diagnostics.
func (el *ErrorList) Append(errs ...ValidationError) {
	el.Errors = append(el.Errors, errs...)
}

// Merge appends every diagnostic of another list.
func (el *ErrorList) Merge(other *ErrorList) {
	if other == nil {
		return
	}
	el.Errors = append(el.Errors, other.Errors...)
}

// Count returns the number of diagnostics, whatever their severity.
func (el *ErrorList) Count() int { return len(el.Errors) }

// HasErrors reports whether any diagnostic has error severity.
func (el *ErrorList) HasErrors() bool {
	for _, e := range el.Errors {
		if e.IsError() {
			return true
		}
	}
	return false
}

// BySeverity returns the diagnostics with the given severity.
func (el *ErrorList) BySeverity(s Severity) []ValidationError {
	var out []ValidationError
	for _, e := range el.Errors {
		if e.Severity == s {
			out = append(out, e)
		}
	}
	return out
}

// ByRule returns the diagnostics produced by a rule.
func (el *ErrorList) ByRule(rule string) []ValidationError {
	var out []ValidationError
	for _, e := range el.Errors {
		if e.RuleName == rule {
			out = append(out, e)
		}
	}
	return out
}

// HasRule reports whether a rule produced at least one diagnostic.
func (el *ErrorList) HasRule(rule string) bool {
	for _, e := range el.Errors {
		if e.RuleName == rule {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by line number, keeping the emission order of
// diagnostics on the same line. File-level diagnostics (line 0) come first.
func (el *ErrorList) Sort() {
	sort.SliceStable(el.Errors, func(i, j int) bool {
		return el.Errors[i].LineNumber < el.Errors[j].LineNumber
	})
}

// Error implements the error interface.
func (el *ErrorList) Error() string {
	if len(el.Errors) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "found %d diagnostic(s):\n", len(el.Errors))
	for _, e := range el.Errors {
		sb.WriteString("  ")
		sb.WriteString(e.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToError returns nil when no diagnostic has error severity.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// Builder fills the line and record context shared by every diagnostic of
// one record, so validators only state what is specific to each finding.
type Builder struct {
	Line     int
	Type     layout.RecordType
	Category Category
	Fields   []string
}

// NewBuilder creates a builder for one line.
func NewBuilder(line int, rt layout.RecordType, category Category, fields []string) Builder {
	return Builder{Line: line, Type: rt, Category: category, Fields: fields}
}

// Field builds an error-severity diagnostic about the field at a 1-based position.
func (b Builder) Field(position int, rule, format string, args ...any) ValidationError {
	return b.at(position, rule, SeverityError, format, args...)
}

// FieldWarning is Field with warning severity.
func (b Builder) FieldWarning(position int, rule, format string, args ...any) ValidationError {
	return b.at(position, rule, SeverityWarning, format, args...)
}

// Record builds an error-severity diagnostic about the record as a whole.
func (b Builder) Record(rule, format string, args ...any) ValidationError {
	return b.at(0, rule, SeverityError, format, args...)
}

// RecordWarning is Record with warning severity.
func (b Builder) RecordWarning(rule, format string, args ...any) ValidationError {
	return b.at(0, rule, SeverityWarning, format, args...)
}

// WithCategory returns a copy of the builder for another category.
func (b Builder) WithCategory(c Category) Builder {
	b.Category = c
	return b
}

func (b Builder) at(position int, rule string, sev Severity, format string, args ...any) ValidationError {
	e := ValidationError{
		LineNumber: b.Line,
		RecordType: b.Type.Code(),
		RuleName:   rule,
		Message:    fmt.Sprintf(format, args...),
		Severity:   sev,
		Category:   b.Category,
	}
	if position > 0 {
		e.FieldPosition = position
		e.FieldName = layout.FieldName(b.Type, position)
		if position-1 < len(b.Fields) {
			e.FieldValue = b.Fields[position-1]
		}
	}
	return e
}

// FileLevel builds a structural diagnostic that is not tied to a line.
func FileLevel(rule string, sev Severity, format string, args ...any) ValidationError {
	return ValidationError{
		RuleName: rule,
		Message:  fmt.Sprintf(format, args...),
		Severity: sev,
		Category: CategoryStructural,
	}
}

// Structural builds a structural diagnostic for one line.
func Structural(line int, recordType, rule string, sev Severity, format string, args ...any) ValidationError {
	return ValidationError{
		LineNumber: line,
		RecordType: recordType,
		RuleName:   rule,
		Message:    fmt.Sprintf(format, args...),
		Severity:   sev,
		Category:   CategoryStructural,
	}
}
