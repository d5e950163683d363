package layout

import (
	"regexp"
	"strconv"
	"strings"
)

// SemanticType is the kind of value a field carries beyond its raw text.
type SemanticType uint8

const (
	// Text fields are free text; only length and pattern apply.
	Text SemanticType = iota
	// Numeric fields must parse as a number.
	Numeric
	// CalendarDate fields must be DD/MM/YYYY and name a real day.
	CalendarDate
	// Code fields are coded enumerations; the pattern carries the allowed set.
	Code
)

// String implements fmt.Stringer.
func (t SemanticType) String() string {
	switch t {
	case Numeric:
		return "numeric"
	case CalendarDate:
		return "calendarDate"
	case Code:
		return "code"
	default:
		return "text"
	}
}

// FieldRule describes one positional field of a record type.
// Rules are built once by the schema tables and never mutated afterwards.
type FieldRule struct {
	Position    int // 1-based; the split index is Position-1
	Name        string
	Required    bool
	MinLength   int // 0 = unbounded
	MaxLength   int // 0 = unbounded
	ExactLength int // takes precedence over Min/Max when set
	Pattern     *regexp.Regexp
	Type        SemanticType

	// When makes the field required if the condition holds. Unless
	// OptionalOtherwise is set, a value present while the condition does
	// not hold is reported as not allowed.
	When              *Conditional
	OptionalOtherwise bool

	Description string
}

// Index returns the zero-based split index of the field.
func (r FieldRule) Index() int { return r.Position - 1 }

// Conditional is a requiredness predicate over sibling fields of the same
// record: the field named Field must hold one of In, and when AndField is set
// the field named AndField must hold one of AndIn as well.
// Field names are resolved to indices when the owning schema is built.
type Conditional struct {
	Field    string
	In       []string
	AndField string
	AndIn    []string

	index    int
	andIndex int
	resolved bool
}

// when builds a Conditional that holds when field carries one of values.
func when(field string, values ...string) *Conditional {
	return &Conditional{Field: field, In: values, index: -1, andIndex: -1}
}

// And adds a second clause to the condition.
func (c *Conditional) And(field string, values ...string) *Conditional {
	c.AndField = field
	c.AndIn = values
	return c
}

// Holds evaluates the condition against the raw fields of a record.
// An index beyond the end of fields reads as empty.
func (c *Conditional) Holds(fields []string) bool {
	if c == nil {
		return false
	}
	if !containsValue(c.In, valueAt(fields, c.index)) {
		return false
	}
	if c.andIndex >= 0 && !containsValue(c.AndIn, valueAt(fields, c.andIndex)) {
		return false
	}
	return true
}

// Indices returns the resolved split indices. andIndex is -1 without a second clause.
func (c *Conditional) Indices() (index, andIndex int) {
	return c.index, c.andIndex
}

// String renders the condition for messages and the layout command.
func (c *Conditional) String() string {
	if c == nil {
		return ""
	}
	s := c.Field + " in [" + strings.Join(c.In, ",") + "]"
	if c.AndField != "" {
		s += " and " + c.AndField + " in [" + strings.Join(c.AndIn, ",") + "]"
	}
	return s
}

func valueAt(fields []string, index int) string {
	if index < 0 || index >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[index])
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// option configures a FieldRule inside a schema table.
type option func(*FieldRule)

// f builds a field rule. Tables list one call per position.
func f(position int, name, description string, opts ...option) FieldRule {
	r := FieldRule{Position: position, Name: name, Description: description}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// required marks the field as always required.
func required() option { return func(r *FieldRule) { r.Required = true } }

// length sets inclusive length bounds; 0 leaves a bound open.
func length(min, max int) option {
	return func(r *FieldRule) { r.MinLength, r.MaxLength = min, max }
}

// maxLen sets only the upper length bound.
func maxLen(max int) option { return func(r *FieldRule) { r.MaxLength = max } }

// exact requires the value to have exactly n characters.
func exact(n int) option { return func(r *FieldRule) { r.ExactLength = n } }

// matches attaches a pattern.
func matches(re *regexp.Regexp) option { return func(r *FieldRule) { r.Pattern = re } }

// oneOf restricts the field to a closed set of codes.
func oneOf(values ...string) option {
	re := codeSetPattern(values)
	return func(r *FieldRule) {
		r.Pattern = re
		r.Type = Code
	}
}

// flag is a 0/1 indicator.
func flag() option {
	return func(r *FieldRule) {
		r.Pattern = reFlag
		r.ExactLength = 1
		r.Type = Code
	}
}

// digits is a numeric identifier of exactly n digits.
func digits(n int) option {
	re := digitsPattern(n)
	return func(r *FieldRule) {
		r.Pattern = re
		r.ExactLength = n
		r.Type = Code
	}
}

// count is a non-negative quantity of at most width digits.
func count(width int) option {
	return func(r *FieldRule) {
		r.Pattern = reDigits
		r.MaxLength = width
		r.Type = Numeric
	}
}

// date is a DD/MM/YYYY calendar date.
func date() option {
	return func(r *FieldRule) {
		r.ExactLength = 10
		r.Type = CalendarDate
	}
}

// requiredWhen attaches a conditional requirement.
func requiredWhen(c *Conditional) option { return func(r *FieldRule) { r.When = c } }

// optionalOtherwise keeps the field optional when its condition does not hold.
func optionalOtherwise() option { return func(r *FieldRule) { r.OptionalOtherwise = true } }

var (
	reFlag        = regexp.MustCompile(`^[01]$`)
	reDigits      = regexp.MustCompile(`^[0-9]+$`)
	reAlnum       = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	reUpperName   = regexp.MustCompile(`^[\p{Lu}0-9ªº'\-./ ]+$`)
	rePersonName  = regexp.MustCompile(`^[\p{Lu}' ]+$`)
	reAddress     = regexp.MustCompile(`^[\p{Lu}0-9ªº'\-.,/ ]+$`)
	reEmail       = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	rePhone       = regexp.MustCompile(`^[0-9]{8,9}$`)
	reHour        = regexp.MustCompile(`^([01][0-9]|2[0-3])$`)
	reMinute      = regexp.MustCompile(`^[0-5][0-9]$`)
	reYear        = regexp.MustCompile(`^[0-9]{4}$`)
	reCourseCode  = regexp.MustCompile(`^[0-9A-Z]{6}$`)
	reDigitsCache = map[int]*regexp.Regexp{}
	reCodeCache   = map[string]*regexp.Regexp{}
)

// The option constructors are only called while package-level tables are
// initialised, so the pattern caches need no locking.
func digitsPattern(n int) *regexp.Regexp {
	if re, ok := reDigitsCache[n]; ok {
		return re
	}
	re := regexp.MustCompile(`^[0-9]{` + strconv.Itoa(n) + `}$`)
	reDigitsCache[n] = re
	return re
}

func codeSetPattern(values []string) *regexp.Regexp {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = regexp.QuoteMeta(v)
	}
	expr := `^(?:` + strings.Join(quoted, "|") + `)$`
	if re, ok := reCodeCache[expr]; ok {
		return re
	}
	re := regexp.MustCompile(expr)
	reCodeCache[expr] = re
	return re
}
