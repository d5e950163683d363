package field

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
)

var reDate = regexp.MustCompile(`^([0-9]{2})/([0-9]{2})/([0-9]{4})$`)

// DateLayout is the census date format.
const DateLayout = "02/01/2006"

// Validate checks one raw value against its rule. The builder supplies the
// line, record type and the record's other fields, which conditional
// requirements read. It has no side effects.
func Validate(b censoErrors.Builder, rule layout.FieldRule, raw string) []censoErrors.ValidationError {
	b = b.WithCategory(censoErrors.CategoryField)

	conditional := rule.When.Holds(b.Fields)
	required := rule.Required || conditional

	if strings.TrimSpace(raw) == "" {
		if !required {
			return nil
		}
		if rule.Required {
			return []censoErrors.ValidationError{
				b.Field(rule.Position, censoErrors.RuleRequiredField, "%s is required", rule.Description),
			}
		}
		return []censoErrors.ValidationError{
			b.Field(rule.Position, censoErrors.RuleRequiredField, "%s is required when %s", rule.Description, rule.When),
		}
	}

	var out []censoErrors.ValidationError

	n := utf8.RuneCountInString(raw)
	switch {
	case rule.ExactLength > 0:
		if n != rule.ExactLength {
			out = append(out, b.Field(rule.Position, censoErrors.RuleExactLength,
				"%s must have exactly %d characters, got %d", rule.Description, rule.ExactLength, n))
		}
	default:
		if rule.MinLength > 0 && n < rule.MinLength {
			out = append(out, b.Field(rule.Position, censoErrors.RuleMinLength,
				"%s must have at least %d characters, got %d", rule.Description, rule.MinLength, n))
		}
		if rule.MaxLength > 0 && n > rule.MaxLength {
			out = append(out, b.Field(rule.Position, censoErrors.RuleMaxLength,
				"%s must have at most %d characters, got %d", rule.Description, rule.MaxLength, n))
		}
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(raw) {
		out = append(out, b.Field(rule.Position, censoErrors.RulePatternValidation,
			"%s has an invalid value %q", rule.Description, raw))
	}

	switch rule.Type {
	case layout.Numeric:
		if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil {
			out = append(out, b.Field(rule.Position, censoErrors.RuleNumericValidation,
				"%s must be a number, got %q", rule.Description, raw))
		}
	case layout.CalendarDate:
		if _, ok := ParseDate(raw); !ok {
			out = append(out, b.Field(rule.Position, censoErrors.RuleDateValidation,
				"%s must be a valid date in DD/MM/YYYY format, got %q", rule.Description, raw))
		}
	}

	return out
}

// ParseDate parses a DD/MM/YYYY value and rejects days that do not exist,
// such as 31/04 or 29/02 outside leap years.
func ParseDate(s string) (time.Time, bool) {
	m := reDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || year < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}
