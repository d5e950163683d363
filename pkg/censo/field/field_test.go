package field

import (
	"regexp"
	"testing"

	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
)

func rulesOf(t *testing.T, diags []censoErrors.ValidationError) []string {
	t.Helper()
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.RuleName)
	}
	return out
}

func equalRules(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestValidate(t *testing.T) {
	name := layout.FieldRule{Position: 2, Name: "name", Description: "Name", Required: true, MinLength: 4, MaxLength: 6, Pattern: regexp.MustCompile(`^[A-Z]+$`)}
	code := layout.FieldRule{Position: 2, Name: "code", Description: "Code", ExactLength: 3, Pattern: regexp.MustCompile(`^[0-9]+$`), Type: layout.Code}
	qty := layout.FieldRule{Position: 2, Name: "qty", Description: "Quantity", Type: layout.Numeric}
	when := layout.FieldRule{Position: 2, Name: "when", Description: "When", Type: layout.CalendarDate, ExactLength: 10}

	tests := []struct {
		name  string
		rule  layout.FieldRule
		value string
		want  []string
	}{
		{"required empty", name, "", []string{censoErrors.RuleRequiredField}},
		{"required whitespace", name, "   ", []string{censoErrors.RuleRequiredField}},
		{"optional empty", code, "", nil},
		{"valid", name, "MARIA", nil},
		{"too short", name, "ANA", []string{censoErrors.RuleMinLength}},
		{"too long and bad pattern", name, "MARIANA1", []string{censoErrors.RuleMaxLength, censoErrors.RulePatternValidation}},
		{"exact length wins", code, "1234", []string{censoErrors.RuleExactLength}},
		{"exact length and pattern", code, "1a", []string{censoErrors.RuleExactLength, censoErrors.RulePatternValidation}},
		{"numeric ok", qty, "12", nil},
		{"numeric decimal ok", qty, "1.5", nil},
		{"numeric bad", qty, "1x", []string{censoErrors.RuleNumericValidation}},
		{"date ok", when, "29/02/2024", nil},
		{"date not leap", when, "29/02/2023", []string{censoErrors.RuleDateValidation}},
		{"date 31 april", when, "31/04/2024", []string{censoErrors.RuleDateValidation}},
		{"date wrong format", when, "2024-04-01", []string{censoErrors.RuleDateValidation}},
		{"date short", when, "1/4/2024", []string{censoErrors.RuleExactLength, censoErrors.RuleDateValidation}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := censoErrors.NewBuilder(3, layout.Person, censoErrors.CategoryField, []string{"30", tt.value})
			got := rulesOf(t, Validate(b, tt.rule, tt.value))
			if !equalRules(got, tt.want) {
				t.Errorf("Validate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateConditional(t *testing.T) {
	schema, _ := layout.SchemaFor(layout.School)
	start, _ := schema.Field(layout.SchoolYearStart)

	fields := make([]string, schema.FieldCount())
	fields[layout.SchoolOperatingStatus-1] = layout.StatusActive

	b := censoErrors.NewBuilder(1, layout.School, censoErrors.CategoryField, fields)
	diags := Validate(b, start, "")
	if len(diags) != 1 || diags[0].RuleName != censoErrors.RuleRequiredField {
		t.Fatalf("active school without start date: got %v", diags)
	}
	if diags[0].FieldName != "school_year_start" || diags[0].FieldPosition != layout.SchoolYearStart {
		t.Errorf("diagnostic field = %s(#%d)", diags[0].FieldName, diags[0].FieldPosition)
	}
	if diags[0].Category != censoErrors.CategoryField {
		t.Errorf("Category = %s, want field", diags[0].Category)
	}

	fields[layout.SchoolOperatingStatus-1] = layout.StatusExtinct
	b = censoErrors.NewBuilder(1, layout.School, censoErrors.CategoryField, fields)
	if diags := Validate(b, start, ""); len(diags) != 0 {
		t.Errorf("extinct school without start date: got %v", diags)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"01/01/2024", true},
		{"31/12/1999", true},
		{"00/01/2024", false},
		{"32/01/2024", false},
		{"15/13/2024", false},
		{"31/06/2024", false},
		{"29/02/2000", true},
		{"29/02/1900", false},
		{"01/01/0000", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := ParseDate(tt.in); ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}

	d, _ := ParseDate("05/03/2024")
	if d.Format(DateLayout) != "05/03/2024" {
		t.Errorf("round trip = %s", d.Format(DateLayout))
	}
}
