// Package errors defines the diagnostics produced by the census validation
// engine.
//
// A ValidationError is a value: it carries the line, record type, field,
// offending value, rule name and severity of one finding. Validators
// accumulate them in an ErrorList instead of failing on the first problem,
// so a single run reports everything that is wrong with a file.
//
// # Severities
//
// SeverityError: makes the file invalid
//
// SeverityWarning: reported, does not affect validity
//
// SeverityInfo: informational notes about how the file was read
//
// # Basic Usage
//
//	b := errors.NewBuilder(lineNo, layout.ManagerBond, errors.CategoryCrossRef, fields)
//	list := errors.NewErrorList()
//	list.Add(b.Field(layout.ManagerSchoolCode, errors.RuleSchoolCodeMismatch,
//	    "school code %s does not match the school record (%s)", got, want))
//	if list.HasErrors() {
//	    fmt.Println(list.Error())
//	}
package errors
