package record

import (
	"strings"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
)

// Separator is the field separator of census lines.
const Separator = "|"

// ParsedLine is one non-blank input line split into raw fields.
type ParsedLine struct {
	LineNumber int
	Type       layout.RecordType // Unrecognized when Code is not a known record type
	Code       string
	Fields     []string
	Raw        string
}

// HasSeparator reports whether the raw line contains at least one separator.
func (l ParsedLine) HasSeparator() bool {
	return strings.Contains(l.Raw, Separator)
}

// Field returns the raw value at a 1-based position, or "" past the end.
func (l ParsedLine) Field(position int) string {
	if position < 1 || position > len(l.Fields) {
		return ""
	}
	return l.Fields[position-1]
}

// Stats describes the physical shape of the input.
type Stats struct {
	TotalLines int
	BlankLines int
}

// Split tokenises decoded text. Lines may end in LF or CRLF; blank lines are
// skipped but still counted, so LineNumber is always the physical line.
func Split(text string) ([]ParsedLine, Stats) {
	var stats Stats
	if text == "" {
		return nil, stats
	}

	rawLines := strings.Split(text, "\n")
	// A final newline does not start another line.
	if rawLines[len(rawLines)-1] == "" {
		rawLines = rawLines[:len(rawLines)-1]
	}

	out := make([]ParsedLine, 0, len(rawLines))
	for i, raw := range rawLines {
		raw = strings.TrimSuffix(raw, "\r")
		stats.TotalLines++
		if strings.TrimSpace(raw) == "" {
			stats.BlankLines++
			continue
		}
		out = append(out, ParseLine(i+1, raw))
	}
	return out, stats
}

// ParseLine splits one raw line. When the record type is known and the line
// carries exactly one field more than its schema, and that extra field is
// empty, it is a trailing separator and is dropped.
func ParseLine(lineNumber int, raw string) ParsedLine {
	raw = strings.TrimSuffix(raw, "\r")
	fields := strings.Split(raw, Separator)
	code := strings.TrimSpace(fields[0])

	rt, ok := layout.ParseRecordType(code)
	if !ok {
		rt = layout.Unrecognized
	}
	if ok {
		want := layout.FieldCount(rt)
		if len(fields) == want+1 && fields[len(fields)-1] == "" {
			fields = fields[:len(fields)-1]
		}
	}

	return ParsedLine{
		LineNumber: lineNumber,
		Type:       rt,
		Code:       code,
		Fields:     fields,
		Raw:        raw,
	}
}

// SplitLines tokenises lines that were already separated by the caller.
// Index i becomes line number i+1; blank entries are skipped.
func SplitLines(lines []string) ([]ParsedLine, Stats) {
	stats := Stats{TotalLines: len(lines)}
	out := make([]ParsedLine, 0, len(lines))
	for i, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			stats.BlankLines++
			continue
		}
		out = append(out, ParseLine(i+1, raw))
	}
	return out, stats
}
