package logging

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
)

// Redactor redacts PII (Personally Identifiable Information) from log
// fields. A nil *Redactor passes everything through.
type Redactor struct {
	// patterns run in order; CNPJ must come before CPF because a CPF
	// pattern would match inside a CNPJ.
	patterns []*redactPattern
}

// redactPattern contains a compiled regex and replacement string.
type redactPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Built-in PII pattern names.
const (
	PatternCNPJ  = "cnpj"
	PatternCPF   = "cpf"
	PatternEmail = "email"
	PatternPhone = "phone"
)

var defaultPatterns = []struct {
	name        string
	regex       string
	replacement string
}{
	{PatternCNPJ, `\b\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}\b`, "**.***.***/****-**"},
	{PatternCPF, `\b\d{3}\.?\d{3}\.?\d{3}-?\d{2}\b`, "***.***.***-**"},
	{PatternEmail, `[a-zA-Z0-9._%+-]+@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`, "***@$1"},
	{PatternPhone, `\(?\b\d{2}\)?\s?9?\d{4}-\d{4}\b`, "(**) ****-****"},
}

// sensitiveKeys are attribute keys whose values are always masked,
// whatever they contain.
var sensitiveKeys = map[string]bool{
	"name":         true,
	"cpf":          true,
	"nis":          true,
	"email":        true,
	"phone":        true,
	"birth_date":   true,
	"parent1_name": true,
	"parent2_name": true,
	"field_value":  true,
	"password":     true,
	"secret":       true,
	"token":        true,
}

// NewRedactor creates a new Redactor with default and custom patterns.
// Custom patterns that fail to compile are skipped.
func NewRedactor(customPatterns []config.RedactPattern) *Redactor {
	r := &Redactor{}
	for _, p := range defaultPatterns {
		r.patterns = append(r.patterns, &redactPattern{
			name:        p.name,
			regex:       regexp.MustCompile(p.regex),
			replacement: p.replacement,
		})
	}
	for _, p := range customPatterns {
		regex, err := regexp.Compile(p.Pattern)
		if err != nil {
			continue
		}
		r.patterns = append(r.patterns, &redactPattern{
			name:        p.Name,
			regex:       regex,
			replacement: p.Replacement,
		})
	}
	return r
}

// RedactString redacts PII from a string value.
func (r *Redactor) RedactString(value string) string {
	if r == nil || value == "" {
		return value
	}
	for _, pattern := range r.patterns {
		value = pattern.regex.ReplaceAllString(value, pattern.replacement)
	}
	return value
}

// RedactArgs redacts PII from variadic log arguments in key, value form.
func (r *Redactor) RedactArgs(args ...any) []any {
	if r == nil || len(args) == 0 {
		return args
	}

	redacted := make([]any, len(args))
	copy(redacted, args)
	for i := 1; i < len(redacted); i += 2 {
		if key, ok := redacted[i-1].(string); ok && isSensitiveKey(key) {
			redacted[i] = maskValue(redacted[i])
			continue
		}
		if str, ok := redacted[i].(string); ok {
			redacted[i] = r.RedactString(str)
		}
	}
	return redacted
}

// RedactAttr redacts one attribute, descending into groups.
func (r *Redactor) RedactAttr(a slog.Attr) slog.Attr {
	if r == nil {
		return a
	}
	v := a.Value.Resolve()
	switch {
	case v.Kind() == slog.KindGroup:
		group := v.Group()
		out := make([]any, len(group))
		for i, ga := range group {
			out[i] = r.RedactAttr(ga)
		}
		return slog.Group(a.Key, out...)
	case isSensitiveKey(a.Key):
		return slog.String(a.Key, maskString(v.String()))
	case v.Kind() == slog.KindString:
		return slog.String(a.Key, r.RedactString(v.String()))
	}
	return a
}

func isSensitiveKey(key string) bool {
	return sensitiveKeys[strings.ToLower(key)]
}

func maskValue(value any) any {
	if s, ok := value.(string); ok {
		return maskString(s)
	}
	return "***"
}

// maskString keeps the first character as a hint.
func maskString(s string) string {
	if s == "" {
		return ""
	}
	if utf8.RuneCountInString(s) <= 3 {
		return "***"
	}
	first, _ := utf8.DecodeRuneInString(s)
	return string(first) + "***"
}

// RedactEmail redacts an email address partially (shows first char and domain).
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	if parts[0] == "" {
		return "***@" + parts[1]
	}
	return parts[0][:1] + "***@" + parts[1]
}

// RedactCPF keeps only the two check digits of a CPF.
func RedactCPF(cpf string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cpf)
	if len(digits) != 11 {
		return cpf
	}
	return "***.***.***-" + digits[9:]
}
