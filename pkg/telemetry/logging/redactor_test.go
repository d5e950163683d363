package logging

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
)

func TestRedactor_RedactString(t *testing.T) {
	r := NewRedactor(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"formatted cpf", "cpf 123.456.789-09", "cpf ***.***.***-**"},
		{"bare cpf", "12345678909", "***.***.***-**"},
		{"cnpj", "mantenedora 12.345.678/0001-95", "mantenedora **.***.***/****-**"},
		{"bare cnpj", "12345678000195", "**.***.***/****-**"},
		{"email", "contato: diretoria@escola.edu.br", "contato: ***@escola.edu.br"},
		{"mobile phone", "tel (61) 98765-4321", "tel (**) ****-****"},
		{"school code untouched", "school 53001234", "school 53001234"},
		{"person id untouched", "student 123456789012", "student 123456789012"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.RedactString(tt.input); got != tt.want {
				t.Errorf("RedactString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedactor_Nil(t *testing.T) {
	var r *Redactor
	if got := r.RedactString("12345678909"); got != "12345678909" {
		t.Errorf("nil redactor changed value: %q", got)
	}
	a := slog.String("cpf", "12345678909")
	if got := r.RedactAttr(a); !got.Equal(a) {
		t.Errorf("nil redactor changed attr: %v", got)
	}
}

func TestRedactor_RedactArgs(t *testing.T) {
	r := NewRedactor(nil)

	args := []any{"name", "ANA", "email", "ana@x.com", "msg", "call (11) 91234-5678", "count", 2}
	got := r.RedactArgs(args...)

	if got[1] != "***" {
		t.Errorf("short sensitive value = %v", got[1])
	}
	if got[3] != "a***" {
		t.Errorf("email key value = %v", got[3])
	}
	if got[5] != "call (**) ****-****" {
		t.Errorf("msg = %v", got[5])
	}
	if got[7] != 2 {
		t.Errorf("count = %v", got[7])
	}
	if args[1] != "ANA" {
		t.Error("RedactArgs must not modify its input")
	}
}

func TestRedactor_CustomPatterns(t *testing.T) {
	r := NewRedactor([]config.RedactPattern{
		{Name: "nis", Pattern: `NIS\s*\d{11}`, Replacement: "NIS ***"},
		{Name: "broken", Pattern: "[unclosed", Replacement: "x"},
	})

	if len(r.patterns) != len(defaultPatterns)+1 {
		t.Errorf("expected invalid pattern to be skipped, have %d patterns", len(r.patterns))
	}
	got := r.RedactString("NIS 12345678901")
	if strings.Contains(got, "12345678901") {
		t.Errorf("custom pattern not applied: %q", got)
	}
}

func TestRedactCPF(t *testing.T) {
	tests := map[string]string{
		"123.456.789-09": "***.***.***-09",
		"12345678909":    "***.***.***-09",
		"123":            "123",
	}
	for in, want := range tests {
		if got := RedactCPF(in); got != want {
			t.Errorf("RedactCPF(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRedactEmail(t *testing.T) {
	tests := map[string]string{
		"maria@escola.br": "m***@escola.br",
		"@escola.br":      "***@escola.br",
		"not-an-email":    "not-an-email",
	}
	for in, want := range tests {
		if got := RedactEmail(in); got != want {
			t.Errorf("RedactEmail(%q) = %q, want %q", in, got, want)
		}
	}
}
