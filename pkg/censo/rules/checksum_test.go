package rules

import "testing"

func TestValidCPF(t *testing.T) {
	tests := []struct {
		cpf  string
		want bool
	}{
		{"52998224725", true},
		{"39053344705", true},
		{"12345678909", true},
		{"52998224724", false},
		{"11111111111", false},
		{"00000000000", false},
		{"5299822472", false},
		{"529982247250", false},
		{"529.982.247-25", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.cpf, func(t *testing.T) {
			if got := ValidCPF(tt.cpf); got != tt.want {
				t.Errorf("ValidCPF(%q) = %v, want %v", tt.cpf, got, tt.want)
			}
		})
	}
}

func TestValidCNPJ(t *testing.T) {
	tests := []struct {
		cnpj string
		want bool
	}{
		{"11222333000181", true},
		{"11444777000161", true},
		{"11222333000180", false},
		{"11222333000191", false},
		{"22222222222222", false},
		{"1122233300018", false},
		{"1122233300018A", false},
	}

	for _, tt := range tests {
		t.Run(tt.cnpj, func(t *testing.T) {
			if got := ValidCNPJ(tt.cnpj); got != tt.want {
				t.Errorf("ValidCNPJ(%q) = %v, want %v", tt.cnpj, got, tt.want)
			}
		})
	}
}
