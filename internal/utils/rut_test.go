package utils

import (
	"testing"
)

func TestNormalizarRUT(t *testing.T) {
	casos := []struct {
		entrada string
		want    string
	}{
		{"76.543.210-K", "76543210-K"},
		{"76543210-K", "76543210-K"},
		{"76543210K", "76543210-K"},
		{"76 543 210-K", "76543210-K"},
		{"12.345.678-9", "12345678-9"},
		{"", ""},
		{"5", "5"}, // too short to split a check digit
	}

	for _, caso := range casos {
		if got := NormalizarRUT(caso.entrada); got != caso.want {
			t.Errorf("NormalizarRUT(%q): got %q, want %q", caso.entrada, got, caso.want)
		}
	}
}

func TestCodigoDesdeRUT(t *testing.T) {
	if got := CodigoDesdeRUT("76543210-K"); got != "76543210K" {
		t.Errorf("CodigoDesdeRUT: got %q, want %q", got, "76543210K")
	}
	if got := CodigoDesdeRUT("76.543.210-K"); got != "76543210K" {
		t.Errorf("CodigoDesdeRUT with dots: got %q, want %q", got, "76543210K")
	}
}
