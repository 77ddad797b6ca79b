package utils

import (
	"strings"
)

// NormalizarRUT strips thousands separators and whitespace from a Chilean
// RUT and guarantees a single dash before the check digit.
// "76.543.210-K" and "76543210K" both normalize to "76543210-K".
func NormalizarRUT(rut string) string {
	if rut == "" {
		return ""
	}

	rut = strings.ReplaceAll(rut, ".", "")
	rut = strings.ReplaceAll(rut, " ", "")

	if !strings.Contains(rut, "-") && len(rut) > 1 {
		rut = rut[:len(rut)-1] + "-" + rut[len(rut)-1:]
	}

	return rut
}

// CodigoDesdeRUT derives a supplier code from a RUT by stripping all
// punctuation: "76543210-K" -> "76543210K"
func CodigoDesdeRUT(rut string) string {
	rut = strings.ReplaceAll(rut, "-", "")
	return strings.ReplaceAll(rut, ".", "")
}
