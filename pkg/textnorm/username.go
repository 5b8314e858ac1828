// Package textnorm normaliza texto de entrada antes de compararlo o persistirlo.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Username normaliza un nombre de usuario: recorta espacios, compone a NFC y aplica case folding.
// "  JOSÉ " y "josé" producen el mismo valor.
func Username(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return cases.Fold().String(s)
}
