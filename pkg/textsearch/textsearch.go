// Package textsearch búsqueda de texto insensible a mayúsculas y tildes
// ("Abono a crédito" coincide con "abono a credito").
package textsearch

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize quita diacríticos, pliega mayúsculas y colapsa espacios.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = cases.Fold().String(out)
	return strings.Join(strings.Fields(out), " ")
}

// Contains indica si alguno de los campos contiene la consulta. Consulta vacía coincide siempre.
func Contains(query string, fields ...string) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Normalize(f), q) {
			return true
		}
	}
	return false
}

// Title capitaliza cada palabra en español (encabezados de reportes).
func Title(s string) string {
	return cases.Title(language.Spanish).String(s)
}
