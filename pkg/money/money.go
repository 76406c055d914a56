// Package money formatea montos en pesos colombianos.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCOP devuelve el monto con separador de miles '.' y decimales ','.
// Ej: 1234567.5 -> "$ 1.234.567,50". Los enteros no muestran decimales: 15 -> "$ 15".
func FormatCOP(d decimal.Decimal) string {
	neg := d.IsNegative()
	d = d.Abs().Round(2)

	s := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("$ ")
	b.WriteString(groupThousands(intPart))
	if frac != "00" {
		b.WriteString(",")
		b.WriteString(frac)
	}
	return b.String()
}

// FormatFloat atajo para montos que llegan como float64 (CLI).
func FormatFloat(f float64) string {
	return FormatCOP(decimal.NewFromFloat(f))
}

// groupThousands inserta '.' cada tres dígitos desde la derecha.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
