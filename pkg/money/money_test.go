package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCOP(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$ 0"},
		{"15", "$ 15"},
		{"1000", "$ 1.000"},
		{"1234567.5", "$ 1.234.567,50"},
		{"999.999", "$ 1.000"},
		{"-25000", "-$ 25.000"},
		{"120.05", "$ 120,05"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatCOP(decimal.RequireFromString(c.in)), "entrada %s", c.in)
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "$ 45.000", FormatFloat(45000))
}
