package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatIndian renders d rounded to two places with Indian digit grouping:
// the last three integer digits, then groups of two (12,34,56,789.5).
// Trailing zeros of the fraction are dropped, but whole results keep a
// single ".0" (1,000.0).
func FormatIndian(d decimal.Decimal) string {
	s := d.Round(2).String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	integer, frac, _ := strings.Cut(s, ".")

	if len(integer) > 3 {
		head, tail := integer[:len(integer)-3], integer[len(integer)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		integer = strings.Join(groups, ",") + "," + tail
	}

	if frac == "" {
		frac = "0"
	}
	return sign + integer + "." + frac
}
