package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatUSD renders an amount as "$1,234.56". A missing value renders as the
// "—" sentinel the report shows for unparseable cells.
func FormatUSD(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return "—"
	}

	neg := *v < 0
	s := fmt.Sprintf("%.2f", math.Abs(*v))

	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}

	out := "$" + b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
