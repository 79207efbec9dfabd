package utils

import "testing"

func f(v float64) *float64 { return &v }

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   *float64
		want string
	}{
		{f(0), "$0.00"},
		{f(5), "$5.00"},
		{f(1234.5), "$1,234.50"},
		{f(1234567.891), "$1,234,567.89"},
		{f(999.999), "$1,000.00"},
		{f(-42.5), "-$42.50"},
		{nil, "—"},
	}
	for _, c := range cases {
		if got := FormatUSD(c.in); got != c.want {
			t.Fatalf("FormatUSD(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
