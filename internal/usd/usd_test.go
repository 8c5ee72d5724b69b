package usd

import "testing"

func TestFormatGroupsThousands(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{32000, "$32,000.00"},
		{1234567.5, "$1,234,567.50"},
		{99.999, "$100.00"},
		{-450, "-$450.00"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Fatalf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
