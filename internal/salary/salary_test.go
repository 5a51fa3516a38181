package salary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_KnownForms(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"₹25,000", 25000, true},
		{"₹ 25000", 25000, true},
		{"20k", 20000, true},
		{"20 K per month", 20000, true},
		{"2.4 LPA", 20000, true},
		{"2.5 lpa", 20833, true},
		{"3 LPA", 25000, true},
		{"", 0, false},
		{"garbage", 0, false},
		{"competitive", 0, false},
		{"₹0", 0, true},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		assert.Equal(t, c.wantOK, ok, "ok for %q", c.in)
		assert.Equal(t, c.want, got, "value for %q", c.in)
	}
}

func TestParse_StripsThousandsSeparators(t *testing.T) {
	got, ok := Parse("₹1,00,000")
	assert.True(t, ok)
	assert.Equal(t, 100000, got)
}

func TestParse_StrategyOrder(t *testing.T) {
	// A rupee amount that also contains a trailing "k" token must be taken
	// literally, not multiplied.
	got, ok := Parse("₹22000 take home, 264k annual")
	assert.True(t, ok)
	assert.Equal(t, 22000, got)
}

func TestParse_IdempotentOnFormattedOutput(t *testing.T) {
	for _, in := range []string{"₹25,000", "20k", "2.4 LPA", "₹18000"} {
		v, ok := Parse(in)
		if !ok {
			t.Fatalf("expected %q to parse", in)
		}
		again, ok := Parse(fmt.Sprintf("₹%d", v))
		assert.True(t, ok)
		assert.Equal(t, v, again, "reparse of formatted %q", in)
	}
}

func TestParse_Deterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		v, ok := Parse("2.4 lpa stipend")
		assert.True(t, ok)
		assert.Equal(t, 20000, v)
	}
}
