package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatThousands(t *testing.T) {
	tests := map[string]string{
		"0":         "0",
		"999":       "999",
		"1000":      "1,000",
		"1234567.6": "1,234,568",
		"-400":      "-400",
		"-12345":    "-12,345",
		"100000":    "100,000",
		"-0.4":      "0",
	}
	for in, want := range tests {
		if got := FormatThousands(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatThousands(%s) got=%q want=%q", in, got, want)
		}
	}
}

func TestFormatKUSD(t *testing.T) {
	if got := FormatKUSD(decimal.NewFromInt(1000)); got != "$1,000K" {
		t.Fatalf("FormatKUSD got=%q", got)
	}
}
