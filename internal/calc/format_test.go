package calc_test

import (
	"math"
	"testing"

	"github.com/zentrader/zen-trader-backend/internal/calc"
)

// TestFormatCurrency tests US-dollar rendering.
//
// WHY: Every monetary figure on the dashboard goes through this
// formatter; sign handling and two fraction digits are part of the
// display contract, and non-finite inputs must never panic.
func TestFormatCurrency(t *testing.T) {
	t.Run("formats positive values with grouping", func(t *testing.T) {
		got := calc.FormatCurrency(1234.5)
		if got != "$1,234.50" {
			t.Errorf("Expected $1,234.50, got %s", got)
		}
	})

	t.Run("formats negative values with leading sign", func(t *testing.T) {
		got := calc.FormatCurrency(-0.25)
		if got != "-$0.25" {
			t.Errorf("Expected -$0.25, got %s", got)
		}
	})

	t.Run("formats zero", func(t *testing.T) {
		got := calc.FormatCurrency(0)
		if got != "$0.00" {
			t.Errorf("Expected $0.00, got %s", got)
		}
	})

	t.Run("rounds to two fraction digits", func(t *testing.T) {
		got := calc.FormatCurrency(10.005)
		if got != "$10.01" && got != "$10.00" {
			t.Errorf("Expected two fraction digits, got %s", got)
		}
	})

	t.Run("does not panic on NaN", func(t *testing.T) {
		_ = calc.FormatCurrency(math.NaN())
	})

	t.Run("does not panic on infinity", func(t *testing.T) {
		_ = calc.FormatCurrency(math.Inf(1))
	})
}

// TestFormatPercent tests percentage-point rendering.
//
// WHY: The input is a percentage-point value (12.34 means 12.34%),
// and the display contract is one to two fraction digits.
func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"whole number keeps one fraction digit", 5, "5.0%"},
		{"two fraction digits kept", 12.34, "12.34%"},
		{"trailing zero dropped", 12.3, "12.3%"},
		{"negative value", -3.1, "-3.1%"},
		{"zero", 0, "0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.FormatPercent(tt.in); got != tt.want {
				t.Errorf("FormatPercent(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
