// Package calc holds the pure computation core: display formatting,
// portfolio aggregation and position sizing. Nothing here touches
// storage or the network; every function recomputes from its inputs.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// FormatCurrency renders v as US-dollar currency with exactly two
// fraction digits and en-US grouping, e.g. "$1,234.50" and "-$0.25".
// Non-finite inputs render best-effort and never panic.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("$%.2f", v)
	}
	return money.NewFromFloat(v, money.USD).Display()
}

// FormatPercent renders a percentage-point value with one or two
// fraction digits: 5 -> "5.0%", 12.34 -> "12.34%", -3.1 -> "-3.1%".
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	// Keep at least one fraction digit, drop a trailing zero.
	if strings.HasSuffix(s, "0") && strings.Contains(s, ".") {
		s = s[:len(s)-1]
	}
	return s + "%"
}
