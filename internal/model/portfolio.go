package model

import "time"

// DefaultCashUSD is the cash balance a fresh portfolio is seeded with.
const DefaultCashUSD = 10000

// Portfolio is the single aggregate of holdings and cash per installation.
// Assets keep insertion order. LastUpdated is a unix-millisecond timestamp
// advanced by the EOD refresh.
type Portfolio struct {
	CashUSD     float64 `json:"cashUSD"`
	Assets      []Asset `json:"assets"`
	LastUpdated int64   `json:"lastUpdated"`
}

// NewPortfolio returns the default portfolio: seeded cash, no assets.
func NewPortfolio() Portfolio {
	return Portfolio{
		CashUSD:     DefaultCashUSD,
		Assets:      []Asset{},
		LastUpdated: time.Now().UnixMilli(),
	}
}

// UpdatedToday reports whether LastUpdated falls on the same calendar
// day as now, in local time.
func (p Portfolio) UpdatedToday(now time.Time) bool {
	last := time.UnixMilli(p.LastUpdated)
	ly, lm, ld := last.Date()
	ny, nm, nd := now.Date()
	return ly == ny && lm == nm && ld == nd
}

// Symbols returns the distinct asset symbols in insertion order.
func (p Portfolio) Symbols() []string {
	seen := make(map[string]bool, len(p.Assets))
	symbols := make([]string, 0, len(p.Assets))
	for _, a := range p.Assets {
		if !seen[a.Symbol] {
			seen[a.Symbol] = true
			symbols = append(symbols, a.Symbol)
		}
	}
	return symbols
}
