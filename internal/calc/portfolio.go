package calc

import (
	"math"
	"sort"

	"github.com/zentrader/zen-trader-backend/internal/model"
)

// Target allocation policy: the ETF bucket aims for 25% of total
// equity with a ±5 percentage-point tolerance before a rebalance
// warning is raised.
const (
	ETFTargetRatio = 0.25
	ETFTolerance   = 0.05
)

// Totals aggregates the portfolio's equity and daily movement.
type Totals struct {
	AssetsValue        float64 `json:"assetsValue"`
	TotalEquity        float64 `json:"totalEquity"`
	DailyChange        float64 `json:"dailyChange"`
	DailyChangePercent float64 `json:"dailyChangePercent"`
}

// BucketSlice is one bucket's share of the allocation.
type BucketSlice struct {
	Bucket model.Bucket `json:"bucket"`
	Value  float64      `json:"value"`
	Ratio  float64      `json:"ratio"`
}

// CalculateTotals computes total equity and daily P&L from raw
// holdings. Cash is assumed unchanged day-over-day, so the daily
// change covers assets only. A portfolio with no prior asset value
// reports a 0% daily change rather than dividing by zero.
func CalculateTotals(p model.Portfolio) Totals {
	var assetsValue, prevAssetsValue float64
	for _, a := range p.Assets {
		assetsValue += a.Shares * a.CurrentPrice
		prevAssetsValue += a.Shares * a.PrevClose
	}

	dailyChange := assetsValue - prevAssetsValue
	var dailyChangePercent float64
	if prevAssetsValue > 0 {
		dailyChangePercent = dailyChange / prevAssetsValue * 100
	}

	return Totals{
		AssetsValue:        assetsValue,
		TotalEquity:        assetsValue + p.CashUSD,
		DailyChange:        dailyChange,
		DailyChangePercent: dailyChangePercent,
	}
}

// CalculateBuckets splits total equity over the three allocation
// buckets, always in catalog order and always all three, even when a
// bucket holds nothing. Cash counts toward Hedge+Cash. When total
// equity is zero every ratio is reported as 0.
func CalculateBuckets(p model.Portfolio, totalEquity float64) []BucketSlice {
	values := map[model.Bucket]float64{
		model.BucketHedgeCash: p.CashUSD,
	}
	for _, a := range p.Assets {
		values[a.Bucket] += a.Shares * a.CurrentPrice
	}

	slices := make([]BucketSlice, 0, 3)
	for _, b := range model.Buckets() {
		s := BucketSlice{Bucket: b, Value: values[b]}
		if totalEquity != 0 {
			s.Ratio = s.Value / totalEquity
		}
		slices = append(slices, s)
	}
	return slices
}

// NeedsRebalance reports whether the ETF bucket has drifted outside
// its target band.
func NeedsRebalance(buckets []BucketSlice) bool {
	for _, b := range buckets {
		if b.Bucket == model.BucketETF {
			return math.Abs(b.Ratio-ETFTargetRatio) > ETFTolerance
		}
	}
	return false
}

// DailyMovers returns the best and worst single-day contributors,
// ranked by (currentPrice - prevClose) * shares. With a single asset
// the bottom mover is suppressed (nil) so it is never shown twice;
// with no assets both are nil.
func DailyMovers(assets []model.Asset) (top, bottom *model.Asset) {
	if len(assets) == 0 {
		return nil, nil
	}

	ranked := make([]model.Asset, len(assets))
	copy(ranked, assets)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DailyPnL() > ranked[j].DailyPnL()
	})

	top = &ranked[0]
	last := &ranked[len(ranked)-1]
	if last.ID != top.ID {
		bottom = last
	}
	return top, bottom
}
