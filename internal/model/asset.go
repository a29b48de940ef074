package model

// Bucket classifies a holding into one of three allocation categories.
// The set is closed; cash is always counted in the Hedge+Cash bucket.
type Bucket string

const (
	BucketETF       Bucket = "ETF"
	BucketTrading   Bucket = "Trading"
	BucketHedgeCash Bucket = "Hedge+Cash"
)

// Buckets returns the bucket catalog in its fixed display order.
func Buckets() []Bucket {
	return []Bucket{BucketETF, BucketTrading, BucketHedgeCash}
}

// ValidBucket reports whether b is one of the three catalog buckets.
func ValidBucket(b Bucket) bool {
	switch b {
	case BucketETF, BucketTrading, BucketHedgeCash:
		return true
	}
	return false
}

// Asset represents a single portfolio holding.
// CurrentPrice and PrevClose both start at AvgCost when a position is
// opened; only the EOD refresh or an explicit edit moves them.
type Asset struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	Shares       float64 `json:"shares"`
	AvgCost      float64 `json:"avgCost"`
	CurrentPrice float64 `json:"currentPrice"`
	PrevClose    float64 `json:"prevClose"`
	Bucket       Bucket  `json:"bucket"`
	Notes        string  `json:"notes,omitempty"`
}

// MarketValue returns the current market value of the holding.
func (a Asset) MarketValue() float64 {
	return a.Shares * a.CurrentPrice
}

// DailyPnL returns the single-day profit or loss contribution.
func (a Asset) DailyPnL() float64 {
	return (a.CurrentPrice - a.PrevClose) * a.Shares
}

// TotalPnL returns the unrealized profit or loss against cost basis.
func (a Asset) TotalPnL() float64 {
	return (a.CurrentPrice - a.AvgCost) * a.Shares
}
