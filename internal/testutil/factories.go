package testutil

import (
	"github.com/google/uuid"

	"github.com/zentrader/zen-trader-backend/internal/model"
)

// AssetBuilder provides a fluent interface for creating test assets.
//
// Example usage:
//
//	// Simple creation with defaults
//	asset := testutil.NewAsset().Build()
//
//	// Customized asset
//	asset := testutil.NewAsset().
//	    WithSymbol("NVDA").
//	    WithShares(10).
//	    WithPrices(480, 475.20).
//	    InBucket(model.BucketTrading).
//	    Build()
type AssetBuilder struct {
	asset model.Asset
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset() *AssetBuilder {
	return &AssetBuilder{
		asset: model.Asset{
			ID:           uuid.New().String(),
			Symbol:       "AAPL",
			Shares:       10,
			AvgCost:      100,
			CurrentPrice: 100,
			PrevClose:    100,
			Bucket:       model.BucketTrading,
		},
	}
}

// WithSymbol sets a custom symbol.
func (b *AssetBuilder) WithSymbol(symbol string) *AssetBuilder {
	b.asset.Symbol = symbol
	return b
}

// WithShares sets a custom share count.
func (b *AssetBuilder) WithShares(shares float64) *AssetBuilder {
	b.asset.Shares = shares
	return b
}

// WithAvgCost sets a custom cost basis.
func (b *AssetBuilder) WithAvgCost(avgCost float64) *AssetBuilder {
	b.asset.AvgCost = avgCost
	return b
}

// WithPrices sets current price and prior close.
func (b *AssetBuilder) WithPrices(current, prevClose float64) *AssetBuilder {
	b.asset.CurrentPrice = current
	b.asset.PrevClose = prevClose
	return b
}

// InBucket assigns the asset to an allocation bucket.
func (b *AssetBuilder) InBucket(bucket model.Bucket) *AssetBuilder {
	b.asset.Bucket = bucket
	return b
}

// Build returns the assembled asset.
func (b *AssetBuilder) Build() model.Asset {
	return b.asset
}

// NewPortfolioWith returns a portfolio holding the given assets and
// cash balance.
func NewPortfolioWith(cashUSD float64, assets ...model.Asset) model.Portfolio {
	p := model.NewPortfolio()
	p.CashUSD = cashUSD
	p.Assets = append(p.Assets, assets...)
	return p
}
