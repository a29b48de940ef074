package request

import "github.com/zentrader/zen-trader-backend/internal/model"

type AddAssetRequest struct {
	Symbol  string       `json:"symbol"`
	Shares  float64      `json:"shares"`
	AvgCost float64      `json:"avgCost"`
	Bucket  model.Bucket `json:"bucket"`
	Notes   string       `json:"notes"`
}

type UpdateAssetRequest struct {
	Symbol       *string       `json:"symbol"`
	Shares       *float64      `json:"shares"`
	AvgCost      *float64      `json:"avgCost"`
	CurrentPrice *float64      `json:"currentPrice"`
	PrevClose    *float64      `json:"prevClose"`
	Bucket       *model.Bucket `json:"bucket"`
	Notes        *string       `json:"notes"`
}

type UpdateCashRequest struct {
	CashUSD float64 `json:"cashUSD"`
}
