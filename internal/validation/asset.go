package validation

import (
	"strings"

	"github.com/zentrader/zen-trader-backend/internal/api/request"
	"github.com/zentrader/zen-trader-backend/internal/model"
)

const maxSymbolLength = 10

func ValidateAddAsset(req request.AddAssetRequest) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	} else if len(req.Symbol) > maxSymbolLength {
		errors["symbol"] = "symbol must be 10 characters or less"
	}

	if req.Shares <= 0 {
		errors["shares"] = "shares must be greater than zero"
	}

	if req.AvgCost <= 0 {
		errors["avgCost"] = "avgCost must be greater than zero"
	}

	if !model.ValidBucket(req.Bucket) {
		errors["bucket"] = "bucket must be one of ETF, Trading, Hedge+Cash"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateAsset(req request.UpdateAssetRequest) error {
	errors := make(map[string]string)

	if req.Symbol != nil {
		if strings.TrimSpace(*req.Symbol) == "" {
			errors["symbol"] = "symbol is required"
		} else if len(*req.Symbol) > maxSymbolLength {
			errors["symbol"] = "symbol must be 10 characters or less"
		}
	}
	if req.Shares != nil && *req.Shares <= 0 {
		errors["shares"] = "shares must be greater than zero"
	}
	if req.AvgCost != nil && *req.AvgCost <= 0 {
		errors["avgCost"] = "avgCost must be greater than zero"
	}
	if req.Bucket != nil && !model.ValidBucket(*req.Bucket) {
		errors["bucket"] = "bucket must be one of ETF, Trading, Hedge+Cash"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateCash(req request.UpdateCashRequest) error {
	if req.CashUSD < 0 {
		return &Error{Fields: map[string]string{"cashUSD": "cash balance cannot be negative"}}
	}
	return nil
}
