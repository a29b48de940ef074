package calc

import "math"

// DefaultRiskPercent is the standard risk per trade: 1% of equity.
const DefaultRiskPercent = 1.0

// RiskInput carries the position-sizing inputs. A zero (or NaN) value
// means the field has not been supplied; TargetPrice is optional.
type RiskInput struct {
	AccountEquity float64 `json:"accountEquity"`
	RiskPercent   float64 `json:"riskPercent"`
	EntryPrice    float64 `json:"entryPrice"`
	StopPrice     float64 `json:"stopPrice"`
	TargetPrice   float64 `json:"targetPrice"`
}

// RiskResult is a computed position size. Shares is always rounded
// down so the dollar risk never exceeds the budget.
type RiskResult struct {
	Shares     int64   `json:"shares"`
	RiskAmount float64 `json:"riskAmount"`
	Cost       float64 `json:"cost"`
	RewardRisk float64 `json:"rewardRisk"`
}

// CalculateRisk sizes a position from entry/stop/account inputs.
// It returns ok=false when account equity, entry or stop is missing,
// or when entry equals stop (zero risk per share); callers must show
// a "not yet computed" state, never a $0 result.
func CalculateRisk(in RiskInput) (RiskResult, bool) {
	if !supplied(in.AccountEquity) || !supplied(in.EntryPrice) || !supplied(in.StopPrice) {
		return RiskResult{}, false
	}

	riskPerShare := math.Abs(in.EntryPrice - in.StopPrice)
	if riskPerShare == 0 {
		return RiskResult{}, false
	}

	riskAmount := in.AccountEquity * (in.RiskPercent / 100)
	shares := int64(math.Floor(riskAmount / riskPerShare))

	var rr float64
	if supplied(in.TargetPrice) {
		rr = math.Abs(in.TargetPrice-in.EntryPrice) / riskPerShare
	}

	return RiskResult{
		Shares:     shares,
		RiskAmount: riskAmount,
		Cost:       float64(shares) * in.EntryPrice,
		RewardRisk: rr,
	}, true
}

func supplied(v float64) bool {
	return v != 0 && !math.IsNaN(v)
}
