package request

// RiskInputsRequest updates the risk calculator's session inputs.
// Nil fields are left unchanged; recomputation is reactive, so any
// accepted change yields a fresh result set.
type RiskInputsRequest struct {
	AccountEquity *float64 `json:"accountEquity"`
	RiskPercent   *float64 `json:"riskPercent"`
	EntryPrice    *float64 `json:"entryPrice"`
	StopPrice     *float64 `json:"stopPrice"`
	TargetPrice   *float64 `json:"targetPrice"`
}
