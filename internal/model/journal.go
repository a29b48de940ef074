package model

// RiskData is an optional position-sizing snapshot embedded in a
// journal entry at save time.
type RiskData struct {
	Entry      float64  `json:"entry"`
	StopLoss   float64  `json:"stopLoss"`
	Target     *float64 `json:"target,omitempty"`
	RiskAmount float64  `json:"riskAmount"`
	Shares     int64    `json:"shares"`
	RR         *float64 `json:"rr,omitempty"`
}

// JournalEntry is the immutable record of one evaluation session.
// Entries are only ever created by saving a session and removed by a
// full journal reset; they hold a frozen copy of the step set and
// carry no reference back to live portfolio or session state.
type JournalEntry struct {
	ID            string      `json:"id"`
	Date          int64       `json:"date"` // unix milliseconds
	Symbol        string      `json:"symbol"`
	Price         *float64    `json:"price,omitempty"`
	Direction     Direction   `json:"direction"`
	Result        TradeResult `json:"result"`
	SOPData       []SOPStep   `json:"sopData"`
	RiskData      *RiskData   `json:"riskData,omitempty"`
	NoTradeReason string      `json:"noTradeReason,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}
