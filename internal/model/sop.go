package model

// SOPStatus is the state of a single checklist step. Steps start
// pending and may be overwritten freely until the session is saved.
type SOPStatus string

const (
	StatusPending SOPStatus = "pending"
	StatusPass    SOPStatus = "pass"
	StatusWarn    SOPStatus = "warn"
	StatusFail    SOPStatus = "fail"
)

// ValidSOPStatus reports whether s is one of the four step states.
func ValidSOPStatus(s SOPStatus) bool {
	switch s {
	case StatusPending, StatusPass, StatusWarn, StatusFail:
		return true
	}
	return false
}

// SOPStep is one item of the fixed 7-step pre-trade checklist.
// Label and Description come from the static catalog and are not
// user-editable; Status and Note are per-session state.
type SOPStep struct {
	ID          int       `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Status      SOPStatus `json:"status"`
	Note        string    `json:"note"`
}

// TradeResult is the derived Go/No-Go/Wait recommendation.
type TradeResult string

const (
	ResultTradable TradeResult = "Tradable"
	ResultObserve  TradeResult = "Observe"
	ResultNoTrade  TradeResult = "No Trade"
)

// Direction of an evaluated trade idea.
type Direction string

const (
	DirectionLong  Direction = "Long"
	DirectionShort Direction = "Short"
)

// ValidDirection reports whether d is Long or Short.
func ValidDirection(d Direction) bool {
	return d == DirectionLong || d == DirectionShort
}
