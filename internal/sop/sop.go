// Package sop implements the pre-trade Standard Operating Procedure:
// the fixed 7-step checklist, the hard-stop no-trade rules, and the
// verdict derivation that turns checklist state into a Go/No-Go/Wait
// recommendation.
package sop

import "github.com/zentrader/zen-trader-backend/internal/model"

// catalog is the fixed 7-step checklist. Labels and descriptions are
// application data, not user-configurable.
var catalog = []model.SOPStep{
	{ID: 1, Label: "Price & Volume", Description: "Is the setup clean? Volume validating move?"},
	{ID: 2, Label: "OBV", Description: "Confirm trend direction. Non-entry signal."},
	{ID: 3, Label: "A/D Line", Description: "Is institutional money supporting this?"},
	{ID: 4, Label: "CMF", Description: "Is it flipping negative? Use as brake."},
	{ID: 5, Label: "RSI", Description: "40-50 Support held? Divergence? No overbought trading."},
	{ID: 6, Label: "MA Structure", Description: "Above key MAs? Stop loss clear?"},
	{ID: 7, Label: "ATR & R:R", Description: "Is R:R > 2? Position size correct?"},
}

// noTradeRules are the hard-stop conditions. Selecting any one of
// them vetoes the trade regardless of step statuses.
var noTradeRules = []string{
	"Choppy / Range Market",
	"Price good, Volume weak",
	"2 Consecutive Losses",
	"Emotional / Revenge Trading",
	"FOMO",
}

// Fixed advisory texts, one per verdict path.
const (
	adviceHardStop   = "Step back. Preserve capital. The market will be there tomorrow."
	adviceFailed     = "Setup invalid. Do not force it. Patience pays."
	adviceIncomplete = "Incomplete analysis. Finish the SOP."
	adviceFlawed     = "Setup has flaws. Reduced size or wait for better confirmation."
	advicePristine   = "Setup looks pristine. Execute with discipline. Honor your stop."
)

// InitialSteps returns a fresh all-pending copy of the step catalog.
func InitialSteps() []model.SOPStep {
	steps := make([]model.SOPStep, len(catalog))
	copy(steps, catalog)
	for i := range steps {
		steps[i].Status = model.StatusPending
		steps[i].Note = ""
	}
	return steps
}

// NoTradeRules returns the hard-stop rule catalog.
func NoTradeRules() []string {
	rules := make([]string, len(noTradeRules))
	copy(rules, noTradeRules)
	return rules
}

// ValidRule reports whether rule is part of the hard-stop catalog.
func ValidRule(rule string) bool {
	for _, r := range noTradeRules {
		if r == rule {
			return true
		}
	}
	return false
}

// Verdict is the derived trade recommendation with its advisory text.
type Verdict struct {
	Result model.TradeResult `json:"result"`
	Advice string            `json:"advice"`
}

// Evaluate derives the verdict from the full step set and the active
// no-trade rule, in strict priority order: an active hard-stop rule
// vetoes everything, then any FAIL, then any PENDING, then any WARN.
// Only a fully and explicitly passed checklist is tradable.
func Evaluate(steps []model.SOPStep, noTradeReason string) Verdict {
	if noTradeReason != "" {
		return Verdict{Result: model.ResultNoTrade, Advice: adviceHardStop}
	}

	var fails, warns, pending int
	for _, s := range steps {
		switch s.Status {
		case model.StatusFail:
			fails++
		case model.StatusWarn:
			warns++
		case model.StatusPending:
			pending++
		}
	}

	switch {
	case fails > 0:
		return Verdict{Result: model.ResultNoTrade, Advice: adviceFailed}
	case pending > 0:
		return Verdict{Result: model.ResultObserve, Advice: adviceIncomplete}
	case warns > 0:
		return Verdict{Result: model.ResultObserve, Advice: adviceFlawed}
	}
	return Verdict{Result: model.ResultTradable, Advice: advicePristine}
}

// NextFocus returns the step that should hold the user's attention
// after step justSet changed status: a non-pass status keeps focus on
// that step so a note can be attached, a pass advances to the next
// pending step. Returns 0 when nothing is left to resolve. This is a
// navigation convenience only; it never affects the verdict.
func NextFocus(steps []model.SOPStep, justSet int) int {
	for _, s := range steps {
		if s.ID == justSet && s.Status != model.StatusPass {
			return s.ID
		}
	}
	for _, s := range steps {
		if s.ID > justSet && s.Status == model.StatusPending {
			return s.ID
		}
	}
	return 0
}
