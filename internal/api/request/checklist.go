package request

import "github.com/zentrader/zen-trader-backend/internal/model"

type SetStepStatusRequest struct {
	StepID int             `json:"stepId"`
	Status model.SOPStatus `json:"status"`
}

type SetStepNoteRequest struct {
	StepID int    `json:"stepId"`
	Note   string `json:"note"`
}

// SelectRuleRequest activates a hard-stop rule; an empty rule clears
// the active selection.
type SelectRuleRequest struct {
	Rule string `json:"rule"`
}

type SessionInputsRequest struct {
	Symbol    *string          `json:"symbol"`
	Price     *float64         `json:"price"`
	Direction *model.Direction `json:"direction"`
}

// SaveSessionRequest saves the current session to the journal.
// AttachRisk embeds the risk calculator's current sizing snapshot
// when it has a computable result.
type SaveSessionRequest struct {
	AttachRisk bool `json:"attachRisk"`
}
