package validation

import (
	"github.com/zentrader/zen-trader-backend/internal/api/request"
	"github.com/zentrader/zen-trader-backend/internal/model"
	"github.com/zentrader/zen-trader-backend/internal/sop"
)

func ValidateSetStepStatus(req request.SetStepStatusRequest) error {
	errors := make(map[string]string)

	if req.StepID < 1 || req.StepID > 7 {
		errors["stepId"] = "stepId must be between 1 and 7"
	}
	if !model.ValidSOPStatus(req.Status) {
		errors["status"] = "status must be one of pending, pass, warn, fail"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateSetStepNote(req request.SetStepNoteRequest) error {
	if req.StepID < 1 || req.StepID > 7 {
		return &Error{Fields: map[string]string{"stepId": "stepId must be between 1 and 7"}}
	}
	return nil
}

func ValidateSelectRule(req request.SelectRuleRequest) error {
	// Empty clears the selection.
	if req.Rule != "" && !sop.ValidRule(req.Rule) {
		return &Error{Fields: map[string]string{"rule": "rule is not part of the hard-stop catalog"}}
	}
	return nil
}

func ValidateSessionInputs(req request.SessionInputsRequest) error {
	errors := make(map[string]string)

	if req.Direction != nil && !model.ValidDirection(*req.Direction) {
		errors["direction"] = "direction must be Long or Short"
	}
	if req.Price != nil && *req.Price < 0 {
		errors["price"] = "price cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
