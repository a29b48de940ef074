package service_test

import (
	"errors"
	"testing"

	"github.com/zentrader/zen-trader-backend/internal/api/request"
	"github.com/zentrader/zen-trader-backend/internal/apperrors"
	"github.com/zentrader/zen-trader-backend/internal/model"
	"github.com/zentrader/zen-trader-backend/internal/repository"
	"github.com/zentrader/zen-trader-backend/internal/service"
	"github.com/zentrader/zen-trader-backend/internal/testutil"
)

// TestChecklistSession tests the session read model.
func TestChecklistSession(t *testing.T) {
	t.Run("fresh session is all pending and observe", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestChecklistService(t, db)

		session := svc.Session()

		if len(session.Steps) != 7 {
			t.Fatalf("Expected 7 steps, got %d", len(session.Steps))
		}
		for _, s := range session.Steps {
			if s.Status != model.StatusPending {
				t.Errorf("Step %d: expected pending, got %s", s.ID, s.Status)
			}
		}
		if session.Direction != model.DirectionLong {
			t.Errorf("Expected default direction long, got %s", session.Direction)
		}
		if session.Verdict.Result != model.ResultObserve {
			t.Errorf("Expected observe verdict, got %s", session.Verdict.Result)
		}
		if len(session.NoTradeRules) != 5 {
			t.Errorf("Expected 5 no-trade rules, got %d", len(session.NoTradeRules))
		}
	})

	t.Run("returned steps are a copy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestChecklistService(t, db)

		session := svc.Session()
		session.Steps[0].Status = model.StatusFail

		if svc.Session().Steps[0].Status != model.StatusPending {
			t.Error("Session state was mutated through the read model")
		}
	})
}

// TestSetStatus tests step marking and focus movement.
func TestSetStatus(t *testing.T) {
	t.Run("marks a step and advances focus on pass", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestChecklistService(t, db)

		session, err := svc.SetStatus(request.SetStepStatusRequest{StepID: 1, Status: model.StatusPass})

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if session.Steps[0].Status != model.StatusPass {
			t.Errorf("Expected step 1 passed, got %s", session.Steps[0].Status)
		}
		if session.Focus != 2 {
			t.Errorf("Expected focus on step 2, got %d", session.Focus)
		}
	})

	t.Run("non-pass keeps focus for a note", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestChecklistService(t, db)

		session, err := svc.SetStatus(request.SetStepStatusRequest{StepID: 3, Status: model.StatusWarn})

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if session.Focus != 3 {
			t.Errorf("Expected focus held on step 3, got %d", session.Focus)
		}
	})

	t.Run("statuses can be re-set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestChecklistService(t, db)

		if _, err := svc.SetStatus(request.SetStepStatusRequest{StepID: 1, Status: model.StatusFail}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		session, err := svc.SetStatus(request.SetStepStatusRequest{StepID: 1, Status: model.StatusPass})

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if session.Steps[0].Status != model.StatusPass {
			t.Errorf("Expected step 1 re-set to pass, got %s", session.Steps[0].Status)
		}
	})

	t.Run("unknown step id is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestChecklistService(t, db)

		_, err := svc.SetStatus(request.SetStepStatusRequest{StepID: 99, Status: model.StatusPass})

		if !errors.Is(err, apperrors.ErrInvalidStep) {
			t.Errorf("Expected ErrInvalidStep, got %v", err)
		}
	})
}

// TestSelectRule tests hard-stop rule toggling.
func TestSelectRule(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestChecklistService(t, db)

	t.Run("activates a rule and vetoes the verdict", func(t *testing.T) {
		session := svc.SelectRule(request.SelectRuleRequest{Rule: "FOMO"})

		if !session.RuleActive || session.NoTradeReason != "FOMO" {
			t.Errorf("Expected FOMO active, got %+v", session)
		}
		if session.Verdict.Result != model.ResultNoTrade {
			t.Errorf("Expected no-trade verdict, got %s", session.Verdict.Result)
		}
	})

	t.Run("selecting another rule replaces it", func(t *testing.T) {
		session := svc.SelectRule(request.SelectRuleRequest{Rule: "Choppy / Range Market"})

		if session.NoTradeReason != "Choppy / Range Market" {
			t.Errorf("Expected replacement, got %q", session.NoTradeReason)
		}
	})

	t.Run("re-selecting the active rule clears it", func(t *testing.T) {
		session := svc.SelectRule(request.SelectRuleRequest{Rule: "Choppy / Range Market"})

		if session.RuleActive || session.NoTradeReason != "" {
			t.Errorf("Expected cleared rule, got %+v", session)
		}
	})
}

// TestSaveSession tests freezing a session into the journal.
//
// WHY: Saving is the discipline loop's commit point: the entry must
// capture the full step set and verdict, and the session must come
// back factory fresh so yesterday's marks never leak into today's
// evaluation.
func TestSaveSession(t *testing.T) {
	t.Run("requires a symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestChecklistService(t, db)

		_, err := svc.Save(request.SaveSessionRequest{})

		if !errors.Is(err, apperrors.ErrSymbolRequired) {
			t.Errorf("Expected ErrSymbolRequired, got %v", err)
		}
	})

	t.Run("captures the session into an entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestChecklistService(t, db)
		svc.SetInputs(request.SessionInputsRequest{
			Symbol: strPtr("nvda"),
			Price:  floatPtr(480),
		})
		for id := 1; id <= 7; id++ {
			if _, err := svc.SetStatus(request.SetStepStatusRequest{StepID: id, Status: model.StatusPass}); err != nil {
				t.Fatalf("Failed to set status: %v", err)
			}
		}

		entry, err := svc.Save(request.SaveSessionRequest{})

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if entry.ID == "" || entry.Date == 0 {
			t.Error("Expected generated id and date")
		}
		if entry.Symbol != "NVDA" {
			t.Errorf("Expected symbol uppercased, got %s", entry.Symbol)
		}
		if entry.Price == nil || *entry.Price != 480 {
			t.Errorf("Expected price 480, got %v", entry.Price)
		}
		if entry.Result != model.ResultTradable {
			t.Errorf("Expected tradable result, got %s", entry.Result)
		}
		if len(entry.SOPData) != 7 {
			t.Errorf("Expected full step snapshot, got %d steps", len(entry.SOPData))
		}
		if entry.Notes == "" {
			t.Error("Expected advisory text in notes")
		}
		if entry.RiskData != nil {
			t.Error("Expected no risk data without attachRisk")
		}
	})

	t.Run("persists the entry in the journal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		journalSvc := testutil.NewTestJournalService(t, db)
		svc := testutil.NewTestChecklistService(t, db)
		svc.SetInputs(request.SessionInputsRequest{Symbol: strPtr("TLT")})

		if _, err := svc.Save(request.SaveSessionRequest{}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		entries, err := journalSvc.List("")
		if err != nil {
			t.Fatalf("Failed to list: %v", err)
		}
		if len(entries) != 1 || entries[0].Symbol != "TLT" {
			t.Errorf("Expected one TLT entry, got %v", entries)
		}
	})

	t.Run("resets the session after saving", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestChecklistService(t, db)
		svc.SetInputs(request.SessionInputsRequest{Symbol: strPtr("NVDA")})
		if _, err := svc.SetStatus(request.SetStepStatusRequest{StepID: 1, Status: model.StatusFail}); err != nil {
			t.Fatalf("Failed to set status: %v", err)
		}
		svc.SelectRule(request.SelectRuleRequest{Rule: "FOMO"})

		if _, err := svc.Save(request.SaveSessionRequest{}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		session := svc.Session()
		if session.Symbol != "" || session.Price != nil {
			t.Errorf("Expected cleared inputs, got %+v", session)
		}
		if session.NoTradeReason != "" || session.RuleActive {
			t.Error("Expected cleared rule")
		}
		for _, s := range session.Steps {
			if s.Status != model.StatusPending || s.Note != "" {
				t.Errorf("Step %d: expected factory fresh, got %+v", s.ID, s)
			}
		}
	})

	t.Run("attaches the current risk snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStateRepository(db)
		portfolioSvc := service.NewPortfolioService(repo, nil)
		riskSvc := service.NewRiskService(portfolioSvc)
		svc := service.NewChecklistService(service.NewJournalService(repo), riskSvc)

		if _, err := riskSvc.SetInputs(request.RiskInputsRequest{
			EntryPrice:  floatPtr(100),
			StopPrice:   floatPtr(95),
			TargetPrice: floatPtr(110),
		}); err != nil {
			t.Fatalf("Failed to set risk inputs: %v", err)
		}
		svc.SetInputs(request.SessionInputsRequest{Symbol: strPtr("NVDA")})

		entry, err := svc.Save(request.SaveSessionRequest{AttachRisk: true})

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if entry.RiskData == nil {
			t.Fatal("Expected embedded risk data")
		}
		if entry.RiskData.Entry != 100 || entry.RiskData.StopLoss != 95 {
			t.Errorf("Expected entry 100 stop 95, got %+v", entry.RiskData)
		}
		// Default portfolio equity 10000 at 1% risk.
		if entry.RiskData.Shares != 20 || entry.RiskData.RiskAmount != 100 {
			t.Errorf("Expected 20 shares risking 100, got %+v", entry.RiskData)
		}
		if entry.RiskData.RR == nil || *entry.RiskData.RR != 2 {
			t.Errorf("Expected R:R 2, got %v", entry.RiskData.RR)
		}
	})

	t.Run("captures active rule as no-trade", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestChecklistService(t, db)
		svc.SetInputs(request.SessionInputsRequest{Symbol: strPtr("NVDA")})
		svc.SelectRule(request.SelectRuleRequest{Rule: "Emotional / Revenge Trading"})

		entry, err := svc.Save(request.SaveSessionRequest{})

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if entry.Result != model.ResultNoTrade {
			t.Errorf("Expected no-trade result, got %s", entry.Result)
		}
		if entry.NoTradeReason != "Emotional / Revenge Trading" {
			t.Errorf("Expected reason captured, got %q", entry.NoTradeReason)
		}
	})
}
