package sop_test

import (
	"testing"

	"github.com/zentrader/zen-trader-backend/internal/model"
	"github.com/zentrader/zen-trader-backend/internal/sop"
)

func allPass() []model.SOPStep {
	steps := sop.InitialSteps()
	for i := range steps {
		steps[i].Status = model.StatusPass
	}
	return steps
}

// TestInitialSteps tests the step catalog copy.
//
// WHY: InitialSteps is reused to reset every session; returning a
// shared slice would let one session's marks bleed into the next.
func TestInitialSteps(t *testing.T) {
	t.Run("returns seven pending steps", func(t *testing.T) {
		steps := sop.InitialSteps()

		if len(steps) != 7 {
			t.Fatalf("Expected 7 steps, got %d", len(steps))
		}
		for _, s := range steps {
			if s.Status != model.StatusPending {
				t.Errorf("Step %d: expected pending, got %s", s.ID, s.Status)
			}
			if s.Note != "" {
				t.Errorf("Step %d: expected empty note, got %q", s.ID, s.Note)
			}
		}
	})

	t.Run("returns a fresh copy each call", func(t *testing.T) {
		first := sop.InitialSteps()
		first[0].Status = model.StatusFail
		first[0].Note = "weak volume"

		second := sop.InitialSteps()

		if second[0].Status != model.StatusPending || second[0].Note != "" {
			t.Errorf("Catalog was mutated through a previous copy: %+v", second[0])
		}
	})

	t.Run("step ids are sequential", func(t *testing.T) {
		for i, s := range sop.InitialSteps() {
			if s.ID != i+1 {
				t.Errorf("Step %d: expected id %d, got %d", i, i+1, s.ID)
			}
		}
	})
}

// TestValidRule tests hard-stop rule membership.
func TestValidRule(t *testing.T) {
	t.Run("accepts catalog rules", func(t *testing.T) {
		for _, r := range sop.NoTradeRules() {
			if !sop.ValidRule(r) {
				t.Errorf("Expected %q to be a valid rule", r)
			}
		}
	})

	t.Run("rejects unknown rules", func(t *testing.T) {
		if sop.ValidRule("Mercury in retrograde") {
			t.Error("Expected unknown rule to be rejected")
		}
	})

	t.Run("rejects empty rule", func(t *testing.T) {
		if sop.ValidRule("") {
			t.Error("Expected empty rule to be rejected")
		}
	})
}

// TestEvaluate tests verdict derivation priority.
//
// WHY: The verdict is the product. The priority order (hard-stop rule,
// then fail, then pending, then warn) is what makes the checklist
// conservative: only a fully and explicitly passed session is tradable.
func TestEvaluate(t *testing.T) {
	t.Run("all pass is tradable", func(t *testing.T) {
		v := sop.Evaluate(allPass(), "")

		if v.Result != model.ResultTradable {
			t.Errorf("Expected %s, got %s", model.ResultTradable, v.Result)
		}
		if v.Advice == "" {
			t.Error("Expected advisory text")
		}
	})

	t.Run("active rule vetoes a perfect checklist", func(t *testing.T) {
		v := sop.Evaluate(allPass(), "FOMO")

		if v.Result != model.ResultNoTrade {
			t.Errorf("Expected %s, got %s", model.ResultNoTrade, v.Result)
		}
	})

	t.Run("single fail is no trade", func(t *testing.T) {
		steps := allPass()
		steps[3].Status = model.StatusFail

		v := sop.Evaluate(steps, "")

		if v.Result != model.ResultNoTrade {
			t.Errorf("Expected %s, got %s", model.ResultNoTrade, v.Result)
		}
	})

	t.Run("fail outranks pending", func(t *testing.T) {
		steps := allPass()
		steps[0].Status = model.StatusFail
		steps[1].Status = model.StatusPending

		v := sop.Evaluate(steps, "")

		if v.Result != model.ResultNoTrade {
			t.Errorf("Expected %s, got %s", model.ResultNoTrade, v.Result)
		}
	})

	t.Run("single pending is observe", func(t *testing.T) {
		steps := allPass()
		steps[6].Status = model.StatusPending

		v := sop.Evaluate(steps, "")

		if v.Result != model.ResultObserve {
			t.Errorf("Expected %s, got %s", model.ResultObserve, v.Result)
		}
	})

	t.Run("pending outranks warn", func(t *testing.T) {
		steps := allPass()
		steps[0].Status = model.StatusWarn
		steps[1].Status = model.StatusPending

		incomplete := sop.Evaluate(steps, "")
		steps[1].Status = model.StatusPass
		flawed := sop.Evaluate(steps, "")

		if incomplete.Result != model.ResultObserve || flawed.Result != model.ResultObserve {
			t.Fatalf("Expected observe for both, got %s and %s", incomplete.Result, flawed.Result)
		}
		// Same result, different advisory path.
		if incomplete.Advice == flawed.Advice {
			t.Error("Expected distinct advice for incomplete vs flawed checklist")
		}
	})

	t.Run("fresh checklist is observe", func(t *testing.T) {
		v := sop.Evaluate(sop.InitialSteps(), "")

		if v.Result != model.ResultObserve {
			t.Errorf("Expected %s, got %s", model.ResultObserve, v.Result)
		}
	})
}

// TestNextFocus tests checklist navigation.
//
// WHY: A non-pass mark should hold focus so the user attaches a note;
// a pass should walk forward to the next unresolved step.
func TestNextFocus(t *testing.T) {
	t.Run("non-pass keeps focus on the step", func(t *testing.T) {
		steps := sop.InitialSteps()
		steps[2].Status = model.StatusWarn

		if got := sop.NextFocus(steps, 3); got != 3 {
			t.Errorf("Expected focus 3, got %d", got)
		}
	})

	t.Run("pass advances to the next pending step", func(t *testing.T) {
		steps := sop.InitialSteps()
		steps[0].Status = model.StatusPass

		if got := sop.NextFocus(steps, 1); got != 2 {
			t.Errorf("Expected focus 2, got %d", got)
		}
	})

	t.Run("pass skips already-resolved steps", func(t *testing.T) {
		steps := sop.InitialSteps()
		steps[0].Status = model.StatusPass
		steps[1].Status = model.StatusPass
		steps[2].Status = model.StatusFail

		if got := sop.NextFocus(steps, 1); got != 4 {
			t.Errorf("Expected focus 4, got %d", got)
		}
	})

	t.Run("nothing left to resolve clears focus", func(t *testing.T) {
		if got := sop.NextFocus(allPass(), 7); got != 0 {
			t.Errorf("Expected focus 0, got %d", got)
		}
	})
}
