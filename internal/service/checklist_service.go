package service

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zentrader/zen-trader-backend/internal/api/request"
	"github.com/zentrader/zen-trader-backend/internal/apperrors"
	"github.com/zentrader/zen-trader-backend/internal/model"
	"github.com/zentrader/zen-trader-backend/internal/sop"
)

// ChecklistService owns the live SOP evaluation session: the step
// set, the active no-trade rule and the symbol/price/direction
// inputs. The session is ephemeral; saving it snapshots everything
// into an immutable journal entry and starts over from a clean slate.
type ChecklistService struct {
	journalService *JournalService
	riskService    *RiskService

	mu            sync.Mutex
	symbol        string
	price         *float64
	direction     model.Direction
	steps         []model.SOPStep
	noTradeReason string
	focus         int
}

// NewChecklistService creates a ChecklistService with a fresh session.
func NewChecklistService(journalService *JournalService, riskService *RiskService) *ChecklistService {
	s := &ChecklistService{
		journalService: journalService,
		riskService:    riskService,
	}
	s.resetLocked()
	return s
}

// Session is the checklist read model, including the derived verdict.
// RuleActive tells the UI to dim further SOP interaction.
type Session struct {
	Symbol        string          `json:"symbol"`
	Price         *float64        `json:"price,omitempty"`
	Direction     model.Direction `json:"direction"`
	Steps         []model.SOPStep `json:"steps"`
	NoTradeRules  []string        `json:"noTradeRules"`
	NoTradeReason string          `json:"noTradeReason,omitempty"`
	RuleActive    bool            `json:"ruleActive"`
	Focus         int             `json:"focus,omitempty"`
	Verdict       sop.Verdict     `json:"verdict"`
}

// Session returns the current session state with its verdict, always
// derived fresh from the full step set.
func (s *ChecklistService) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionLocked()
}

// SetInputs updates the symbol/price/direction header fields.
func (s *ChecklistService) SetInputs(req request.SessionInputsRequest) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Symbol != nil {
		s.symbol = strings.TrimSpace(*req.Symbol)
	}
	if req.Price != nil {
		if *req.Price == 0 {
			s.price = nil
		} else {
			price := *req.Price
			s.price = &price
		}
	}
	if req.Direction != nil {
		s.direction = *req.Direction
	}
	return s.sessionLocked()
}

// SetStatus overwrites one step's status. Statuses are never one-way;
// any step may be re-set until the session is saved. The returned
// session carries the new focus step: non-pass keeps attention on the
// step for a note, pass advances to the next pending one.
func (s *ChecklistService) SetStatus(req request.SetStepStatusRequest) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.steps {
		if s.steps[i].ID == req.StepID {
			s.steps[i].Status = req.Status
			s.focus = sop.NextFocus(s.steps, req.StepID)
			return s.sessionLocked(), nil
		}
	}
	return Session{}, apperrors.ErrInvalidStep
}

// SetNote attaches a free-text observation to one step.
func (s *ChecklistService) SetNote(req request.SetStepNoteRequest) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.steps {
		if s.steps[i].ID == req.StepID {
			s.steps[i].Note = req.Note
			return s.sessionLocked(), nil
		}
	}
	return Session{}, apperrors.ErrInvalidStep
}

// SelectRule activates a hard-stop rule, replaces the active one, or
// clears the selection when rule is empty or re-selected. At most one
// rule is active at a time.
func (s *ChecklistService) SelectRule(req request.SelectRuleRequest) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Rule == s.noTradeReason {
		s.noTradeReason = ""
	} else {
		s.noTradeReason = req.Rule
	}
	return s.sessionLocked()
}

// Save freezes the session into an immutable journal entry and resets
// the session to the initial catalog. A symbol is required; saving
// never touches portfolio state.
func (s *ChecklistService) Save(req request.SaveSessionRequest) (model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.symbol == "" {
		return model.JournalEntry{}, apperrors.ErrSymbolRequired
	}

	verdict := sop.Evaluate(s.steps, s.noTradeReason)

	steps := make([]model.SOPStep, len(s.steps))
	copy(steps, s.steps)

	entry := model.JournalEntry{
		ID:            uuid.New().String(),
		Date:          time.Now().UnixMilli(),
		Symbol:        strings.ToUpper(s.symbol),
		Price:         s.price,
		Direction:     s.direction,
		Result:        verdict.Result,
		SOPData:       steps,
		NoTradeReason: s.noTradeReason,
		Notes:         verdict.Advice,
	}

	if req.AttachRisk {
		if inputs, result, ok := s.riskService.Snapshot(); ok {
			risk := model.RiskData{
				Entry:      inputs.EntryPrice,
				StopLoss:   inputs.StopPrice,
				RiskAmount: result.RiskAmount,
				Shares:     result.Shares,
			}
			if inputs.TargetPrice != 0 {
				target := inputs.TargetPrice
				rr := result.RewardRisk
				risk.Target = &target
				risk.RR = &rr
			}
			entry.RiskData = &risk
		}
	}

	if err := s.journalService.Add(entry); err != nil {
		return model.JournalEntry{}, err
	}

	s.resetLocked()
	return entry, nil
}

// Reset discards the session without saving.
func (s *ChecklistService) Reset() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	return s.sessionLocked()
}

func (s *ChecklistService) resetLocked() {
	s.symbol = ""
	s.price = nil
	s.direction = model.DirectionLong
	s.steps = sop.InitialSteps()
	s.noTradeReason = ""
	s.focus = 0
}

func (s *ChecklistService) sessionLocked() Session {
	steps := make([]model.SOPStep, len(s.steps))
	copy(steps, s.steps)

	return Session{
		Symbol:        s.symbol,
		Price:         s.price,
		Direction:     s.direction,
		Steps:         steps,
		NoTradeRules:  sop.NoTradeRules(),
		NoTradeReason: s.noTradeReason,
		RuleActive:    s.noTradeReason != "",
		Focus:         s.focus,
		Verdict:       sop.Evaluate(s.steps, s.noTradeReason),
	}
}
