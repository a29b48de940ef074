package service

import (
	"sync"

	"github.com/zentrader/zen-trader-backend/internal/api/request"
	"github.com/zentrader/zen-trader-backend/internal/calc"
)

// RiskService holds the position-sizing session. Inputs are ephemeral
// UI state, never persisted alongside the portfolio. Account equity
// auto-syncs from live portfolio equity until the user supplies a
// nonzero override; supplying zero (or clearing) re-enables the sync.
type RiskService struct {
	portfolioService *PortfolioService

	mu         sync.Mutex
	inputs     calc.RiskInput
	overridden bool
}

// NewRiskService creates a RiskService with the default 1% risk.
func NewRiskService(portfolioService *PortfolioService) *RiskService {
	return &RiskService{
		portfolioService: portfolioService,
		inputs: calc.RiskInput{
			RiskPercent: calc.DefaultRiskPercent,
		},
	}
}

// RiskView is the calculator read model: the effective inputs and, if
// computable, the sizing result. Computed=false renders as "not yet
// computed", never as a $0 result.
type RiskView struct {
	Inputs   calc.RiskInput  `json:"inputs"`
	Result   calc.RiskResult `json:"result"`
	Computed bool            `json:"computed"`
}

// SetInputs applies partial input changes and returns the freshly
// recomputed view; recomputation is reactive, there is no separate
// calculate gesture.
func (s *RiskService) SetInputs(req request.RiskInputsRequest) (RiskView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.AccountEquity != nil {
		s.inputs.AccountEquity = *req.AccountEquity
		// A nonzero value stops the auto-sync; zero hands the field
		// back to the live portfolio equity.
		s.overridden = *req.AccountEquity != 0
	}
	if req.RiskPercent != nil {
		s.inputs.RiskPercent = *req.RiskPercent
	}
	if req.EntryPrice != nil {
		s.inputs.EntryPrice = *req.EntryPrice
	}
	if req.StopPrice != nil {
		s.inputs.StopPrice = *req.StopPrice
	}
	if req.TargetPrice != nil {
		s.inputs.TargetPrice = *req.TargetPrice
	}

	return s.viewLocked()
}

// View returns the current calculator state.
func (s *RiskService) View() (RiskView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Snapshot returns the current sizing result for embedding in a
// journal entry, with ok=false when nothing is computable.
func (s *RiskService) Snapshot() (calc.RiskInput, calc.RiskResult, bool) {
	view, err := s.View()
	if err != nil || !view.Computed {
		return calc.RiskInput{}, calc.RiskResult{}, false
	}
	return view.Inputs, view.Result, true
}

func (s *RiskService) viewLocked() (RiskView, error) {
	inputs := s.inputs
	if !s.overridden {
		equity, err := s.portfolioService.TotalEquity()
		if err != nil {
			return RiskView{}, err
		}
		inputs.AccountEquity = equity
	}

	result, ok := calc.CalculateRisk(inputs)
	return RiskView{Inputs: inputs, Result: result, Computed: ok}, nil
}
