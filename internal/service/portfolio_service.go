package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/zentrader/zen-trader-backend/internal/api/request"
	"github.com/zentrader/zen-trader-backend/internal/apperrors"
	"github.com/zentrader/zen-trader-backend/internal/calc"
	"github.com/zentrader/zen-trader-backend/internal/model"
	"github.com/zentrader/zen-trader-backend/internal/quote"
	"github.com/zentrader/zen-trader-backend/internal/repository"
)

// PortfolioService owns the portfolio aggregate: asset and cash
// mutations, derived summary figures, the reset, and the EOD price
// refresh. All derived values are recomputed from raw state on every
// read; nothing is cached, so nothing can go stale. Every mutation is
// a load-mutate-save under one lock, making it all-or-nothing.
type PortfolioService struct {
	repo     *repository.StateRepository
	provider quote.Provider

	mu      sync.Mutex
	refresh singleflight.Group
}

// NewPortfolioService creates a new PortfolioService. provider may be
// nil, in which case EOD refreshes report failure without touching
// price state.
func NewPortfolioService(repo *repository.StateRepository, provider quote.Provider) *PortfolioService {
	return &PortfolioService{
		repo:     repo,
		provider: provider,
	}
}

// GetPortfolio returns the current portfolio state.
func (s *PortfolioService) GetPortfolio() (model.Portfolio, error) {
	return s.repo.LoadPortfolio()
}

// Holding is one asset enriched with its derived display figures for
// the holdings listing. TotalPnLPercent is against cost basis and 0
// when there is no cost basis to measure against.
type Holding struct {
	model.Asset
	MarketValue     float64 `json:"marketValue"`
	DailyPnL        float64 `json:"dailyPnl"`
	TotalPnL        float64 `json:"totalPnl"`
	TotalPnLPercent float64 `json:"totalPnlPercent"`
}

func newHolding(a model.Asset) Holding {
	h := Holding{
		Asset:       a,
		MarketValue: a.MarketValue(),
		DailyPnL:    a.DailyPnL(),
		TotalPnL:    a.TotalPnL(),
	}
	if costBasis := a.AvgCost * a.Shares; costBasis > 0 {
		h.TotalPnLPercent = h.TotalPnL / costBasis * 100
	}
	return h
}

// Summary is the dashboard read model: totals, allocation, rebalance
// flag, the enriched holdings listing, daily movers and the
// updated-today indicator.
type Summary struct {
	Totals         calc.Totals        `json:"totals"`
	Buckets        []calc.BucketSlice `json:"buckets"`
	NeedsRebalance bool               `json:"needsRebalance"`
	Holdings       []Holding          `json:"holdings"`
	TopMover       *model.Asset       `json:"topMover,omitempty"`
	BottomMover    *model.Asset       `json:"bottomMover,omitempty"`
	UpdatedToday   bool               `json:"updatedToday"`
	LastUpdated    int64              `json:"lastUpdated"`
}

// GetSummary recomputes the full dashboard aggregate from raw state.
func (s *PortfolioService) GetSummary() (Summary, error) {
	p, err := s.repo.LoadPortfolio()
	if err != nil {
		return Summary{}, err
	}

	totals := calc.CalculateTotals(p)
	buckets := calc.CalculateBuckets(p, totals.TotalEquity)
	top, bottom := calc.DailyMovers(p.Assets)

	holdings := make([]Holding, 0, len(p.Assets))
	for _, a := range p.Assets {
		holdings = append(holdings, newHolding(a))
	}

	return Summary{
		Totals:         totals,
		Buckets:        buckets,
		NeedsRebalance: calc.NeedsRebalance(buckets),
		Holdings:       holdings,
		TopMover:       top,
		BottomMover:    bottom,
		UpdatedToday:   p.UpdatedToday(time.Now()),
		LastUpdated:    p.LastUpdated,
	}, nil
}

// TotalEquity returns the live total equity, used by the risk
// calculator's account-size auto-sync.
func (s *PortfolioService) TotalEquity() (float64, error) {
	p, err := s.repo.LoadPortfolio()
	if err != nil {
		return 0, err
	}
	return calc.CalculateTotals(p).TotalEquity, nil
}

// AddAsset opens a new position. A new position has no trading
// history yet, so currentPrice and prevClose both start at avgCost.
func (s *PortfolioService) AddAsset(req request.AddAssetRequest) (model.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.LoadPortfolio()
	if err != nil {
		return model.Asset{}, err
	}

	asset := model.Asset{
		ID:           uuid.New().String(),
		Symbol:       strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Shares:       req.Shares,
		AvgCost:      req.AvgCost,
		CurrentPrice: req.AvgCost,
		PrevClose:    req.AvgCost,
		Bucket:       req.Bucket,
		Notes:        req.Notes,
	}

	p.Assets = append(p.Assets, asset)
	if err := s.repo.SavePortfolio(p); err != nil {
		return model.Asset{}, err
	}
	return asset, nil
}

// UpdateAsset applies partial field edits to an existing position.
func (s *PortfolioService) UpdateAsset(id string, req request.UpdateAssetRequest) (model.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.LoadPortfolio()
	if err != nil {
		return model.Asset{}, err
	}

	for i := range p.Assets {
		if p.Assets[i].ID != id {
			continue
		}
		a := &p.Assets[i]
		if req.Symbol != nil {
			a.Symbol = strings.ToUpper(strings.TrimSpace(*req.Symbol))
		}
		if req.Shares != nil {
			a.Shares = *req.Shares
		}
		if req.AvgCost != nil {
			a.AvgCost = *req.AvgCost
		}
		if req.CurrentPrice != nil {
			a.CurrentPrice = *req.CurrentPrice
		}
		if req.PrevClose != nil {
			a.PrevClose = *req.PrevClose
		}
		if req.Bucket != nil {
			a.Bucket = *req.Bucket
		}
		if req.Notes != nil {
			a.Notes = *req.Notes
		}
		if err := s.repo.SavePortfolio(p); err != nil {
			return model.Asset{}, err
		}
		return *a, nil
	}

	return model.Asset{}, apperrors.ErrAssetNotFound
}

// DeleteAsset permanently removes a position. There is no undo.
func (s *PortfolioService) DeleteAsset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.LoadPortfolio()
	if err != nil {
		return err
	}

	for i := range p.Assets {
		if p.Assets[i].ID == id {
			p.Assets = append(p.Assets[:i], p.Assets[i+1:]...)
			return s.repo.SavePortfolio(p)
		}
	}
	return apperrors.ErrAssetNotFound
}

// UpdateCash sets the cash balance to an absolute amount.
func (s *PortfolioService) UpdateCash(req request.UpdateCashRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.LoadPortfolio()
	if err != nil {
		return err
	}

	p.CashUSD = req.CashUSD
	return s.repo.SavePortfolio(p)
}

// Reset restores the default portfolio and clears the journal. This
// is irreversible.
func (s *PortfolioService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Reset()
}

// RefreshOutcome tells the caller how an EOD refresh went. A failed
// provider call is not an error: prices are simply left untouched and
// the caller may offer a retry.
type RefreshOutcome struct {
	Updated int  `json:"updated"`
	Symbols int  `json:"symbols"`
	Failed  bool `json:"failed"`
}

// RefreshEOD updates currentPrice/prevClose for every held asset from
// one batched quote-provider call. Overlapping invocations are
// collapsed into a single flight so two refreshes can never race on
// the same portfolio. With no held symbols it only stamps
// lastUpdated. On provider failure no asset state is mutated.
func (s *PortfolioService) RefreshEOD(ctx context.Context) (RefreshOutcome, error) {
	// The flight is shared across callers; it must not die with the
	// first caller's request context. The provider timeout still
	// bounds the call.
	ctx = context.WithoutCancel(ctx)
	v, err, _ := s.refresh.Do("eod", func() (any, error) {
		return s.doRefresh(ctx)
	})
	if err != nil {
		return RefreshOutcome{}, err
	}
	return v.(RefreshOutcome), nil
}

func (s *PortfolioService) doRefresh(ctx context.Context) (RefreshOutcome, error) {
	s.mu.Lock()
	p, err := s.repo.LoadPortfolio()
	s.mu.Unlock()
	if err != nil {
		return RefreshOutcome{}, err
	}

	symbols := p.Symbols()
	if len(symbols) == 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		p, err := s.repo.LoadPortfolio()
		if err != nil {
			return RefreshOutcome{}, err
		}
		p.LastUpdated = time.Now().UnixMilli()
		if err := s.repo.SavePortfolio(p); err != nil {
			return RefreshOutcome{}, err
		}
		return RefreshOutcome{}, nil
	}

	if s.provider == nil {
		log.Printf("EOD refresh skipped: no quote provider configured")
		return RefreshOutcome{Symbols: len(symbols), Failed: true}, nil
	}

	quotes, err := s.provider.Quote(ctx, symbols)
	if err != nil {
		// Surfaced as a typed outcome, never raised: a flaky quote
		// call must not break the store or trigger retry storms.
		log.Printf("EOD refresh failed: %v", err)
		return RefreshOutcome{Symbols: len(symbols), Failed: true}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Reload under the lock: assets may have changed mid-flight.
	p, err = s.repo.LoadPortfolio()
	if err != nil {
		return RefreshOutcome{}, err
	}

	updated := 0
	for i := range p.Assets {
		a := &p.Assets[i]
		eod, ok := quotes[strings.ToUpper(a.Symbol)]
		if !ok {
			continue
		}
		if eod.PrevClose != nil {
			a.PrevClose = *eod.PrevClose
		} else {
			// Missing prevClose keeps the last known reference point
			// instead of fabricating a zero-change day.
			a.PrevClose = a.CurrentPrice
		}
		a.CurrentPrice = eod.Price
		updated++
	}
	p.LastUpdated = time.Now().UnixMilli()

	if err := s.repo.SavePortfolio(p); err != nil {
		return RefreshOutcome{}, fmt.Errorf("failed to persist refreshed prices: %w", err)
	}

	return RefreshOutcome{Updated: updated, Symbols: len(symbols)}, nil
}
