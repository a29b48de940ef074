package testutil

import (
	"context"

	"github.com/zentrader/zen-trader-backend/internal/quote"
)

// MockQuoteProvider is a mock implementation of quote.Provider for testing.
// It returns predefined quote data instead of calling the external service.
type MockQuoteProvider struct {
	// MockQuotes is the mapping to return from Quote
	MockQuotes map[string]quote.EOD
	// MockError is the error to return from Quote
	MockError error
	// QueryCount tracks how many times Quote was called
	QueryCount int
	// LastSymbols records the symbols of the most recent call
	LastSymbols []string
}

// NewMockQuoteProvider creates a mock provider with no data configured.
func NewMockQuoteProvider() *MockQuoteProvider {
	return &MockQuoteProvider{
		MockQuotes: map[string]quote.EOD{},
	}
}

// Quote returns the configured quotes or error. A canceled context is
// honored first, like a real network client would.
func (m *MockQuoteProvider) Quote(ctx context.Context, symbols []string) (map[string]quote.EOD, error) {
	m.QueryCount++
	m.LastSymbols = symbols
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.MockQuotes, nil
}

// WithQuote configures one symbol's quote. A negative prevClose means
// the provider omits the field.
func (m *MockQuoteProvider) WithQuote(symbol string, price, prevClose float64) *MockQuoteProvider {
	eod := quote.EOD{Price: price}
	if prevClose > 0 {
		eod.PrevClose = &prevClose
	}
	m.MockQuotes[symbol] = eod
	return m
}

// WithError configures the mock to return the specified error.
func (m *MockQuoteProvider) WithError(err error) *MockQuoteProvider {
	m.MockError = err
	return m
}
