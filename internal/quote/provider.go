// Package quote defines the external price-quote boundary and its
// Gemini-backed implementation. The provider is an interface so the
// store can be tested against a fake and the concrete backend stays
// swappable.
package quote

import "context"

// EOD is one symbol's end-of-day quote. PrevClose is nil when the
// provider could not determine the prior-session close; the consumer
// falls back to its last known price rather than fabricating one.
type EOD struct {
	Price     float64  `json:"price"`
	PrevClose *float64 `json:"prevClose"`
}

// Provider fetches latest and prior closes for a batch of symbols in
// one request. Keys of the returned map are uppercase symbols; symbols
// missing from the map simply had no data. Any error means no usable
// data at all (network, parse, malformed shape).
type Provider interface {
	Quote(ctx context.Context, symbols []string) (map[string]EOD, error)
}
