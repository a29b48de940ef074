package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiProvider resolves end-of-day quotes by asking a Gemini model
// grounded with Google Search. The model is instructed to answer with
// a bare JSON object; answers wrapped in markdown fences are tolerated
// and stripped before decoding.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiProvider creates a provider using the given API key and
// model name. Each Quote call is bounded by timeout since it crosses
// a network boundary.
func NewGeminiProvider(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
	}

	return &GeminiProvider{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Quote implements Provider with a single batched generate call.
func (p *GeminiProvider) Quote(ctx context.Context, symbols []string) (map[string]EOD, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	prompt := buildPrompt(symbols)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty gemini response")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	return ParseQuotes(text.String())
}

func buildPrompt(symbols []string) string {
	return fmt.Sprintf(`Get the most recent closing price (price) and the closing price of the trading day before that (prevClose) for the following US stocks: %s.

Return ONLY a raw JSON object (no markdown formatting, no explanation) where the key is the stock symbol (uppercase) and the value is an object with 'price' and 'prevClose'.
Example:
{
  "AAPL": { "price": 150.25, "prevClose": 148.50 },
  "NVDA": { "price": 480.00, "prevClose": 475.20 }
}`, strings.Join(symbols, ", "))
}

// ParseQuotes decodes a model answer into the symbol-to-quote map.
// Surrounding code fences are stripped first; symbol keys are
// normalized to uppercase. A non-positive price invalidates the whole
// answer so a hallucinated zero can never overwrite a real price.
func ParseQuotes(text string) (map[string]EOD, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var raw map[string]EOD
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}

	quotes := make(map[string]EOD, len(raw))
	for symbol, eod := range raw {
		if eod.Price <= 0 {
			return nil, fmt.Errorf("non-positive price for %s", symbol)
		}
		if eod.PrevClose != nil && *eod.PrevClose <= 0 {
			eod.PrevClose = nil
		}
		quotes[strings.ToUpper(symbol)] = eod
	}
	return quotes, nil
}
