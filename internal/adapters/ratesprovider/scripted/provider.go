// Package scripted provides an in-memory RateProvider that replays configured outcomes.
package scripted

import (
	"context"
	"sync"

	"github.com/SscSPs/currency_conversion_app/internal/core/ports"
)

// Outcome is what the provider answers for one currency pair.
type Outcome struct {
	Rate *float64
	Err  error
}

// Provider answers GetRate from a fixed table keyed by FROM+TO.
// Pairs without an entry are answered with a nil rate, like a provider that omits the quote.
type Provider struct {
	mu       sync.Mutex
	outcomes map[string]Outcome
	calls    []string
}

// NewProvider creates an empty scripted provider.
func NewProvider() *Provider {
	return &Provider{outcomes: make(map[string]Outcome)}
}

// WithRate scripts a successful quote for the pair.
func (p *Provider) WithRate(fromCurrency, toCurrency string, rate float64) *Provider {
	return p.With(fromCurrency, toCurrency, Outcome{Rate: &rate})
}

// WithError scripts a failure for the pair.
func (p *Provider) WithError(fromCurrency, toCurrency string, err error) *Provider {
	return p.With(fromCurrency, toCurrency, Outcome{Err: err})
}

// With scripts an arbitrary outcome for the pair.
func (p *Provider) With(fromCurrency, toCurrency string, outcome Outcome) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.outcomes[fromCurrency+toCurrency] = outcome
	return p
}

// GetRate returns the scripted outcome for the pair and records the call.
func (p *Provider) GetRate(ctx context.Context, fromCurrency, toCurrency string) (*float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := fromCurrency + toCurrency
	p.calls = append(p.calls, key)

	outcome := p.outcomes[key]
	if outcome.Err != nil {
		return nil, outcome.Err
	}
	if outcome.Rate == nil {
		return nil, nil
	}
	rate := *outcome.Rate
	return &rate, nil
}

// Calls returns the pairs requested so far, in order.
func (p *Provider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

var _ ports.RateProvider = (*Provider)(nil)
