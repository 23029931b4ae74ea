package suggest

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/wordbridge/internal/translation"
)

// BreakerProvider stops calling a failing provider for a cooldown period
// once it has failed maxFailures times in a row.
type BreakerProvider struct {
	next Provider
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps next in a circuit breaker.
func NewBreakerProvider(next Provider, maxFailures uint32, cooldown time.Duration) *BreakerProvider {
	if maxFailures == 0 {
		maxFailures = 1
	}
	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	return &BreakerProvider{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Name returns the wrapped provider's name.
func (p *BreakerProvider) Name() string {
	return p.next.Name()
}

// Open reports whether the breaker currently rejects calls.
func (p *BreakerProvider) Open() bool {
	return p.cb.State() == gobreaker.StateOpen
}

// Suggest implements Provider. While the breaker is open it fails fast with
// gobreaker.ErrOpenState.
func (p *BreakerProvider) Suggest(ctx context.Context, word string, dir translation.Direction) ([]string, error) {
	result, err := p.cb.Execute(func() (interface{}, error) {
		suggestions, err := p.next.Suggest(ctx, word, dir)
		if err != nil {
			return nil, err
		}
		return suggestions, nil
	})
	if err != nil {
		return nil, err
	}
	suggestions, _ := result.([]string)
	return suggestions, nil
}
