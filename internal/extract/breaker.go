package extract

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/quotecast/internal/quote"
)

// breakerExtractor wraps a backend in a circuit breaker. A batch run makes
// one extraction call per episode; once the endpoint fails repeatedly the
// remaining episodes fail fast instead of each waiting out a full timeout.
type breakerExtractor struct {
	backend Extractor
	breaker *gobreaker.CircuitBreaker
}

// withBreaker wraps an extraction backend in a circuit breaker that trips
// after 5 consecutive failures and probes again after 30 seconds.
func withBreaker(backend Extractor) Extractor {
	settings := gobreaker.Settings{
		Name:    "extract-" + backend.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &breakerExtractor{
		backend: backend,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Extract runs the backend call through the breaker
func (b *breakerExtractor) Extract(ctx context.Context, transcript string, opts *Options) ([]quote.Quote, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.backend.Extract(ctx, transcript, opts)
	})
	if err != nil {
		return nil, err
	}

	return result.([]quote.Quote), nil
}

// Name returns the wrapped backend name
func (b *breakerExtractor) Name() string {
	return b.backend.Name()
}

// IsAvailable checks the wrapped backend
func (b *breakerExtractor) IsAvailable() error {
	return b.backend.IsAvailable()
}
