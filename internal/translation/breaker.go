package translation

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerEngine wraps an Engine with a circuit breaker so a failing
// translation service stops receiving requests for a cool-down period
// instead of being hammered. The breaker rejects, it never retries.
type BreakerEngine struct {
	engine  Engine
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerEngine wraps the given engine with a circuit breaker that opens
// after three consecutive failures and probes again after 30 seconds.
func NewBreakerEngine(engine Engine) *BreakerEngine {
	settings := gobreaker.Settings{
		Name:    engine.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &BreakerEngine{
		engine:  engine,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate delegates to the wrapped engine through the circuit breaker.
func (b *BreakerEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.engine.Translate(ctx, text, sourceLang, targetLang)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the wrapped engine's name.
func (b *BreakerEngine) Name() string {
	return b.engine.Name()
}

// IsAvailable checks the wrapped engine's configuration.
func (b *BreakerEngine) IsAvailable() error {
	return b.engine.IsAvailable()
}
