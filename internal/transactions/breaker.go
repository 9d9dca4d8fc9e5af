package transactions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	defaultBreakerTimeout   = 30 * time.Second
	defaultBreakerThreshold = 5
)

// BreakerStore short-circuits a Store while it keeps failing with
// ErrUnavailable. Query errors pass through without tripping the breaker.
type BreakerStore struct {
	inner   Store
	breaker *gobreaker.CircuitBreaker
}

type BreakerConfig struct {
	Name             string
	FailureThreshold uint32
	Timeout          time.Duration
	Logger           *zap.Logger
}

func NewBreakerStore(inner Store, cfg BreakerConfig) *BreakerStore {
	if cfg.Name == "" {
		cfg.Name = "transactions-store"
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = defaultBreakerThreshold
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultBreakerTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	threshold := cfg.FailureThreshold
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &BreakerStore{inner: inner, breaker: gobreaker.NewCircuitBreaker(settings)}
}

func (b *BreakerStore) State() gobreaker.State {
	return b.breaker.State()
}

func (b *BreakerStore) SelectWhere(ctx context.Context, f Filter) ([]Transaction, error) {
	var out []Transaction
	err := b.run(func() error {
		var err error
		out, err = b.inner.SelectWhere(ctx, f)
		return err
	})
	return out, err
}

func (b *BreakerStore) Insert(ctx context.Context, t Transaction) error {
	return b.run(func() error {
		return b.inner.Insert(ctx, t)
	})
}

func (b *BreakerStore) SumWhere(ctx context.Context, f Filter) (*float64, error) {
	var out *float64
	err := b.run(func() error {
		var err error
		out, err = b.inner.SumWhere(ctx, f)
		return err
	})
	return out, err
}

// run reports only ErrUnavailable to the breaker; other errors are handed back
// to the caller while the breaker records a success.
func (b *BreakerStore) run(fn func() error) error {
	var passthrough error

	_, err := b.breaker.Execute(func() (any, error) {
		err := fn()
		if err != nil && !errors.Is(err, ErrUnavailable) {
			passthrough = err
			return nil, nil
		}
		return nil, err
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case err != nil:
		return err
	}
	return passthrough
}
