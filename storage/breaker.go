package storage

import (
	"context"
	"time"

	"github.com/cryptoexpertssss/gobeauty-mobile/utils"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerStore decorates a Store with a per-operation timeout and a circuit
// breaker, so a stalled or failing engine surfaces as a prompt error instead
// of hanging every caller behind it.
type BreakerStore struct {
	inner   Store
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
}

// NewBreakerStore wraps inner. The breaker opens after 3 consecutive
// failures and probes again after 5 seconds.
func NewBreakerStore(inner Store, timeout time.Duration) *BreakerStore {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kv-store",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			utils.GetLogger().Warn("storage circuit breaker state change",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &BreakerStore{inner: inner, breaker: cb, timeout: timeout}
}

func (b *BreakerStore) execute(ctx context.Context, op func(context.Context) ([]byte, error)) ([]byte, error) {
	out, err := b.breaker.Execute(func() (interface{}, error) {
		opCtx, cancel := context.WithTimeout(ctx, b.timeout)
		defer cancel()
		return op(opCtx)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return out.([]byte), nil
}

func (b *BreakerStore) Get(ctx context.Context, key string) ([]byte, error) {
	return b.execute(ctx, func(ctx context.Context) ([]byte, error) {
		return b.inner.Get(ctx, key)
	})
}

func (b *BreakerStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.execute(ctx, func(ctx context.Context) ([]byte, error) {
		return nil, b.inner.Set(ctx, key, value)
	})
	return err
}

func (b *BreakerStore) Remove(ctx context.Context, key string) error {
	_, err := b.execute(ctx, func(ctx context.Context) ([]byte, error) {
		return nil, b.inner.Remove(ctx, key)
	})
	return err
}
