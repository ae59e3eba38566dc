package impl

import (
	"context"
	"log/slog"
	"time"

	"tether/config"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/usecase"

	"github.com/cenkalti/backoff/v4"
)

// retryPolicy is a resolved set of retry parameters
type retryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
}

// resolveRetryPolicy fills unset option values from configuration
func resolveRetryPolicy(opts usecase.RefreshOptions, cfg *config.SyncConfig) retryPolicy {
	policy := retryPolicy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.BaseDelay,
		MaxDelay:   cfg.MaxDelay,
		Multiplier: cfg.BackoffMultiplier,
	}
	if opts.MaxRetries > 0 {
		policy.MaxRetries = opts.MaxRetries
	}
	if opts.BaseDelay > 0 {
		policy.BaseDelay = opts.BaseDelay
	}
	if opts.MaxDelay > 0 {
		policy.MaxDelay = opts.MaxDelay
	}
	if opts.BackoffMultiplier >= 1 {
		policy.Multiplier = opts.BackoffMultiplier
	}
	if policy.MaxDelay < policy.BaseDelay {
		policy.MaxDelay = policy.BaseDelay
	}

	return policy
}

// backOff builds a jitter-free exponential schedule: base, base*m, base*m^2 ... capped at max
func (p retryPolicy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.BaseDelay
	exp.Multiplier = p.Multiplier
	exp.MaxInterval = p.MaxDelay
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(p.MaxRetries)), ctx)
}

// withRetry runs operation until it succeeds, returns a non-retryable error,
// or MaxRetries further attempts are spent. The last error is returned.
func withRetry(ctx context.Context, policy retryPolicy, logger *slog.Logger, name string, operation func(ctx context.Context) error) error {
	attempt := 0
	err := backoff.RetryNotify(
		func() error {
			attempt++
			err := operation(ctx)
			if err != nil && !domainerrors.IsRetryable(err) {
				return backoff.Permanent(err)
			}

			return err
		},
		policy.backOff(ctx),
		func(err error, delay time.Duration) {
			logger.Warn("[Sync] Attempt failed, retrying",
				slog.String("operation", name),
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay),
				slog.Any("error", err),
			)
		},
	)

	return err
}
