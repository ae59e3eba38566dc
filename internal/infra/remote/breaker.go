package remote

import (
	"context"
	"log/slog"
	"time"

	"tether/config"
	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"
	"tether/internal/infra/metrics"

	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
)

const breakerName = "remote-store"

// breakerStore guards a RemoteStore with a circuit breaker and a per-call timeout.
// Only transient failures count towards tripping; an open circuit is reported as transient.
type breakerStore struct {
	next    service.RemoteStore
	cb      *gobreaker.CircuitBreaker[any]
	timeout time.Duration
	logger  *slog.Logger
}

// NewBreakerStore wraps next with circuit breaker protection
func NewBreakerStore(next service.RemoteStore, cfg *config.RemoteConfig, logger *slog.Logger) service.RemoteStore {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	threshold := cfg.Breaker.ConsecutiveFailures
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !domainerrors.IsRetryable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("[CircuitBreaker] State transition",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &breakerStore{
		next:    next,
		cb:      cb,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (s *breakerStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.timeout)
}

func (s *breakerStore) execute(op string, fn func() (any, error)) (any, error) {
	result, err := s.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, domainerrors.NewTransientError(err, op+": circuit open")
	}

	return result, err
}

func (s *breakerStore) Read(ctx context.Context, ref service.DocumentRef) (*entity.RemoteDocument, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.execute("read "+ref.Path(), func() (any, error) {
		doc, err := s.next.Read(ctx, ref)
		if err != nil {
			return nil, classifyIfUnknown(err, "read "+ref.Path())
		}

		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	doc, ok := result.(*entity.RemoteDocument)
	if !ok {
		return nil, errors.Errorf("circuit breaker: unexpected result type %T", result)
	}

	return doc, nil
}

func (s *breakerStore) Write(ctx context.Context, ref service.DocumentRef, fields map[string]any, mode service.WriteMode) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.execute("write "+ref.Path(), func() (any, error) {
		return nil, classifyIfUnknown(s.next.Write(ctx, ref, fields, mode), "write "+ref.Path())
	})
	metrics.RecordRemoteWrite(string(mode), err)

	return err
}

// Listen guards only the stream set-up; stream errors go straight to onError
func (s *breakerStore) Listen(ctx context.Context, ref service.DocumentRef, onChange func(*entity.RemoteDocument), onError func(error)) (func(), error) {
	result, err := s.execute("listen "+ref.Path(), func() (any, error) {
		stop, err := s.next.Listen(ctx, ref, onChange, onError)
		if err != nil {
			return nil, classifyIfUnknown(err, "listen "+ref.Path())
		}

		return stop, nil
	})
	if err != nil {
		return nil, err
	}

	stop, ok := result.(func())
	if !ok {
		return nil, errors.Errorf("circuit breaker: unexpected result type %T", result)
	}

	return stop, nil
}

func (s *breakerStore) Close() error {
	return s.next.Close()
}

// classifyIfUnknown keeps errors that already carry a domain kind
func classifyIfUnknown(err error, details string) error {
	if err == nil || domainerrors.KindOf(err) != domainerrors.KindInternal {
		return err
	}

	return classify(err, details)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
