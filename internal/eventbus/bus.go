// Package eventbus is an in-process publish/subscribe bus with typed topics.
// Dispatch is synchronous and in registration order; a failing listener is
// logged and skipped so the remaining listeners still run.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"tether/internal/infra/metrics"

	"github.com/pkg/errors"
)

// Topic names a channel and fixes its payload type
type Topic[T any] struct {
	name string
}

// NewTopic declares a topic
func NewTopic[T any](name string) Topic[T] {
	return Topic[T]{name: name}
}

// Name returns the topic name
func (t Topic[T]) Name() string {
	return t.name
}

// Listener handles one payload; a returned error is logged, never propagated
type Listener[T any] func(ctx context.Context, payload T) error

type registration struct {
	id   uint64
	call func(ctx context.Context, payload any) error
}

// Bus dispatches payloads to the listeners of a topic
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]registration
	nextID    uint64
	logger    *slog.Logger
}

// New creates an empty bus
func New(logger *slog.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]registration),
		logger:    logger,
	}
}

// Subscribe registers listener on topic and returns a func that removes it.
func Subscribe[T any](b *Bus, topic Topic[T], listener Listener[T]) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.listeners[topic.name] = append(b.listeners[topic.name], registration{
		id: id,
		call: func(ctx context.Context, payload any) error {
			typed, ok := payload.(T)
			if !ok {
				return errors.Errorf("payload %T does not match topic %s", payload, topic.name)
			}

			return listener(ctx, typed)
		},
	})
	b.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { b.remove(topic.name, id) })
	}
}

// Publish delivers payload to every listener of topic and returns the number of listeners that failed.
func Publish[T any](ctx context.Context, b *Bus, topic Topic[T], payload T) int {
	b.mu.RLock()
	snapshot := append([]registration(nil), b.listeners[topic.name]...)
	b.mu.RUnlock()

	failed := 0
	for _, reg := range snapshot {
		if err := b.dispatch(ctx, topic.name, reg, payload); err != nil {
			failed++
			metrics.EventListenerFailures.WithLabelValues(topic.name).Inc()
			b.logger.Warn("[EventBus] Listener failed",
				slog.String("topic", topic.name),
				slog.Any("error", err),
			)
		}
	}

	return failed
}

func (b *Bus) dispatch(ctx context.Context, topic string, reg registration, payload any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener on %s panicked: %v", topic, r)
		}
	}()

	return reg.call(ctx, payload)
}

func (b *Bus) remove(topic string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.listeners[topic]
	for i, reg := range regs {
		if reg.id == id {
			b.listeners[topic] = append(regs[:i:i], regs[i+1:]...)

			break
		}
	}
	if len(b.listeners[topic]) == 0 {
		delete(b.listeners, topic)
	}
}

// ListenerCount returns the number of listeners registered on a topic name
func (b *Bus) ListenerCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.listeners[topic])
}
