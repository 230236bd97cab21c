package events

import (
	"context"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/shuldan/pubsub/pkg/contracts"
	"github.com/shuldan/pubsub/pkg/errors"
)

// Bus maps each key to the ordered listeners registered under it and
// invokes them synchronously on the publisher's goroutine.
//
// The mutex is never held while a listener runs, so listeners may call
// Listen, Remove and Trigger on the same bus, including on the key being
// dispatched.
type Bus[K comparable] struct {
	mu            sync.Mutex
	topics        map[K]*topic[K]
	errorPolicy   ErrorPolicy
	dispatchMode  DispatchMode
	recoverPanics bool
	panicHandler  PanicHandler
	errorHandler  ErrorHandler
	logger        contracts.Logger
}

var _ contracts.Bus[string] = (*Bus[string])(nil)

// Listen appends listener to key's sequence. Registering the same listener
// twice creates two bindings, each invoked and removed on its own. A nil
// listener is ignored and yields a nil Subscription.
func (b *Bus[K]) Listen(key K, listener Listener) contracts.Subscription {
	if isNilListener(listener) {
		return nil
	}

	sub := newSubscription(b, key, listener)

	b.mu.Lock()
	t, ok := b.topics[key]
	if !ok {
		t = &topic[K]{}
		b.topics[key] = t
	}
	t.append(sub)
	b.mu.Unlock()

	b.logger.Trace("listener registered", "key", key, "subscription", sub.id)
	return sub
}

func (b *Bus[K]) ListenFunc(key K, fn func(ctx context.Context, args ...any) error) contracts.Subscription {
	if fn == nil {
		return nil
	}
	return b.Listen(key, ListenerFunc(fn))
}

// Trigger invokes every listener under key in registration order with ctx
// and args. It returns false when nobody is listening; that is not an error.
// The first binding is claimed under the same lock as the emptiness check,
// so a true result always means at least one listener ran.
func (b *Bus[K]) Trigger(ctx context.Context, key K, args ...any) (bool, error) {
	b.mu.Lock()
	t, ok := b.topics[key]
	if !ok || len(t.subs) == 0 {
		b.mu.Unlock()
		return false, nil
	}

	if b.dispatchMode == DispatchSnapshot {
		snapshot := slices.Clone(t.subs)
		b.mu.Unlock()
		return true, b.dispatchSnapshot(ctx, key, snapshot, args)
	}

	c := t.track()
	sub, index := t.advance(c)
	b.mu.Unlock()
	return true, b.dispatchLive(ctx, key, t, c, sub, index, args)
}

func (b *Bus[K]) dispatchLive(ctx context.Context, key K, t *topic[K], c *cursor, sub *subscription[K], index int, args []any) error {
	defer func() {
		b.mu.Lock()
		t.untrack(c)
		b.mu.Unlock()
	}()

	var errs []error
	for sub != nil {
		if err := b.invoke(ctx, key, index, sub, args); err != nil {
			if b.errorPolicy == AbortOnError {
				return err
			}
			errs = append(errs, err)
		}

		b.mu.Lock()
		sub, index = t.advance(c)
		b.mu.Unlock()
	}
	return errors.Join(errs...)
}

func (b *Bus[K]) dispatchSnapshot(ctx context.Context, key K, snapshot []*subscription[K], args []any) error {
	var errs []error
	for index, sub := range snapshot {
		// the first binding was active when the snapshot was taken
		if index > 0 {
			b.mu.Lock()
			active := sub.active
			b.mu.Unlock()
			if !active {
				continue
			}
		}

		if err := b.invoke(ctx, key, index, sub, args); err != nil {
			if b.errorPolicy == AbortOnError {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// invoke calls one listener. A recovered panic reaches the PanicHandler
// and then the ErrorHandler like any other listener failure.
func (b *Bus[K]) invoke(ctx context.Context, key K, index int, sub *subscription[K], args []any) (err error) {
	if b.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				b.panicHandler.Handle(key, sub.listener, r, debug.Stack())
				err = ErrListenerPanic.
					WithDetail("key", key).
					WithDetail("index", index).
					WithDetail("panic", r)
				b.errorHandler.Handle(key, sub.listener, err)
			}
		}()
	}

	if lerr := sub.listener.Handle(ctx, args...); lerr != nil {
		b.errorHandler.Handle(key, sub.listener, lerr)
		return ErrListenerFailed.
			WithDetail("key", key).
			WithDetail("index", index).
			WithCause(lerr)
	}
	return nil
}

// Remove deletes every binding of listener under key, scanning from the
// end. A nil listener clears the whole sequence while keeping the key.
// It returns false only when key was never registered.
func (b *Bus[K]) Remove(key K, listener Listener) bool {
	b.mu.Lock()
	t, ok := b.topics[key]
	if !ok {
		b.mu.Unlock()
		return false
	}

	removed := 0
	if isNilListener(listener) {
		removed = len(t.subs)
		t.clear()
	} else {
		for i := len(t.subs) - 1; i >= 0; i-- {
			if sameListener(t.subs[i].listener, listener) {
				t.removeAt(i)
				removed++
			}
		}
	}
	b.mu.Unlock()

	if removed > 0 {
		b.logger.Trace("listeners removed", "key", key, "count", removed)
	}
	return true
}

func (b *Bus[K]) RemoveAll(key K) bool {
	return b.Remove(key, nil)
}

func (b *Bus[K]) unsubscribe(sub *subscription[K]) bool {
	b.mu.Lock()
	if !sub.active {
		b.mu.Unlock()
		return false
	}
	t := b.topics[sub.key]
	t.removeAt(t.indexOf(sub))
	b.mu.Unlock()

	b.logger.Trace("listener unsubscribed", "key", sub.key, "subscription", sub.id)
	return true
}

// Has reports whether key has at least one listener.
func (b *Bus[K]) Has(key K) bool {
	return b.Count(key) > 0
}

func (b *Bus[K]) Count(key K) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.topics[key]; ok {
		return len(t.subs)
	}
	return 0
}

// Keys lists every key ever registered and not dropped by Reset, including
// keys whose sequence is currently empty.
func (b *Bus[K]) Keys() []K {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]K, 0, len(b.topics))
	for k := range b.topics {
		keys = append(keys, k)
	}
	return keys
}

// Reset clears every key and forgets them. In-flight dispatches stop after
// the listener currently running.
func (b *Bus[K]) Reset() {
	b.mu.Lock()
	for _, t := range b.topics {
		t.clear()
	}
	b.topics = make(map[K]*topic[K])
	b.mu.Unlock()

	b.logger.Debug("event bus reset")
}
