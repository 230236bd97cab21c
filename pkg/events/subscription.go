package events

import (
	"github.com/google/uuid"
)

// subscription is one listener-to-key binding. active is guarded by the
// owning bus mutex and flips to false exactly once.
type subscription[K comparable] struct {
	id       string
	key      K
	listener Listener
	bus      *Bus[K]
	seq      uint64
	active   bool
}

func newSubscription[K comparable](bus *Bus[K], key K, listener Listener) *subscription[K] {
	return &subscription[K]{
		id:       uuid.NewString(),
		key:      key,
		listener: listener,
		bus:      bus,
		active:   true,
	}
}

func (s *subscription[K]) ID() string {
	return s.id
}

func (s *subscription[K]) Key() K {
	return s.key
}

func (s *subscription[K]) Listener() Listener {
	return s.listener
}

// Unsubscribe removes this binding only. It reports false when the binding
// was already removed.
func (s *subscription[K]) Unsubscribe() bool {
	return s.bus.unsubscribe(s)
}
