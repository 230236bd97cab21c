package contracts

import (
	"context"
)

// Bus is a synchronous in-process publish/subscribe registry keyed by K.
type Bus[K comparable] interface {
	Listen(key K, listener Listener) Subscription
	Trigger(ctx context.Context, key K, args ...any) (bool, error)
	Remove(key K, listener Listener) bool
	RemoveAll(key K) bool
}

type Listener interface {
	Handle(ctx context.Context, args ...any) error
}

type Subscription interface {
	ID() string
	Unsubscribe() bool
}
