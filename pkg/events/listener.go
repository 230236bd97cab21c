package events

import (
	"context"
	"reflect"

	"github.com/shuldan/pubsub/pkg/contracts"
)

// Listener receives the publisher's context and its positional arguments.
type Listener = contracts.Listener

// ListenerFunc adapts a plain function to Listener. Functions are not
// comparable, so a ListenerFunc can only be removed through the
// Subscription returned by Listen or by clearing its key.
type ListenerFunc func(ctx context.Context, args ...any) error

func (f ListenerFunc) Handle(ctx context.Context, args ...any) error {
	return f(ctx, args...)
}

func sameListener(a, b Listener) bool {
	va := reflect.ValueOf(a)
	if va.Type() != reflect.TypeOf(b) || !va.Comparable() {
		return false
	}
	return va.Equal(reflect.ValueOf(b))
}

func isNilListener(l Listener) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
