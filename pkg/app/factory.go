package app

import (
	"reflect"
	"time"

	"github.com/shuldan/pubsub/pkg/contracts"
)

func NewContainer() contracts.DIContainer {
	return &container{
		factories: make(map[reflect.Type]factoryFunc),
		instances: make(map[reflect.Type]any),
	}
}

type Option func(*app)

// WithGracefulTimeout bounds how long module shutdown may take. Zero or
// less waits for every module.
func WithGracefulTimeout(timeout time.Duration) Option {
	return func(a *app) {
		a.shutdownTimeout = timeout
	}
}

func New(opts ...Option) contracts.App {
	a := &app{
		container:       NewContainer(),
		shutdownTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
