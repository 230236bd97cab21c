package events

import (
	"context"
	"reflect"
	"sync"

	"github.com/shuldan/pubsub/pkg/contracts"
	"github.com/shuldan/pubsub/pkg/logger"
)

// BusType is the container key of the shared string-keyed bus.
var BusType = reflect.TypeOf((*Bus[string])(nil))

func New[K comparable](opts ...Option) *Bus[K] {
	cfg := &busConfig{
		errorPolicy:  AbortOnError,
		dispatchMode: DispatchLive,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = logger.NewNop()
	}
	if cfg.panicHandler == nil {
		cfg.panicHandler = NewDefaultPanicHandler(cfg.logger)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = NewDefaultErrorHandler(cfg.logger)
	}

	return &Bus[K]{
		topics:        make(map[K]*topic[K]),
		errorPolicy:   cfg.errorPolicy,
		dispatchMode:  cfg.dispatchMode,
		recoverPanics: cfg.recoverPanics,
		panicHandler:  cfg.panicHandler,
		errorHandler:  cfg.errorHandler,
		logger:        cfg.logger,
	}
}

var (
	defaultBus     *Bus[string]
	defaultBusOnce sync.Once
)

// Default returns the process-wide bus used by the package-level Listen,
// Trigger and Remove. It lives for the whole process.
func Default() *Bus[string] {
	defaultBusOnce.Do(func() {
		defaultBus = New[string]()
	})
	return defaultBus
}

func Listen(key string, listener Listener) contracts.Subscription {
	return Default().Listen(key, listener)
}

func Trigger(ctx context.Context, key string, args ...any) (bool, error) {
	return Default().Trigger(ctx, key, args...)
}

func Remove(key string, listener Listener) bool {
	return Default().Remove(key, listener)
}

func NewModule(opts ...Option) contracts.AppModule {
	return &module{opts: opts}
}
