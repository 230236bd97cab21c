package app

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/shuldan/pubsub/pkg/contracts"
	"github.com/shuldan/pubsub/pkg/errors"
)

type app struct {
	mu              sync.Mutex
	modules         []contracts.AppModule
	container       contracts.DIContainer
	running         atomic.Bool
	shutdownTimeout time.Duration
}

// Register queues module for the next run. Modules start in registration
// order and stop in reverse.
func (a *app) Register(module contracts.AppModule) error {
	if module == nil {
		return ErrModuleRegister.WithDetail("module", "<nil>")
	}
	if a.running.Load() {
		return ErrAppRun.WithDetail("reason", "cannot register "+module.Name()+" while running")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.modules = append(a.modules, module)
	return nil
}

func (a *app) Run() error {
	return a.RunContext(context.Background())
}

// RunContext registers and starts every module, blocks until parent is
// done, SIGINT or SIGTERM arrives, or a module calls AppContext.Stop, and
// then stops the modules.
func (a *app) RunContext(parent context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAppRun.WithDetail("reason", "application is already running")
	}
	defer a.running.Store(false)

	signalled, stopSignals := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	ctx := newRunContext(signalled, a.container)
	defer ctx.Stop()

	a.mu.Lock()
	modules := slices.Clone(a.modules)
	a.mu.Unlock()

	for _, module := range modules {
		if err := module.Register(a.container); err != nil {
			return ErrModuleRegister.
				WithDetail("module", module.Name()).
				WithCause(err)
		}
	}

	for i, module := range modules {
		if err := module.Start(ctx); err != nil {
			ctx.Stop()
			startErr := ErrModuleStart.
				WithDetail("module", module.Name()).
				WithCause(err)
			return errors.Join(startErr, stopModules(ctx, modules[:i]))
		}
	}

	<-ctx.Ctx().Done()
	return a.shutdown(ctx, modules)
}

func (a *app) shutdown(ctx contracts.AppContext, modules []contracts.AppModule) error {
	done := make(chan error, 1)
	go func() {
		done <- stopModules(ctx, modules)
	}()

	if a.shutdownTimeout <= 0 {
		return <-done
	}

	timer := time.NewTimer(a.shutdownTimeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		return ErrAppStop.WithDetail("reason", "graceful shutdown timed out after "+a.shutdownTimeout.String())
	}
}

// stopModules stops modules in reverse order and joins every failure.
func stopModules(ctx contracts.AppContext, modules []contracts.AppModule) error {
	var errs []error
	for _, module := range slices.Backward(modules) {
		if err := module.Stop(ctx); err != nil {
			errs = append(errs, ErrModuleStop.
				WithDetail("module", module.Name()).
				WithCause(err))
		}
	}
	return errors.Join(errs...)
}
