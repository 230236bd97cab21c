package app

import (
	"context"

	"github.com/shuldan/pubsub/pkg/contracts"
)

// runContext is handed to every module for one run of the application.
// Stop cancels Ctx and may be called any number of times.
type runContext struct {
	ctx       context.Context
	cancel    context.CancelFunc
	container contracts.DIContainer
}

var _ contracts.AppContext = (*runContext)(nil)

func newRunContext(parent context.Context, container contracts.DIContainer) *runContext {
	ctx, cancel := context.WithCancel(parent)
	return &runContext{ctx: ctx, cancel: cancel, container: container}
}

func (c *runContext) Ctx() context.Context             { return c.ctx }
func (c *runContext) Container() contracts.DIContainer { return c.container }
func (c *runContext) Stop()                            { c.cancel() }
