package app

import (
	"reflect"
	"sync"

	"github.com/shuldan/pubsub/pkg/contracts"
)

type factoryFunc = func(c contracts.DIContainer) (any, error)

// container resolves each type once; factories are lazy singletons.
type container struct {
	mu        sync.RWMutex
	factories map[reflect.Type]factoryFunc
	instances map[reflect.Type]any
}

func (c *container) Has(abstract reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, hasFactory := c.factories[abstract]
	_, hasInstance := c.instances[abstract]
	return hasFactory || hasInstance
}

func (c *container) Instance(abstract reflect.Type, concrete any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.instances[abstract]; exists {
		return ErrDuplicateInstance.WithDetail("type", abstract.String())
	}
	c.instances[abstract] = concrete
	return nil
}

func (c *container) Factory(abstract reflect.Type, factory factoryFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.factories[abstract]; exists {
		return ErrDuplicateFactory.WithDetail("type", abstract.String())
	}
	c.factories[abstract] = factory
	return nil
}

func (c *container) Resolve(abstract reflect.Type) (any, error) {
	return c.resolve(abstract, make(map[reflect.Type]bool))
}

func (c *container) resolve(abstract reflect.Type, resolving map[reflect.Type]bool) (any, error) {
	c.mu.RLock()
	instance, hasInstance := c.instances[abstract]
	factory, hasFactory := c.factories[abstract]
	c.mu.RUnlock()

	if hasInstance {
		return instance, nil
	}
	if resolving[abstract] {
		return nil, ErrCircularDep.WithDetail("type", abstract.String())
	}
	if !hasFactory {
		return nil, ErrValueNotFound.WithDetail("type", abstract.String())
	}

	resolving[abstract] = true
	defer delete(resolving, abstract)

	instance, err := factory(&resolvingProxy{container: c, resolving: resolving})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, exists := c.instances[abstract]; exists {
		return existing, nil
	}
	c.instances[abstract] = instance
	return instance, nil
}

// resolvingProxy carries the resolution stack into nested factory calls.
type resolvingProxy struct {
	container *container
	resolving map[reflect.Type]bool
}

func (p *resolvingProxy) Has(abstract reflect.Type) bool {
	return p.container.Has(abstract)
}

func (p *resolvingProxy) Instance(abstract reflect.Type, concrete any) error {
	return p.container.Instance(abstract, concrete)
}

func (p *resolvingProxy) Factory(abstract reflect.Type, factory factoryFunc) error {
	return p.container.Factory(abstract, factory)
}

func (p *resolvingProxy) Resolve(abstract reflect.Type) (any, error) {
	return p.container.resolve(abstract, p.resolving)
}
