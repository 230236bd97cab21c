package contracts

import (
	"context"
	"reflect"
)

// DIContainer maps interface types to instances or lazily built singletons.
type DIContainer interface {
	Has(abstract reflect.Type) bool
	Instance(abstract reflect.Type, concrete any) error
	Factory(abstract reflect.Type, factory func(c DIContainer) (any, error)) error
	Resolve(abstract reflect.Type) (any, error)
}

// AppContext is what a module sees while the application runs. Stop ends
// the run; Ctx is cancelled once it is called or the process is signalled.
type AppContext interface {
	Ctx() context.Context
	Container() DIContainer
	Stop()
}

type AppModule interface {
	Name() string
	Register(container DIContainer) error
	Start(ctx AppContext) error
	Stop(ctx AppContext) error
}

type App interface {
	Register(module AppModule) error
	Run() error
	RunContext(ctx context.Context) error
}

var (
	ConfigType = reflect.TypeOf((*Config)(nil)).Elem()
	LoggerType = reflect.TypeOf((*Logger)(nil)).Elem()
)
