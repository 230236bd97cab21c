package events

import (
	"github.com/shuldan/pubsub/pkg/contracts"
)

type module struct {
	opts []Option
}

func (m *module) Name() string {
	return "events"
}

// Register installs a lazy factory for the shared *Bus[string]. Config and
// logger are picked up from the container when present; explicit module
// options win over config values.
func (m *module) Register(container contracts.DIContainer) error {
	return container.Factory(BusType, func(c contracts.DIContainer) (any, error) {
		var opts []Option

		if c.Has(contracts.ConfigType) {
			cfg, err := c.Resolve(contracts.ConfigType)
			if err != nil {
				return nil, err
			}
			if conf, ok := cfg.(contracts.Config); ok {
				fromConfig, err := OptionsFromConfig(conf)
				if err != nil {
					return nil, err
				}
				opts = append(opts, fromConfig...)
			}
		}

		if c.Has(contracts.LoggerType) {
			l, err := c.Resolve(contracts.LoggerType)
			if err != nil {
				return nil, err
			}
			if log, ok := l.(contracts.Logger); ok {
				opts = append(opts, WithLogger(log.With("component", "events")))
			}
		}

		return New[string](append(opts, m.opts...)...), nil
	})
}

func (m *module) Start(ctx contracts.AppContext) error {
	_, err := Resolve(ctx.Container())
	return err
}

// Stop drops every binding so listeners are no longer referenced.
func (m *module) Stop(ctx contracts.AppContext) error {
	b, err := Resolve(ctx.Container())
	if err != nil {
		return err
	}
	b.Reset()
	return nil
}

// Resolve fetches the shared bus registered by the module.
func Resolve(container contracts.DIContainer) (*Bus[string], error) {
	v, err := container.Resolve(BusType)
	if err != nil {
		return nil, ErrBusNotFound.WithCause(err)
	}
	b, ok := v.(*Bus[string])
	if !ok {
		return nil, ErrInvalidBusInstance
	}
	return b, nil
}
