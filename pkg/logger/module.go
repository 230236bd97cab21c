package logger

import (
	"github.com/shuldan/pubsub/pkg/contracts"
)

type module struct {
	opts []Option
}

func NewModule(opts ...Option) contracts.AppModule {
	return &module{opts: opts}
}

func (m *module) Name() string {
	return "logger"
}

func (m *module) Register(container contracts.DIContainer) error {
	return container.Factory(contracts.LoggerType, func(c contracts.DIContainer) (any, error) {
		opts := m.opts
		if c.Has(contracts.ConfigType) {
			if cfg, err := c.Resolve(contracts.ConfigType); err == nil {
				if conf, ok := cfg.(contracts.Config); ok {
					opts = append(OptionsFromConfig(conf), opts...)
				}
			}
		}
		return NewLogger(opts...)
	})
}

func (m *module) Start(_ contracts.AppContext) error {
	return nil
}

func (m *module) Stop(_ contracts.AppContext) error {
	return nil
}
