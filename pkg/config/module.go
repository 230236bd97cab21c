package config

import (
	"github.com/shuldan/pubsub/pkg/contracts"
	"github.com/shuldan/pubsub/pkg/errors"
)

type module struct {
	loader Loader
}

// NewModule layers the first readable YAML file under environment
// variables carrying envPrefix.
func NewModule(envPrefix string, configPaths ...string) contracts.AppModule {
	return NewModuleWithLoader(NewChainLoader(
		NewYamlConfigLoader(configPaths...),
		NewEnvConfigLoader(envPrefix),
	))
}

func NewModuleWithLoader(loader Loader) contracts.AppModule {
	return &module{loader: loader}
}

func (m *module) Name() string {
	return "config"
}

func (m *module) Register(container contracts.DIContainer) error {
	return container.Factory(contracts.ConfigType, func(c contracts.DIContainer) (any, error) {
		values, err := m.loader.Load()
		if errors.Is(err, ErrNoConfigSource) {
			values, err = map[string]any{}, nil
		}
		if err != nil {
			return nil, err
		}
		return NewMapConfig(values), nil
	})
}

func (m *module) Start(_ contracts.AppContext) error {
	return nil
}

func (m *module) Stop(_ contracts.AppContext) error {
	return nil
}
