package config

import "github.com/shuldan/pubsub/pkg/contracts"

// Loader produces one layer of raw values keyed by section. A loader with
// nothing to read returns ErrNoConfigSource so a chain can skip it.
type Loader interface {
	Load() (map[string]any, error)
}

var (
	_ Loader = (*EnvConfigLoader)(nil)
	_ Loader = (*YamlConfigLoader)(nil)
	_ Loader = chainLoader(nil)
)

func NewEnvConfigLoader(prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{prefix: prefix}
}

func NewYamlConfigLoader(paths ...string) *YamlConfigLoader {
	return &YamlConfigLoader{paths: paths}
}

// NewChainLoader merges loader results in order; later layers win.
func NewChainLoader(loaders ...Loader) Loader {
	return chainLoader(loaders)
}

func NewMapConfig(values map[string]any) contracts.Config {
	if values == nil {
		values = make(map[string]any)
	}
	return &MapConfig{values: values}
}
