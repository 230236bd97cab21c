package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// YamlConfigLoader reads the first existing file among paths.
type YamlConfigLoader struct {
	paths []string
}

func (l *YamlConfigLoader) Load() (map[string]any, error) {
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		values := make(map[string]any)
		if err = yaml.Unmarshal(data, &values); err != nil {
			return nil, ErrParseYAML.
				WithDetail("path", path).
				WithDetail("reason", err.Error()).
				WithCause(err)
		}

		return values, nil
	}

	return nil, ErrNoConfigSource
}
