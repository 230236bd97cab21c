package config

import "github.com/shuldan/pubsub/pkg/errors"

// chainLoader layers loaders in order. Later layers win; nested sections
// are merged key by key. Loaders without a source are skipped.
type chainLoader []Loader

func (c chainLoader) Load() (map[string]any, error) {
	var merged map[string]any

	for _, loader := range c {
		layer, err := loader.Load()
		switch {
		case errors.Is(err, ErrNoConfigSource):
			continue
		case err != nil:
			return nil, err
		}
		if merged == nil {
			merged = make(map[string]any)
		}
		overlay(merged, layer)
	}

	if merged == nil {
		return nil, ErrNoConfigSource
	}
	return merged, nil
}

func overlay(base, top map[string]any) {
	for k, v := range top {
		into, baseIsSection := base[k].(map[string]any)
		from, topIsSection := v.(map[string]any)
		if baseIsSection && topIsSection {
			overlay(into, from)
			continue
		}
		base[k] = v
	}
}
