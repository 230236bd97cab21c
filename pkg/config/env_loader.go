package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvConfigLoader maps PREFIX_EVENTS__DISPATCH=snapshot to events.dispatch.
// Values that parse as bool, int or float keep that type.
type EnvConfigLoader struct {
	prefix string
}

func (l *EnvConfigLoader) Load() (map[string]any, error) {
	values := make(map[string]any)

	for _, entry := range os.Environ() {
		name, raw, _ := strings.Cut(entry, "=")
		rest, ok := strings.CutPrefix(name, l.prefix)
		if !ok || rest == "" {
			continue
		}

		path := strings.Split(strings.ToLower(rest), "__")
		section := values
		for _, part := range path[:len(path)-1] {
			child, ok := section[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				section[part] = child
			}
			section = child
		}
		section[path[len(path)-1]] = parseScalar(raw)
	}

	return values, nil
}

func parseScalar(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
