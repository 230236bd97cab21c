package config

import (
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/shuldan/pubsub/pkg/contracts"
)

// MapConfig resolves dotted paths such as "events.dispatch" against the
// nested maps produced by the YAML and environment loaders.
type MapConfig struct {
	values map[string]any
}

var _ contracts.Config = (*MapConfig)(nil)

func (c *MapConfig) Has(path string) bool {
	_, ok := c.lookup(path)
	return ok
}

func (c *MapConfig) Get(path string) any {
	v, _ := c.lookup(path)
	return v
}

func (c *MapConfig) GetString(path string, def ...string) string {
	return read(c, path, toString, def)
}

func (c *MapConfig) GetInt(path string, def ...int) int {
	return read(c, path, toInt, def)
}

// GetBool also accepts yes/no, on/off, y/n, 1/0 and non-zero numbers.
func (c *MapConfig) GetBool(path string, def ...bool) bool {
	return read(c, path, toBool, def)
}

func (c *MapConfig) GetSub(path string) (contracts.Config, bool) {
	v, ok := c.lookup(path)
	if !ok {
		return nil, false
	}
	section, ok := asSection(v)
	if !ok {
		return nil, false
	}
	return NewMapConfig(section), true
}

// All returns a shallow copy of the top-level values.
func (c *MapConfig) All() map[string]any {
	return maps.Clone(c.values)
}

func (c *MapConfig) lookup(path string) (any, bool) {
	var node any = c.values
	for part := range strings.SplitSeq(path, ".") {
		section, ok := asSection(node)
		if !ok {
			return nil, false
		}
		if node, ok = section[part]; !ok {
			return nil, false
		}
	}
	return node, true
}

// asSection accepts both map shapes YAML decoders produce.
func asSection(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		section := make(map[string]any, len(m))
		for k, val := range m {
			section[fmt.Sprint(k)] = val
		}
		return section, true
	}
	return nil, false
}

// read converts the value at path, falling back to def or the zero value
// when the path is missing or the value does not convert.
func read[T any](c *MapConfig, path string, conv func(any) (T, bool), def []T) T {
	if v, ok := c.lookup(path); ok {
		if out, ok := conv(v); ok {
			return out
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	var zero T
	return zero
}

func toString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	}
	return fmt.Sprint(v), true
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), n >= math.MinInt && n <= math.MaxInt
	case uint64:
		return int(n), n <= math.MaxInt
	case float64:
		return int(n), n >= math.MinInt && n <= math.MaxInt
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case int:
		return b != 0, true
	case int64:
		return b != 0, true
	case uint64:
		return b != 0, true
	case float64:
		return b != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "on", "yes", "y":
			return true, true
		case "false", "0", "off", "no", "n":
			return false, true
		}
	}
	return false, false
}
