package config

import (
	"testing"
)

func newTestConfig() *MapConfig {
	return &MapConfig{values: map[string]any{
		"events": map[string]any{
			"dispatch":       "snapshot",
			"recover_panics": "yes",
			"workers":        uint64(4),
			"limit":          "12",
			"ratio":          float64(2),
		},
		"legacy": map[any]any{
			"enabled": true,
		},
		"empty": nil,
	}}
}

func TestMapConfig_Has(t *testing.T) {
	cfg := newTestConfig()

	if !cfg.Has("events.dispatch") {
		t.Error("expected events.dispatch to exist")
	}
	if !cfg.Has("legacy.enabled") {
		t.Error("expected lookup through map[any]any")
	}
	if cfg.Has("events.dispatch.mode") {
		t.Error("scalar must not be traversed")
	}
	if cfg.Has("missing") {
		t.Error("missing key reported as present")
	}
}

func TestMapConfig_GetString(t *testing.T) {
	cfg := newTestConfig()

	if got := cfg.GetString("events.dispatch"); got != "snapshot" {
		t.Errorf("expected snapshot, got %q", got)
	}
	if got := cfg.GetString("events.workers"); got != "4" {
		t.Errorf("expected formatted number, got %q", got)
	}
	if got := cfg.GetString("empty", "x"); got != "" {
		t.Errorf("expected empty string for nil value, got %q", got)
	}
	if got := cfg.GetString("missing", "live"); got != "live" {
		t.Errorf("expected default, got %q", got)
	}
}

func TestMapConfig_GetInt(t *testing.T) {
	cfg := newTestConfig()

	tests := []struct {
		key  string
		want int
	}{
		{"events.workers", 4},
		{"events.limit", 12},
		{"events.ratio", 2},
		{"legacy.enabled", 1},
		{"events.dispatch", 7},
		{"missing", 7},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := cfg.GetInt(tt.key, 7); got != tt.want {
				t.Errorf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestMapConfig_GetBool(t *testing.T) {
	cfg := newTestConfig()

	if !cfg.GetBool("events.recover_panics") {
		t.Error("expected yes to be true")
	}
	if !cfg.GetBool("legacy.enabled") {
		t.Error("expected bool value")
	}
	if !cfg.GetBool("events.workers") {
		t.Error("expected non-zero number to be true")
	}
	if !cfg.GetBool("missing", true) {
		t.Error("expected default")
	}
	if cfg.GetBool("events.dispatch") {
		t.Error("unparseable string must fall back to zero default")
	}
}

func TestMapConfig_GetSubAndAll(t *testing.T) {
	cfg := newTestConfig()

	sub, ok := cfg.GetSub("events")
	if !ok {
		t.Fatal("expected events sub config")
	}
	if sub.GetString("dispatch") != "snapshot" {
		t.Error("sub config lost values")
	}
	if _, ok := cfg.GetSub("events.dispatch"); ok {
		t.Error("scalar must not produce a sub config")
	}

	all := cfg.All()
	delete(all, "events")
	if !cfg.Has("events") {
		t.Error("All must return a copy")
	}
}

func TestNewMapConfig_Nil(t *testing.T) {
	cfg := NewMapConfig(nil)
	if cfg.Has("anything") {
		t.Error("empty config should have no keys")
	}
	if len(cfg.All()) != 0 {
		t.Error("expected empty map")
	}
}

func TestMapConfig_GetSubFromYAMLMap(t *testing.T) {
	cfg := newTestConfig()

	sub, ok := cfg.GetSub("legacy")
	if !ok {
		t.Fatal("expected a section from map[any]any")
	}
	if !sub.GetBool("enabled") {
		t.Error("section lost its values")
	}
}
