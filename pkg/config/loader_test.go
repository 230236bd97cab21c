package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestYamlConfigLoader_Load(t *testing.T) {
	path := writeFile(t, "config.yaml", `
events:
  dispatch: snapshot
  error_policy: continue
  recover_panics: true
logger:
  level: debug
`)

	values, err := NewYamlConfigLoader("missing.yaml", path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := NewMapConfig(values)
	if cfg.GetString("events.dispatch") != "snapshot" {
		t.Errorf("unexpected events.dispatch: %v", cfg.Get("events.dispatch"))
	}
	if !cfg.GetBool("events.recover_panics") {
		t.Error("expected events.recover_panics = true")
	}
	if cfg.GetString("logger.level") != "debug" {
		t.Errorf("unexpected logger.level: %v", cfg.Get("logger.level"))
	}
}

func TestYamlConfigLoader_FileNotFound(t *testing.T) {
	_, err := NewYamlConfigLoader("nonexistent.yaml").Load()
	if !errors.Is(err, ErrNoConfigSource) {
		t.Errorf("expected ErrNoConfigSource, got %v", err)
	}
}

func TestYamlConfigLoader_Invalid(t *testing.T) {
	path := writeFile(t, "broken.yaml", "events: [unclosed")

	_, err := NewYamlConfigLoader(path).Load()
	if !errors.Is(err, ErrParseYAML) {
		t.Errorf("expected ErrParseYAML, got %v", err)
	}
}

func TestEnvConfigLoader_Load(t *testing.T) {
	t.Setenv("PUBSUBTEST_EVENTS__DISPATCH", "snapshot")
	t.Setenv("PUBSUBTEST_EVENTS__RECOVER_PANICS", "true")
	t.Setenv("PUBSUBTEST_LIMIT", "3")
	t.Setenv("PUBSUBTEST_RATIO", "0.5")

	values, err := NewEnvConfigLoader("PUBSUBTEST_").Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := NewMapConfig(values)
	if cfg.GetString("events.dispatch") != "snapshot" {
		t.Errorf("unexpected events.dispatch: %v", cfg.Get("events.dispatch"))
	}
	if cfg.Get("events.recover_panics") != true {
		t.Errorf("expected typed bool, got %#v", cfg.Get("events.recover_panics"))
	}
	if cfg.Get("limit") != 3 {
		t.Errorf("expected typed int, got %#v", cfg.Get("limit"))
	}
	if cfg.Get("ratio") != 0.5 {
		t.Errorf("expected typed float, got %#v", cfg.Get("ratio"))
	}
}

func TestChainLoader_Merge(t *testing.T) {
	path := writeFile(t, "config.yaml", `
events:
  dispatch: live
  error_policy: continue
`)
	t.Setenv("CHAINTEST_EVENTS__DISPATCH", "snapshot")

	values, err := NewChainLoader(
		NewYamlConfigLoader(path),
		NewEnvConfigLoader("CHAINTEST_"),
	).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := NewMapConfig(values)
	if cfg.GetString("events.dispatch") != "snapshot" {
		t.Error("environment should override the file")
	}
	if cfg.GetString("events.error_policy") != "continue" {
		t.Error("file values should survive the merge")
	}
}

func TestChainLoader_NoSource(t *testing.T) {
	_, err := NewChainLoader(NewYamlConfigLoader("nope.yaml")).Load()
	if !errors.Is(err, ErrNoConfigSource) {
		t.Errorf("expected ErrNoConfigSource, got %v", err)
	}
}

func TestChainLoader_StopsOnParseError(t *testing.T) {
	path := writeFile(t, "broken.yaml", "events: [unclosed")

	_, err := NewChainLoader(
		NewYamlConfigLoader(path),
		NewEnvConfigLoader("CHAINTEST_"),
	).Load()
	if !errors.Is(err, ErrParseYAML) {
		t.Errorf("expected ErrParseYAML, got %v", err)
	}
}
