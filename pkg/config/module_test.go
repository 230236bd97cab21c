package config

import (
	"errors"
	"testing"

	"github.com/shuldan/pubsub/pkg/app"
	"github.com/shuldan/pubsub/pkg/contracts"
)

func resolveConfig(t *testing.T, m contracts.AppModule) (contracts.Config, error) {
	t.Helper()
	c := app.NewContainer()
	if err := m.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	v, err := c.Resolve(contracts.ConfigType)
	if err != nil {
		return nil, err
	}
	return v.(contracts.Config), nil
}

func TestModule_LoadsFileAndEnv(t *testing.T) {
	path := writeFile(t, "config.yaml", "events:\n  dispatch: live\n")
	t.Setenv("MODTEST_EVENTS__ERROR_POLICY", "continue")

	m := NewModule("MODTEST_", path)
	if m.Name() != "config" {
		t.Errorf("unexpected name %q", m.Name())
	}

	cfg, err := resolveConfig(t, m)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GetString("events.dispatch") != "live" || cfg.GetString("events.error_policy") != "continue" {
		t.Errorf("unexpected config %v", cfg.All())
	}
}

func TestModule_NoSourceYieldsEmptyConfig(t *testing.T) {
	cfg, err := resolveConfig(t, NewModuleWithLoader(NewYamlConfigLoader("missing.yaml")))
	if err != nil {
		t.Fatalf("missing sources should not fail: %v", err)
	}
	if len(cfg.All()) != 0 {
		t.Errorf("expected empty config, got %v", cfg.All())
	}
}

func TestModule_ParseErrorFails(t *testing.T) {
	path := writeFile(t, "broken.yaml", "events: [unclosed")

	_, err := resolveConfig(t, NewModuleWithLoader(NewYamlConfigLoader(path)))
	if !errors.Is(err, ErrParseYAML) {
		t.Errorf("expected ErrParseYAML, got %v", err)
	}
}
