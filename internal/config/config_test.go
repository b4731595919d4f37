package config

import (
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Name != "prosperity-test" {
		t.Fatalf("unexpected App.Name: %s", cfg.App.Name)
	}
	if cfg.App.MetricsAddr != ":9109" {
		t.Fatalf("unexpected App.MetricsAddr: %s", cfg.App.MetricsAddr)
	}
	if cfg.App.LogLevel != "debug" {
		t.Fatalf("unexpected App.LogLevel: %s", cfg.App.LogLevel)
	}
	if cfg.Engine.TargetProduct != "KELP" {
		t.Fatalf("unexpected target product: %s", cfg.Engine.TargetProduct)
	}
	if cfg.Engine.RecordPath != "decisions.jsonl" {
		t.Fatalf("unexpected record path: %s", cfg.Engine.RecordPath)
	}
	if cfg.Strategy.Mode != "ar" {
		t.Fatalf("unexpected strategy mode: %s", cfg.Strategy.Mode)
	}
	if cfg.Strategy.Params.Window != 15 {
		t.Fatalf("unexpected window: %d", cfg.Strategy.Params.Window)
	}
	if cfg.Strategy.Params.BaseQty != 5 {
		t.Fatalf("unexpected base qty: %d", cfg.Strategy.Params.BaseQty)
	}
	if cfg.Strategy.Params.Entry != 2.0 {
		t.Fatalf("unexpected entry: %.2f", cfg.Strategy.Params.Entry)
	}
	if cfg.Strategy.Params.MaxPosition != 50 {
		t.Fatalf("unexpected max position: %d", cfg.Strategy.Params.MaxPosition)
	}
	if cfg.Arb.Home != "SeaShells" {
		t.Fatalf("unexpected arb home: %s", cfg.Arb.Home)
	}
	if cfg.Arb.MaxHops != 3 {
		t.Fatalf("unexpected arb max hops: %d", cfg.Arb.MaxHops)
	}
	if cfg.Arb.Rates["SeaShells"]["Snowballs"] != 1.34 {
		t.Fatalf("unexpected rate: %.2f", cfg.Arb.Rates["SeaShells"]["Snowballs"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
